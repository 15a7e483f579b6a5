package freelo

import (
	"errors"
	"fmt"
	"net/http"
)

// Construction-time errors. Blank credentials never reach the network.
var (
	// ErrMissingEmail indicates the account email was not provided.
	ErrMissingEmail = errors.New("freelo email is required")
	// ErrMissingAPIKey indicates the API key was not provided.
	ErrMissingAPIKey = errors.New("freelo API key is required")
)

// Unsupported-operation errors. The upstream API has no equivalent
// endpoints, so these fail unconditionally and without network I/O.
var (
	// ErrAttachmentListingUnsupported is returned by ListAttachments.
	ErrAttachmentListingUnsupported = errors.New(
		"listing attachments is not supported: the Freelo API has no attachment listing endpoint; " +
			"file UUIDs appear in task comments (get the task's comments, then download by UUID)")
	// ErrAttachmentByIDUnsupported is returned by GetAttachment.
	ErrAttachmentByIDUnsupported = errors.New(
		"fetching an attachment by numeric ID is not supported: the Freelo API addresses files " +
			"by UUID only; take the UUID from a task comment and download it directly")
)

// APIError is the single failure kind raised for every request that does
// not succeed. Remote errors carry the HTTP status and the message the
// server reported; transport faults (DNS, dial, timeout) carry status 0
// and the underlying error text. Callers see one prefix either way.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("freelo API error: %s", e.Message)
}

// IsNotFound checks if the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates rejected credentials.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// errorBody is the JSON shape Freelo returns alongside non-2xx statuses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
