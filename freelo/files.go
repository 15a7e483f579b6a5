package freelo

import (
	"context"
	"fmt"
)

// DownloadFile fetches the raw bytes of a file by its UUID. The response
// is returned untouched - no decoding, no size limit, one round trip.
// UUIDs are only discoverable through task comments; Freelo exposes no
// listing endpoint for files.
func (c *Client) DownloadFile(ctx context.Context, fileUUID string) ([]byte, error) {
	return c.getBinary(ctx, fmt.Sprintf("/file/%s", fileUUID))
}

// ListAttachments always fails with ErrAttachmentListingUnsupported.
// The upstream API has no endpoint for it; the accessor exists so the
// tool layer can answer the request with a useful redirection instead
// of a silent gap.
func (c *Client) ListAttachments(ctx context.Context, taskID int64) ([]File, error) {
	return nil, ErrAttachmentListingUnsupported
}

// GetAttachment always fails with ErrAttachmentByIDUnsupported. Freelo
// addresses files by UUID, never by numeric ID.
func (c *Client) GetAttachment(ctx context.Context, attachmentID int64) (*File, error) {
	return nil, ErrAttachmentByIDUnsupported
}
