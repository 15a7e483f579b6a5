package freelo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the fixed production address of the Freelo v1 API.
// All requests go to this single origin over HTTPS.
const DefaultBaseURL = "https://api.freelo.io/v1"

const defaultTimeout = 30 * time.Second

// Client executes authenticated requests against the Freelo API. The
// credential pair is immutable after construction, so a Client is safe
// for concurrent use; every call is one independent round trip.
type Client struct {
	baseURL    string
	email      string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Freelo client. Blank credentials fail here,
// before any request is attempted; nothing is dialed until the first
// accessor call.
func NewClient(email, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	userAgent := options.userAgent
	if userAgent == "" {
		// Freelo asks API consumers to identify themselves with a
		// contact address in the User-Agent.
		userAgent = fmt.Sprintf("freelo-mcp (%s)", email)
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		email:      email,
		apiKey:     apiKey,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// doRequest builds one authenticated request, dispatches it, and returns
// the raw response body. Non-2xx statuses and transport faults both come
// back as *APIError; no raw transport error ever escapes unwrapped.
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	// Auth and identity always win over caller-supplied headers.
	req.SetBasicAuth(c.email, c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Msg("Freelo API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(resp.Status, data),
		}
	}

	return data, nil
}

// getJSON issues a GET for path and decodes the response into out. No
// schema validation happens; absent optional fields stay at their zero
// values.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.doRequest(ctx, http.MethodGet, path, nil, map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// getBinary issues a GET for path with only the mandatory auth and
// identity headers and returns the body bytes untouched.
func (c *Client) getBinary(ctx context.Context, path string) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil, nil)
}

// errorMessage extracts a human-readable message from a Freelo error
// body: the "message" field first, then "error", then the HTTP status
// line when the body is not JSON at all.
func errorMessage(statusLine string, data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return statusLine
}

// CheckConnection verifies the credentials by listing account users.
// The constructor never dials; this is the explicit probe used by the
// check command.
func (c *Client) CheckConnection(ctx context.Context) error {
	if _, err := c.GetUsers(ctx); err != nil {
		return err
	}

	c.logger.Debug().Msg("Freelo connection verified")
	return nil
}
