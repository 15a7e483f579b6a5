// Package freelo provides a read-only client for the Freelo project
// management API (https://api.freelo.io/v1).
//
// Freelo is a project management service built around projects, task
// lists, tasks and comments. This package implements the small slice of
// its REST API that freelo-mcp exposes to AI assistant hosts: fetching
// single resources, fetching the first page of nested collections, and
// downloading files by UUID.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the credential-bound request executor that attaches
//     authentication to every request and classifies outcomes
//   - Accessors: typed operations (GetTask, GetSubtasks, DownloadFile, ...)
//     layered on the executor, one per endpoint shape
//   - Types: domain models for tasks, subtasks, comments, files, projects,
//     task lists, users and task states
//   - Errors: a single message-bearing failure kind for remote and
//     transport faults alike, plus sentinels for unsupported operations
//
// # Usage
//
// Create a client with the account email and API key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := freelo.NewClient("you@example.com", "your-api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	task, err := client.GetTask(ctx, 12345)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Construction validates the credentials but performs no network I/O; a
// wrong key surfaces on the first request, a blank one immediately.
//
// # Authentication
//
// Every request carries HTTP Basic authentication (email:api_key) and a
// descriptive User-Agent embedding the account email, as Freelo's API
// terms require. Neither header can be overridden by callers.
//
// # Pagination
//
// Collection endpoints wrap their results in an envelope carrying
// total/count/page/per_page metadata. Accessors unwrap the envelope and
// return only the first page's items; no further pages are fetched. This
// is deliberate - callers depend on first-page-only behavior.
//
// # Error Handling
//
// Non-2xx responses and network faults are both raised as *APIError with
// a fixed "freelo API error" prefix, so the two are indistinguishable
// except by message text. The message comes from the response body's
// "message" field, then its "error" field, then the HTTP status line.
//
// Two operations, ListAttachments and GetAttachment, fail unconditionally:
// the upstream API has no attachment listing and no numeric attachment
// IDs. File UUIDs surface in task comments and feed DownloadFile.
package freelo
