package freelo

import (
	"context"
)

// API defines the read-only accessor surface the tool layer consumes.
// *Client implements it; tests substitute fakes.
type API interface {
	// CheckConnection verifies the client can reach Freelo with its
	// credentials.
	CheckConnection(ctx context.Context) error

	// GetProjects fetches the first page of projects.
	GetProjects(ctx context.Context) ([]Project, error)

	// GetProject fetches a single project by ID.
	GetProject(ctx context.Context, projectID int64) (*Project, error)

	// GetProjectTasklists fetches the first page of a project's task lists.
	GetProjectTasklists(ctx context.Context, projectID int64) ([]Tasklist, error)

	// GetTasklistTasks fetches the first page of tasks in a task list.
	GetTasklistTasks(ctx context.Context, projectID, tasklistID int64) ([]Task, error)

	// GetTask fetches a single task by ID.
	GetTask(ctx context.Context, taskID int64) (*Task, error)

	// GetSubtasks fetches the first page of a task's subtasks.
	GetSubtasks(ctx context.Context, taskID int64) ([]Subtask, error)

	// GetTaskComments fetches the first page of a task's comments.
	GetTaskComments(ctx context.Context, taskID int64) ([]Comment, error)

	// GetUsers fetches the first page of account users.
	GetUsers(ctx context.Context) ([]User, error)

	// GetStates fetches the task workflow states.
	GetStates(ctx context.Context) ([]TaskState, error)

	// DownloadFile fetches a file's raw bytes by UUID.
	DownloadFile(ctx context.Context, fileUUID string) ([]byte, error)

	// ListAttachments always fails; Freelo has no such endpoint.
	ListAttachments(ctx context.Context, taskID int64) ([]File, error)

	// GetAttachment always fails; Freelo has no numeric attachment IDs.
	GetAttachment(ctx context.Context, attachmentID int64) (*File, error)
}

var _ API = (*Client)(nil)
