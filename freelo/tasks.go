package freelo

import (
	"context"
	"fmt"
)

// GetTask fetches a single task by its numeric ID. The ID is not
// validated beyond its type; a nonexistent one surfaces as the remote
// "not found" failure.
func (c *Client) GetTask(ctx context.Context, taskID int64) (*Task, error) {
	var task Task
	if err := c.getJSON(ctx, fmt.Sprintf("/task/%d", taskID), &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// GetSubtasks fetches the first page of a task's subtasks. The
// pagination envelope is discarded; later pages are never requested.
func (c *Client) GetSubtasks(ctx context.Context, taskID int64) ([]Subtask, error) {
	var resp page[subtasksData]
	if err := c.getJSON(ctx, fmt.Sprintf("/task/%d/subtasks", taskID), &resp); err != nil {
		return nil, err
	}

	return resp.Data.Subtasks, nil
}

// GetTaskComments fetches the first page of a task's comments. Attached
// file UUIDs ride along inside each comment.
func (c *Client) GetTaskComments(ctx context.Context, taskID int64) ([]Comment, error) {
	var resp page[commentsData]
	if err := c.getJSON(ctx, fmt.Sprintf("/task/%d/comments", taskID), &resp); err != nil {
		return nil, err
	}

	return resp.Data.Comments, nil
}
