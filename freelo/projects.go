package freelo

import (
	"context"
	"fmt"
)

// GetProjects fetches the first page of the account's projects.
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	var resp page[projectsData]
	if err := c.getJSON(ctx, "/projects", &resp); err != nil {
		return nil, err
	}

	return resp.Data.Projects, nil
}

// GetProject fetches a single project by its numeric ID.
func (c *Client) GetProject(ctx context.Context, projectID int64) (*Project, error) {
	var project Project
	if err := c.getJSON(ctx, fmt.Sprintf("/project/%d", projectID), &project); err != nil {
		return nil, err
	}

	return &project, nil
}

// GetProjectTasklists fetches the first page of a project's task lists.
func (c *Client) GetProjectTasklists(ctx context.Context, projectID int64) ([]Tasklist, error) {
	var resp page[tasklistsData]
	if err := c.getJSON(ctx, fmt.Sprintf("/project/%d/tasklists", projectID), &resp); err != nil {
		return nil, err
	}

	return resp.Data.Tasklists, nil
}

// GetTasklistTasks fetches the first page of tasks in a task list.
func (c *Client) GetTasklistTasks(ctx context.Context, projectID, tasklistID int64) ([]Task, error) {
	var resp page[tasksData]
	path := fmt.Sprintf("/project/%d/tasklist/%d/tasks", projectID, tasklistID)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	return resp.Data.Tasks, nil
}
