package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/freelodev/freelo-mcp/freelo"
)

// overviewConcurrency caps the parallel task requests per overview call.
const overviewConcurrency = 4

// ProjectOverview is the aggregate returned by get_project_overview.
type ProjectOverview struct {
	Project   freelo.Project  `json:"project"`
	Tasklists []TasklistTasks `json:"tasklists"`
}

// TasklistTasks pairs a task list with its first page of tasks.
type TasklistTasks struct {
	Tasklist freelo.Tasklist `json:"tasklist"`
	Tasks    []freelo.Task   `json:"tasks"`
}

func (s *Server) handleGetProjectOverview(ctx context.Context, req *mcp.CallToolRequest, in projectInput) (*mcp.CallToolResult, any, error) {
	overview, err := s.buildProjectOverview(ctx, in.ProjectID)
	if err != nil {
		return s.errorResult("get_project_overview", err), nil, nil
	}
	return s.jsonResult(overview)
}

// buildProjectOverview assembles a project with its task lists and their
// tasks: one project request, one tasklists request, then one tasks
// request per task list with bounded concurrency. Results keep the
// task list order the API returned.
func (s *Server) buildProjectOverview(ctx context.Context, projectID int64) (*ProjectOverview, error) {
	project, err := s.api.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasklists, err := s.api.GetProjectTasklists(ctx, projectID)
	if err != nil {
		return nil, err
	}

	overview := &ProjectOverview{
		Project:   *project,
		Tasklists: make([]TasklistTasks, len(tasklists)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(overviewConcurrency)

	for i, tasklist := range tasklists {
		g.Go(func() error {
			tasks, err := s.api.GetTasklistTasks(ctx, projectID, tasklist.ID)
			if err != nil {
				return err
			}
			// Each goroutine owns its slot, so no lock is needed.
			overview.Tasklists[i] = TasklistTasks{Tasklist: tasklist, Tasks: tasks}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}
