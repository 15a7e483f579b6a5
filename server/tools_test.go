package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelodev/freelo-mcp/freelo"
)

func TestGetProjectsTool(t *testing.T) {
	api := &fakeAPI{
		getProjects: func(ctx context.Context) ([]freelo.Project, error) {
			return []freelo.Project{
				{ID: 10, Name: "Internal"},
				{ID: 11, Name: "Website Redesign"},
			}, nil
		},
	}
	srv := newTestServer(t, api)

	res, _, err := srv.handleGetProjects(context.Background(), nil, emptyInput{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var projects []freelo.Project
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "Internal", projects[0].Name)
	assert.Equal(t, "Website Redesign", projects[1].Name)
}

func TestGetTasklistTasksToolForwardsIDs(t *testing.T) {
	var gotProject, gotTasklist int64
	api := &fakeAPI{
		getTasklistTasks: func(ctx context.Context, projectID, tasklistID int64) ([]freelo.Task, error) {
			gotProject, gotTasklist = projectID, tasklistID
			return []freelo.Task{{ID: 1, Name: "Write docs"}}, nil
		},
	}
	srv := newTestServer(t, api)

	res, _, err := srv.handleGetTasklistTasks(context.Background(), nil,
		tasklistTasksInput{ProjectID: 10, TasklistID: 55})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, int64(10), gotProject)
	assert.Equal(t, int64(55), gotTasklist)
}

func TestGetTaskStatesTool(t *testing.T) {
	api := &fakeAPI{
		getStates: func(ctx context.Context) ([]freelo.TaskState, error) {
			return []freelo.TaskState{
				{ID: freelo.StateIDActive, State: "active"},
				{ID: freelo.StateIDFinished, State: "finished"},
			}, nil
		},
	}
	srv := newTestServer(t, api)

	res, _, err := srv.handleGetTaskStates(context.Background(), nil, emptyInput{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var states []freelo.TaskState
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &states))
	require.Len(t, states, 2)
	assert.Equal(t, "finished", states[1].State)
}

func TestSearchTasksTool(t *testing.T) {
	api := &fakeAPI{
		getTasklistTasks: func(ctx context.Context, projectID, tasklistID int64) ([]freelo.Task, error) {
			return []freelo.Task{
				{ID: 1, Name: "Write docs", CountComments: 0},
				{ID: 2, Name: "Fix login bug", CountComments: 4},
				{ID: 3, Name: "Update dependencies", CountComments: 2},
			}, nil
		},
	}
	srv := newTestServer(t, api)

	res, _, err := srv.handleSearchTasks(context.Background(), nil, searchTasksInput{
		ProjectID:  10,
		TasklistID: 55,
		Filter:     `CommentCount > 1`,
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var tasks []freelo.Task
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &tasks))
	require.Len(t, tasks, 2)
	// Input order survives filtering.
	assert.Equal(t, int64(2), tasks[0].ID)
	assert.Equal(t, int64(3), tasks[1].ID)
}

func TestSearchTasksToolBadFilterSkipsFetch(t *testing.T) {
	fetched := false
	api := &fakeAPI{
		getTasklistTasks: func(ctx context.Context, projectID, tasklistID int64) ([]freelo.Task, error) {
			fetched = true
			return nil, nil
		},
	}
	srv := newTestServer(t, api)

	res, _, err := srv.handleSearchTasks(context.Background(), nil, searchTasksInput{
		ProjectID:  10,
		TasklistID: 55,
		Filter:     `hasLabel("unclosed`,
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "compilation error")
	assert.False(t, fetched, "a bad expression must not cost a request")
}

func TestSearchTasksToolFetchError(t *testing.T) {
	api := &fakeAPI{
		getTasklistTasks: func(ctx context.Context, projectID, tasklistID int64) ([]freelo.Task, error) {
			return nil, &freelo.APIError{Status: 404, Message: "Tasklist not found"}
		},
	}
	srv := newTestServer(t, api)

	res, _, err := srv.handleSearchTasks(context.Background(), nil, searchTasksInput{
		ProjectID:  10,
		TasklistID: 99,
		Filter:     `true`,
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Tasklist not found")
}
