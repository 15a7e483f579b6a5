package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/freelodev/freelo-mcp/filter"
)

// Tool inputs. The SDK derives each tool's input schema from these.
type (
	emptyInput struct{}

	projectInput struct {
		ProjectID int64 `json:"project_id" jsonschema:"numeric ID of the project"`
	}

	tasklistTasksInput struct {
		ProjectID  int64 `json:"project_id" jsonschema:"numeric ID of the project"`
		TasklistID int64 `json:"tasklist_id" jsonschema:"numeric ID of the task list"`
	}

	taskInput struct {
		TaskID int64 `json:"task_id" jsonschema:"numeric ID of the task"`
	}

	attachmentInput struct {
		AttachmentID int64 `json:"attachment_id" jsonschema:"numeric ID of the attachment"`
	}

	downloadFileInput struct {
		FileUUID string `json:"file_uuid" jsonschema:"UUID of the file, as found in task comments"`
		Filename string `json:"filename,omitempty" jsonschema:"optional name for the saved file; only its base name is used"`
	}

	searchTasksInput struct {
		ProjectID  int64  `json:"project_id" jsonschema:"numeric ID of the project"`
		TasklistID int64  `json:"tasklist_id" jsonschema:"numeric ID of the task list"`
		Filter     string `json:"filter" jsonschema:"boolean filter expression evaluated against each task, e.g. hasLabel(\"urgent\") and not IsFinished"`
	}
)

// registerTools registers every tool on the underlying MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_projects",
		Description: "List the projects visible to the authenticated account (first page only).",
	}, s.handleGetProjects)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_project",
		Description: "Get a single project by its ID.",
	}, s.handleGetProject)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_project_tasklists",
		Description: "List the task lists of a project (first page only).",
	}, s.handleGetProjectTasklists)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_tasklist_tasks",
		Description: "List the tasks in a task list (first page only).",
	}, s.handleGetTasklistTasks)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_task",
		Description: "Get a single task by its ID, including state, assignee, dates and labels.",
	}, s.handleGetTask)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_subtasks",
		Description: "List the subtasks of a task (first page only).",
	}, s.handleGetSubtasks)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_task_comments",
		Description: "List the comments of a task, including attached file UUIDs (first page only).",
	}, s.handleGetTaskComments)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_users",
		Description: "List the users of the account (first page only).",
	}, s.handleGetUsers)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_task_states",
		Description: "List the workflow states tasks move through.",
	}, s.handleGetTaskStates)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "download_file",
		Description: "Download a file by UUID into a temporary directory and return the saved path. An optional filename is kept in the saved name.",
	}, s.handleDownloadFile)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_attachments",
		Description: "Not supported by the Freelo API; always fails with a hint to use get_task_comments.",
	}, s.handleListAttachments)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_attachment",
		Description: "Not supported by the Freelo API; always fails with a hint to download by UUID instead.",
	}, s.handleGetAttachment)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_tasks",
		Description: "Fetch the tasks of a task list (first page only) and keep those matching a filter expression.",
	}, s.handleSearchTasks)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_project_overview",
		Description: "Get a project with all of its task lists and their tasks in one call.",
	}, s.handleGetProjectOverview)
}

func (s *Server) handleGetProjects(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
	projects, err := s.api.GetProjects(ctx)
	if err != nil {
		return s.errorResult("get_projects", err), nil, nil
	}
	return s.jsonResult(projects)
}

func (s *Server) handleGetProject(ctx context.Context, req *mcp.CallToolRequest, in projectInput) (*mcp.CallToolResult, any, error) {
	project, err := s.api.GetProject(ctx, in.ProjectID)
	if err != nil {
		return s.errorResult("get_project", err), nil, nil
	}
	return s.jsonResult(project)
}

func (s *Server) handleGetProjectTasklists(ctx context.Context, req *mcp.CallToolRequest, in projectInput) (*mcp.CallToolResult, any, error) {
	tasklists, err := s.api.GetProjectTasklists(ctx, in.ProjectID)
	if err != nil {
		return s.errorResult("get_project_tasklists", err), nil, nil
	}
	return s.jsonResult(tasklists)
}

func (s *Server) handleGetTasklistTasks(ctx context.Context, req *mcp.CallToolRequest, in tasklistTasksInput) (*mcp.CallToolResult, any, error) {
	tasks, err := s.api.GetTasklistTasks(ctx, in.ProjectID, in.TasklistID)
	if err != nil {
		return s.errorResult("get_tasklist_tasks", err), nil, nil
	}
	return s.jsonResult(tasks)
}

func (s *Server) handleGetTask(ctx context.Context, req *mcp.CallToolRequest, in taskInput) (*mcp.CallToolResult, any, error) {
	task, err := s.api.GetTask(ctx, in.TaskID)
	if err != nil {
		return s.errorResult("get_task", err), nil, nil
	}
	return s.jsonResult(task)
}

func (s *Server) handleGetSubtasks(ctx context.Context, req *mcp.CallToolRequest, in taskInput) (*mcp.CallToolResult, any, error) {
	subtasks, err := s.api.GetSubtasks(ctx, in.TaskID)
	if err != nil {
		return s.errorResult("get_subtasks", err), nil, nil
	}
	return s.jsonResult(subtasks)
}

func (s *Server) handleGetTaskComments(ctx context.Context, req *mcp.CallToolRequest, in taskInput) (*mcp.CallToolResult, any, error) {
	comments, err := s.api.GetTaskComments(ctx, in.TaskID)
	if err != nil {
		return s.errorResult("get_task_comments", err), nil, nil
	}
	return s.jsonResult(comments)
}

func (s *Server) handleGetUsers(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
	users, err := s.api.GetUsers(ctx)
	if err != nil {
		return s.errorResult("get_users", err), nil, nil
	}
	return s.jsonResult(users)
}

func (s *Server) handleGetTaskStates(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
	states, err := s.api.GetStates(ctx)
	if err != nil {
		return s.errorResult("get_task_states", err), nil, nil
	}
	return s.jsonResult(states)
}

func (s *Server) handleListAttachments(ctx context.Context, req *mcp.CallToolRequest, in taskInput) (*mcp.CallToolResult, any, error) {
	files, err := s.api.ListAttachments(ctx, in.TaskID)
	if err != nil {
		return s.errorResult("list_attachments", err), nil, nil
	}
	return s.jsonResult(files)
}

func (s *Server) handleGetAttachment(ctx context.Context, req *mcp.CallToolRequest, in attachmentInput) (*mcp.CallToolResult, any, error) {
	file, err := s.api.GetAttachment(ctx, in.AttachmentID)
	if err != nil {
		return s.errorResult("get_attachment", err), nil, nil
	}
	return s.jsonResult(file)
}

func (s *Server) handleSearchTasks(ctx context.Context, req *mcp.CallToolRequest, in searchTasksInput) (*mcp.CallToolResult, any, error) {
	// Compile first so a bad expression never costs a request.
	taskFilter, err := filter.CompileFilter(in.Filter)
	if err != nil {
		return s.errorResult("search_tasks", err), nil, nil
	}

	tasks, err := s.api.GetTasklistTasks(ctx, in.ProjectID, in.TasklistID)
	if err != nil {
		return s.errorResult("search_tasks", err), nil, nil
	}

	return s.jsonResult(taskFilter.Apply(tasks))
}
