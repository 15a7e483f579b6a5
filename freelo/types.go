package freelo

// Task state IDs used by Freelo.
const (
	StateIDActive   = 1
	StateIDFinished = 2
	StateIDArchived = 5
)

// UserRef is the partial user record Freelo nests inside other resources
// (task author, worker, comment author, project owner).
type UserRef struct {
	ID       int64  `json:"id"`
	Fullname string `json:"fullname"`
}

// StateRef is the workflow state nested inside tasks and projects.
type StateRef struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
}

// ProjectRef is the partial project record nested inside tasks.
type ProjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TasklistRef is the partial task list record nested inside tasks.
type TasklistRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Label is a colored label attached to a task.
type Label struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Task represents a Freelo task. Dates are kept as the API's ISO 8601
// strings; optional fields are pointers and stay nil when absent.
type Task struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	DateAdd       *string      `json:"date_add,omitempty"`
	DateEdited    *string      `json:"date_edited_at,omitempty"`
	DueDate       *string      `json:"due_date,omitempty"`
	DueDateEnd    *string      `json:"due_date_end,omitempty"`
	CountComments int          `json:"count_comments"`
	CountSubtasks int          `json:"count_subtasks"`
	Author        *UserRef     `json:"author,omitempty"`
	Worker        *UserRef     `json:"worker,omitempty"`
	State         *StateRef    `json:"state,omitempty"`
	Project       *ProjectRef  `json:"project,omitempty"`
	Tasklist      *TasklistRef `json:"tasklist,omitempty"`
	Labels        []Label      `json:"labels,omitempty"`
	Comments      []Comment    `json:"comments,omitempty"`
}

// HasWorker reports whether the task is assigned to anyone.
func (t *Task) HasWorker() bool {
	return t.Worker != nil && t.Worker.ID != 0
}

// IsFinished reports whether the task's state is the finished state.
func (t *Task) IsFinished() bool {
	return t.State != nil && t.State.ID == StateIDFinished
}

// Subtask represents a checklist item under a task.
type Subtask struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	DateAdd *string   `json:"date_add,omitempty"`
	DueDate *string   `json:"due_date,omitempty"`
	Worker  *UserRef  `json:"worker,omitempty"`
	State   *StateRef `json:"state,omitempty"`
}

// Comment represents a task comment. Attached files carry the UUIDs that
// feed DownloadFile; there is no other way to discover them.
type Comment struct {
	ID      int64    `json:"id"`
	Content string   `json:"content"`
	DateAdd *string  `json:"date_add,omitempty"`
	Author  *UserRef `json:"author,omitempty"`
	Files   []File   `json:"files,omitempty"`
}

// File describes a file attached to a comment. The UUID is the only
// handle the API accepts for downloads.
type File struct {
	UUID     string  `json:"uuid"`
	Name     string  `json:"name"`
	Size     int64   `json:"size,omitempty"`
	MimeType *string `json:"mime_type,omitempty"`
	DateAdd  *string `json:"date_add,omitempty"`
}

// Project represents a Freelo project.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateAdd     *string   `json:"date_add,omitempty"`
	CurrencyISO *string   `json:"currency_iso,omitempty"`
	Owner       *UserRef  `json:"owner,omitempty"`
	State       *StateRef `json:"state,omitempty"`
}

// Tasklist represents a task list within a project.
type Tasklist struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Budget  *string   `json:"budget,omitempty"`
	DateAdd *string   `json:"date_add,omitempty"`
	State   *StateRef `json:"state,omitempty"`
}

// User represents an account member.
type User struct {
	ID       int64  `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email,omitempty"`
}

// DisplayName returns the best available name for the user.
func (u *User) DisplayName() string {
	if u.Fullname != "" {
		return u.Fullname
	}
	return u.Email
}

// TaskState represents one of the workflow states tasks move through.
type TaskState struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
}

// page is the Freelo pagination envelope. Accessors unwrap it and return
// only the inner collection; the metadata is discarded and no further
// pages are requested.
type page[T any] struct {
	Total   int `json:"total"`
	Count   int `json:"count"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Data    T   `json:"data"`
}

// Inner data objects keyed by collection name, one per paginated endpoint.
type (
	subtasksData struct {
		Subtasks []Subtask `json:"subtasks"`
	}
	commentsData struct {
		Comments []Comment `json:"comments"`
	}
	projectsData struct {
		Projects []Project `json:"projects"`
	}
	tasklistsData struct {
		Tasklists []Tasklist `json:"tasklists"`
	}
	tasksData struct {
		Tasks []Task `json:"tasks"`
	}
	usersData struct {
		Users []User `json:"users"`
	}
	statesData struct {
		States []TaskState `json:"states"`
	}
)
