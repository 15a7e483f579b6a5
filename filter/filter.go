// Package filter compiles boolean expressions into executable task
// filters using the expr language. Filters run entirely client-side
// against tasks already fetched from the API.
package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/freelodev/freelo-mcp/freelo"
)

// TaskFilter is a compiled filter expression ready for evaluation.
// It is safe for concurrent use.
type TaskFilter struct {
	expression string
	program    *vm.Program
}

// CompileFilter compiles an expression into an executable filter.
func CompileFilter(expression string) (*TaskFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Compile with static environment for validation
	program, err := expr.Compile(expression,
		expr.Env(createHelperFunctions()),
		expr.AllowUndefinedVariables(), // Allow task properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &TaskFilter{
		expression: expression,
		program:    program,
	}, nil
}

// Evaluate evaluates the filter against a task. Tasks that make the
// expression fail at runtime are treated as non-matching.
func (f *TaskFilter) Evaluate(task freelo.Task) bool {
	env := createRuntimeEnvironment(task)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Apply evaluates the filter against every task and returns the
// matches, preserving input order.
func (f *TaskFilter) Apply(tasks []freelo.Task) []freelo.Task {
	matches := make([]freelo.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Evaluate(task) {
			matches = append(matches, task)
		}
	}
	return matches
}

// Expression returns the original expression
func (f *TaskFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers. contains, startsWith and endsWith are expr operator
	// keywords, so substring matching uses the operator forms; those are
	// case-sensitive, and lower() covers the case-insensitive variants.
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(task freelo.Task) map[string]any {
	env := make(map[string]any, 48)

	// Add helper functions
	addHelperFunctions(env)

	// Add task data
	env["Task"] = task

	// Add task-specific helper functions using closures
	env["hasLabel"] = createHasLabelFunc(task.Labels)
	env["assignedTo"] = createAssignedToFunc(task.Worker)
	env["authoredBy"] = createAuthoredByFunc(task.Author)
	env["inState"] = createInStateFunc(task.State)

	due := parseTaskDate(task.DueDate)
	env["dueBefore"] = createDueCompareFunc(due, true)
	env["dueAfter"] = createDueCompareFunc(due, false)

	// Direct task properties for convenience
	env["ID"] = task.ID
	env["Name"] = task.Name
	env["Labels"] = labelNames(task.Labels)
	env["CommentCount"] = task.CountComments
	env["SubtaskCount"] = task.CountSubtasks
	env["HasWorker"] = task.HasWorker()
	env["IsFinished"] = task.IsFinished()
	env["HasDueDate"] = !due.IsZero()
	env["DueDate"] = due
	env["Added"] = parseTaskDate(task.DateAdd)

	env["WorkerID"], env["WorkerName"] = userRefFields(task.Worker)
	env["AuthorID"], env["AuthorName"] = userRefFields(task.Author)

	if task.State != nil {
		env["StateID"] = task.State.ID
		env["StateName"] = task.State.State
	} else {
		env["StateID"] = int64(0)
		env["StateName"] = ""
	}
	if task.Project != nil {
		env["ProjectID"] = task.Project.ID
		env["ProjectName"] = task.Project.Name
	} else {
		env["ProjectID"] = int64(0)
		env["ProjectName"] = ""
	}
	if task.Tasklist != nil {
		env["TasklistID"] = task.Tasklist.ID
		env["TasklistName"] = task.Tasklist.Name
	} else {
		env["TasklistID"] = int64(0)
		env["TasklistName"] = ""
	}

	return env
}

// Helper factory functions using closures

func createHasLabelFunc(labels []freelo.Label) func(string) bool {
	// Pre-convert to lowercase for case-insensitive comparison
	lowerNames := make([]string, len(labels))
	for i, label := range labels {
		lowerNames[i] = strings.ToLower(label.Name)
	}
	return func(name string) bool {
		return slices.Contains(lowerNames, strings.ToLower(name))
	}
}

func createAssignedToFunc(worker *freelo.UserRef) func(string) bool {
	return func(name string) bool {
		return worker != nil && strings.EqualFold(worker.Fullname, name)
	}
}

func createAuthoredByFunc(author *freelo.UserRef) func(string) bool {
	return func(name string) bool {
		return author != nil && strings.EqualFold(author.Fullname, name)
	}
}

func createInStateFunc(state *freelo.StateRef) func(string) bool {
	return func(name string) bool {
		return state != nil && strings.EqualFold(state.State, name)
	}
}

func createDueCompareFunc(due time.Time, before bool) func(time.Time) bool {
	return func(date time.Time) bool {
		if due.IsZero() {
			return false
		}
		if before {
			return due.Before(date)
		}
		return due.After(date)
	}
}

func userRefFields(ref *freelo.UserRef) (int64, string) {
	if ref == nil {
		return 0, ""
	}
	return ref.ID, ref.Fullname
}

func labelNames(labels []freelo.Label) []string {
	names := make([]string, len(labels))
	for i, label := range labels {
		names[i] = label.Name
	}
	return names
}

// parseTaskDate parses the date strings Freelo emits. The API mixes full
// ISO 8601 timestamps with bare dates; anything unparseable evaluates as
// the zero time.
func parseTaskDate(s *string) time.Time {
	if s == nil {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return t
		}
	}
	return time.Time{}
}
