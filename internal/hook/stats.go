package hook

import (
	"path/filepath"
)

// Summary holds the status counts of a todo list.
// Completed+InProgress+Pending never exceeds Total; items with any other
// status only count towards Total.
type Summary struct {
	Total      int `json:"total" yaml:"total"`
	Completed  int `json:"completed" yaml:"completed"`
	InProgress int `json:"in_progress" yaml:"in_progress"`
	Pending    int `json:"pending" yaml:"pending"`
}

// Tally counts todos by status. Matching is exact.
func Tally(todos []TodoItem) Summary {
	s := Summary{Total: len(todos)}
	for _, todo := range todos {
		switch todo.Status {
		case StatusCompleted:
			s.Completed++
		case StatusInProgress:
			s.InProgress++
		case StatusPending:
			s.Pending++
		}
	}
	return s
}

// TodoPath returns where Claude Code keeps the todo list of a session.
// The session id is opaque and is appended as is, never cleaned.
func TodoPath(home, sessionID string) string {
	dir := filepath.Join(home, ".claude", "todos")
	return dir + string(filepath.Separator) + sessionID + "-agent-" + sessionID + ".json"
}
