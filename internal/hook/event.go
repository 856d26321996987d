package hook

import (
	"encoding/json"
)

// TodoWriteTool is the tool name whose invocations are reported on
const TodoWriteTool = "TodoWrite"

// Status values counted by Tally
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in_progress"
	StatusPending    = "pending"
)

// Event is the hook payload Claude Code writes to stdin.
// All fields are optional; missing ones decode to their zero value.
type Event struct {
	HookEventName string
	ToolName      string
	ToolInput     ToolInput
	SessionID     string
}

// ToolInput holds the TodoWrite arguments
type ToolInput struct {
	Todos []TodoItem
}

// TodoItem is a single entry of a TodoWrite list
type TodoItem struct {
	Content    string
	Status     string
	ActiveForm string
}

// hookData is the wire form. Fields other than tool_name stay raw until the
// event is known to be a TodoWrite call.
type hookData struct {
	HookEventName json.RawMessage `json:"hook_event_name"`
	ToolName      json.RawMessage `json:"tool_name"`
	ToolInput     json.RawMessage `json:"tool_input"`
	SessionID     json.RawMessage `json:"session_id"`
}

type todoWriteInput struct {
	Todos json.RawMessage `json:"todos"`
}

type todoData struct {
	Content    json.RawMessage `json:"content"`
	Status     json.RawMessage `json:"status"`
	ActiveForm json.RawMessage `json:"activeForm"`
}

// ParseError reports hook input that could not be decoded
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "Invalid JSON input: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Decode parses a hook event. Only malformed JSON, empty input and documents
// that are not an object are reported as *ParseError. Fields of an
// unexpected type are treated as missing.
func Decode(data []byte) (*Event, error) {
	var raw hookData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	event := &Event{
		HookEventName: stringField(raw.HookEventName),
		ToolName:      stringField(raw.ToolName),
	}
	if !event.Applies() {
		return event, nil
	}

	event.SessionID = stringField(raw.SessionID)
	event.ToolInput = decodeToolInput(raw.ToolInput)
	return event, nil
}

// Applies reports whether the event is a TodoWrite invocation
func (e *Event) Applies() bool {
	return e.ToolName == TodoWriteTool
}

func decodeToolInput(raw json.RawMessage) ToolInput {
	var input todoWriteInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return ToolInput{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(input.Todos, &items); err != nil {
		return ToolInput{}
	}

	todos := make([]TodoItem, 0, len(items))
	for _, item := range items {
		var todo todoData
		// a non-object entry still counts towards the total
		_ = json.Unmarshal(item, &todo)
		todos = append(todos, TodoItem{
			Content:    stringField(todo.Content),
			Status:     stringField(todo.Status),
			ActiveForm: stringField(todo.ActiveForm),
		})
	}
	return ToolInput{Todos: todos}
}

// stringField returns raw as a string, or "" when it is absent or not a string
func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
