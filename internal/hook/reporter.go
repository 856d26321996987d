// Package hook implements the TodoWrite PostToolUse hook: it decodes the
// event Claude Code sends on stdin and summarizes the todo list it carries.
package hook

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Report is what gets printed for a TodoWrite event
type Report struct {
	Summary `yaml:",inline"`
	Path    string `json:"path" yaml:"path"`
}

// Reporter turns hook input into a Report
type Reporter struct {
	homeDir string
	logger  *zap.Logger
}

// NewReporter creates a Reporter resolving todo paths under homeDir.
// A nil logger disables logging.
func NewReporter(homeDir string, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{
		homeDir: homeDir,
		logger:  logger,
	}
}

// Handle reads a single event from r. It returns a nil Report when the event
// is not a TodoWrite invocation.
func (r *Reporter) Handle(in io.Reader) (*Report, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read hook input: %w", err)
	}

	r.logger.Debug("Hook input received", zap.Int("input_size", len(data)))

	event, err := Decode(data)
	if err != nil {
		r.logger.Error("Failed to parse hook data JSON", zap.Error(err))
		return nil, err
	}

	if !event.Applies() {
		r.logger.Debug("Skipping event", zap.String("tool_name", event.ToolName))
		return nil, nil
	}

	report := &Report{
		Summary: Tally(event.ToolInput.Todos),
		Path:    TodoPath(r.homeDir, event.SessionID),
	}

	r.logger.Info("Task progress summary",
		zap.String("session_id", event.SessionID),
		zap.Int("total_tasks", report.Total),
		zap.Int("completed", report.Completed),
		zap.Int("in_progress", report.InProgress),
		zap.Int("pending", report.Pending),
	)

	return report, nil
}
