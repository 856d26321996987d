package hook

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed")
}

func TestReporterHandle(t *testing.T) {
	home := t.TempDir()
	reporter := NewReporter(home, nil)

	t.Run("TodoWrite event", func(t *testing.T) {
		input := `{"tool_name":"TodoWrite","session_id":"abc","tool_input":{"todos":[{"status":"completed"},{"status":"pending"},{"status":"pending"}]}}`

		report, err := reporter.Handle(strings.NewReader(input))
		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, Summary{Total: 3, Completed: 1, Pending: 2}, report.Summary)
		assert.Equal(t, filepath.Join(home, ".claude", "todos", "abc-agent-abc.json"), report.Path)
	})

	t.Run("missing todos and session", func(t *testing.T) {
		report, err := reporter.Handle(strings.NewReader(`{"tool_name":"TodoWrite","tool_input":{}}`))
		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, Summary{}, report.Summary)
		assert.Equal(t, filepath.Join(home, ".claude", "todos", "-agent-.json"), report.Path)
	})

	t.Run("other tool is skipped", func(t *testing.T) {
		report, err := reporter.Handle(strings.NewReader(`{"tool_name":"Other"}`))
		require.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("malformed input", func(t *testing.T) {
		report, err := reporter.Handle(strings.NewReader("not json"))
		assert.Nil(t, report)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
	})

	t.Run("read failure is not a parse error", func(t *testing.T) {
		report, err := reporter.Handle(failingReader{})
		assert.Nil(t, report)
		require.Error(t, err)

		var parseErr *ParseError
		assert.False(t, errors.As(err, &parseErr))
		assert.Contains(t, err.Error(), "stdin closed")
	})
}

func TestReporterLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reporter := NewReporter(t.TempDir(), zap.New(core))

	_, err := reporter.Handle(strings.NewReader(`{"tool_name":"TodoWrite","session_id":"s1","tool_input":{"todos":[{"status":"in_progress"}]}}`))
	require.NoError(t, err)

	entries := logs.FilterMessage("Task progress summary").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "s1", fields["session_id"])
	assert.EqualValues(t, 1, fields["in_progress"])

	_, err = reporter.Handle(strings.NewReader("{"))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Failed to parse hook data JSON").Len())
}
