package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Backland-Labs/todo-stats/internal/config"
	"github.com/Backland-Labs/todo-stats/internal/hook"
	"github.com/Backland-Labs/todo-stats/internal/logger"
	"github.com/Backland-Labs/todo-stats/internal/output"
)

const version = "0.1.0"

// Execute runs the CLI
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	var showVersion bool
	var format string

	cmd := &cobra.Command{
		Use:   "todo-stats",
		Short: "todo-stats - TodoWrite progress hook for Claude Code",
		Long: `todo-stats - TodoWrite progress hook for Claude Code

Reads a PostToolUse hook event from stdin. For TodoWrite events it prints
how many todos are completed, in progress and pending, followed by the
path of the session's todo file. Other events are ignored.

Example settings.json entry:
  "PostToolUse": [{"matcher": "TodoWrite", "hooks": [{"type": "command", "command": "todo-stats"}]}]`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "todo-stats version "+version)
				return err
			}

			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			return runHook(cmd, config.New(), f)
		},
	}

	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	cmd.Flags().StringVar(&format, "format", string(output.FormatText), "Output format: text, json or yaml")

	return cmd
}

// runHook reads the event from the command's stdin and prints the report
func runHook(cmd *cobra.Command, cfg *config.Config, format output.Format) error {
	log := logger.New(cfg, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	log.Debug("Hook execution started", zap.String("format", string(format)))

	report, err := hook.NewReporter(cfg.HomeDir, log).Handle(cmd.InOrStdin())
	if err != nil {
		return err
	}

	return output.NewPrinter(cmd.OutOrStdout(), format).PrintReport(report)
}
