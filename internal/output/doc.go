// Package output renders hook reports for Claude Code.
//
// The default text format is the two-line summary shown in the transcript:
//
//	✓ 1/3 completed | ⟳ 0 in progress | ○ 2 pending
//	📄 /home/dev/.claude/todos/abc-agent-abc.json
//
// The json and yaml formats carry the same fields for scripts.
//
// Example usage:
//
//	printer := output.NewPrinter(os.Stdout, output.FormatText)
//	if err := printer.PrintReport(report); err != nil {
//		return err
//	}
package output
