package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Backland-Labs/todo-stats/internal/hook"
)

// Format selects how a report is rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in help order
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of: text, json, yaml)", s)
}

// Printer writes reports to out
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a printer for the given format
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{
		out:    out,
		format: format,
	}
}

// PrintReport renders report. A nil report prints nothing.
func (p *Printer) PrintReport(report *hook.Report) error {
	if report == nil {
		return nil
	}

	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetEscapeHTML(false)
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(p.out)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	default:
		return p.printText(report)
	}
}

func (p *Printer) printText(report *hook.Report) error {
	if _, err := fmt.Fprintf(p.out, "✓ %d/%d completed | ⟳ %d in progress | ○ %d pending\n",
		report.Completed, report.Total, report.InProgress, report.Pending); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.out, "📄 %s\n", report.Path)
	return err
}
