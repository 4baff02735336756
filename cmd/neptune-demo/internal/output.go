package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/monejava/neptune-demo/internal/demo"
	"github.com/monejava/neptune-demo/internal/types"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatText is human-readable text output
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates an --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", NewCLIError(ExitError, fmt.Sprintf("invalid output format %q (valid: text, json)", s))
	}
}

// Formatter prints command results.
type Formatter interface {
	// PrintReport prints the outcome of a demo run
	PrintReport(report *demo.Report) error
	// PrintJSON prints arbitrary data as JSON
	PrintJSON(data interface{}) error
}

// NewFormatter returns the formatter for format writing to w.
func NewFormatter(format OutputFormat, w io.Writer) Formatter {
	if format == FormatJSON {
		return NewJSONFormatter(w)
	}
	return NewTextFormatter(w)
}

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF9900")).
	PaddingBottom(1)

// TextFormatter implements Formatter for human-readable text output
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new TextFormatter writing to the given writer
func NewTextFormatter(w io.Writer) *TextFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &TextFormatter{writer: w}
}

// PrintReport prints a styled summary with one line per step.
func (f *TextFormatter) PrintReport(report *demo.Report) error {
	if _, err := fmt.Fprintln(f.writer, titleStyle.Render(report.Demo.Title()+" · "+report.Endpoint)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "STEP\tSTATUS\tROWS\tDURATION"); err != nil {
		return err
	}
	for _, s := range report.Steps {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Name, statusColor(s.Status).Sprint(s.Status), s.Rows, formatDuration(s)); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(f.writer)
	fmt.Fprintf(f.writer, "Health:   %s %s\n", healthColor(report.Health.State).Sprint(report.Health.State), report.Health.Message)
	fmt.Fprintf(f.writer, "Run ID:   %s\n", report.RunID)

	if report.Success {
		_, err := fmt.Fprintf(f.writer, "%s %s completed in %s\n",
			color.New(color.FgGreen).Sprint("✓"), report.Demo.Title(), roundDuration(report.Duration))
		return err
	}
	_, err := fmt.Fprintf(f.writer, "%s %s failed: %s\n",
		color.New(color.FgRed, color.Bold).Sprint("✗"), report.Demo.Title(), report.Error)
	return err
}

// PrintJSON prints data as indented JSON.
func (f *TextFormatter) PrintJSON(data interface{}) error {
	return writeJSON(f.writer, data)
}

// JSONFormatter implements Formatter for structured JSON output
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSONFormatter writing to the given writer
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

// PrintReport prints the report as JSON.
func (f *JSONFormatter) PrintReport(report *demo.Report) error {
	return writeJSON(f.writer, report)
}

// PrintJSON prints data as indented JSON.
func (f *JSONFormatter) PrintJSON(data interface{}) error {
	return writeJSON(f.writer, data)
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// statusColor returns the color of a step status
func statusColor(status demo.StepStatus) *color.Color {
	switch status {
	case demo.StepStatusOK:
		return color.New(color.FgGreen)
	case demo.StepStatusWarning:
		return color.New(color.FgYellow)
	case demo.StepStatusFailed:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func healthColor(state types.HealthState) *color.Color {
	switch state {
	case types.HealthStateHealthy:
		return color.New(color.FgGreen)
	case types.HealthStateDegraded:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func formatDuration(s demo.StepResult) string {
	if s.Status == demo.StepStatusSkipped {
		return "-"
	}
	return roundDuration(s.Duration)
}

func roundDuration(d demo.Duration) string {
	return time.Duration(d).Round(time.Millisecond).String()
}
