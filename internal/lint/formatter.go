package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats validation results for output.
type Formatter interface {
	Format(w io.Writer, result *Result, source string) error
}

// NewFormatter returns the formatter for the named output format ("text" or "json").
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// NewTextFormatter creates a text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result, source string) error {
	p := &printer{w: w}
	p.printf("Validating site configuration: %s\n", source)
	p.println(strings.Repeat("━", 60))

	for _, issue := range result.Issues {
		f.formatIssue(p, issue)
	}
	if len(result.Issues) > 0 {
		p.println(strings.Repeat("━", 60))
	}

	errorCount := result.ErrorCount()
	warningCount := result.WarningCount()
	if errorCount > 0 {
		p.printf("  %d error%s\n", errorCount, pluralize(errorCount))
	}
	if warningCount > 0 {
		p.printf("  %d warning%s\n", warningCount, pluralize(warningCount))
	}

	switch {
	case result.HasErrors():
		p.println("Configuration is invalid.")
	case result.HasWarnings():
		p.println("Configuration is valid with warnings.")
	default:
		p.println("Configuration is valid.")
	}
	return p.err
}

func (f *TextFormatter) formatIssue(p *printer, issue Issue) {
	var icon string
	switch issue.Severity {
	case SeverityError:
		icon = "✗"
	case SeverityWarning:
		icon = "⚠"
	default:
		icon = "ℹ"
	}

	p.printf("%s %s [%s]\n", icon, issue.Field, issue.Rule)
	p.printf("  %s: %s\n", issue.Severity, issue.Message)
	if issue.Fix != "" {
		p.printf("  Fix: %s\n", issue.Fix)
	}
	p.println()
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Source       string      `json:"source"`
	Valid        bool        `json:"valid"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	Field    string `json:"field"`
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result, source string) error {
	out := JSONOutput{
		Source:       source,
		Valid:        !result.HasErrors(),
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		out.Issues = append(out.Issues, JSONIssue{
			Field:    issue.Field,
			Severity: strings.ToLower(issue.Severity.String()),
			Rule:     issue.Rule,
			Message:  issue.Message,
			Fix:      issue.Fix,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// printer remembers the first write error so formatting code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
