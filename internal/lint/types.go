// Package lint holds the issue model shared by configuration and content checks
// together with the text and JSON reporters.
package lint

import "sort"

// Severity indicates the importance level of an issue.
type Severity int

const (
	// SeverityInfo indicates informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues the external generator tolerates but that should be fixed.
	SeverityWarning
	// SeverityError indicates issues that make the configuration structurally invalid.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a single problem found in a configuration record.
type Issue struct {
	Field    string   // Dotted path in generator terms, e.g. "themeConfig.nav[0].link"
	Severity Severity // Issue severity level
	Rule     string   // Rule identifier (e.g., "nav-link")
	Message  string   // Brief description of the issue
	Fix      string   // Suggested fix
}

// Result contains all issues found by a validation pass.
type Result struct {
	Issues []Issue
}

// Add appends issues to the result.
func (r *Result) Add(issues ...Issue) {
	r.Issues = append(r.Issues, issues...)
}

// Merge appends every issue of other.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	return r.count(SeverityError) > 0
}

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool {
	return r.count(SeverityWarning) > 0
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Errors returns only the error-level issues.
func (r *Result) Errors() []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

// ByRule returns issues produced by the named rule.
func (r *Result) ByRule(rule string) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Rule == rule {
			out = append(out, issue)
		}
	}
	return out
}

// Sort orders issues by severity (errors first) and then by field, keeping
// rule order stable for equal fields.
func (r *Result) Sort() {
	sort.SliceStable(r.Issues, func(i, j int) bool {
		a, b := r.Issues[i], r.Issues[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		return a.Field < b.Field
	})
}

// Rule checks one aspect of a value of type T.
type Rule[T any] interface {
	// Name returns the unique identifier for this rule.
	Name() string
	// Check returns any issues found.
	Check(v T) []Issue
}

// RuleFunc adapts a function into a Rule.
type RuleFunc[T any] struct {
	ID string
	Fn func(T) []Issue
}

// Name returns the rule identifier.
func (f RuleFunc[T]) Name() string { return f.ID }

// Check runs the wrapped function.
func (f RuleFunc[T]) Check(v T) []Issue { return f.Fn(v) }

// Run applies every rule to v and collects the issues.
func Run[T any](v T, rules ...Rule[T]) *Result {
	res := &Result{}
	for _, rule := range rules {
		res.Add(rule.Check(v)...)
	}
	return res
}
