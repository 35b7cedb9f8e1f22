package render

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff from old to updated, labelled with name.
func Diff(name string, old, updated []byte) string {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(old)),
		B:        difflib.SplitLines(string(updated)),
		FromFile: name + " (current)",
		ToFile:   name + " (rendered)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return err.Error()
	}
	return text
}
