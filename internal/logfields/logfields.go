package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyTarget   = "target"
	KeyPlugin   = "plugin"
	KeyField    = "field"
	KeyRule     = "rule"
	KeyURL      = "url"
	KeyBranch   = "branch"
	KeyCount    = "count"
	KeyError    = "error"
	KeySnapshot = "snapshot"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Target(t string) slog.Attr    { return slog.String(KeyTarget, t) }
func Plugin(name string) slog.Attr { return slog.String(KeyPlugin, name) }
func Field(f string) slog.Attr     { return slog.String(KeyField, f) }
func Rule(r string) slog.Attr      { return slog.String(KeyRule, r) }
func URL(u string) slog.Attr       { return slog.String(KeyURL, u) }
func Branch(b string) slog.Attr    { return slog.String(KeyBranch, b) }
func Count(n int) slog.Attr        { return slog.Int(KeyCount, n) }
func Snapshot(s string) slog.Attr  { return slog.String(KeySnapshot, s) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
