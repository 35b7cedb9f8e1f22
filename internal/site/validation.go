package site

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/lint"
	"git.home.luguber.info/inful/sitecfg/internal/plugin"
)

// Rule identifiers reported by Validate.
const (
	RuleSiteTitle       = "site-title"
	RuleNavLabel        = "nav-label"
	RuleNavLink         = "nav-link"
	RuleSidebarPath     = "sidebar-path"
	RuleSidebarGroup    = "sidebar-group"
	RulePluginDuplicate = "plugin-duplicate"
	RulePluginUnknown   = "plugin-unknown"
	RulePluginOptions   = "plugin-options"
	RuleRepoURL         = "repo-url"
	RuleDocsDir         = "docs-dir"
)

var repoShorthand = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// Validate runs the structural rules against cfg. It never mutates cfg.
func Validate(cfg *Config) *lint.Result {
	res := lint.Run(cfg, Rules()...)
	res.Sort()
	return res
}

// Rules returns the structural rule groups in evaluation order. Each group
// reports issues under the finer-grained Rule* identifiers.
func Rules() []lint.Rule[*Config] {
	return []lint.Rule[*Config]{
		lint.RuleFunc[*Config]{ID: "site", Fn: checkTitle},
		lint.RuleFunc[*Config]{ID: "nav", Fn: func(c *Config) []lint.Issue { return checkNav(c.Theme.Nav, "themeConfig.nav") }},
		lint.RuleFunc[*Config]{ID: "sidebar", Fn: func(c *Config) []lint.Issue { return checkSidebar(c.Theme.Sidebar, "themeConfig.sidebar") }},
		lint.RuleFunc[*Config]{ID: "repo", Fn: checkRepo},
		lint.RuleFunc[*Config]{ID: "plugins", Fn: func(c *Config) []lint.Issue { return checkPlugins(c.Plugins, plugin.Default()) }},
	}
}

func checkTitle(c *Config) []lint.Issue {
	if c.Title != "" {
		return nil
	}
	return []lint.Issue{{
		Field:    "title",
		Severity: lint.SeverityError,
		Rule:     RuleSiteTitle,
		Message:  "site title must not be empty",
		Fix:      "set title in the configuration file",
	}}
}

// ValidateNavEntry checks a single navigation entry. field is the entry's path for reporting.
func ValidateNavEntry(e NavEntry, field string) []lint.Issue {
	var issues []lint.Issue
	if e.Text == "" {
		issues = append(issues, lint.Issue{
			Field:    field + ".text",
			Severity: lint.SeverityError,
			Rule:     RuleNavLabel,
			Message:  "navigation label must not be empty",
		})
	}
	if e.IsDropdown() {
		if e.Link != "" {
			issues = append(issues, lint.Issue{
				Field:    field + ".link",
				Severity: lint.SeverityWarning,
				Rule:     RuleNavLink,
				Message:  "dropdown entries ignore link; the generator only renders items",
			})
		}
		return append(issues, checkNav(e.Items, field+".items")...)
	}
	if msg := checkLink(e.Link); msg != "" {
		issues = append(issues, lint.Issue{
			Field:    field + ".link",
			Severity: lint.SeverityError,
			Rule:     RuleNavLink,
			Message:  msg,
			Fix:      "use a site path starting with '/' or an absolute http(s) URL",
		})
	}
	return issues
}

func checkNav(entries []NavEntry, prefix string) []lint.Issue {
	var issues []lint.Issue
	for i, e := range entries {
		issues = append(issues, ValidateNavEntry(e, fmt.Sprintf("%s[%d]", prefix, i))...)
	}
	return issues
}

func checkLink(link string) string {
	switch {
	case link == "":
		return "navigation link must not be empty"
	case strings.HasPrefix(link, "/"):
		return ""
	case strings.HasPrefix(link, "http"):
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Sprintf("external link %q is not an absolute http(s) URL", link)
		}
		return ""
	default:
		return fmt.Sprintf("link %q must start with '/' or 'http'", link)
	}
}

func checkSidebar(entries []SidebarEntry, prefix string) []lint.Issue {
	var issues []lint.Issue
	for i, e := range entries {
		field := fmt.Sprintf("%s[%d]", prefix, i)
		if e.IsGroup() {
			if e.Title == "" {
				issues = append(issues, lint.Issue{Field: field + ".title", Severity: lint.SeverityError, Rule: RuleSidebarGroup, Message: "sidebar group needs a title"})
			}
			if len(e.Children) == 0 {
				issues = append(issues, lint.Issue{Field: field + ".children", Severity: lint.SeverityError, Rule: RuleSidebarGroup, Message: "sidebar group needs at least one child"})
			}
			if e.Path != "" && !strings.HasPrefix(e.Path, "/") {
				issues = append(issues, sidebarPathIssue(field, e.Path))
			}
			issues = append(issues, checkSidebar(e.Children, field+".children")...)
			continue
		}
		if !strings.HasPrefix(e.Path, "/") {
			issues = append(issues, sidebarPathIssue(field, e.Path))
		}
	}
	return issues
}

func sidebarPathIssue(field, path string) lint.Issue {
	msg := "sidebar path must not be empty"
	if path != "" {
		msg = fmt.Sprintf("sidebar path %q must start with '/'", path)
	}
	return lint.Issue{
		Field:    field + ".path",
		Severity: lint.SeverityError,
		Rule:     RuleSidebarPath,
		Message:  msg,
		Fix:      "sidebar paths are site paths such as /python/",
	}
}

func checkRepo(c *Config) []lint.Issue {
	var issues []lint.Issue
	t := c.Theme
	if t.Repo != "" && !validRepo(t.Repo) {
		issues = append(issues, lint.Issue{
			Field:    "themeConfig.repo",
			Severity: lint.SeverityError,
			Rule:     RuleRepoURL,
			Message:  fmt.Sprintf("repo %q is neither an http(s) URL nor an owner/name shorthand", t.Repo),
		})
	}
	if t.Repo == "" && (t.DocsBranch != "" || t.EditLinks) {
		issues = append(issues, lint.Issue{
			Field:    "themeConfig.repo",
			Severity: lint.SeverityWarning,
			Rule:     RuleRepoURL,
			Message:  "edit links are configured but no repo is set",
		})
	}
	if strings.HasPrefix(t.DocsDir, "/") || climbsOut(t.DocsDir) {
		issues = append(issues, lint.Issue{
			Field:    "themeConfig.docsDir",
			Severity: lint.SeverityError,
			Rule:     RuleDocsDir,
			Message:  "docsDir must be relative to the repository root",
		})
	}
	return issues
}

// climbsOut reports whether the cleaned dir leaves the repository root.
func climbsOut(dir string) bool {
	for _, seg := range strings.Split(path.Clean(strings.ReplaceAll(dir, `\`, "/")), "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

func validRepo(repo string) bool {
	if repoShorthand.MatchString(repo) {
		return true
	}
	u, err := url.Parse(repo)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func checkPlugins(decls []PluginDecl, reg *plugin.Registry) []lint.Issue {
	var issues []lint.Issue
	seen := make(map[string]int, len(decls))

	for i, d := range decls {
		field := fmt.Sprintf("plugins[%d]", i)
		name := reg.Canonical(d.Name)

		if first, dup := seen[name]; dup {
			issues = append(issues, lint.Issue{
				Field:    field,
				Severity: lint.SeverityError,
				Rule:     RulePluginDuplicate,
				Message:  fmt.Sprintf("plugin %q is already declared at plugins[%d]", name, first),
				Fix:      "merge the declarations or remove one",
			})
		} else {
			seen[name] = i
		}

		schema, known := reg.Lookup(name)
		if !known {
			issues = append(issues, lint.Issue{
				Field:    field,
				Severity: lint.SeverityWarning,
				Rule:     RulePluginUnknown,
				Message:  fmt.Sprintf("plugin %q is not known to sitecfg; the generator must resolve it", name),
			})
			continue
		}

		if d.IsBare() {
			if schema.RequiresOptions {
				issues = append(issues, lint.Issue{
					Field:    field,
					Severity: lint.SeverityError,
					Rule:     RulePluginOptions,
					Message:  fmt.Sprintf("plugin %q requires options", name),
				})
			}
			continue
		}
		for _, fe := range d.Options.Validate() {
			f := field + ".options"
			if fe.Field != "" {
				f += "." + fe.Field
			}
			issues = append(issues, lint.Issue{
				Field:    f,
				Severity: lint.SeverityError,
				Rule:     RulePluginOptions,
				Message:  fe.Message,
			})
		}
	}
	return issues
}

func isExternal(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}
