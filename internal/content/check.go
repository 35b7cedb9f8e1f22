package content

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitecfg/internal/lint"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// RuleTargetMissing reports an internal link without a content file.
const RuleTargetMissing = "target-missing"

// CheckTargets reports navigation and sidebar entries whose internal target
// does not resolve to a file under the resolver root. External links are skipped.
func (r *Resolver) CheckTargets(cfg *site.Config) *lint.Result {
	res := &lint.Result{}
	r.checkNav(res, cfg.Theme.Nav, "themeConfig.nav")
	r.checkSidebar(res, cfg.Theme.Sidebar, "themeConfig.sidebar")
	res.Sort()
	return res
}

func (r *Resolver) checkNav(res *lint.Result, entries []site.NavEntry, prefix string) {
	for i, e := range entries {
		field := fmt.Sprintf("%s[%d]", prefix, i)
		if e.IsDropdown() {
			r.checkNav(res, e.Items, field+".items")
			continue
		}
		r.checkTarget(res, field+".link", e.Link)
	}
}

func (r *Resolver) checkSidebar(res *lint.Result, entries []site.SidebarEntry, prefix string) {
	for i, e := range entries {
		field := fmt.Sprintf("%s[%d]", prefix, i)
		if e.Path != "" {
			r.checkTarget(res, field+".path", e.Path)
		}
		r.checkSidebar(res, e.Children, field+".children")
	}
}

func (r *Resolver) checkTarget(res *lint.Result, field, link string) {
	candidates := Candidates(link)
	if len(candidates) == 0 {
		return
	}
	_, ok, err := r.Resolve(link)
	if err != nil {
		res.Add(lint.Issue{
			Field:    field,
			Severity: lint.SeverityError,
			Rule:     RuleTargetMissing,
			Message:  fmt.Sprintf("cannot inspect target of %s: %v", link, err),
		})
		return
	}
	if ok {
		return
	}
	res.Add(lint.Issue{
		Field:    field,
		Severity: lint.SeverityWarning,
		Rule:     RuleTargetMissing,
		Message:  fmt.Sprintf("no content file serves %s", link),
		Fix:      fmt.Sprintf("create %s under %s", candidates[0], r.Root),
	})
}

// FillLabels returns a copy of cfg whose unlabeled sidebar links carry the
// title of the page they point to, or a label derived from the path when the
// page has no title. cfg itself is left untouched.
func (r *Resolver) FillLabels(cfg *site.Config) *site.Config {
	out := *cfg
	out.Theme.Sidebar = r.fillSidebar(cfg.Theme.Sidebar)
	return &out
}

func (r *Resolver) fillSidebar(entries []site.SidebarEntry) []site.SidebarEntry {
	if entries == nil {
		return nil
	}
	out := make([]site.SidebarEntry, len(entries))
	for i, e := range entries {
		out[i] = e
		out[i].Children = r.fillSidebar(e.Children)
		if e.IsGroup() || e.Label != "" || e.Path == "" {
			continue
		}
		out[i].Label = r.labelFor(e.Path)
	}
	return out
}

func (r *Resolver) labelFor(sitePath string) string {
	if file, ok, err := r.Resolve(sitePath); err == nil && ok {
		title, err := PageTitle(file)
		if err != nil {
			slog.Warn("Failed to read page title", logfields.Path(file), logfields.Error(err))
		} else if title != "" {
			return title
		}
	}
	if sitePath == "/" {
		return "Home"
	}
	return DeriveLabel(sitePath)
}
