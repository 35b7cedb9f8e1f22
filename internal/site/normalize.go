package site

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/plugin"
)

// NormalizeResult lists the adjustments made by Normalize.
type NormalizeResult struct {
	Warnings []string
}

func (r *NormalizeResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Normalize canonicalizes loosely written values in place: surrounding
// whitespace is trimmed, plugin aliases are mapped to their canonical
// identifier and the docs directory loses leading "./" and trailing "/".
func Normalize(cfg *Config) (*NormalizeResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("normalize: nil config")
	}
	res := &NormalizeResult{}

	trim(res, "title", &cfg.Title)
	trim(res, "description", &cfg.Description)
	trim(res, "themeConfig.repo", &cfg.Theme.Repo)
	trim(res, "themeConfig.docsBranch", &cfg.Theme.DocsBranch)

	if d := cfg.Theme.DocsDir; d != "" {
		cleaned := strings.Trim(strings.TrimPrefix(strings.TrimSpace(d), "./"), "/")
		if cleaned != d {
			res.warnf("normalized themeConfig.docsDir from %q to %q", d, cleaned)
			cfg.Theme.DocsDir = cleaned
		}
	}

	normalizeNav(res, "themeConfig.nav", cfg.Theme.Nav)
	normalizeSidebar(res, "themeConfig.sidebar", cfg.Theme.Sidebar)

	reg := plugin.Default()
	for i := range cfg.Plugins {
		p := &cfg.Plugins[i]
		canonical := reg.Canonical(p.Name)
		if canonical != p.Name {
			res.warnf("normalized plugins[%d] identifier from %q to %q", i, p.Name, canonical)
			p.Name = canonical
		}
	}
	return res, nil
}

func normalizeNav(res *NormalizeResult, prefix string, entries []NavEntry) {
	for i := range entries {
		e := &entries[i]
		field := fmt.Sprintf("%s[%d]", prefix, i)
		trim(res, field+".text", &e.Text)
		trim(res, field+".link", &e.Link)
		normalizeNav(res, field+".items", e.Items)
	}
}

func normalizeSidebar(res *NormalizeResult, prefix string, entries []SidebarEntry) {
	for i := range entries {
		e := &entries[i]
		field := fmt.Sprintf("%s[%d]", prefix, i)
		trim(res, field+".path", &e.Path)
		trim(res, field+".label", &e.Label)
		trim(res, field+".title", &e.Title)
		normalizeSidebar(res, field+".children", e.Children)
	}
}

func trim(res *NormalizeResult, field string, v *string) {
	t := strings.TrimSpace(*v)
	if t != *v {
		res.warnf("trimmed whitespace from %s", field)
		*v = t
	}
}
