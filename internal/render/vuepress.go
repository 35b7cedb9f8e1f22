package render

import (
	"bytes"
	"encoding/json"
	"io"

	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// VuePressHeader starts every rendered config.js.
const VuePressHeader = "// Code generated by sitecfg render; DO NOT EDIT.\n"

// The structs below fix the key order of the emitted object literal.

type vpConfig struct {
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	ThemeConfig   vpTheme    `json:"themeConfig"`
	Markdown      vpMarkdown `json:"markdown"`
	ServiceWorker bool       `json:"serviceWorker"`
	Plugins       []any      `json:"plugins,omitempty"`
}

type vpTheme struct {
	Nav          []vpNav `json:"nav,omitempty"`
	Sidebar      []any   `json:"sidebar,omitempty"`
	Repo         string  `json:"repo,omitempty"`
	DocsDir      string  `json:"docsDir,omitempty"`
	DocsBranch   string  `json:"docsBranch,omitempty"`
	EditLinks    bool    `json:"editLinks,omitempty"`
	EditLinkText string  `json:"editLinkText,omitempty"`
	LastUpdated  string  `json:"lastUpdated,omitempty"`
}

type vpNav struct {
	Text  string  `json:"text"`
	Link  string  `json:"link,omitempty"`
	Items []vpNav `json:"items,omitempty"`
}

type vpGroup struct {
	Title       string `json:"title"`
	Path        string `json:"path,omitempty"`
	Collapsable *bool  `json:"collapsable,omitempty"`
	Children    []any  `json:"children"`
}

type vpMarkdown struct {
	LineNumbers bool `json:"lineNumbers"`
}

// VuePress writes cfg as a VuePress 1.x config.js module. The object
// literal is emitted as JSON, which is valid JavaScript.
func VuePress(cfg *site.Config, w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString(VuePressHeader)
	buf.WriteString("module.exports = ")

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(vuePressConfig(cfg)); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func vuePressConfig(cfg *site.Config) vpConfig {
	t := cfg.Theme
	out := vpConfig{
		Title:       cfg.Title,
		Description: cfg.Description,
		ThemeConfig: vpTheme{
			Nav:          vpNavEntries(t.Nav),
			Sidebar:      vpSidebar(t.Sidebar),
			Repo:         t.Repo,
			DocsDir:      t.DocsDir,
			DocsBranch:   t.DocsBranch,
			EditLinks:    t.EditLinks,
			EditLinkText: t.EditLinkText,
			LastUpdated:  t.LastUpdated,
		},
		Markdown:      vpMarkdown{LineNumbers: cfg.Markdown.LineNumbers},
		ServiceWorker: cfg.ServiceWorker,
	}
	for _, p := range cfg.Plugins {
		if p.IsBare() {
			out.Plugins = append(out.Plugins, p.Name)
			continue
		}
		out.Plugins = append(out.Plugins, []any{p.Name, p.Options})
	}
	return out
}

func vpNavEntries(entries []site.NavEntry) []vpNav {
	if len(entries) == 0 {
		return nil
	}
	out := make([]vpNav, 0, len(entries))
	for _, e := range entries {
		n := vpNav{Text: e.Text, Link: e.Link}
		if e.IsDropdown() {
			n.Link = ""
			n.Items = vpNavEntries(e.Items)
		}
		out = append(out, n)
	}
	return out
}

func vpSidebar(entries []site.SidebarEntry) []any {
	if len(entries) == 0 {
		return nil
	}
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.IsGroup():
			children := vpSidebar(e.Children)
			if children == nil {
				children = []any{}
			}
			out = append(out, vpGroup{Title: e.Title, Path: e.Path, Collapsable: e.Collapsable, Children: children})
		case e.Label == "":
			out = append(out, e.Path)
		default:
			out = append(out, []string{e.Path, e.Label})
		}
	}
	return out
}
