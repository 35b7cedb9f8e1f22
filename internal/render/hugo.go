package render

import (
	"fmt"
	"io"
	"log/slog"

	"git.home.luguber.info/inful/sitecfg/internal/editlink"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/site"
	"gopkg.in/yaml.v3"
)

// HugoHeader starts every rendered hugo.yaml.
const HugoHeader = "# Code generated by sitecfg render; DO NOT EDIT.\n"

type hugoConfig struct {
	Title  string     `yaml:"title"`
	Menu   hugoMenus  `yaml:"menu,omitempty"`
	Markup hugoMarkup `yaml:"markup"`
	Params hugoParams `yaml:"params,omitempty"`
}

type hugoMenus struct {
	Main    []hugoMenuEntry `yaml:"main,omitempty"`
	Sidebar []hugoMenuEntry `yaml:"sidebar,omitempty"`
}

type hugoMenuEntry struct {
	Identifier string `yaml:"identifier,omitempty"`
	Name       string `yaml:"name"`
	URL        string `yaml:"url,omitempty"`
	Parent     string `yaml:"parent,omitempty"`
	Weight     int    `yaml:"weight"`
}

type hugoMarkup struct {
	Highlight struct {
		LineNos bool `yaml:"lineNos"`
	} `yaml:"highlight"`
}

type hugoParams struct {
	Description   string `yaml:"description,omitempty"`
	Repo          string `yaml:"repo,omitempty"`
	DocsBranch    string `yaml:"docsBranch,omitempty"`
	EditURL       string `yaml:"editURL,omitempty"`
	EditLinkText  string `yaml:"editLinkText,omitempty"`
	ServiceWorker bool   `yaml:"serviceWorker,omitempty"`
}

// Hugo writes cfg as a Hugo site configuration. Navigation becomes the
// "main" menu and the sidebar the "sidebar" menu. Plugins have no Hugo
// counterpart and are skipped.
func Hugo(cfg *site.Config, w io.Writer) error {
	out := hugoConfig{
		Title: cfg.Title,
		Menu: hugoMenus{
			Main:    hugoNav(cfg.Theme.Nav, "", "main"),
			Sidebar: hugoSidebar(cfg.Theme.Sidebar, "", "sidebar"),
		},
		Params: hugoParams{
			Description:   cfg.Description,
			Repo:          cfg.Theme.Repo,
			DocsBranch:    cfg.Theme.DocsBranch,
			EditLinkText:  cfg.Theme.EditLinkText,
			ServiceWorker: cfg.ServiceWorker,
		},
	}
	out.Markup.Highlight.LineNos = cfg.Markdown.LineNumbers
	if cfg.Theme.Repo != "" {
		out.Params.EditURL = editlink.Prefix(cfg.Theme.Repo, cfg.Theme.DocsDir, cfg.Theme.DocsBranch)
	}

	for _, p := range cfg.Plugins {
		slog.Info("Skipping plugin without Hugo equivalent", logfields.Plugin(p.Name))
	}

	if _, err := io.WriteString(w, HugoHeader); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

func hugoNav(entries []site.NavEntry, parent, prefix string) []hugoMenuEntry {
	var out []hugoMenuEntry
	for i, e := range entries {
		m := hugoMenuEntry{Name: e.Text, Parent: parent, Weight: (i + 1) * 10}
		if e.IsDropdown() {
			m.Identifier = fmt.Sprintf("%s-%d", prefix, i)
			out = append(out, m)
			out = append(out, hugoNav(e.Items, m.Identifier, m.Identifier)...)
			continue
		}
		m.URL = e.Link
		out = append(out, m)
	}
	return out
}

func hugoSidebar(entries []site.SidebarEntry, parent, prefix string) []hugoMenuEntry {
	var out []hugoMenuEntry
	for i, e := range entries {
		m := hugoMenuEntry{Name: e.Label, URL: e.Path, Parent: parent, Weight: (i + 1) * 10}
		if e.IsGroup() {
			m.Name = e.Title
			m.Identifier = fmt.Sprintf("%s-%d", prefix, i)
			out = append(out, m)
			out = append(out, hugoSidebar(e.Children, m.Identifier, m.Identifier)...)
			continue
		}
		if m.Name == "" {
			m.Name = e.Path
		}
		out = append(out, m)
	}
	return out
}
