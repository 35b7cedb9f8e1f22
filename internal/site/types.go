// Package site defines the configuration record of the course website and
// the operations that load, normalize, validate and fingerprint it.
//
// A Config is produced once (Default, Parse or Load) and then passed
// explicitly to renderers. Nothing in this package mutates a Config after it
// has been returned to the caller.
package site

import "git.home.luguber.info/inful/sitecfg/internal/plugin"

// Config is the complete site configuration.
type Config struct {
	Title         string          `yaml:"title"`
	Description   string          `yaml:"description,omitempty"`
	Theme         ThemeConfig     `yaml:"theme_config"`
	Markdown      MarkdownOptions `yaml:"markdown,omitempty"`
	ServiceWorker bool            `yaml:"service_worker"`
	Plugins       []PluginDecl    `yaml:"plugins,omitempty"`
}

// ThemeConfig holds navigation, sidebar and repository metadata.
type ThemeConfig struct {
	Nav     []NavEntry     `yaml:"nav,omitempty"`
	Sidebar []SidebarEntry `yaml:"sidebar,omitempty"`

	// Repo, DocsDir and DocsBranch let the generator compute "edit this page" links.
	Repo       string `yaml:"repo,omitempty"`
	DocsDir    string `yaml:"docs_dir,omitempty"`
	DocsBranch string `yaml:"docs_branch,omitempty"`

	EditLinks    bool   `yaml:"edit_links,omitempty"`
	EditLinkText string `yaml:"edit_link_text,omitempty"`
	LastUpdated  string `yaml:"last_updated,omitempty"`
}

// NavEntry is a top navigation link. An entry with Items renders as a dropdown.
type NavEntry struct {
	Text  string     `yaml:"text"`
	Link  string     `yaml:"link,omitempty"`
	Items []NavEntry `yaml:"items,omitempty"`
}

// IsDropdown reports whether the entry groups other entries.
func (n NavEntry) IsDropdown() bool { return len(n.Items) > 0 }

// IsExternal reports whether the link points outside the site.
func (n NavEntry) IsExternal() bool { return isExternal(n.Link) }

// SidebarEntry is either a (path, label) link or a titled group of entries.
type SidebarEntry struct {
	Path  string `yaml:"path,omitempty"`
	Label string `yaml:"label,omitempty"`

	Title       string         `yaml:"title,omitempty"`
	Collapsable *bool          `yaml:"collapsable,omitempty"`
	Children    []SidebarEntry `yaml:"children,omitempty"`
}

// IsGroup reports whether the entry is a nested grouping.
func (s SidebarEntry) IsGroup() bool { return s.Title != "" || len(s.Children) > 0 }

// MarkdownOptions controls markdown rendering in the generator.
type MarkdownOptions struct {
	LineNumbers bool `yaml:"line_numbers"`
}

// PluginDecl declares one generator plugin. Options is nil for a bare declaration.
type PluginDecl struct {
	Name    string
	Options plugin.Options
}

// IsBare reports whether the plugin is declared without options.
func (p PluginDecl) IsBare() bool { return p.Options == nil }
