package site

import "git.home.luguber.info/inful/sitecfg/internal/plugin"

// DefaultDocsBranch is the branch the generator assumes for edit links when none is set.
const DefaultDocsBranch = "master"

// Default returns the configuration of the Algorithms course site.
// Every call builds a fresh record.
func Default() *Config {
	zIndex := 10000
	return &Config{
		Title:       "Algorithms",
		Description: "Course on algorithms with Python",
		Theme: ThemeConfig{
			Nav: []NavEntry{
				{Text: "Home", Link: "/"},
				{Text: "Company", Link: "https://toledo.vives.be"},
				{Text: "License", Link: "/LICENSE.md"},
			},
			Sidebar: []SidebarEntry{
				{Path: "/", Label: "Home"},
				{Path: "/python/", Label: "Python"},
			},
			Repo:       "https://github.com/pcordemans/devbit-algorithms.git",
			DocsDir:    "docs",
			DocsBranch: "master",
		},
		Markdown:      MarkdownOptions{LineNumbers: true},
		ServiceWorker: true,
		Plugins: []PluginDecl{
			{
				Name: plugin.ZoomingName,
				Options: &plugin.ZoomingOptions{
					Selector: "img",
					Options:  &plugin.ZoomStyle{BgColor: "black", ZIndex: &zIndex},
				},
			},
			{
				Name:    plugin.ContainerName,
				Options: &plugin.ContainerOptions{Type: "output", DefaultTitle: "Output"},
			},
		},
	}
}

// applyDefaults fills values the generator would otherwise infer implicitly.
func applyDefaults(cfg *Config) {
	if cfg.Theme.Repo != "" && cfg.Theme.DocsBranch == "" {
		cfg.Theme.DocsBranch = DefaultDocsBranch
	}
	if cfg.Theme.EditLinks && cfg.Theme.EditLinkText == "" {
		cfg.Theme.EditLinkText = "Edit this page"
	}
}
