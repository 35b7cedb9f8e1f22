package site

import (
	"strings"
	"testing"

	"git.home.luguber.info/inful/sitecfg/internal/lint"
	"git.home.luguber.info/inful/sitecfg/internal/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func rules(issues []lint.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Rule)
	}
	return out
}

func TestDefaultIsValid(t *testing.T) {
	res := Validate(Default())
	assert.Empty(t, res.Issues)
}

func TestValidateNavEntry(t *testing.T) {
	assert.Empty(t, ValidateNavEntry(NavEntry{Text: "Home", Link: "/"}, "nav[0]"))
	assert.Empty(t, ValidateNavEntry(NavEntry{Text: "Company", Link: "https://toledo.vives.be"}, "nav[1]"))

	issues := ValidateNavEntry(NavEntry{Text: "", Link: "home"}, "nav[0]")
	require.Len(t, issues, 2)
	assert.ElementsMatch(t, []string{RuleNavLabel, RuleNavLink}, rules(issues))
	for _, i := range issues {
		assert.Equal(t, lint.SeverityError, i.Severity)
	}
}

func TestValidateNavLinks(t *testing.T) {
	tests := []struct {
		link  string
		valid bool
	}{
		{"/", true},
		{"/LICENSE.md", true},
		{"http://example.org", true},
		{"https://toledo.vives.be/path", true},
		{"", false},
		{"home", false},
		{"./python/", false},
		{"httpfoo", false},
		{"https://", false},
		{"ftp://example.org", false},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			issues := ValidateNavEntry(NavEntry{Text: "x", Link: tt.link}, "nav[0]")
			if tt.valid {
				assert.Empty(t, issues)
			} else {
				require.Len(t, issues, 1)
				assert.Equal(t, RuleNavLink, issues[0].Rule)
			}
		})
	}
}

func TestValidateDropdown(t *testing.T) {
	entry := NavEntry{Text: "More", Items: []NavEntry{{Text: "A", Link: "/a/"}, {Text: "B", Link: "b"}}}
	issues := ValidateNavEntry(entry, "themeConfig.nav[3]")
	require.Len(t, issues, 1)
	assert.Equal(t, "themeConfig.nav[3].items[1].link", issues[0].Field)
}

func TestValidateSidebar(t *testing.T) {
	cfg := Default()
	cfg.Theme.Sidebar = []SidebarEntry{
		{Path: "python/", Label: "Python"},
		{Title: "Sorting"},
		{Children: []SidebarEntry{{Path: ""}}},
	}
	res := Validate(cfg)

	fields := make([]string, 0, len(res.Issues))
	for _, i := range res.Issues {
		fields = append(fields, i.Field)
	}
	assert.ElementsMatch(t, []string{
		"themeConfig.sidebar[0].path",
		"themeConfig.sidebar[1].children",
		"themeConfig.sidebar[2].title",
		"themeConfig.sidebar[2].children[0].path",
	}, fields)
	assert.Equal(t, 4, res.ErrorCount())
}

func TestValidatePlugins(t *testing.T) {
	negative := -1
	cfg := Default()
	cfg.Plugins = append(cfg.Plugins,
		PluginDecl{Name: "zooming", Options: &plugin.ZoomingOptions{Delay: &negative}},
		PluginDecl{Name: "vuepress-plugin-unheard-of"},
		PluginDecl{Name: "@vuepress/pwa"},
	)

	res := Validate(cfg)
	assert.True(t, res.HasErrors())
	assert.Len(t, res.ByRule(RulePluginDuplicate), 1)
	assert.Len(t, res.ByRule(RulePluginUnknown), 1)

	opts := res.ByRule(RulePluginOptions)
	require.Len(t, opts, 1)
	assert.Equal(t, "plugins[2].options.delay", opts[0].Field)
}

func TestValidatePluginRequiresOptions(t *testing.T) {
	cfg := &Config{Title: "x", Plugins: []PluginDecl{{Name: plugin.ContainerName}}}
	res := Validate(cfg)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, RulePluginOptions, res.Issues[0].Rule)
}

func TestValidateRepo(t *testing.T) {
	tests := []struct {
		name  string
		theme ThemeConfig
		rules []string
	}{
		{name: "url", theme: ThemeConfig{Repo: "https://github.com/a/b.git", DocsBranch: "main"}},
		{name: "shorthand", theme: ThemeConfig{Repo: "vuejs/vuepress"}},
		{name: "garbage", theme: ThemeConfig{Repo: "not a repo"}, rules: []string{RuleRepoURL}},
		{name: "edit links without repo", theme: ThemeConfig{EditLinks: true}, rules: []string{RuleRepoURL}},
		{name: "absolute docs dir", theme: ThemeConfig{Repo: "a/b", DocsDir: "/docs"}, rules: []string{RuleDocsDir}},
		{name: "escaping docs dir", theme: ThemeConfig{Repo: "a/b", DocsDir: "../docs"}, rules: []string{RuleDocsDir}},
		{name: "climbing docs dir", theme: ThemeConfig{Repo: "a/b", DocsDir: "docs/../.."}, rules: []string{RuleDocsDir}},
		{name: "dots inside a name", theme: ThemeConfig{Repo: "a/b", DocsDir: "docs..v2"}, rules: []string{}},
		{name: "climb that stays inside", theme: ThemeConfig{Repo: "a/b", DocsDir: "a/../docs"}, rules: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(&Config{Title: "x", Theme: tt.theme})
			assert.ElementsMatch(t, tt.rules, rules(res.Issues))
		})
	}
}

func TestValidateEmptyTitle(t *testing.T) {
	cfg := Default()
	cfg.Title = ""
	res := Validate(cfg)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, RuleSiteTitle, res.Issues[0].Rule)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		Title: "  Algorithms ",
		Theme: ThemeConfig{
			DocsDir: "./docs/",
			Nav:     []NavEntry{{Text: " Home", Link: "/ "}},
		},
		Plugins: []PluginDecl{{Name: "zooming"}, {Name: "@vuepress/container"}},
	}
	res, err := Normalize(cfg)
	require.NoError(t, err)

	assert.Equal(t, "Algorithms", cfg.Title)
	assert.Equal(t, "docs", cfg.Theme.DocsDir)
	assert.Equal(t, NavEntry{Text: "Home", Link: "/"}, cfg.Theme.Nav[0])
	assert.Equal(t, plugin.ZoomingName, cfg.Plugins[0].Name)
	assert.Equal(t, plugin.ContainerName, cfg.Plugins[1].Name)
	assert.Len(t, res.Warnings, 6)

	_, err = Normalize(nil)
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	a, b := Default(), Default()
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Len(t, a.Snapshot(), 64)

	b.Markdown.LineNumbers = false
	assert.NotEqual(t, a.Snapshot(), b.Snapshot())

	var nilCfg *Config
	assert.Empty(t, nilCfg.Snapshot())
}

func sitePath() *rapid.Generator[string] {
	return rapid.StringMatching(`/[a-z0-9/_.-]{0,20}`)
}

func TestPropertyNavEntries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,15}`).Draw(t, "text")
		link := rapid.OneOf(
			sitePath(),
			rapid.StringMatching(`https?://[a-z]{1,10}\.[a-z]{2,3}(/[a-z]{0,8})?`),
		).Draw(t, "link")

		if issues := ValidateNavEntry(NavEntry{Text: text, Link: link}, "nav[0]"); len(issues) != 0 {
			t.Fatalf("valid entry {%q, %q} rejected: %v", text, link, issues)
		}
	})
}

func TestPropertyRelativeLinksRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		link := rapid.StringMatching(`[a-gi-z.][a-z0-9/.]{0,15}`).Draw(t, "link")

		issues := ValidateNavEntry(NavEntry{Text: "x", Link: link}, "nav[0]")
		if len(issues) != 1 || issues[0].Rule != RuleNavLink {
			t.Fatalf("relative link %q not rejected: %v", link, issues)
		}
	})
}

func TestPropertySidebarPaths(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		path := rapid.String().Draw(t, "path")
		res := Validate(&Config{Title: "x", Theme: ThemeConfig{Sidebar: []SidebarEntry{{Path: path, Label: "l"}}}})

		if strings.HasPrefix(path, "/") == res.HasErrors() {
			t.Fatalf("path %q: hasErrors=%v", path, res.HasErrors())
		}
	})
}

func TestPropertyDuplicatePlugins(t *testing.T) {
	names := []string{"vuepress-plugin-zooming", "zooming", "@vuepress/back-to-top", "vuepress-plugin-foo", "vuepress-plugin-bar"}
	reg := plugin.Default()

	rapid.Check(t, func(t *rapid.T) {
		picked := rapid.SliceOfN(rapid.SampledFrom(names), 0, 6).Draw(t, "plugins")

		decls := make([]PluginDecl, len(picked))
		seen := map[string]bool{}
		dups := 0
		for i, n := range picked {
			decls[i] = PluginDecl{Name: n}
			c := reg.Canonical(n)
			if seen[c] {
				dups++
			}
			seen[c] = true
		}

		res := Validate(&Config{Title: "x", Plugins: decls})
		if got := len(res.ByRule(RulePluginDuplicate)); got != dups {
			t.Fatalf("plugins %v: %d duplicate issues, want %d", picked, got, dups)
		}
	})
}
