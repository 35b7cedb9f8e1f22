package content

import (
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/sitecfg/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative path -> content) below a temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return root
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"/", []string{"README.md", "readme.md", "index.md"}},
		{"/python/", []string{"python/README.md", "python/readme.md", "python/index.md"}},
		{"/LICENSE.md", []string{"LICENSE.md"}},
		{"/sorting/quick.html", []string{"sorting/quick.md"}},
		{"/sorting/quick", []string{"sorting/quick.md", "sorting/quick/README.md"}},
		{"/python/#install", []string{"python/README.md", "python/readme.md", "python/index.md"}},
		{"/img/logo.png", []string{"img/logo.png"}},
		{"https://toledo.vives.be", nil},
		{"/../etc/passwd", []string{"etc/passwd.md", "etc/passwd/README.md"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Candidates(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":        "# Algorithms\n",
		"LICENSE.md":       "MIT\n",
		"python/index.md":  "# Python\n",
		"sorting/quick.md": "# Quicksort\n",
	})
	r := NewResolver(root)

	for _, p := range []string{"/", "/LICENSE.md", "/python/", "/sorting/quick", "/sorting/quick.html"} {
		_, ok, err := r.Resolve(p)
		require.NoError(t, err)
		assert.True(t, ok, p)
	}

	_, ok, err := r.Resolve("/missing/")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, "python/index.md", r.Relative("/python/"))
	assert.Equal(t, "missing/README.md", r.Relative("/missing/"))
	assert.Empty(t, r.Relative("https://example.org"))
}

func TestCheckTargets(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":  "# Home\n",
		"LICENSE.md": "MIT\n",
	})

	res := NewResolver(root).CheckTargets(site.Default())
	require.Len(t, res.Issues, 1)

	issue := res.Issues[0]
	assert.Equal(t, "themeConfig.sidebar[1].path", issue.Field)
	assert.Equal(t, RuleTargetMissing, issue.Rule)
	assert.False(t, res.HasErrors())
	assert.Contains(t, issue.Fix, "python/README.md")
}

func TestTitleOf(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "front matter wins", src: "---\ntitle: Sorting\n---\n# Other\n", want: "Sorting"},
		{name: "first h1", src: "Intro text\n\n## Sub\n\n# Binary *search*\n", want: "Binary search"},
		{name: "setext heading", src: "Python\n======\n", want: "Python"},
		{name: "empty front matter", src: "---\n---\n# Body\n", want: "Body"},
		{name: "crlf", src: "---\r\ntitle: Windows\r\n---\r\nbody\r\n", want: "Windows"},
		{name: "none", src: "just text\n", want: ""},
		{name: "unterminated front matter", src: "---\ntitle: x\n# Heading\n", want: "Heading"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleOf([]byte(tt.src)))
		})
	}
}

func TestDeriveLabel(t *testing.T) {
	assert.Equal(t, "Binary Search", DeriveLabel("/binary-search/"))
	assert.Equal(t, "Hash Tables", DeriveLabel("/data/hash_tables.md"))
	assert.Equal(t, "Python", DeriveLabel("python"))
}

func TestFillLabels(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":        "# Welcome\n",
		"python/README.md": "---\ntitle: Python basics\n---\n",
	})
	cfg := &site.Config{
		Title: "x",
		Theme: site.ThemeConfig{Sidebar: []site.SidebarEntry{
			{Path: "/"},
			{Path: "/python/"},
			{Path: "/graph-theory/"},
			{Path: "/kept/", Label: "Kept"},
			{Title: "Group", Children: []site.SidebarEntry{{Path: "/python/"}}},
		}},
	}

	filled := NewResolver(root).FillLabels(cfg)

	labels := []string{}
	for _, e := range filled.Theme.Sidebar[:4] {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{"Welcome", "Python basics", "Graph Theory", "Kept"}, labels)
	assert.Equal(t, "Python basics", filled.Theme.Sidebar[4].Children[0].Label)

	// The input is left untouched.
	assert.Empty(t, cfg.Theme.Sidebar[0].Label)
	assert.Empty(t, cfg.Theme.Sidebar[4].Children[0].Label)
}
