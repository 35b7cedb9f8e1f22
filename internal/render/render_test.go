package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// decodeVuePress strips the module wrapper and decodes the object literal.
func decodeVuePress(t *testing.T, out []byte) map[string]any {
	t.Helper()
	s := string(out)
	require.True(t, strings.HasPrefix(s, VuePressHeader+"module.exports = {"), s)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(s, VuePressHeader+"module.exports = ")), &got))
	return got
}

func TestVuePressDefault(t *testing.T) {
	out, err := Bytes(TargetVuePress, site.Default())
	require.NoError(t, err)

	want := map[string]any{
		"title":       "Algorithms",
		"description": "Course on algorithms with Python",
		"themeConfig": map[string]any{
			"nav": []any{
				map[string]any{"text": "Home", "link": "/"},
				map[string]any{"text": "Company", "link": "https://toledo.vives.be"},
				map[string]any{"text": "License", "link": "/LICENSE.md"},
			},
			"sidebar": []any{
				[]any{"/", "Home"},
				[]any{"/python/", "Python"},
			},
			"repo":       "https://github.com/pcordemans/devbit-algorithms.git",
			"docsDir":    "docs",
			"docsBranch": "master",
		},
		"markdown":      map[string]any{"lineNumbers": true},
		"serviceWorker": true,
		"plugins": []any{
			[]any{"vuepress-plugin-zooming", map[string]any{
				"selector": "img",
				"options":  map[string]any{"bgColor": "black", "zIndex": float64(10000)},
			}},
			[]any{"container", map[string]any{"type": "output", "defaultTitle": "Output"}},
		},
	}
	if diff := cmp.Diff(want, decodeVuePress(t, out)); diff != "" {
		t.Fatalf("config.js mismatch (-want +got):\n%s", diff)
	}
}

func TestVuePressKeyOrder(t *testing.T) {
	out, err := Bytes(TargetVuePress, site.Default())
	require.NoError(t, err)
	s := string(out)

	last := -1
	for _, key := range []string{`"title"`, `"description"`, `"themeConfig"`, `"nav"`, `"sidebar"`, `"repo"`, `"docsDir"`, `"docsBranch"`, `"markdown"`, `"serviceWorker"`, `"plugins"`} {
		idx := strings.Index(s, key)
		require.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}

	again, err := Bytes(TargetVuePress, site.Default())
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestVuePressShapes(t *testing.T) {
	no := false
	cfg := &site.Config{
		Title: "x",
		Theme: site.ThemeConfig{
			Nav: []site.NavEntry{{Text: "More", Items: []site.NavEntry{{Text: "A", Link: "/a/"}}}},
			Sidebar: []site.SidebarEntry{
				{Path: "/intro/"},
				{Title: "Group", Collapsable: &no, Children: []site.SidebarEntry{{Path: "/a/", Label: "A"}}},
			},
			EditLinks: true,
		},
		Plugins: []site.PluginDecl{{Name: "@vuepress/back-to-top"}},
	}
	out, err := Bytes(TargetVuePress, cfg)
	require.NoError(t, err)
	got := decodeVuePress(t, out)

	theme := got["themeConfig"].(map[string]any)
	assert.Equal(t, []any{map[string]any{"text": "More", "items": []any{map[string]any{"text": "A", "link": "/a/"}}}}, theme["nav"])
	assert.Equal(t, []any{
		"/intro/",
		map[string]any{"title": "Group", "collapsable": false, "children": []any{[]any{"/a/", "A"}}},
	}, theme["sidebar"])
	assert.Equal(t, true, theme["editLinks"])
	assert.Equal(t, []any{"@vuepress/back-to-top"}, got["plugins"])
	assert.Equal(t, map[string]any{"lineNumbers": false}, got["markdown"])
	assert.Equal(t, false, got["serviceWorker"])
}

func TestVuePressPluginOptionValues(t *testing.T) {
	cfg, err := site.Parse([]byte("title: x\nplugins:\n  - [zooming, {options: {zIndex: 0, bgColor: red}}]\n  - [mathjax, {levels: {1: a}}]\n"))
	require.NoError(t, err)

	out, err := Bytes(TargetVuePress, cfg)
	require.NoError(t, err)
	got := decodeVuePress(t, out)

	assert.Equal(t, []any{
		[]any{"vuepress-plugin-zooming", map[string]any{"options": map[string]any{"bgColor": "red", "zIndex": float64(0)}}},
		[]any{"mathjax", map[string]any{"levels": map[string]any{"1": "a"}}},
	}, got["plugins"])
}

func TestHugoDefault(t *testing.T) {
	out, err := Bytes(TargetHugo, site.Default())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), HugoHeader))

	var got hugoConfig
	require.NoError(t, yaml.Unmarshal(out, &got))

	assert.Equal(t, "Algorithms", got.Title)
	assert.True(t, got.Markup.Highlight.LineNos)
	assert.Equal(t, []hugoMenuEntry{
		{Name: "Home", URL: "/", Weight: 10},
		{Name: "Company", URL: "https://toledo.vives.be", Weight: 20},
		{Name: "License", URL: "/LICENSE.md", Weight: 30},
	}, got.Menu.Main)
	assert.Equal(t, []hugoMenuEntry{
		{Name: "Home", URL: "/", Weight: 10},
		{Name: "Python", URL: "/python/", Weight: 20},
	}, got.Menu.Sidebar)
	assert.Equal(t, "https://github.com/pcordemans/devbit-algorithms/edit/master/docs/", got.Params.EditURL)
	assert.Equal(t, "Course on algorithms with Python", got.Params.Description)
}

func TestHugoNestedMenus(t *testing.T) {
	cfg := &site.Config{
		Title: "x",
		Theme: site.ThemeConfig{
			Nav: []site.NavEntry{
				{Text: "Home", Link: "/"},
				{Text: "More", Items: []site.NavEntry{{Text: "A", Link: "/a/"}}},
			},
			Sidebar: []site.SidebarEntry{{Title: "G", Children: []site.SidebarEntry{{Path: "/g/"}}}},
		},
	}
	out, err := Bytes(TargetHugo, cfg)
	require.NoError(t, err)

	var got hugoConfig
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, []hugoMenuEntry{
		{Name: "Home", URL: "/", Weight: 10},
		{Identifier: "main-1", Name: "More", Weight: 20},
		{Name: "A", URL: "/a/", Parent: "main-1", Weight: 10},
	}, got.Menu.Main)
	assert.Equal(t, []hugoMenuEntry{
		{Identifier: "sidebar-0", Name: "G", Weight: 10},
		{Name: "/g/", URL: "/g/", Parent: "sidebar-0", Weight: 10},
	}, got.Menu.Sidebar)
	assert.Empty(t, got.Params.EditURL)
}

func TestParseTarget(t *testing.T) {
	for in, want := range map[string]Target{"": TargetVuePress, "VuePress": TargetVuePress, " hugo ": TargetHugo} {
		got, err := ParseTarget(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseTarget("jekyll")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	assert.Equal(t, []string{"hugo", "vuepress"}, Targets())
}

func TestDefaultOutput(t *testing.T) {
	cfg := site.Default()
	assert.Equal(t, filepath.Join("docs", ".vuepress", "config.js"), DefaultOutput(TargetVuePress, cfg))
	assert.Equal(t, "hugo.yaml", DefaultOutput(TargetHugo, cfg))
	assert.Equal(t, filepath.Join(".", ".vuepress", "config.js"), DefaultOutput(TargetVuePress, &site.Config{}))
}

func TestWriteFileAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", ".vuepress", "config.js")

	diff, err := Check(path, []byte("a\n"))
	require.NoError(t, err)
	assert.Contains(t, diff, "+a")

	require.NoError(t, WriteFile(path, []byte("a\nb\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))

	diff, err = Check(path, []byte("a\nb\n"))
	require.NoError(t, err)
	assert.Empty(t, diff)

	diff, err = Check(path, []byte("a\nc\n"))
	require.NoError(t, err)
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+c")
	assert.Contains(t, diff, "(rendered)")
}
