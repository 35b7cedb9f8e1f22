package gitinfo

import (
	"os"
	"path/filepath"
	"testing"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T, branch, origin string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(branch)},
	})
	require.NoError(t, err)

	if origin != "" {
		_, err = repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{origin}})
		require.NoError(t, err)
	}
	return dir
}

func TestDetect(t *testing.T) {
	dir := initRepo(t, "main", "git@github.com:pcordemans/devbit-algorithms.git")
	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o755))

	info, err := Detect(docs)
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/pcordemans/devbit-algorithms.git", info.RemoteURL)
	assert.Equal(t, "main", info.Branch)
	assert.Equal(t, "docs", info.DocsDir(docs))
	assert.Empty(t, info.DocsDir(dir))
}

func TestDetectWithoutOrigin(t *testing.T) {
	info, err := Detect(initRepo(t, "master", ""))
	require.NoError(t, err)
	assert.Empty(t, info.RemoteURL)
	assert.Equal(t, "master", info.Branch)
}

func TestDetectOutsideRepository(t *testing.T) {
	_, err := Detect(t.TempDir())
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestWebURL(t *testing.T) {
	tests := map[string]string{
		"git@github.com:a/b.git":           "https://github.com/a/b.git",
		"ssh://git@gitlab.com/group/b.git": "https://gitlab.com/group/b.git",
		"ssh://git@github.com:22/o/r.git":  "https://github.com/o/r.git",
		"ssh://gitea.example.org:2222/o/r": "https://gitea.example.org/o/r",
		"https://github.com/a/b.git":       "https://github.com/a/b.git",
		"/srv/git/course":                  "/srv/git/course",
	}
	for in, want := range tests {
		assert.Equal(t, want, WebURL(in), in)
	}
}

func TestSeed(t *testing.T) {
	root := t.TempDir()
	cfg := site.Default()
	info := &Info{Root: root, RemoteURL: "https://github.com/x/y.git", Branch: "main"}

	seeded := info.Seed(cfg, filepath.Join(root, "site", "content"))
	assert.Equal(t, "https://github.com/x/y.git", seeded.Theme.Repo)
	assert.Equal(t, "main", seeded.Theme.DocsBranch)
	assert.Equal(t, "site/content", seeded.Theme.DocsDir)
	assert.Equal(t, "master", cfg.Theme.DocsBranch)
	assert.Equal(t, "docs", cfg.Theme.DocsDir)

	atRoot := info.Seed(cfg, root)
	assert.Equal(t, "docs", atRoot.Theme.DocsDir)

	kept := (&Info{}).Seed(cfg, root)
	assert.Equal(t, cfg.Theme.Repo, kept.Theme.Repo)
}
