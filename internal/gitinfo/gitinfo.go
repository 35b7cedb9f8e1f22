// Package gitinfo reads repository metadata used to seed a new site configuration.
package gitinfo

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Info describes the repository enclosing a directory.
type Info struct {
	// Root is the worktree root.
	Root string
	// RemoteURL is the first URL of the origin remote, as a web URL when it
	// was an SSH remote. Empty when there is no origin.
	RemoteURL string
	// Branch is the checked out (possibly unborn) branch. Empty when HEAD is detached.
	Branch string
}

// Detect opens the git repository containing dir, searching parent directories.
func Detect(dir string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, ferrors.NotFoundError("no git repository found").WithContext("path", dir).Build()
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "failed to open git repository").
			WithContext("path", dir).Build()
	}

	info := &Info{}
	if wt, err := repo.Worktree(); err == nil {
		info.Root = wt.Filesystem.Root()
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	switch {
	case err == nil && len(remote.Config().URLs) > 0:
		info.RemoteURL = WebURL(remote.Config().URLs[0])
	case err != nil && !errors.Is(err, git.ErrRemoteNotFound):
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "failed to read origin remote").
			WithContext("path", dir).Build()
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "failed to read HEAD").
			WithContext("path", dir).Build()
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		info.Branch = head.Target().Short()
	}
	return info, nil
}

// WebURL rewrites git@host:owner/repo and ssh:// remotes to
// https://host/owner/repo. Ports and user names are dropped.
// Other URLs are returned unchanged.
func WebURL(remote string) string {
	if strings.HasPrefix(remote, "ssh://") {
		u, err := url.Parse(remote)
		if err != nil || u.Hostname() == "" {
			return remote
		}
		return (&url.URL{Scheme: "https", Host: u.Hostname(), Path: u.Path}).String()
	}
	if !strings.HasPrefix(remote, "git@") {
		return remote
	}
	host, path, ok := strings.Cut(strings.TrimPrefix(remote, "git@"), ":")
	if !ok {
		return remote
	}
	return fmt.Sprintf("https://%s/%s", host, strings.TrimPrefix(path, "/"))
}

// DocsDir returns dir relative to the repository root using forward slashes,
// or "" when dir lies outside the worktree.
func (i *Info) DocsDir(dir string) string {
	if i.Root == "" {
		return ""
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(i.Root, abs)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.ToSlash(rel)
}

// Seed returns a copy of cfg with the repository metadata replaced by what
// was detected. docsDir is the directory holding the site content; it is
// recorded relative to the worktree root. Fields without a detected value
// are kept.
func (i *Info) Seed(cfg *site.Config, docsDir string) *site.Config {
	out := *cfg
	if i.RemoteURL != "" {
		out.Theme.Repo = i.RemoteURL
	}
	if i.Branch != "" {
		out.Theme.DocsBranch = i.Branch
	}
	if rel := i.DocsDir(docsDir); rel != "" {
		out.Theme.DocsDir = rel
	}
	return &out
}
