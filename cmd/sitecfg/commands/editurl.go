package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/content"
	"git.home.luguber.info/inful/sitecfg/internal/editlink"
	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// EditURLCmd implements the 'edit-url' command.
type EditURLCmd struct {
	Page    string `arg:"" help:"Site path (/python/) or file path relative to the docs directory (python/README.md)"`
	Content string `help:"Documentation directory (default: docs_dir next to the config)" type:"path"`
}

func (e *EditURLCmd) Run(g *Global, root *CLI) error {
	cfg, err := site.Load(root.Config)
	if err != nil {
		return err
	}

	file := e.Page
	if strings.HasPrefix(e.Page, "/") {
		dir := e.Content
		if dir == "" {
			dir = filepath.Join(root.configDir(), cfg.Theme.DocsDir)
		}
		file = content.NewResolver(dir).Relative(e.Page)
	}

	u := editlink.Build(cfg.Theme.Repo, cfg.Theme.DocsDir, cfg.Theme.DocsBranch, file)
	if u == "" {
		return ferrors.NotFoundError("cannot build an edit URL for this repository").
			WithContext("repo", cfg.Theme.Repo).
			WithContext("page", e.Page).Build()
	}
	_, _ = fmt.Fprintln(g.out(), u)
	return nil
}
