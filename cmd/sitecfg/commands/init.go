package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitecfg/internal/gitinfo"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force   bool `help:"Overwrite existing configuration file"`
	FromGit bool `name:"from-git" help:"Take repo, docs branch and docs dir from the enclosing git repository"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	cfg := site.Default()
	if i.FromGit {
		dir := root.configDir()
		info, err := gitinfo.Detect(dir)
		if err != nil {
			return err
		}
		cfg = info.Seed(cfg, dir)
		slog.Debug("Seeded configuration from git",
			logfields.URL(info.RemoteURL),
			logfields.Branch(info.Branch),
			logfields.Path(cfg.Theme.DocsDir))
	}

	if err := site.Init(root.Config, i.Force, cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Wrote configuration to %s\n", root.Config)
	return nil
}
