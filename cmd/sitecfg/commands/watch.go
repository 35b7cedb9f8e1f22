package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/render"
	"git.home.luguber.info/inful/sitecfg/internal/site"
	"git.home.luguber.info/inful/sitecfg/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Target   string        `short:"t" default:"vuepress" help:"Output format (vuepress or hugo)" enum:"vuepress,hugo"`
	Output   string        `short:"o" help:"Output file (default: the generator's expected location next to the config)"`
	Content  string        `help:"Documentation directory used to fill empty sidebar labels from page titles" type:"path"`
	Debounce time.Duration `default:"300ms" help:"Quiet period before re-rendering"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	target, err := render.ParseTarget(w.Target)
	if err != nil {
		return err
	}
	r := &reloader{
		path: root.Config,
		job:  renderJob{target: target, output: w.Output, content: w.Content, configDir: root.configDir()},
		g:    g,
	}
	if err := r.reload(ctx); err != nil {
		return err
	}

	watcher, err := watch.New(root.Config, w.Debounce, r.reload)
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}

// reloader re-renders when the configuration snapshot changes. A broken
// configuration keeps the last good output in place.
type reloader struct {
	path     string
	job      renderJob
	g        *Global
	snapshot string
}

func (r *reloader) reload(_ context.Context) error {
	cfg, err := site.Load(r.path)
	if err != nil {
		return err
	}
	snap := cfg.Snapshot()
	if snap == r.snapshot {
		slog.Debug("Configuration unchanged", logfields.Snapshot(snap))
		return nil
	}
	if err := r.job.write(r.g, cfg); err != nil {
		return err
	}
	r.snapshot = snap
	return nil
}
