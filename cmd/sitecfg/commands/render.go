package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/sitecfg/internal/content"
	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/render"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Target  string `short:"t" default:"vuepress" help:"Output format (vuepress or hugo)" enum:"vuepress,hugo"`
	Output  string `short:"o" help:"Output file, '-' for stdout (default: the generator's expected location next to the config)"`
	Check   bool   `help:"Do not write; fail with a diff when the output file is out of date"`
	Content string `help:"Documentation directory used to fill empty sidebar labels from page titles" type:"path"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := site.Load(root.Config)
	if err != nil {
		return err
	}
	target, err := render.ParseTarget(r.Target)
	if err != nil {
		return err
	}
	job := renderJob{target: target, output: r.Output, content: r.Content, configDir: root.configDir()}

	if r.Check {
		return job.check(g, cfg)
	}
	return job.write(g, cfg)
}

// renderJob renders one configuration to one destination. Shared by render and watch.
type renderJob struct {
	target    render.Target
	output    string
	content   string
	configDir string
}

func (j renderJob) destination(cfg *site.Config) string {
	if j.output != "" {
		return j.output
	}
	return filepath.Join(j.configDir, render.DefaultOutput(j.target, cfg))
}

func (j renderJob) bytes(cfg *site.Config) ([]byte, error) {
	if j.content != "" {
		cfg = content.NewResolver(j.content).FillLabels(cfg)
	}
	return render.Bytes(j.target, cfg)
}

func (j renderJob) write(g *Global, cfg *site.Config) error {
	data, err := j.bytes(cfg)
	if err != nil {
		return err
	}
	dest := j.destination(cfg)
	if dest == "-" {
		_, err := g.out().Write(data)
		return err
	}
	if err := render.WriteFile(dest, data); err != nil {
		return err
	}
	slog.Info("Rendered configuration", logfields.Target(string(j.target)), logfields.Path(dest))
	return nil
}

func (j renderJob) check(g *Global, cfg *site.Config) error {
	data, err := j.bytes(cfg)
	if err != nil {
		return err
	}
	dest := j.destination(cfg)
	if dest == "-" {
		return ferrors.ValidationError("--check needs an output file").Build()
	}
	diff, err := render.Check(dest, data)
	if err != nil {
		return err
	}
	if diff == "" {
		_, _ = fmt.Fprintf(g.out(), "%s is up to date\n", dest)
		return nil
	}
	_, _ = fmt.Fprint(g.out(), diff)
	return ferrors.RenderError("rendered configuration is out of date (run sitecfg render)").
		WithContext("path", dest).Build()
}
