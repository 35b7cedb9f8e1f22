package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
)

// Global carries state shared by all subcommands.
type Global struct {
	// Out receives command output; logs go to stderr.
	Out io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitecfg.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
	Validate ValidateCmd `cmd:"" help:"Check the configuration for structural errors"`
	Render   RenderCmd   `cmd:"" help:"Render the configuration for a static-site generator"`
	EditURL  EditURLCmd  `cmd:"" name:"edit-url" help:"Print the 'edit this page' URL of a page"`
	Watch    WatchCmd    `cmd:"" help:"Re-render whenever the configuration changes"`
	Plugins  PluginsCmd  `cmd:"" help:"List the plugins sitecfg knows option schemas for"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// configDir is the directory relative paths in the configuration refer to.
func (c *CLI) configDir() string {
	return filepath.Dir(c.Config)
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}
