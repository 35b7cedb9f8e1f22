package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/sitecfg/cmd/sitecfg/commands"
	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{Out: os.Stdout}

	ctx := kong.Parse(&cli,
		kong.Name("sitecfg"),
		kong.Description("Load, validate and render the declarative configuration of the course website."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := ctx.Run(global, &cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
