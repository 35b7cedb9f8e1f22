package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitecfg/internal/content"
	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/lint"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Format  string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Content string `help:"Documentation directory; also check that internal links resolve to pages" type:"path"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := site.Read(root.Config)
	if err != nil {
		return err
	}

	result := site.Validate(cfg)
	if v.Content != "" {
		result.Merge(content.NewResolver(v.Content).CheckTargets(cfg))
		result.Sort()
	}

	formatter, err := lint.NewFormatter(v.Format)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid output format").Build()
	}
	if err := formatter.Format(g.out(), result, root.Config); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write validation report").Build()
	}

	if result.HasErrors() {
		return ferrors.ValidationError(fmt.Sprintf("%d error(s) in configuration", result.ErrorCount())).
			WithContext("path", root.Config).Build()
	}
	return nil
}
