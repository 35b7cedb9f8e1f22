package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"git.home.luguber.info/inful/sitecfg/internal/plugin"
)

// PluginsCmd implements the 'plugins' command.
type PluginsCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

type pluginInfo struct {
	Name            string   `json:"name"`
	Aliases         []string `json:"aliases,omitempty"`
	Kind            string   `json:"kind"`
	Description     string   `json:"description,omitempty"`
	RequiresOptions bool     `json:"requires_options"`
	Defaults        any      `json:"defaults,omitempty"`
}

func (p *PluginsCmd) Run(g *Global, _ *CLI) error {
	schemas := plugin.Default().List()
	infos := make([]pluginInfo, 0, len(schemas))
	for _, s := range schemas {
		info := pluginInfo{
			Name:            s.Name,
			Aliases:         s.Aliases,
			Kind:            string(s.Kind),
			Description:     s.Description,
			RequiresOptions: s.RequiresOptions,
		}
		if s.Defaults != nil {
			info.Defaults = s.Defaults()
		}
		infos = append(infos, info)
	}

	if p.Format == "json" {
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tw := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tKIND\tALIASES\tDESCRIPTION")
	for _, info := range infos {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Kind, strings.Join(info.Aliases, ", "), info.Description)
	}
	return tw.Flush()
}
