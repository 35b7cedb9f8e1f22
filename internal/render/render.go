// Package render turns a site configuration into the files consumed by
// external static-site generators.
package render

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/normalization"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// Target names an output format.
type Target string

const (
	TargetVuePress Target = "vuepress"
	TargetHugo     Target = "hugo"
)

// Func writes cfg in one target format.
type Func func(cfg *site.Config, w io.Writer) error

var renderers = map[Target]Func{
	TargetVuePress: VuePress,
	TargetHugo:     Hugo,
}

var targetNormalizer = normalization.NewNormalizer(map[string]Target{
	"vuepress": TargetVuePress,
	"vue":      TargetVuePress,
	"hugo":     TargetHugo,
}, TargetVuePress)

// ParseTarget maps user input to a Target. An empty string selects vuepress.
func ParseTarget(s string) (Target, error) {
	t, err := targetNormalizer.NormalizeWithError(s)
	if err != nil {
		return "", ferrors.ValidationError(fmt.Sprintf("unknown render target %q", s)).
			WithContext("valid", Targets()).Build()
	}
	return t, nil
}

// Targets lists the supported targets in sorted order.
func Targets() []string {
	out := make([]string, 0, len(renderers))
	for t := range renderers {
		out = append(out, string(t))
	}
	sort.Strings(out)
	return out
}

// Render writes cfg in the given target format to w.
func Render(target Target, cfg *site.Config, w io.Writer) error {
	fn, ok := renderers[target]
	if !ok {
		return ferrors.ValidationError(fmt.Sprintf("unknown render target %q", target)).Build()
	}
	if err := fn(cfg, w); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRender, "failed to render configuration").
			WithContext("target", string(target)).Fatal().Build()
	}
	return nil
}

// Bytes renders cfg into memory.
func Bytes(target Target, cfg *site.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(target, cfg, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultOutput returns where the generator expects its configuration, relative
// to the repository root.
func DefaultOutput(target Target, cfg *site.Config) string {
	switch target {
	case TargetHugo:
		return "hugo.yaml"
	default:
		dir := cfg.Theme.DocsDir
		if dir == "" {
			dir = "."
		}
		return filepath.Join(dir, ".vuepress", "config.js")
	}
}
