// Package plugin models the plugin declarations of a site configuration.
//
// Generator plugins take option records whose shape depends on the plugin.
// Each known plugin identifier is bound to a Schema that decodes its options
// into a concrete Go type; identifiers without a schema fall back to an open
// key/value map so that third-party plugins can still be declared.
package plugin

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind classifies what a plugin contributes to the rendered site.
type Kind string

const (
	KindMarkdown Kind = "markdown" // extends markdown syntax
	KindUI       Kind = "ui"       // client-side behaviour
	KindMeta     Kind = "meta"     // page metadata
	KindExternal Kind = "external" // not known to sitecfg
)

// Options is the typed options record of one plugin declaration.
// Implementations are plain structs that marshal to the generator's option object.
type Options interface {
	// Validate returns schema violations; FieldError.Field is relative to the options record.
	Validate() []FieldError
}

// FieldError describes one invalid option value.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Schema binds a plugin identifier to its options type.
type Schema struct {
	// Name is the canonical identifier written to generator output.
	Name string
	// Aliases are alternative identifiers accepted on input.
	Aliases []string
	// Kind classifies the plugin.
	Kind Kind
	// Description is a one-line summary shown by `sitecfg plugins`.
	Description string
	// RequiresOptions marks plugins that cannot be declared by bare identifier.
	RequiresOptions bool
	// New returns an empty options record to decode into.
	New func() Options
	// Defaults returns the options the generator assumes when none are declared.
	Defaults func() Options
}

// Decode decodes an options node into the schema's options type.
// Unknown option keys are rejected.
func (s Schema) Decode(node *yaml.Node) (Options, error) {
	opts := s.New()
	if node == nil {
		return opts, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("plugin %s: options must be a mapping (line %d)", s.Name, node.Line)
	}
	if err := DecodeStrict(node, opts); err != nil {
		return nil, fmt.Errorf("plugin %s: %w", s.Name, err)
	}
	return opts, nil
}
