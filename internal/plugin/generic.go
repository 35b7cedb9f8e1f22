package plugin

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GenericOptions is the open options record used for plugins without a schema.
// Nested mappings always decode to map[string]any so the record can be
// written as a generator options object.
type GenericOptions map[string]any

// Validate accepts any option map.
func (GenericOptions) Validate() []FieldError { return nil }

// UnmarshalYAML decodes an options mapping. Scalar keys are kept as written,
// so {1: a} becomes {"1": "a"}; null and collection keys are rejected.
func (g *GenericOptions) UnmarshalYAML(node *yaml.Node) error {
	v, err := genericValue(node)
	if err != nil {
		return err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("options must be a mapping (line %d)", node.Line)
	}
	*g = m
	return nil
}

func genericValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return genericValue(node.Content[0])
	case yaml.AliasNode:
		return genericValue(node.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := genericValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, val := node.Content[i], node.Content[i+1]
			if k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode || k.Tag == "!!null" {
				return nil, fmt.Errorf("line %d: option keys must be strings or numbers", k.Line)
			}
			v, err := genericValue(val)
			if err != nil {
				return nil, err
			}
			if k.Tag == "!!merge" {
				merged, ok := v.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("line %d: merge value must be a mapping", k.Line)
				}
				for mk, mv := range merged {
					if _, set := out[mk]; !set {
						out[mk] = mv
					}
				}
				continue
			}
			out[k.Value] = v
		}
		return out, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func genericSchema(name string, kind Kind, description string, aliases ...string) Schema {
	return Schema{
		Name:        name,
		Aliases:     aliases,
		Kind:        kind,
		Description: description,
		New:         func() Options { return &GenericOptions{} },
	}
}
