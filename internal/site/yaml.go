package site

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/plugin"
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts the three sidebar spellings:
//
//	- /python/             # bare path, label taken from the page
//	- [/, Home]            # (path, label) pair
//	- {title: .., children: [..]}
func (s *SidebarEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = SidebarEntry{Path: node.Value}
		return nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 || len(node.Content) > 2 {
			return fmt.Errorf("line %d: sidebar pair must be [path] or [path, label]", node.Line)
		}
		var pair []string
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("line %d: sidebar pair: %w", node.Line, err)
		}
		*s = SidebarEntry{Path: pair[0]}
		if len(pair) == 2 {
			s.Label = pair[1]
		}
		return nil
	case yaml.MappingNode:
		type plain SidebarEntry
		var p plain
		if err := plugin.DecodeStrict(node, &p); err != nil {
			return fmt.Errorf("line %d: sidebar group: %w", node.Line, err)
		}
		*s = SidebarEntry(p)
		return nil
	default:
		return fmt.Errorf("line %d: unsupported sidebar entry", node.Line)
	}
}

// MarshalYAML writes links back in the compact pair form.
func (s SidebarEntry) MarshalYAML() (any, error) {
	if s.IsGroup() {
		type plain SidebarEntry
		return plain(s), nil
	}
	if s.Label == "" {
		return s.Path, nil
	}
	return flowSeq(scalar(s.Path), scalar(s.Label)), nil
}

// UnmarshalYAML accepts a bare identifier, an [identifier, options] pair or
// a {name, options} mapping. Options are decoded through the plugin registry.
func (p *PluginDecl) UnmarshalYAML(node *yaml.Node) error {
	var name string
	var opts *yaml.Node

	switch node.Kind {
	case yaml.ScalarNode:
		name = node.Value
	case yaml.SequenceNode:
		if len(node.Content) == 0 || len(node.Content) > 2 {
			return fmt.Errorf("line %d: plugin entry must be [identifier] or [identifier, options]", node.Line)
		}
		if node.Content[0].Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: plugin identifier must be a string", node.Line)
		}
		name = node.Content[0].Value
		if len(node.Content) == 2 {
			opts = node.Content[1]
		}
	case yaml.MappingNode:
		var m struct {
			Name    string    `yaml:"name"`
			Options yaml.Node `yaml:"options"`
		}
		if err := plugin.DecodeStrict(node, &m); err != nil {
			return fmt.Errorf("line %d: plugin entry: %w", node.Line, err)
		}
		name = m.Name
		if !m.Options.IsZero() {
			opts = &m.Options
		}
	default:
		return fmt.Errorf("line %d: unsupported plugin entry", node.Line)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("line %d: plugin identifier must not be empty", node.Line)
	}

	*p = PluginDecl{Name: name}
	if opts == nil || opts.Tag == "!!null" {
		return nil
	}
	decoded, err := plugin.Default().Decode(name, opts)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	p.Options = decoded
	return nil
}

// MarshalYAML writes the declaration in the [identifier, options] form.
func (p PluginDecl) MarshalYAML() (any, error) {
	if p.IsBare() {
		return p.Name, nil
	}
	var opts yaml.Node
	if err := opts.Encode(p.Options); err != nil {
		return nil, err
	}
	return flowSeq(scalar(p.Name), &opts), nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func flowSeq(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: items}
}
