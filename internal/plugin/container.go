package plugin

import "regexp"

// ContainerName is the identifier of the custom markdown container plugin.
const ContainerName = "container"

var containerTypePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ContainerOptions declares one custom markdown container (`::: type`).
type ContainerOptions struct {
	Type         string `yaml:"type" json:"type"`
	DefaultTitle string `yaml:"defaultTitle,omitempty" json:"defaultTitle,omitempty"`
	Before       string `yaml:"before,omitempty" json:"before,omitempty"`
	After        string `yaml:"after,omitempty" json:"after,omitempty"`
	Marker       string `yaml:"marker,omitempty" json:"marker,omitempty"`
}

// Validate requires a container type usable as a markdown token.
func (o *ContainerOptions) Validate() []FieldError {
	var errs []FieldError
	switch {
	case o.Type == "":
		errs = append(errs, FieldError{Field: "type", Message: "type is required"})
	case !containerTypePattern.MatchString(o.Type):
		errs = append(errs, FieldError{Field: "type", Message: "type may only contain letters, digits, '-' and '_'"})
	}
	if (o.Before == "") != (o.After == "") {
		errs = append(errs, FieldError{Field: "before", Message: "before and after must be declared together"})
	}
	return errs
}

func containerSchema() Schema {
	return Schema{
		Name:            ContainerName,
		Aliases:         []string{"@vuepress/container", "vuepress-plugin-container", "@vuepress/plugin-container"},
		Kind:            KindMarkdown,
		Description:     "Register a custom markdown container",
		RequiresOptions: true,
		New:             func() Options { return &ContainerOptions{} },
	}
}
