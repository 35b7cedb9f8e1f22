package plugin

import "strings"

// ZoomingName is the identifier of the image zoom plugin.
const ZoomingName = "vuepress-plugin-zooming"

// ZoomingOptions configures the image zoom plugin.
type ZoomingOptions struct {
	// Selector picks the zoomable images. Generator default: ".content img".
	Selector string `yaml:"selector,omitempty" json:"selector,omitempty"`
	// Delay in milliseconds before images become zoomable after a page is entered. Generator default: 500.
	Delay *int `yaml:"delay,omitempty" json:"delay,omitempty"`
	// Options is handed to the zooming library unchanged.
	Options *ZoomStyle `yaml:"options,omitempty" json:"options,omitempty"`
}

// ZoomStyle is the style record of the zooming library.
type ZoomStyle struct {
	BgColor            string   `yaml:"bgColor,omitempty" json:"bgColor,omitempty"`
	BgOpacity          *float64 `yaml:"bgOpacity,omitempty" json:"bgOpacity,omitempty"`
	ZIndex             *int     `yaml:"zIndex,omitempty" json:"zIndex,omitempty"`
	ScaleBase          *float64 `yaml:"scaleBase,omitempty" json:"scaleBase,omitempty"`
	ScaleExtra         *float64 `yaml:"scaleExtra,omitempty" json:"scaleExtra,omitempty"`
	TransitionDuration *float64 `yaml:"transitionDuration,omitempty" json:"transitionDuration,omitempty"`
	EnableGrab         *bool    `yaml:"enableGrab,omitempty" json:"enableGrab,omitempty"`
}

// Validate checks the selector, delay and style bounds.
func (o *ZoomingOptions) Validate() []FieldError {
	var errs []FieldError
	if o.Selector != "" && strings.TrimSpace(o.Selector) == "" {
		errs = append(errs, FieldError{Field: "selector", Message: "selector must not be blank"})
	} else if o.Selector != "" && !balancedSelector(o.Selector) {
		errs = append(errs, FieldError{Field: "selector", Message: "selector has unbalanced brackets or parentheses"})
	}
	if o.Delay != nil && *o.Delay < 0 {
		errs = append(errs, FieldError{Field: "delay", Message: "delay must be >= 0"})
	}
	if s := o.Options; s != nil {
		if s.ZIndex != nil && *s.ZIndex < 0 {
			errs = append(errs, FieldError{Field: "options.zIndex", Message: "zIndex must be >= 0"})
		}
		if s.BgOpacity != nil && (*s.BgOpacity < 0 || *s.BgOpacity > 1) {
			errs = append(errs, FieldError{Field: "options.bgOpacity", Message: "bgOpacity must be within [0, 1]"})
		}
		if s.ScaleBase != nil && *s.ScaleBase <= 0 {
			errs = append(errs, FieldError{Field: "options.scaleBase", Message: "scaleBase must be > 0"})
		}
		if s.ScaleExtra != nil && *s.ScaleExtra < 0 {
			errs = append(errs, FieldError{Field: "options.scaleExtra", Message: "scaleExtra must be >= 0"})
		}
		if s.TransitionDuration != nil && *s.TransitionDuration < 0 {
			errs = append(errs, FieldError{Field: "options.transitionDuration", Message: "transitionDuration must be >= 0"})
		}
	}
	return errs
}

func balancedSelector(sel string) bool {
	var stack []rune
	pairs := map[rune]rune{')': '(', ']': '['}
	for _, r := range sel {
		switch r {
		case '(', '[':
			stack = append(stack, r)
		case ')', ']':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

func zoomingSchema() Schema {
	return Schema{
		Name:        ZoomingName,
		Aliases:     []string{"zooming"},
		Kind:        KindUI,
		Description: "Make images zoomable on click",
		New:         func() Options { return &ZoomingOptions{} },
		Defaults: func() Options {
			delay := 500
			return &ZoomingOptions{Selector: ".content img", Delay: &delay, Options: &ZoomStyle{}}
		},
	}
}
