// Package config reads theme documents: a namespace of themes plus the
// wrappers to build over it, authored as YAML, JSON with comments or TOML.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document represents a full theme document.
type Document struct {
	Version   string         `yaml:"version" validate:"required,doc_version"`
	Flat      bool           `yaml:"flat,omitempty"`
	Separator string         `yaml:"separator,omitempty" validate:"omitempty,max=4"`
	Defaults  Defaults       `yaml:"defaults,omitempty"`
	Namespace map[string]any `yaml:"namespace,omitempty"`
	Wrappers  []WrapperSpec  `yaml:"wrappers,omitempty" validate:"omitempty,dive"`
}

// Defaults holds wrapper options as they are spelled in documents. It is used
// both for the document-wide defaults and for per-wrapper options.
type Defaults struct {
	PropName string `yaml:"prop_name,omitempty" validate:"omitempty,prop_name"`
	Compose  string `yaml:"compose,omitempty" validate:"omitempty,oneof=merge replace"`
	Pure     *bool  `yaml:"pure,omitempty"`
}

// WrapperSpec declares one themed wrapper. Exactly one of Component and Wraps
// is set: Component starts a new chain, Wraps extends an earlier wrapper.
type WrapperSpec struct {
	Name      string        `yaml:"name" validate:"required,max=100"`
	Component string        `yaml:"component,omitempty" validate:"omitempty,max=100"`
	Wraps     string        `yaml:"wraps,omitempty"`
	Selector  *SelectorSpec `yaml:"selector,omitempty"`
	Options   Defaults      `yaml:"options,omitempty"`
}

// SelectorSpec is the document form of a selector. A scalar decodes into Name,
// a sequence into Names, and a mapping sets one of the fields explicitly.
type SelectorSpec struct {
	Name    string         `yaml:"name,omitempty"`
	Names   []string       `yaml:"names,omitempty"`
	Pattern string         `yaml:"pattern,omitempty" validate:"omitempty,regexp"`
	Theme   map[string]any `yaml:"theme,omitempty"`
}

// UnmarshalYAML accepts the scalar and sequence shorthands next to the mapping form.
func (s *SelectorSpec) UnmarshalYAML(value *yaml.Node) error {
	*s = SelectorSpec{}

	switch value.Kind {
	case yaml.ScalarNode:
		switch value.ShortTag() {
		case "!!null":
			return nil
		case "!!str":
			s.Name = value.Value
			return nil
		default:
			return fmt.Errorf("line %d: selector must be a name, a list of names or a mapping, got %s", value.Line, value.ShortTag())
		}
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		s.Names = append([]string{}, names...)
		return nil
	case yaml.MappingNode:
		type rawSelector SelectorSpec
		var raw rawSelector
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*s = SelectorSpec(raw)
		return nil
	default:
		return fmt.Errorf("line %d: unsupported selector node", value.Line)
	}
}

// Forms returns the names of the selector forms that are set.
func (s *SelectorSpec) Forms() []string {
	if s == nil {
		return nil
	}
	var forms []string
	if s.Name != "" {
		forms = append(forms, "name")
	}
	if s.Names != nil {
		forms = append(forms, "names")
	}
	if s.Pattern != "" {
		forms = append(forms, "pattern")
	}
	if s.Theme != nil {
		forms = append(forms, "theme")
	}
	return forms
}

// IsZero reports whether no selector form is set; such a selector selects
// nothing of its own and the wrapper inherits its sources unchanged.
func (s *SelectorSpec) IsZero() bool {
	return len(s.Forms()) == 0
}
