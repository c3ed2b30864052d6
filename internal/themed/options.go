package themed

import (
	"dario.cat/mergo"

	"github.com/alexisbeaulieu97/themed/internal/theme"
	"github.com/alexisbeaulieu97/themed/internal/validation"
	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

// DefaultPropName is the props key that carries the theme.
const DefaultPropName = "theme"

// MergeFunc folds source into target and returns the result. target is an
// accumulator owned by the caller; source must not be mutated.
type MergeFunc func(target, source theme.Theme) theme.Theme

// MergePropsFunc combines the caller's own props with the derived theme props.
type MergePropsFunc func(own, themeProps Props) Props

// Compose selects how a local override meets the resolved base theme.
type Compose int

const (
	// ComposeDefault inherits the policy of the layer below.
	ComposeDefault Compose = iota
	// ComposeMerge folds the override into the base.
	ComposeMerge
	// ComposeReplace uses the override instead of the base.
	ComposeReplace
)

func (c Compose) String() string {
	switch c {
	case ComposeMerge:
		return "merge"
	case ComposeReplace:
		return "replace"
	default:
		return "default"
	}
}

// ParseCompose maps "merge" and "replace" to their Compose value. The empty
// string maps to ComposeDefault.
func ParseCompose(s string) (Compose, error) {
	switch s {
	case "":
		return ComposeDefault, nil
	case "merge":
		return ComposeMerge, nil
	case "replace":
		return ComposeReplace, nil
	default:
		return ComposeDefault, apperrors.NewConfigurationError("options", "unknown compose policy "+s, nil)
	}
}

// Purity controls whether a wrapper may hand back its previous output props.
type Purity int

const (
	PurityDefault Purity = iota
	Pure
	Impure
)

// PurityOf converts a boolean setting into a Purity.
func PurityOf(pure bool) Purity {
	if pure {
		return Pure
	}
	return Impure
}

// Options configures themed wrappers. Zero-valued fields inherit from the
// layer below: built-in defaults, then decorator defaults, then the wrapped
// wrapper's options.
type Options struct {
	// PropName is the props key receiving the theme. The props key
	// PropName+"Config" carries per-instance InstanceOptions.
	PropName string `yaml:"prop_name" validate:"required,prop_name"`
	// Merge folds configured sources together. Defaults to theme.Merge.
	Merge MergeFunc `yaml:"-"`
	// Compose decides whether a local override merges into or replaces the base.
	Compose Compose `yaml:"compose" validate:"oneof=1 2"`
	// ComposeWith, when set, merges the local override with a custom function.
	ComposeWith MergeFunc `yaml:"-"`
	// MergeProps combines own props and theme props.
	MergeProps MergePropsFunc `yaml:"-"`
	Purity     Purity         `yaml:"pure" validate:"oneof=1 2"`
}

// BuiltinDefaults returns the options every decorator starts from.
func BuiltinDefaults() Options {
	return Options{
		PropName:   DefaultPropName,
		Merge:      theme.Merge,
		Compose:    ComposeMerge,
		MergeProps: DefaultMergeProps,
		Purity:     Impure,
	}
}

// ConfigKey is the props key holding per-instance options.
func (o Options) ConfigKey() string {
	return o.PropName + "Config"
}

// IsPure reports whether the options describe a pure wrapper.
func (o Options) IsPure() bool {
	return o.Purity == Pure
}

// layer returns base overridden by every non-zero field of next. The result is
// validated; base and next are left untouched.
func layer(base, next Options) (Options, error) {
	if next.ComposeWith != nil && next.Compose == ComposeReplace {
		return Options{}, apperrors.NewConfigurationError("options", "compose function cannot be combined with replace", nil)
	}

	merged := base
	if err := mergo.Merge(&merged, next, mergo.WithOverride); err != nil {
		return Options{}, apperrors.NewConfigurationError("options", "layer options", err)
	}

	switch {
	case next.ComposeWith != nil && next.Compose == ComposeDefault:
		merged.Compose = ComposeMerge
	case next.Compose == ComposeReplace:
		merged.ComposeWith = nil
	}

	if err := validation.Struct(merged); err != nil {
		return Options{}, apperrors.NewConfigurationError("options", "invalid options", err)
	}
	if merged.Merge == nil || merged.MergeProps == nil {
		return Options{}, apperrors.NewConfigurationError("options", "merge functions are required", nil)
	}
	return merged, nil
}
