package selector

import (
	"regexp"

	"github.com/alexisbeaulieu97/themed/internal/theme"
	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

// Classify converts a raw selector value into a Selector variant.
//
//	nil                                → Identity
//	Selector                           → itself
//	string                             → Name ("*" selects everything)
//	[]string, []any of strings         → Names
//	*regexp.Regexp                     → Pattern
//	theme.Theme, map[string]any        → Literal
//	func(prior, namespace theme.Theme) → Func
//	*Func, *func(prior, namespace)     → the pointer, as a Func
//
// Function values cannot be compared, so a wrapper instance recomputes on
// every evaluation that carries a function override. A pointer to the
// function has an identity: passing the same pointer again reuses the cached
// theme.
//
// Any other value is a ConfigurationError naming the received type.
func Classify(v any) (Selector, error) {
	switch s := v.(type) {
	case nil:
		return Identity{}, nil
	case *Func:
		if s == nil || *s == nil {
			return nil, apperrors.NewUnsupportedTypeError("selector", v)
		}
		return s, nil
	case *func(prior, namespace theme.Theme) theme.Theme:
		if s == nil || *s == nil {
			return nil, apperrors.NewUnsupportedTypeError("selector", v)
		}
		return (*Func)(s), nil
	case Selector:
		return s, nil
	case string:
		return Name(s), nil
	case []string:
		return Names(append([]string(nil), s...)), nil
	case []any:
		names := make([]string, 0, len(s))
		for _, item := range s {
			name, ok := item.(string)
			if !ok {
				return nil, apperrors.NewUnsupportedTypeError("selector", item)
			}
			names = append(names, name)
		}
		return Names(names), nil
	case *regexp.Regexp:
		if s == nil {
			return nil, apperrors.NewUnsupportedTypeError("selector", v)
		}
		return MatchPattern(s), nil
	case theme.Theme:
		return Literal(s), nil
	case map[string]any:
		return Literal(s), nil
	case func(prior, namespace theme.Theme) theme.Theme:
		if s == nil {
			return nil, apperrors.NewUnsupportedTypeError("selector", v)
		}
		return Func(s), nil
	default:
		return nil, apperrors.NewUnsupportedTypeError("selector", v)
	}
}

// MustClassify is Classify for selectors known to be valid, such as literals
// in tests and package-level declarations.
func MustClassify(v any) Selector {
	sel, err := Classify(v)
	if err != nil {
		panic(err)
	}
	return sel
}
