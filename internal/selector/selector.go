// Package selector derives theme fragments from a shared namespace.
//
// Selectors are a closed set of variants. Raw values (strings, string slices,
// patterns, literal themes, functions) are classified into a variant once, at
// configuration time, by Classify; resolution then switches over the variant
// instead of probing value shapes on every evaluation.
package selector

import (
	"regexp"

	"github.com/alexisbeaulieu97/themed/internal/theme"
	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

// Wildcard is the name that selects the whole namespace.
const Wildcard = "*"

// Kind enumerates selector variants.
type Kind int

const (
	KindIdentity Kind = iota
	KindName
	KindNames
	KindPattern
	KindLiteral
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindName:
		return "name"
	case KindNames:
		return "names"
	case KindPattern:
		return "pattern"
	case KindLiteral:
		return "literal"
	default:
		return "func"
	}
}

// Selector picks or builds a theme fragment from a namespace.
type Selector interface {
	Kind() Kind
	// Select returns the fragment for namespace. prior is the theme resolved
	// so far; only function selectors look at it.
	Select(prior, namespace theme.Theme) theme.Theme
	sealed()
}

// Identity selects the whole namespace.
type Identity struct{}

// Name selects a single named entry. Name(Wildcard) behaves like Identity.
type Name string

// Names builds a theme holding exactly the listed entries. Entries missing
// from the namespace are present with the value theme.Undefined.
type Names []string

// Pattern selects every entry whose key matches.
type Pattern struct {
	re *regexp.Regexp
}

// Literal is used verbatim and ignores the namespace.
type Literal theme.Theme

// Func derives a theme from the theme resolved so far and the namespace.
type Func func(prior, namespace theme.Theme) theme.Theme

// NewPattern compiles expr into a Pattern selector.
func NewPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, apperrors.NewConfigurationError("selector", "invalid pattern "+expr, err)
	}
	return Pattern{re: re}, nil
}

// MatchPattern wraps an already compiled expression.
func MatchPattern(re *regexp.Regexp) Pattern {
	return Pattern{re: re}
}

func (Identity) Kind() Kind { return KindIdentity }
func (Name) Kind() Kind     { return KindName }
func (Names) Kind() Kind    { return KindNames }
func (Pattern) Kind() Kind  { return KindPattern }
func (Literal) Kind() Kind  { return KindLiteral }
func (Func) Kind() Kind     { return KindFunc }

func (Identity) sealed() {}
func (Name) sealed()     {}
func (Names) sealed()    {}
func (Pattern) sealed()  {}
func (Literal) sealed()  {}
func (Func) sealed()     {}

func (Identity) Select(_, namespace theme.Theme) theme.Theme {
	return namespace
}

func (n Name) Select(_, namespace theme.Theme) theme.Theme {
	if string(n) == Wildcard {
		return namespace
	}
	return namespace.Sub(string(n))
}

func (n Names) Select(_, namespace theme.Theme) theme.Theme {
	out := make(theme.Theme, len(n))
	for _, name := range n {
		if v, ok := namespace.Get(name); ok {
			out[name] = v
			continue
		}
		out[name] = theme.Undefined
	}
	return out
}

func (p Pattern) Select(_, namespace theme.Theme) theme.Theme {
	out := theme.New()
	if p.re == nil {
		return out
	}
	for key, v := range namespace {
		if p.re.MatchString(key) {
			out[key] = v
		}
	}
	return out
}

// String returns the source expression.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

func (l Literal) Select(_, _ theme.Theme) theme.Theme {
	return theme.Theme(l)
}

func (f Func) Select(prior, namespace theme.Theme) theme.Theme {
	if f == nil {
		return nil
	}
	return f(prior, namespace)
}

// Resolve returns the fragment sel derives from namespace. A nil selector is
// treated as Identity.
func Resolve(sel Selector, namespace theme.Theme) theme.Theme {
	return ResolveWith(sel, nil, namespace)
}

// ResolveWith is Resolve with the theme resolved so far, which function
// selectors receive as their first argument.
func ResolveWith(sel Selector, prior, namespace theme.Theme) theme.Theme {
	if sel == nil {
		return namespace
	}
	return sel.Select(prior, namespace)
}

// IsIdentity reports whether sel selects the namespace unchanged.
func IsIdentity(sel Selector) bool {
	if sel == nil {
		return true
	}
	_, ok := sel.(Identity)
	return ok
}
