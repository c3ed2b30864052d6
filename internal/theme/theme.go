// Package theme implements the value model and the merge engine for nested
// theme objects.
//
// A Theme maps string keys to leaves. The engine only cares about the kind of
// each leaf:
//
//   - string: a token, concatenated with a single space on merge
//   - nested theme (Theme or map[string]any): merged recursively
//   - lazy leaf (Lazy, func() any, func() string): composed into a new Lazy
//   - nil: the null sentinel, never materialised as a key by a merge
//   - anything else: opaque, kept as-is and never overwritten
//
// Merges are asymmetric. The value already in the accumulator wins whenever
// the incoming value has a different kind.
package theme

// Theme is a nested, unordered mapping of theme leaves.
type Theme map[string]any

// Lazy is a deferred leaf. Lazy leaves that produce strings are concatenated
// (without a separator) when two of them meet at the same key.
type Lazy func() any

type undefinedValue struct{}

// Undefined marks a key that is present but carries no value. It is produced
// by names selectors for entries missing from the namespace and behaves like
// an absent key when it is the merge target.
var Undefined any = undefinedValue{}

// Kind classifies a theme leaf for merging.
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindString
	KindTheme
	KindLazy
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindTheme:
		return "theme"
	case KindLazy:
		return "lazy"
	default:
		return "other"
	}
}

// KindOf reports the merge kind of v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case undefinedValue:
		return KindAbsent
	case string:
		return KindString
	case Theme, map[string]any:
		return KindTheme
	case Lazy, func() any, func() string:
		return KindLazy
	default:
		return KindOther
	}
}

// New returns an empty theme.
func New() Theme {
	return Theme{}
}

// AsTheme returns v as a Theme when it is a nested theme value.
func AsTheme(v any) (Theme, bool) {
	switch t := v.(type) {
	case Theme:
		return t, true
	case map[string]any:
		return Theme(t), true
	default:
		return nil, false
	}
}

// AsLazy returns v as a Lazy when it is a lazy leaf.
func AsLazy(v any) (Lazy, bool) {
	switch fn := v.(type) {
	case Lazy:
		return fn, fn != nil
	case func() any:
		return Lazy(fn), fn != nil
	case func() string:
		if fn == nil {
			return nil, false
		}
		return func() any { return fn() }, true
	default:
		return nil, false
	}
}

// Get returns the value at key and whether it is present and defined.
func (t Theme) Get(key string) (any, bool) {
	v, ok := t[key]
	if !ok || v == Undefined {
		return nil, false
	}
	return v, true
}

// Sub returns the nested theme at key, or nil.
func (t Theme) Sub(key string) Theme {
	sub, _ := AsTheme(t[key])
	return sub
}

// String returns the string leaf at key, or "".
func (t Theme) String(key string) string {
	s, _ := t[key].(string)
	return s
}
