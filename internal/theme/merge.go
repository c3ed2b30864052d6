package theme

import "strings"

// Merge folds source into target and returns target.
//
// target is an accumulator owned by the caller of Merge: it is mutated in
// place (a nil target is replaced by a new theme). source is only read. Nested
// themes copied over from source are cloned first, so later merges into the
// accumulator never reach back into source.
func Merge(target, source Theme) Theme {
	if target == nil {
		target = New()
	}
	for key, incoming := range source {
		mergeKey(target, key, incoming)
	}
	return target
}

// Compose merges themes left to right into a fresh accumulator. None of the
// arguments is mutated. nil themes are skipped.
func Compose(themes ...Theme) Theme {
	acc := New()
	for _, t := range themes {
		acc = Merge(acc, t)
	}
	return acc
}

func mergeKey(target Theme, key string, incoming any) {
	current, present := target[key]
	if !present || current == Undefined {
		if incoming == nil {
			return
		}
		target[key] = own(incoming)
		return
	}

	switch KindOf(current) {
	case KindString:
		if s, ok := incoming.(string); ok {
			joined := joinTokens(current.(string), s)
			if joined == "" {
				delete(target, key)
				return
			}
			target[key] = joined
		}
	case KindTheme:
		if src, ok := AsTheme(incoming); ok {
			dst, _ := AsTheme(current)
			Merge(dst, src)
		}
	case KindLazy:
		if next, ok := AsLazy(incoming); ok {
			prev, _ := AsLazy(current)
			target[key] = combineLazy(prev, next)
		}
	}
}

// own returns a value safe to store in an accumulator.
func own(v any) any {
	if t, ok := AsTheme(v); ok {
		return Clone(t)
	}
	return v
}

func joinTokens(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return strings.Join([]string{a, b}, " ")
	}
}

func combineLazy(first, second Lazy) Lazy {
	return func() any {
		a, okA := first().(string)
		b, okB := second().(string)
		if okA && okB {
			return a + b
		}
		return nil
	}
}
