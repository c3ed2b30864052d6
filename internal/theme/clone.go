package theme

// Clone returns a deep copy of the nested theme structure of t. Leaves are
// shared; only maps are copied. Nested map[string]any values become Themes.
func Clone(t Theme) Theme {
	if t == nil {
		return nil
	}
	out := make(Theme, len(t))
	for key, v := range t {
		if sub, ok := AsTheme(v); ok {
			out[key] = Clone(sub)
			continue
		}
		out[key] = v
	}
	return out
}

// Materialize returns a deep copy of t with every lazy leaf invoked. Lazy
// leaves that produce nil and Undefined keys are dropped, which leaves a tree
// of plain data suitable for encoding.
func Materialize(t Theme) Theme {
	if t == nil {
		return nil
	}
	out := make(Theme, len(t))
	for key, v := range t {
		switch KindOf(v) {
		case KindAbsent:
			continue
		case KindTheme:
			sub, _ := AsTheme(v)
			out[key] = Materialize(sub)
		case KindLazy:
			fn, _ := AsLazy(v)
			if res := fn(); res != nil {
				out[key] = res
			}
		default:
			out[key] = v
		}
	}
	return out
}
