package themed

import "reflect"

// Props is the property set flowing into and out of a wrapper.
type Props map[string]any

// InstanceOptions overrides the compose policy of a single wrapper instance.
// It is read from the props key Options.ConfigKey(). Pass it as a pointer when
// it carries ComposeWith: the instance keeps its cached theme for as long as
// the same pointer comes back.
type InstanceOptions struct {
	Compose     Compose
	ComposeWith MergeFunc
}

// DefaultMergeProps returns themeProps overlaid with own; own props win.
func DefaultMergeProps(own, themeProps Props) Props {
	out := make(Props, len(own)+len(themeProps))
	for k, v := range themeProps {
		out[k] = v
	}
	for k, v := range own {
		out[k] = v
	}
	return out
}

// without returns a copy of p minus keys.
func (p Props) without(keys ...string) Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func shallowEqual(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !sameRef(va, vb) {
			return false
		}
	}
	return true
}

// sameRef compares values by identity: maps, pointers and channels by
// address, slices by backing array and length, comparable values by ==.
// Function values never compare equal; a pointer to a function does.
func sameRef(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Func:
		return false
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

func instanceOptionsOf(v any) (InstanceOptions, bool) {
	switch o := v.(type) {
	case InstanceOptions:
		return o, true
	case *InstanceOptions:
		if o == nil {
			return InstanceOptions{}, false
		}
		return *o, true
	default:
		return InstanceOptions{}, false
	}
}

// sameInstanceOptions follows the identity rules of sameRef for pointers and
// otherwise compares the compose policy. Values holding a ComposeWith function
// never compare equal.
func sameInstanceOptions(a, b any) bool {
	if sameRef(a, b) {
		return true
	}
	oa, okA := instanceOptionsOf(a)
	ob, okB := instanceOptionsOf(b)
	if !okA || !okB {
		return !okA && !okB
	}
	return oa.Compose == ob.Compose && oa.ComposeWith == nil && ob.ComposeWith == nil
}
