package theme

import (
	"regexp"
	"strings"
)

// DefaultSeparator joins namespace and class segments in flattened keys.
const DefaultSeparator = "-"

var segmentPattern = regexp.MustCompile(`[A-Za-z]+[^A-Z]+`)

// Expand turns a flattened theme such as
//
//	{"Foo-foo": "a", "Foo-Bar-bar": "b", "FooBar-foo_bar": "c"}
//
// into nested themes:
//
//	{"Foo": {"foo": "a", "Bar": {"bar": "b"}}, "FooBar": {"foo_bar": "c"}}
//
// Keys without any recognisable segment are ignored.
func Expand(flat map[string]any, separator string) Theme {
	if separator == "" {
		separator = DefaultSeparator
	}

	out := New()
	for path, value := range flat {
		segments := segmentPattern.FindAllString(path, -1)
		if len(segments) == 0 {
			continue
		}

		pointer := out
		for _, segment := range segments {
			parts := strings.Split(segment, separator)
			namespace := parts[0]
			className := strings.Join(parts[1:], separator)

			child, ok := AsTheme(pointer[namespace])
			if !ok {
				child = New()
				pointer[namespace] = child
			}

			if className != "" {
				child[className] = value
			} else {
				pointer = child
			}
		}
	}
	return out
}
