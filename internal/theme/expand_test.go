package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flattened(sep string) map[string]any {
	return map[string]any{
		"Foo" + sep + "foo":                "foo",
		"Foo" + sep + "foo_bar":            "foo-bar",
		"FooBar" + sep + "foo":             "foo",
		"FooBar" + sep + "foo_bar":         "foo-bar",
		"Foo" + sep + "Bar" + sep + "bar": "bar",
	}
}

func expanded() Theme {
	return Theme{
		"Foo": Theme{
			"foo":     "foo",
			"foo_bar": "foo-bar",
			"Bar":     Theme{"bar": "bar"},
		},
		"FooBar": Theme{
			"foo":     "foo",
			"foo_bar": "foo-bar",
		},
	}
}

func TestExpandFlattenedTheme(t *testing.T) {
	assert.Equal(t, expanded(), Expand(flattened("-"), ""))
}

func TestExpandCustomSeparator(t *testing.T) {
	assert.Equal(t, expanded(), Expand(flattened("_"), "_"))
}

func TestExpandIgnoresUnmatchedKeys(t *testing.T) {
	result := Expand(map[string]any{"123": "x", "--": "y"}, "-")
	assert.Equal(t, Theme{}, result)
}

func TestCloneDetachesNestedThemes(t *testing.T) {
	src := Theme{"a": map[string]any{"b": "x"}}
	clone := Clone(src)

	clone.Sub("a")["b"] = "changed"

	assert.Equal(t, "x", src["a"].(map[string]any)["b"])
	assert.Nil(t, Clone(nil))
}

func TestMaterializeInvokesLazyLeaves(t *testing.T) {
	src := Theme{
		"css":   Lazy(func() any { return ".a{}" }),
		"gone":  func() any { return nil },
		"undef": Undefined,
		"nest":  Theme{"inner": func() string { return "i" }},
		"n":     3,
	}

	assert.Equal(t, Theme{
		"css":  ".a{}",
		"nest": Theme{"inner": "i"},
		"n":    3,
	}, Materialize(src))
}
