package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themed/internal/theme"
)

func sample() theme.Theme {
	return theme.Theme{
		"root": "btn",
		"Icon": theme.Theme{"svg": "icon"},
		"hover": theme.Lazy(func() any {
			return "btn-hover"
		}),
		"gone":  theme.Lazy(func() any { return nil }),
		"size":  3,
		"blank": theme.Undefined,
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sample(), FormatYAML))

	assert.Equal(t, "Icon:\n  svg: icon\nhover: btn-hover\nroot: btn\nsize: 3\n", buf.String())
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sample(), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "btn-hover", decoded["hover"])
	assert.NotContains(t, decoded, "gone")
	assert.NotContains(t, decoded, "blank")
	assert.Less(t, strings.Index(buf.String(), `"Icon"`), strings.Index(buf.String(), `"root"`))
}

func TestEncodeTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sample(), FormatTOML))

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "btn", decoded["root"])
	assert.Equal(t, map[string]any{"svg": "icon"}, decoded["Icon"])
}

func TestEncodeNilTheme(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, decoded)
}

func TestEncodeUnknownFormat(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, sample(), Format("xml")))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestTree(t *testing.T) {
	out := Tree(sample())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "Icon")
	assert.Contains(t, lines[1], "svg")
	assert.Contains(t, out, "root")
	assert.Contains(t, out, "btn")
	assert.Contains(t, out, LazyMarker)
	assert.Contains(t, out, "undefined")
	assert.Contains(t, out, "3")
}

func TestTreeEmpty(t *testing.T) {
	assert.Contains(t, Tree(nil), "empty theme")
}

func TestEncodeTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, theme.Theme{"root": "btn"}, FormatTree))
	assert.Contains(t, buf.String(), "root")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
