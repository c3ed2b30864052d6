package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const yamlDocument = `version: "1"
defaults:
  prop_name: theme
  compose: merge
namespace:
  Button: { root: btn, label: btn-label }
  Primary: { root: btn-primary }
wrappers:
  - name: Button
    component: Button
    selector: Button
  - name: PrimaryButton
    wraps: Button
    selector: [Primary]
    options: { prop_name: styles, pure: true }
  - name: Bars
    component: Bars
    selector: { pattern: "^Ba" }
  - name: Inline
    component: Inline
    selector:
      theme: { root: inline }
  - name: Everything
    component: Everything
`

func TestParseDocumentYAML(t *testing.T) {
	doc, err := ParseDocument(writeDocument(t, "themes.yaml", yamlDocument))
	require.NoError(t, err)

	assert.Equal(t, "1", doc.Version)
	assert.Equal(t, "merge", doc.Defaults.Compose)
	assert.Equal(t, map[string]any{"root": "btn", "label": "btn-label"}, doc.Namespace["Button"])
	require.Len(t, doc.Wrappers, 5)

	assert.Equal(t, "Button", doc.Wrappers[0].Selector.Name)
	assert.Equal(t, []string{"Primary"}, doc.Wrappers[1].Selector.Names)
	assert.Equal(t, "Button", doc.Wrappers[1].Wraps)
	assert.Equal(t, "styles", doc.Wrappers[1].Options.PropName)
	require.NotNil(t, doc.Wrappers[1].Options.Pure)
	assert.True(t, *doc.Wrappers[1].Options.Pure)
	assert.Equal(t, "^Ba", doc.Wrappers[2].Selector.Pattern)
	assert.Equal(t, map[string]any{"root": "inline"}, doc.Wrappers[3].Selector.Theme)
	assert.True(t, doc.Wrappers[4].Selector.IsZero())
}

func TestParseDocumentJSONC(t *testing.T) {
	content := `{
	// comments and trailing commas are allowed
	"version": "1.0",
	"flat": true,
	"separator": "_",
	"namespace": {"Foo_foo": "foo", "Foo_bar": "bar",},
	"wrappers": [
		{"name": "Foo", "component": "Foo", "selector": "Foo"}, /* trailing */
	],
}`
	doc, err := ParseDocument(writeDocument(t, "themes.jsonc", content))
	require.NoError(t, err)

	assert.True(t, doc.Flat)
	assert.Equal(t, "_", doc.Separator)
	assert.Equal(t, "foo", doc.Namespace["Foo_foo"])
	require.Len(t, doc.Wrappers, 1)
	assert.Equal(t, "Foo", doc.Wrappers[0].Selector.Name)
}

func TestParseDocumentTOML(t *testing.T) {
	content := `version = "1"

[defaults]
compose = "replace"

[namespace.Button]
root = "btn"

[[wrappers]]
name = "Button"
component = "Button"
selector = "Button"

[[wrappers]]
name = "Bars"
component = "Bars"
selector = { names = ["Button"] }
`
	doc, err := ParseDocument(writeDocument(t, "themes.toml", content))
	require.NoError(t, err)

	assert.Equal(t, "replace", doc.Defaults.Compose)
	assert.Equal(t, map[string]any{"root": "btn"}, doc.Namespace["Button"])
	require.Len(t, doc.Wrappers, 2)
	assert.Equal(t, "Button", doc.Wrappers[0].Selector.Name)
	assert.Equal(t, []string{"Button"}, doc.Wrappers[1].Selector.Names)
}

func TestParseDocumentReportsLine(t *testing.T) {
	content := "version: \"1\"\nnamespace:\n  Button: [unterminated\n"
	_, err := ParseDocument(writeDocument(t, "broken.yaml", content))

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Line)
	assert.Contains(t, parseErr.Path, "broken.yaml")
}

func TestParseDocumentTOMLLine(t *testing.T) {
	_, err := ParseDocument(writeDocument(t, "broken.toml", "version = \"1\"\nnamespace = = 3\n"))

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Line)
}

func TestParseDocumentRejectsScalarSelectorOfWrongType(t *testing.T) {
	content := "version: \"1\"\nwrappers:\n  - name: Foo\n    component: Foo\n    selector: 42\n"
	_, err := ParseDocument(writeDocument(t, "bad.yaml", content))

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "selector must be a name")
}

func TestParseDocumentMissingFile(t *testing.T) {
	_, err := ParseDocument(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseDocumentUnsupportedExtension(t *testing.T) {
	_, err := ParseDocument(writeDocument(t, "themes.ini", "version=1"))

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "unsupported document extension")
}

func TestParseTheme(t *testing.T) {
	raw, err := ParseTheme(writeDocument(t, "theme.json", `{"Button": {"root": "btn"}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Button": map[string]any{"root": "btn"}}, raw)

	empty, err := ParseTheme(writeDocument(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestExtractLine(t *testing.T) {
	assert.Equal(t, 0, extractLine(nil))
	assert.Equal(t, 12, extractLine(errors.New("yaml: line 12: did not find expected key")))
	assert.Equal(t, 0, extractLine(errors.New("no line here")))
}
