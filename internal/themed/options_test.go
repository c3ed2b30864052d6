package themed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themed/internal/theme"
	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

func resetDefaults() {
	configuredDefault.Store(nil)
}

func TestParseCompose(t *testing.T) {
	cases := map[string]Compose{"": ComposeDefault, "merge": ComposeMerge, "replace": ComposeReplace}
	for in, want := range cases {
		got, err := ParseCompose(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseCompose("append")
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.Equal(t, "replace", ComposeReplace.String())
}

func TestLayerOverridesNonZeroFields(t *testing.T) {
	got, err := layer(BuiltinDefaults(), Options{PropName: "styles", Purity: Pure})
	require.NoError(t, err)

	assert.Equal(t, "styles", got.PropName)
	assert.Equal(t, "stylesConfig", got.ConfigKey())
	assert.True(t, got.IsPure())
	assert.Equal(t, ComposeMerge, got.Compose)
	assert.NotNil(t, got.Merge)
	assert.NotNil(t, got.MergeProps)
}

func TestLayerComposeFunctionImpliesMerge(t *testing.T) {
	base := BuiltinDefaults()
	base.Compose = ComposeReplace

	got, err := layer(base, Options{ComposeWith: theme.Merge})
	require.NoError(t, err)
	assert.Equal(t, ComposeMerge, got.Compose)
	assert.NotNil(t, got.ComposeWith)

	replaced, err := layer(got, Options{Compose: ComposeReplace})
	require.NoError(t, err)
	assert.Nil(t, replaced.ComposeWith)
}

func TestLayerRejectsInvalidOptions(t *testing.T) {
	cases := map[string]Options{
		"compose function with replace": {ComposeWith: theme.Merge, Compose: ComposeReplace},
		"bad prop name":                 {PropName: "not a name"},
		"unknown compose":               {Compose: Compose(7)},
		"unknown purity":                {Purity: Purity(9)},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := layer(BuiltinDefaults(), opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		})
	}
}

func TestDecoratorExtend(t *testing.T) {
	d, err := NewDecorator(Options{Purity: Pure}, nil)
	require.NoError(t, err)

	styled, err := d.Extend(Options{PropName: "styles"})
	require.NoError(t, err)

	assert.Equal(t, "theme", d.Defaults().PropName)
	assert.Equal(t, "styles", styled.Defaults().PropName)
	assert.True(t, styled.Defaults().IsPure())
}

func TestDecorateFailsBeforeWrapping(t *testing.T) {
	d := newDecorator(t)

	_, err := d.Decorate("Foo", Options{PropName: "1bad"})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)

	_, err = d.Decorate(struct{}{}, Options{})
	var cfgErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "struct {}", cfgErr.Received)
}

func TestConfigureOnce(t *testing.T) {
	resetDefaults()
	t.Cleanup(resetDefaults)

	before, err := Wrap("Foo", Options{}, foo)
	require.NoError(t, err)
	assert.Equal(t, "theme", Default().Defaults().PropName)

	require.NoError(t, Configure(Options{PropName: "styles"}, nil))
	after, err := Wrap("Foo", Options{}, foo)
	require.NoError(t, err)

	assert.Equal(t, "theme", before.Options().PropName, "earlier wrappers keep their defaults")
	assert.Equal(t, "styles", after.Options().PropName)

	err = Configure(Options{PropName: "other"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.ErrorIs(t, err, ErrAlreadyConfigured)
	assert.Equal(t, "styles", Default().Defaults().PropName)
}

func TestConfigureRejectsInvalidOptions(t *testing.T) {
	resetDefaults()
	t.Cleanup(resetDefaults)

	err := Configure(Options{Compose: Compose(5)}, nil)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.Nil(t, configuredDefault.Load())
}
