package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml":       {Data: []byte("en:\n  validation:\n    present: \"%{field} is required\"\n")},
		"locales/extra/en.json": {Data: []byte(`{"en": {"validation": {"absent": "%{field} must be blank"}}}`)},
		"locales/fr.yml":        {Data: []byte("fr:\n  validation:\n    present: \"%{field} est obligatoire\"\n")},
		"locales/notes.txt":     {Data: []byte("ignored")},
		"other/de.yaml":         {Data: []byte("de:\n  validation:\n    present: x\n")},
	}

	data, err := i18n.NewFSAdapter(fsys, "locales").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, data, 2)

	validation := data["en"]["validation"].(map[string]any)
	assert.Equal(t, "%{field} is required", validation["present"])
	assert.Equal(t, "%{field} must be blank", validation["absent"], "files for the same language are merged")
	assert.Contains(t, data, "fr")
	assert.NotContains(t, data, "de")

	t.Run("invalid structure", func(t *testing.T) {
		bad := fstest.MapFS{"en.yaml": {Data: []byte("en: just a string\n")}}
		_, err := i18n.NewFSAdapter(bad, "").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("broken yaml", func(t *testing.T) {
		bad := fstest.MapFS{"en.yaml": {Data: []byte("en: [unclosed\n")}}
		_, err := i18n.NewFSAdapter(bad, "").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("broken json", func(t *testing.T) {
		bad := fstest.MapFS{"en.json": {Data: []byte("{")}}
		_, err := i18n.NewFSAdapter(bad, "").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestMultiAdapter(t *testing.T) {
	overrides := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{"present": "Please fill in %{field}"}},
	}}

	data, err := i18n.MultiAdapter{i18n.DefaultAdapter(), nil, overrides}.Load(context.Background())
	require.NoError(t, err)

	validation := data["en"]["validation"].(map[string]any)
	assert.Equal(t, "Please fill in %{field}", validation["present"])
	assert.Equal(t, "%{field} must not be filled in", validation["absent"], "untouched keys survive the merge")
	assert.Contains(t, data, "de")
}

func TestNewParserForFile(t *testing.T) {
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.YML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.json"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))

	assert.True(t, i18n.NewYAMLParser().SupportsFileExtension(".yml"))
	assert.True(t, i18n.NewJSONParser().SupportsFileExtension("JSON"))
	assert.False(t, i18n.NewJSONParser().SupportsFileExtension("yaml"))
}
