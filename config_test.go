package bionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, StoreSQLite, cfg.Store.Backend)
	assert.NotEmpty(t, cfg.Store.Path)
	assert.NotEmpty(t, cfg.Model.Host)
	assert.NotEmpty(t, cfg.Model.ExtractorModel)
	assert.NotEmpty(t, cfg.Model.SynthesizerModel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
store:
  backend: badger
  path: /tmp/events-store
model:
  host: http://models.internal:8080
  extractor_model: small-model
  synthesizer_model: big-model
search:
  min_similarity: 0.3
  max_results: 10
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, StoreBadger, cfg.Store.Backend)
		assert.Equal(t, "/tmp/events-store", cfg.Store.Path)
		assert.Equal(t, "http://models.internal:8080", cfg.Model.Host)
		assert.Equal(t, "small-model", cfg.Model.ExtractorModel)
		assert.Equal(t, "big-model", cfg.Model.SynthesizerModel)
		assert.Equal(t, 0.3, cfg.Search.MinSimilarity)
		assert.Equal(t, 10, cfg.Search.MaxResults)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "search:\n  max_results: 5\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		defaults := DefaultConfig()
		assert.Equal(t, defaults.Store, cfg.Store)
		assert.Equal(t, defaults.Model, cfg.Model)
		assert.Equal(t, defaults.Search.MinSimilarity, cfg.Search.MinSimilarity)
		assert.Equal(t, 5, cfg.Search.MaxResults)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("store: ["), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Store.Backend = "postgres"

		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrUnknownStoreBackend)
	})

	t.Run("sqlite requires path", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Store.Path = ""

		assert.Error(t, cfg.Validate())
	})

	t.Run("badger allows empty path", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Store.Backend = StoreBadger
		cfg.Store.Path = ""

		assert.NoError(t, cfg.Validate())
	})

	t.Run("similarity bounds", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Search.MinSimilarity = 1.5
		assert.Error(t, cfg.Validate())

		cfg.Search.MinSimilarity = -0.1
		assert.Error(t, cfg.Validate())
	})

	t.Run("max results positive", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Search.MaxResults = 0
		assert.Error(t, cfg.Validate())
	})
}
