// Copyright 2025 Amharies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package bionary

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amharies/BIONARY--CHATBOT/ai"
)

// StoreBackend names a storage implementation.
type StoreBackend string

const (
	// StoreSQLite keeps the catalog in a SQLite database with trigram
	// similarity pushed into the query.
	StoreSQLite StoreBackend = "sqlite"

	// StoreBadger keeps the catalog in an embedded BadgerDB key-value
	// store with similarity computed during the scan.
	StoreBadger StoreBackend = "badger"
)

// ErrUnknownStoreBackend reports a store backend name that matches no
// implementation.
var ErrUnknownStoreBackend = errors.New("unknown store backend")

// StoreConfig selects and locates the event store.
type StoreConfig struct {
	Backend StoreBackend `yaml:"backend"`
	Path    string       `yaml:"path"`
}

// ModelConfig holds the generative-model connection settings.
type ModelConfig struct {
	Host             string `yaml:"host"`
	ExtractorModel   string `yaml:"extractor_model"`
	SynthesizerModel string `yaml:"synthesizer_model"`
}

// SearchConfig tunes the retrieval stage.
type SearchConfig struct {
	// MinSimilarity is the trigram score below which fuzzy matches are
	// discarded. Operator-tunable, never taken from user input.
	MinSimilarity float64 `yaml:"min_similarity"`

	// MaxResults caps the number of records returned per question.
	MaxResults int `yaml:"max_results"`
}

// Config is the full agent configuration, loadable from a YAML file.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Model  ModelConfig  `yaml:"model"`
	Search SearchConfig `yaml:"search"`
}

// DefaultConfig returns a configuration suitable for local use: a SQLite
// store next to the working directory and a local OpenAI-compatible
// model service.
func DefaultConfig() *Config {
	aiDefaults := ai.DefaultConfig()
	return &Config{
		Store: StoreConfig{
			Backend: StoreSQLite,
			Path:    "events.db",
		},
		Model: ModelConfig{
			Host:             aiDefaults.Host,
			ExtractorModel:   aiDefaults.ExtractorModel,
			SynthesizerModel: aiDefaults.SynthesizerModel,
		},
		Search: SearchConfig{
			MinSimilarity: 0.1,
			MaxResults:    50,
		},
	}
}

// LoadConfig reads a YAML configuration file. Fields absent from the
// file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreSQLite, StoreBadger:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreBackend, c.Store.Backend)
	}
	if c.Store.Backend == StoreSQLite && c.Store.Path == "" {
		return errors.New("config: store path is required for the sqlite backend")
	}
	if c.Search.MinSimilarity < 0 || c.Search.MinSimilarity > 1 {
		return fmt.Errorf("config: min_similarity must be in [0, 1], got %g", c.Search.MinSimilarity)
	}
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("config: max_results must be positive, got %d", c.Search.MaxResults)
	}
	return c.AIConfig().Validate()
}

// AIConfig converts the model section into the ai package's config type.
func (c *Config) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.Model.Host),
		ai.WithExtractorModel(c.Model.ExtractorModel),
		ai.WithSynthesizerModel(c.Model.SynthesizerModel),
	)
}
