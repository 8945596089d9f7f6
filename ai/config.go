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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for generative-model providers.
type Config struct {
	// Host is the base URL for the OpenAI-compatible chat API.
	// Example: "http://localhost:11434/v1" for a local server
	Host string

	// ExtractorModel is the model identifier used for search-term extraction.
	// A small, fast model is sufficient here.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	ExtractorModel string

	// SynthesizerModel is the model identifier used for answer synthesis.
	// Example: "llama3.1:8b", "gpt-4o"
	SynthesizerModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the chat API host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithExtractorModel sets the term-extraction model identifier.
func WithExtractorModel(model string) ConfigOption {
	return func(c *Config) {
		c.ExtractorModel = model
	}
}

// WithSynthesizerModel sets the answer-synthesis model identifier.
func WithSynthesizerModel(model string) ConfigOption {
	return func(c *Config) {
		c.SynthesizerModel = model
	}
}

// WithModel sets both models to the same identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.ExtractorModel = model
		c.SynthesizerModel = model
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible service.
func DefaultConfig() *Config {
	return &Config{
		Host:             "http://localhost:11434/v1",
		ExtractorModel:   "qwen2.5:3b",
		SynthesizerModel: "llama3.1:8b",
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form. It adds the /v1
// suffix to the host if missing, which most OpenAI-compatible APIs (Ollama,
// LocalAI, vLLM, etc) require.
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.ExtractorModel == "" {
		return errors.New("ai config: ExtractorModel is required")
	}
	if c.SynthesizerModel == "" {
		return errors.New("ai config: SynthesizerModel is required")
	}
	return nil
}
