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


// Package ai provides abstractions for the generative-model services the
// question-answering pipeline depends on.
//
// The pipeline treats the model as an opaque text-completion collaborator
// with two jobs: extracting a compact search term from a question, and
// synthesizing an answer from assembled event context. This package defines
// the interfaces for both, so the retrieval core depends on abstractions
// rather than on a concrete model client.
//
// # Design Principles
//
// The package is designed around three interfaces:
//
//   - TermExtractor: derives the fuzzy search term from a question
//   - AnswerSynthesizer: generates the final answer from context
//   - Provider: aggregates both for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: production implementation against OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors in ai/openai return interface types to enforce
// abstraction. Mock constructors return concrete types so tests can inject
// behavior and assert call counts.
package ai
