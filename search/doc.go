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


// Package search provides hybrid retrieval over the event catalog.
//
// The Searcher type implements a multi-stage pipeline that combines:
//   - Structured constraint extraction (date ranges, fee equality)
//   - Direct event-name lookup as a short-circuit
//   - Trigram similarity search over the searchable text
//
// Candidates are fused into a deterministic ranking: similarity score when
// a fuzzy term is present, otherwise an equal baseline ordered by event
// date. Empty results mean insufficient information, never an error.
package search
