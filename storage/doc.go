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


// Package storage provides the storage abstraction layer for the event catalog.
//
// This package defines repository interfaces that decouple storage
// implementation from retrieval logic, so the SQLite and BadgerDB backends
// can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and enable multiple backends:
//
//	repo, err := sqlite.NewRepositories("/path/to/db")  // returns storage interfaces
//
// Internal package constructors (newEventRepository, newBackend, etc.) may
// return concrete types since they're only used within the implementation
// package.
//
// # Architecture
//
//   - Repository: transaction support and lifecycle shared by all repositories
//   - EventRepository: CRUD, name lookup, and the hybrid query over event records
//   - LogRepository: the question/answer audit log
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support.
package storage
