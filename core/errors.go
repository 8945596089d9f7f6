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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidEventRecord indicates an EventRecord failed validation.
	ErrInvalidEventRecord = errors.New("invalid event record")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("event name cannot be empty")

	// ErrEmptyDomain indicates the Domain field is empty.
	ErrEmptyDomain = errors.New("event domain cannot be empty")

	// ErrMissingDate indicates the event date is unset.
	ErrMissingDate = errors.New("event date is required")

	// ErrEmptyDescription indicates the Description field is empty.
	ErrEmptyDescription = errors.New("event description cannot be empty")

	// ErrInvalidFee indicates the registration fee is not a numeric string.
	ErrInvalidFee = errors.New("registration fee must be numeric")
)
