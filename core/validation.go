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

import (
	"fmt"
	"strconv"
)

// ValidateEventRecord validates an EventRecord according to domain rules.
//
// Validation rules:
//   - Name, Domain, and Description must not be empty or sentinel
//   - Date must be set
//   - RegistrationFee, when present, must parse as a number
//
// NOT validated (maintained by the write path):
//   - NormalizedName and SearchText (recomputed by RefreshDerived)
//   - Id (derived from the normalized name)
func ValidateEventRecord(record *EventRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidEventRecord)
	}

	if IsSentinel(record.Name) {
		return fmt.Errorf("%w: %w", ErrInvalidEventRecord, ErrEmptyName)
	}

	if IsSentinel(record.Domain) {
		return fmt.Errorf("%w: %w", ErrInvalidEventRecord, ErrEmptyDomain)
	}

	if record.Date.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidEventRecord, ErrMissingDate)
	}

	if IsSentinel(record.Description) {
		return fmt.Errorf("%w: %w", ErrInvalidEventRecord, ErrEmptyDescription)
	}

	if !IsSentinel(record.RegistrationFee) {
		if _, err := strconv.ParseFloat(record.RegistrationFee, 64); err != nil {
			return fmt.Errorf("%w: %w: %q", ErrInvalidEventRecord, ErrInvalidFee, record.RegistrationFee)
		}
	}

	return nil
}
