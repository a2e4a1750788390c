// Copyright 2025 UMH Systems GmbH
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

package standarderrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every ValidationError.
	// Callers should use errors.Is(err, ErrValidation) rather than a type switch.
	ErrValidation = errors.New("validation failed")

	// ErrState is matched by every StateError.
	ErrState = errors.New("operation not allowed in current state")
)

// ValidationError reports malformed or out-of-range input: an empty name,
// out-of-bounds counts, speeds or fuel, an unknown heading or a missing
// race opponent.
type ValidationError struct {
	Op     string
	Vessel string
	Reason string
}

func (e *ValidationError) Error() string {
	return format(e.Op, e.Vessel, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StateError reports an operation that is invalid for the current lifecycle
// state of a vessel (already navigating, not navigating, unchanged heading,
// mismatched race preconditions).
type StateError struct {
	Op     string
	Vessel string
	Reason string
}

func (e *StateError) Error() string {
	return format(e.Op, e.Vessel, e.Reason)
}

func (e *StateError) Unwrap() error {
	return ErrState
}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(op, vessel, reason string, args ...any) error {
	return &ValidationError{Op: op, Vessel: vessel, Reason: fmt.Sprintf(reason, args...)}
}

// NewStateError builds a StateError with a formatted reason.
func NewStateError(op, vessel, reason string, args ...any) error {
	return &StateError{Op: op, Vessel: vessel, Reason: fmt.Sprintf(reason, args...)}
}

// IsValidationError returns true if err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStateError returns true if err is, or wraps, a StateError.
func IsStateError(err error) bool {
	return errors.Is(err, ErrState)
}

func format(op, vessel, reason string) string {
	if vessel == "" {
		return fmt.Sprintf("%s: %s", op, reason)
	}

	return fmt.Sprintf("%s %q: %s", op, vessel, reason)
}
