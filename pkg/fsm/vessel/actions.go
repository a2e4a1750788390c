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

package vessel

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/looplab/fsm"

	internalfsm "github.com/united-manufacturing-hub/marina/internal/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/constants"
	"github.com/united-manufacturing-hub/marina/pkg/standarderrors"
)

// RequireIdle returns a StateError if the vessel is navigating.
func (v *Vessel) RequireIdle(op string) error {
	if v.IsNavigating() {
		return standarderrors.NewStateError(op, v.name, "the vessel is already navigating and out of port")
	}

	return nil
}

// RequireNavigating returns a StateError if the vessel is in port.
func (v *Vessel) RequireNavigating(op string) error {
	if !v.IsNavigating() {
		return standarderrors.NewStateError(op, v.name, "the vessel is not navigating")
	}

	return nil
}

// RequireFinite returns a ValidationError if value is NaN or infinite.
func (v *Vessel) RequireFinite(op, quantity string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return standarderrors.NewValidationError(op, v.name, "the %s must be a finite number, got %g", quantity, value)
	}

	return nil
}

// StartNavigation takes the vessel out of port.
// Concrete kinds check their own bounds first and then call this method.
func (v *Vessel) StartNavigation(ctx context.Context, speed float64, heading, captain string, crew int) error {
	const op = "start navigation"

	if err := v.RequireIdle(op); err != nil {
		return err
	}
	if err := v.RequireFinite(op, "speed", speed); err != nil {
		return err
	}
	if speed < 0 {
		return standarderrors.NewValidationError(op, v.name, "the speed must not be negative, got %g", speed)
	}
	if strings.TrimSpace(heading) == "" {
		return standarderrors.NewValidationError(op, v.name, "a heading is required to start navigating")
	}
	if strings.TrimSpace(captain) == "" {
		return standarderrors.NewValidationError(op, v.name, "a captain is required to start navigating")
	}
	if crew < constants.MinCrew || crew > v.maxCrew {
		return standarderrors.NewValidationError(op, v.name, "the crew must be between %d and %d, got %d", constants.MinCrew, v.maxCrew, crew)
	}

	return v.sendEvent(ctx, op, internalfsm.NavigationEventStart, voyage{
		speed:   speed,
		heading: heading,
		captain: captain,
		crew:    crew,
	})
}

// StopNavigation brings the vessel back to port and books hours of navigation
// on the vessel and on the registry.
func (v *Vessel) StopNavigation(ctx context.Context, hours float64) error {
	const op = "stop navigation"

	if err := v.RequireNavigating(op); err != nil {
		return err
	}
	if err := v.RequireFinite(op, "navigation time", hours); err != nil {
		return err
	}
	if hours < 0 {
		return standarderrors.NewValidationError(op, v.name, "the navigation time must not be negative, got %g", hours)
	}

	return v.sendEvent(ctx, op, internalfsm.NavigationEventStop, hours)
}

// SetHeading changes the heading of a navigating vessel. The heading must
// actually change so that every recorded change is a real one.
func (v *Vessel) SetHeading(ctx context.Context, heading string) error {
	const op = "set heading"

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := v.RequireNavigating(op); err != nil {
		return err
	}
	if strings.TrimSpace(heading) == "" {
		return standarderrors.NewValidationError(op, v.name, "a heading is required")
	}

	v.mu.Lock()
	if v.heading == heading {
		current := v.heading
		v.mu.Unlock()

		return standarderrors.NewStateError(op, v.name, "the vessel is already heading %s, a different heading is required", current)
	}
	previous := v.heading
	v.heading = heading
	v.mu.Unlock()

	v.registry.HeadingChanged(v.kind)
	v.Logger().Infof("%s changed heading from %s to %s", v.name, previous, heading)

	return nil
}

func (v *Vessel) sendEvent(ctx context.Context, op, event string, arg any) error {
	err := v.baseFSMInstance.SendEvent(ctx, event, arg)
	if err == nil {
		return nil
	}

	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		return standarderrors.NewStateError(op, v.name, "%s is not allowed while %s", invalid.Event, invalid.State)
	}

	return fmt.Errorf("%s %q: %w", op, v.name, err)
}
