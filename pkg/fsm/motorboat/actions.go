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

package motorboat

import (
	"context"
	"fmt"
	"math"

	"github.com/united-manufacturing-hub/marina/pkg/constants"
	"github.com/united-manufacturing-hub/marina/pkg/standarderrors"
)

// FuelConsumption returns the whole fuel units burnt navigating at speed knots
// for hours hours.
func FuelConsumption(speed, hours float64) int {
	return int(math.Floor(speed * hours * constants.FuelConsumptionFactor))
}

// StartNavigation requires a fuel level within bounds and a motorboat speed
// and heading before delegating to the vessel.
func (m *Motorboat) StartNavigation(ctx context.Context, speed float64, heading, captain string, crew int) error {
	const op = "start navigation"

	if err := m.RequireIdle(op); err != nil {
		return err
	}
	if fuel := m.FuelLevel(); fuel < constants.MinFuel || fuel > constants.MaxFuel {
		return standarderrors.NewStateError(op, m.Name(), "the fuel level %d is not enough to leave port, it must be between %d and %d",
			fuel, constants.MinFuel, constants.MaxFuel)
	}
	if err := m.RequireFinite(op, "speed", speed); err != nil {
		return err
	}
	if speed < constants.MinMotorboatSpeed || speed > constants.MaxMotorboatSpeed {
		return standarderrors.NewValidationError(op, m.Name(), "a speed of %g knots is not valid, it must be between %d and %d",
			speed, constants.MinMotorboatSpeed, constants.MaxMotorboatSpeed)
	}
	if !constants.IsMotorboatHeading(heading) {
		return standarderrors.NewValidationError(op, m.Name(), "heading %q is not valid, it must be one of %v", heading, constants.MotorboatHeadings)
	}

	return m.Vessel.StartNavigation(ctx, speed, heading, captain, crew)
}

// StopNavigation burns the fuel of the trip at the speed still in effect and
// then brings the motorboat back to port. The fuel level never drops below 0.
func (m *Motorboat) StopNavigation(ctx context.Context, hours float64) error {
	const op = "stop navigation"

	if err := m.RequireNavigating(op); err != nil {
		return err
	}
	if err := m.RequireFinite(op, "navigation time", hours); err != nil {
		return err
	}
	if hours < 0 {
		return standarderrors.NewValidationError(op, m.Name(), "the navigation time must not be negative, got %g", hours)
	}

	consumed := FuelConsumption(m.Speed(), hours)

	if err := m.Vessel.StopNavigation(ctx, hours); err != nil {
		return err
	}

	m.fuelMu.Lock()
	m.fuelLevel = max(0, m.fuelLevel-consumed)
	remaining := m.fuelLevel
	m.fuelMu.Unlock()

	m.Logger().Debugf("%s burnt %d fuel units, %d left", m.Name(), consumed, remaining)

	return nil
}

// SetHeading only accepts the cardinal points.
func (m *Motorboat) SetHeading(ctx context.Context, heading string) error {
	if !constants.IsMotorboatHeading(heading) {
		return standarderrors.NewValidationError("set heading", m.Name(), "heading %q is not valid, it must be one of %v", heading, constants.MotorboatHeadings)
	}

	return m.Vessel.SetHeading(ctx, heading)
}

// Signal sounds the horn and flashes the lights.
func (m *Motorboat) Signal() string {
	description := fmt.Sprintf("NOTICE from motorboat %s: signaling with horn and flashing lights.", m.Name())
	m.Logger().Info(description)

	return description
}
