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

package sailboat

import (
	"context"
	"fmt"

	"github.com/united-manufacturing-hub/marina/pkg/constants"
	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/standarderrors"
)

// StartNavigation requires a sailing speed and a point of sail before
// delegating to the vessel.
func (s *Sailboat) StartNavigation(ctx context.Context, speed float64, heading, captain string, crew int) error {
	const op = "start navigation"

	if err := s.RequireIdle(op); err != nil {
		return err
	}
	if err := s.RequireFinite(op, "speed", speed); err != nil {
		return err
	}
	if speed < constants.MinSailboatSpeed || speed > constants.MaxSailboatSpeed {
		return standarderrors.NewValidationError(op, s.Name(), "a speed of %g knots is not valid, it must be between %d and %d",
			speed, constants.MinSailboatSpeed, constants.MaxSailboatSpeed)
	}
	if !constants.IsSailboatHeading(heading) {
		return standarderrors.NewValidationError(op, s.Name(), "heading %q is not valid, it must be one of %v", heading, constants.SailboatHeadings)
	}

	return s.Vessel.StartNavigation(ctx, speed, heading, captain, crew)
}

// SetHeading only accepts close-hauled and running.
func (s *Sailboat) SetHeading(ctx context.Context, heading string) error {
	if !constants.IsSailboatHeading(heading) {
		return standarderrors.NewValidationError("set heading", s.Name(), "heading %q is not valid, it must be one of %v", heading, constants.SailboatHeadings)
	}

	return s.Vessel.SetHeading(ctx, heading)
}

// Race compares the speed of two navigating sailboats on the same heading
// with the same number of masts. Neither sailboat is modified.
func (s *Sailboat) Race(opponent publicfsm.Racer) (publicfsm.RaceResult, error) {
	const op = "race"

	if opponent == nil {
		return publicfsm.RaceResult{}, standarderrors.NewValidationError(op, s.Name(), "the opponent does not exist")
	}
	if sb, ok := opponent.(*Sailboat); ok && sb == nil {
		return publicfsm.RaceResult{}, standarderrors.NewValidationError(op, s.Name(), "the opponent does not exist")
	}

	if !s.IsNavigating() {
		return publicfsm.RaceResult{}, standarderrors.NewStateError(op, s.Name(), "%s is not navigating", s.Name())
	}
	if !opponent.IsNavigating() {
		return publicfsm.RaceResult{}, standarderrors.NewStateError(op, s.Name(), "%s is not navigating", opponent.Name())
	}

	ownHeading, ownSpeed := s.Heading(), s.Speed()
	otherHeading, otherSpeed := opponent.Heading(), opponent.Speed()

	if ownHeading != otherHeading {
		return publicfsm.RaceResult{}, standarderrors.NewStateError(op, s.Name(), "%s and %s must sail the same heading (%s vs %s)",
			s.Name(), opponent.Name(), ownHeading, otherHeading)
	}
	if s.mastCount != opponent.MastCount() {
		return publicfsm.RaceResult{}, standarderrors.NewStateError(op, s.Name(), "%s and %s do not have the same number of masts (%d vs %d)",
			s.Name(), opponent.Name(), s.mastCount, opponent.MastCount())
	}

	var result publicfsm.RaceResult

	switch {
	case ownSpeed > otherSpeed:
		result = publicfsm.RaceResult{
			Outcome:     publicfsm.RaceOutcomeSelfWins,
			Winner:      s.Name(),
			Description: fmt.Sprintf("%s crossed the finish line first.", s.Name()),
		}
	case ownSpeed < otherSpeed:
		result = publicfsm.RaceResult{
			Outcome:     publicfsm.RaceOutcomeOpponentWins,
			Winner:      opponent.Name(),
			Description: fmt.Sprintf("%s crossed the finish line first.", opponent.Name()),
		}
	default:
		result = publicfsm.RaceResult{
			Outcome:     publicfsm.RaceOutcomeTie,
			Description: fmt.Sprintf("%s and %s crossed the finish line at the same time.", s.Name(), opponent.Name()),
		}
	}

	s.Logger().Debugf("Regatta %s vs %s: %s", s.Name(), opponent.Name(), result.Outcome)

	return result, nil
}

// Signal raises maritime signal flags.
func (s *Sailboat) Signal() string {
	description := fmt.Sprintf("NOTICE from sailboat %s: signaling with maritime signal flags.", s.Name())
	s.Logger().Info(description)

	return description
}
