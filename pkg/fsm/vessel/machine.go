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
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/looplab/fsm"

	internalfsm "github.com/united-manufacturing-hub/marina/internal/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/constants"
	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/logger"
	"github.com/united-manufacturing-hub/marina/pkg/registry"
	"github.com/united-manufacturing-hub/marina/pkg/standarderrors"
)

// New validates name and maxCrew, registers the vessel with reg and returns it.
// Nothing is registered if validation fails.
//
// Concrete kinds validate their own parameters before calling New.
func New(reg *registry.Registry, kind publicfsm.Kind, name string, maxCrew int) (*Vessel, error) {
	op := "construct " + string(kind)

	if reg == nil {
		return nil, standarderrors.NewValidationError(op, name, "a vessel registry is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, standarderrors.NewValidationError(op, name, "the vessel name must not be empty")
	}
	if maxCrew < constants.MinCrew {
		return nil, standarderrors.NewValidationError(op, name, "the crew capacity must be at least %d, got %d", constants.MinCrew, maxCrew)
	}

	reg.RegisterVessel(kind)

	return newVessel(reg, kind, name, maxCrew), nil
}

// NewSequential registers a vessel named after its kind and sequence number
// ("Sailboat 2") with the minimum crew capacity.
func NewSequential(reg *registry.Registry, kind publicfsm.Kind) (*Vessel, error) {
	if reg == nil {
		return nil, standarderrors.NewValidationError("construct "+string(kind), "", "a vessel registry is required")
	}

	seq := reg.RegisterVessel(kind)
	name := fmt.Sprintf("%s %d", kind.DisplayName(), seq)

	return newVessel(reg, kind, name, constants.MinCrew), nil
}

func newVessel(reg *registry.Registry, kind publicfsm.Kind, name string, maxCrew int) *Vessel {
	id := uuid.New()

	cfg := internalfsm.BaseNavigationFSMConfig{
		ID:           id.String(),
		InitialState: internalfsm.NavigationStateIdle,
		Transitions: []fsm.EventDesc{
			// A vessel leaves port only when moored
			{Name: internalfsm.NavigationEventStart, Src: []string{internalfsm.NavigationStateIdle}, Dst: internalfsm.NavigationStateNavigating},
			// and returns only when out
			{Name: internalfsm.NavigationEventStop, Src: []string{internalfsm.NavigationStateNavigating}, Dst: internalfsm.NavigationStateIdle},
		},
	}

	v := &Vessel{
		baseFSMInstance: internalfsm.NewBaseNavigationFSM(cfg, logger.For(componentFor(kind)).Named(name)),
		registry:        reg,
		id:              id,
		kind:            kind,
		name:            name,
		maxCrew:         maxCrew,
		heading:         constants.NoHeading,
		captain:         constants.NoCaptain,
	}

	v.registerCallbacks()

	return v
}

// registerCallbacks registers callback functions for FSM state transitions
func (v *Vessel) registerCallbacks() {
	v.baseFSMInstance.AddCallback("enter_"+internalfsm.NavigationStateNavigating, func(ctx context.Context, e *fsm.Event) {
		trip, ok := firstArg[voyage](e)
		if !ok {
			v.Logger().Errorf("Entered navigating state without a voyage for %s", v.name)

			return
		}

		v.mu.Lock()
		v.speed = trip.speed
		v.heading = trip.heading
		v.captain = trip.captain
		v.crew = trip.crew
		v.mu.Unlock()

		v.registry.NavigationStarted(v.kind)
		v.Logger().Infof("%s left port with captain %s heading %s at %g knots", v.name, trip.captain, trip.heading, trip.speed)
	})

	v.baseFSMInstance.AddCallback("enter_"+internalfsm.NavigationStateIdle, func(ctx context.Context, e *fsm.Event) {
		hours, ok := firstArg[float64](e)
		if !ok {
			v.Logger().Errorf("Entered idle state without navigation time for %s", v.name)
		}

		v.mu.Lock()
		v.totalNavigationTime += hours
		v.speed = 0
		v.heading = constants.NoHeading
		v.captain = constants.NoCaptain
		v.crew = 0
		v.mu.Unlock()

		v.registry.NavigationStopped(v.kind, hours)
		v.Logger().Infof("%s returned to port after %.2f hours", v.name, hours)
	})
}

func firstArg[T any](e *fsm.Event) (T, bool) {
	var zero T
	if len(e.Args) == 0 {
		return zero, false
	}
	arg, ok := e.Args[0].(T)

	return arg, ok
}

// componentFor returns the logger component of a vessel kind.
func componentFor(kind publicfsm.Kind) string {
	switch kind {
	case publicfsm.KindMotorboat:
		return logger.ComponentMotorboat
	case publicfsm.KindSailboat:
		return logger.ComponentSailboat
	default:
		return logger.ComponentVessel
	}
}
