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
	"github.com/united-manufacturing-hub/marina/pkg/constants"
	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/fsm/vessel"
	"github.com/united-manufacturing-hub/marina/pkg/registry"
	"github.com/united-manufacturing-hub/marina/pkg/standarderrors"
)

// New creates a motorboat after checking motor count and fuel level.
// Nothing is registered with reg if any argument is invalid.
func New(reg *registry.Registry, name string, maxCrew, motorCount, fuelLevel int) (*Motorboat, error) {
	const op = "construct motorboat"

	if motorCount < constants.MinMotors || motorCount > constants.MaxMotors {
		return nil, standarderrors.NewValidationError(op, name, "the motor count must be between %d and %d, got %d",
			constants.MinMotors, constants.MaxMotors, motorCount)
	}
	if fuelLevel < constants.MinFuel || fuelLevel > constants.MaxFuel {
		return nil, standarderrors.NewValidationError(op, name, "the fuel level must be between %d and %d, got %d",
			constants.MinFuel, constants.MaxFuel, fuelLevel)
	}

	base, err := vessel.New(reg, publicfsm.KindMotorboat, name, maxCrew)
	if err != nil {
		return nil, err
	}

	return &Motorboat{
		Vessel:     base,
		motorCount: motorCount,
		fuelLevel:  fuelLevel,
	}, nil
}

// NewDefault creates "Motorboat <n>" with no crew capacity, one motor and a full tank.
func NewDefault(reg *registry.Registry) (*Motorboat, error) {
	base, err := vessel.NewSequential(reg, publicfsm.KindMotorboat)
	if err != nil {
		return nil, err
	}

	return &Motorboat{
		Vessel:     base,
		motorCount: constants.MinMotors,
		fuelLevel:  constants.MaxFuel,
	}, nil
}
