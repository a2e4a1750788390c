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

package constants

import "slices"

const (
	MinMotors = 1
	MaxMotors = 2

	// MinFuel is both the lowest fuel level a motorboat may be built with and
	// the lowest level it needs to leave port.
	MinFuel = 8
	MaxFuel = 50

	// FuelConsumptionFactor converts knots times hours into consumed fuel units.
	FuelConsumptionFactor = 0.026

	MinMotorboatSpeed = 1
	MaxMotorboatSpeed = 50
)

// Motorboat headings
const (
	HeadingNorth = "north"
	HeadingSouth = "south"
	HeadingEast  = "east"
	HeadingWest  = "west"
)

// MotorboatHeadings lists every heading a motorboat can follow.
var MotorboatHeadings = []string{HeadingNorth, HeadingSouth, HeadingEast, HeadingWest}

// IsMotorboatHeading reports whether heading belongs to the motorboat vocabulary.
func IsMotorboatHeading(heading string) bool {
	return slices.Contains(MotorboatHeadings, heading)
}
