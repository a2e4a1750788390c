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

package fsm

import (
	"context"
	"fmt"
)

// Navigable is implemented by everything that can leave and return to port.
type Navigable interface {
	// StartNavigation moves the vessel from idle to navigating.
	StartNavigation(ctx context.Context, speed float64, heading, captain string, crew int) error
	// StopNavigation moves the vessel back to idle and books hours of navigation.
	StopNavigation(ctx context.Context, hours float64) error
}

// Signaler is implemented by every concrete vessel kind.
// Signal emits the kind-specific signal and returns its description.
type Signaler interface {
	Signal() string
}

// Vessel is the full surface of a concrete vessel (motorboat, sailboat).
type Vessel interface {
	Navigable
	Signaler
	fmt.Stringer

	GetID() string
	Kind() Kind
	Name() string
	MaxCrew() int

	IsNavigating() bool
	Speed() float64
	Heading() string
	Captain() string
	Crew() int
	TotalNavigationTime() float64

	// SetHeading changes the heading of a navigating vessel.
	// The new heading must differ from the current one.
	SetHeading(ctx context.Context, heading string) error

	// Snapshot returns a copy of the observable state of the vessel.
	Snapshot() VesselSnapshot
}

// Racer is the regatta capability. Only vessels that can take part in a
// regatta implement it.
type Racer interface {
	Vessel

	MastCount() int

	// Race compares the receiver with opponent without mutating either.
	Race(opponent Racer) (RaceResult, error)
}
