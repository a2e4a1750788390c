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

import "fmt"

// Kind tags the concrete variant of a vessel.
type Kind string

const (
	KindMotorboat Kind = "motorboat"
	KindSailboat  Kind = "sailboat"
)

// DisplayName is used for sequential default names ("Motorboat 1").
func (k Kind) DisplayName() string {
	switch k {
	case KindMotorboat:
		return "Motorboat"
	case KindSailboat:
		return "Sailboat"
	default:
		return "Vessel"
	}
}

// RaceOutcome is the three-way result of a regatta.
type RaceOutcome int

const (
	// RaceOutcomeTie means both sailboats crossed the line at the same time.
	RaceOutcomeTie RaceOutcome = iota
	// RaceOutcomeSelfWins means the challenging sailboat was faster.
	RaceOutcomeSelfWins
	// RaceOutcomeOpponentWins means the opponent was faster.
	RaceOutcomeOpponentWins
)

func (o RaceOutcome) String() string {
	switch o {
	case RaceOutcomeSelfWins:
		return "self_wins"
	case RaceOutcomeOpponentWins:
		return "opponent_wins"
	case RaceOutcomeTie:
		return "tie"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// Mirror returns the outcome seen from the opponent's side.
func (o RaceOutcome) Mirror() RaceOutcome {
	switch o {
	case RaceOutcomeSelfWins:
		return RaceOutcomeOpponentWins
	case RaceOutcomeOpponentWins:
		return RaceOutcomeSelfWins
	default:
		return o
	}
}

// RaceResult is returned by Racer.Race.
type RaceResult struct {
	Outcome RaceOutcome
	// Winner is the name of the faster vessel, empty on a tie.
	Winner      string
	Description string
}

// VesselSnapshot is a copy of the observable state of a vessel.
// Attributes holds the variant-specific values (motors, fuel, masts).
type VesselSnapshot struct {
	ID                  string         `json:"id" yaml:"id"`
	Kind                Kind           `json:"kind" yaml:"kind"`
	Name                string         `json:"name" yaml:"name"`
	State               string         `json:"state" yaml:"state"`
	MaxCrew             int            `json:"max_crew" yaml:"max_crew"`
	Navigating          bool           `json:"navigating" yaml:"navigating"`
	Speed               float64        `json:"speed" yaml:"speed"`
	Heading             string         `json:"heading" yaml:"heading"`
	Captain             string         `json:"captain" yaml:"captain"`
	Crew                int            `json:"crew" yaml:"crew"`
	TotalNavigationTime float64        `json:"total_navigation_time" yaml:"total_navigation_time"`
	Attributes          map[string]int `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}
