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
	"fmt"
	"sync"

	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/fsm/vessel"
)

// Motorboat implements the publicfsm.Vessel interface
// If Motorboat does not implement the Vessel interface, this will
// be detected at compile time
var _ publicfsm.Vessel = (*Motorboat)(nil)

// Motorboat is a motorized vessel that burns fuel while navigating.
type Motorboat struct {
	*vessel.Vessel

	motorCount int

	// fuelMu protects fuelLevel
	fuelMu    sync.RWMutex
	fuelLevel int
}

// MotorCount returns the number of motors (1 or 2).
func (m *Motorboat) MotorCount() int {
	return m.motorCount
}

// FuelLevel returns the fuel left in the tank.
func (m *Motorboat) FuelLevel() int {
	m.fuelMu.RLock()
	defer m.fuelMu.RUnlock()

	return m.fuelLevel
}

// Snapshot adds motors and fuel to the vessel snapshot.
func (m *Motorboat) Snapshot() publicfsm.VesselSnapshot {
	snap := m.Vessel.Snapshot()
	snap.Attributes = map[string]int{
		"motors": m.motorCount,
		"fuel":   m.FuelLevel(),
	}

	return snap
}

func (m *Motorboat) String() string {
	return fmt.Sprintf("%s, Motors: %d, Fuel level: %d", m.Vessel.String(), m.motorCount, m.FuelLevel())
}
