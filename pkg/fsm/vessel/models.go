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
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	internalfsm "github.com/united-manufacturing-hub/marina/internal/fsm"
	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/registry"
)

// Vessel is the navigation core embedded by every concrete vessel kind.
// It owns identity, crew capacity and the idle/navigating state machine.
// It does not implement publicfsm.Signaler: only concrete kinds do.
type Vessel struct {
	baseFSMInstance *internalfsm.BaseNavigationFSM
	registry        *registry.Registry

	id      uuid.UUID
	kind    publicfsm.Kind
	name    string
	maxCrew int

	// mu protects the navigation fields below
	mu                  sync.RWMutex
	speed               float64
	heading             string
	captain             string
	crew                int
	totalNavigationTime float64
}

// voyage carries the start_navigation arguments into the enter callback.
type voyage struct {
	speed   float64
	heading string
	captain string
	crew    int
}

func (v *Vessel) GetID() string {
	return v.id.String()
}

func (v *Vessel) Kind() publicfsm.Kind {
	return v.kind
}

func (v *Vessel) Name() string {
	return v.name
}

func (v *Vessel) MaxCrew() int {
	return v.maxCrew
}

// IsNavigating returns true if the vessel is out of port.
func (v *Vessel) IsNavigating() bool {
	return v.baseFSMInstance.GetCurrentFSMState() == internalfsm.NavigationStateNavigating
}

// GetCurrentFSMState returns the navigation state (idle or navigating).
func (v *Vessel) GetCurrentFSMState() string {
	return v.baseFSMInstance.GetCurrentFSMState()
}

func (v *Vessel) Speed() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.speed
}

func (v *Vessel) Heading() string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.heading
}

func (v *Vessel) Captain() string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.captain
}

func (v *Vessel) Crew() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.crew
}

// TotalNavigationTime returns the hours this vessel spent navigating.
func (v *Vessel) TotalNavigationTime() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.totalNavigationTime
}

// Logger returns the logger of this vessel.
func (v *Vessel) Logger() *zap.SugaredLogger {
	return v.baseFSMInstance.GetLogger()
}

// Snapshot returns a copy of the observable state. Concrete kinds add their
// own values to Attributes.
func (v *Vessel) Snapshot() publicfsm.VesselSnapshot {
	state := v.GetCurrentFSMState()

	v.mu.RLock()
	defer v.mu.RUnlock()

	return publicfsm.VesselSnapshot{
		ID:                  v.id.String(),
		Kind:                v.kind,
		Name:                v.name,
		State:               state,
		MaxCrew:             v.maxCrew,
		Navigating:          state == internalfsm.NavigationStateNavigating,
		Speed:               v.speed,
		Heading:             v.heading,
		Captain:             v.captain,
		Crew:                v.crew,
		TotalNavigationTime: v.totalNavigationTime,
	}
}

// String renders the vessel for the demo trace.
func (v *Vessel) String() string {
	navigating := v.IsNavigating()

	v.mu.RLock()
	defer v.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Vessel name: %s, Crew: %d, ", v.name, v.crew)
	if navigating {
		fmt.Fprintf(&sb, "Navigating: yes, with captain %s heading %s at %g knots, ", v.captain, v.heading, v.speed)
	} else {
		sb.WriteString("Navigating: no, ")
	}
	fmt.Fprintf(&sb, "Total navigation time: %.2f hours", v.totalNavigationTime)

	return sb.String()
}
