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
	"fmt"

	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/fsm/vessel"
)

// Sailboat implements the publicfsm.Racer interface
var _ publicfsm.Racer = (*Sailboat)(nil)

// Sailboat is a sailing vessel that can take part in regattas.
type Sailboat struct {
	*vessel.Vessel

	mastCount int
}

// MastCount returns the number of masts (1 to 4).
func (s *Sailboat) MastCount() int {
	return s.mastCount
}

// Snapshot adds the mast count to the vessel snapshot.
func (s *Sailboat) Snapshot() publicfsm.VesselSnapshot {
	snap := s.Vessel.Snapshot()
	snap.Attributes = map[string]int{"masts": s.mastCount}

	return snap
}

func (s *Sailboat) String() string {
	return fmt.Sprintf("%s, Masts: %d", s.Vessel.String(), s.mastCount)
}
