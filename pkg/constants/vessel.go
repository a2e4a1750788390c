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

import "time"

const (
	// MinCrew is the lowest crew capacity and crew count a vessel accepts.
	MinCrew = 0

	// NoCaptain is the captain name of a vessel that is not navigating.
	NoCaptain = "no captain"

	// NoHeading is the heading of a vessel that is not navigating.
	NoHeading = "no heading"

	// ExpectedMaxP95ExecutionTimePerEvent is the minimum time a context must have
	// left before a navigation event is sent to the state machine.
	// A transition interrupted by an expiring context leaves looplab/fsm
	// with a dangling transition, so we refuse to start one instead.
	ExpectedMaxP95ExecutionTimePerEvent = time.Millisecond * 5
)
