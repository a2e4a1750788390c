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

// Navigation states shared by every vessel kind
const (
	// NavigationStateIdle indicates the vessel is moored in port
	NavigationStateIdle = "idle"
	// NavigationStateNavigating indicates the vessel is out of port
	NavigationStateNavigating = "navigating"
)

// Navigation events
const (
	// NavigationEventStart takes a vessel out of port
	NavigationEventStart = "start_navigation"
	// NavigationEventStop brings a vessel back to port
	NavigationEventStop = "stop_navigation"
)

// IsNavigationState returns whether the given state is a navigation state
func IsNavigationState(state string) bool {
	switch state {
	case NavigationStateIdle,
		NavigationStateNavigating:
		return true
	default:
		return false
	}
}
