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
	"github.com/united-manufacturing-hub/marina/pkg/constants"
	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/fsm/vessel"
	"github.com/united-manufacturing-hub/marina/pkg/registry"
	"github.com/united-manufacturing-hub/marina/pkg/standarderrors"
)

// New creates a sailboat after checking the mast count.
// Nothing is registered with reg if any argument is invalid.
func New(reg *registry.Registry, name string, mastCount, maxCrew int) (*Sailboat, error) {
	if mastCount < constants.MinMasts || mastCount > constants.MaxMasts {
		return nil, standarderrors.NewValidationError("construct sailboat", name, "the mast count must be between %d and %d, got %d",
			constants.MinMasts, constants.MaxMasts, mastCount)
	}

	base, err := vessel.New(reg, publicfsm.KindSailboat, name, maxCrew)
	if err != nil {
		return nil, err
	}

	return &Sailboat{Vessel: base, mastCount: mastCount}, nil
}

// NewDefault creates "Sailboat <n>" with one mast and no crew capacity.
func NewDefault(reg *registry.Registry) (*Sailboat, error) {
	base, err := vessel.NewSequential(reg, publicfsm.KindSailboat)
	if err != nil {
		return nil, err
	}

	return &Sailboat{Vessel: base, mastCount: constants.MinMasts}, nil
}
