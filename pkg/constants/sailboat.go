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
	MinMasts = 1
	MaxMasts = 4

	MinSailboatSpeed = 2
	MaxSailboatSpeed = 30
)

// Sailboat headings (points of sail)
const (
	HeadingCloseHauled = "close-hauled"
	HeadingRunning     = "running"
)

// SailboatHeadings lists every heading a sailboat can follow.
var SailboatHeadings = []string{HeadingCloseHauled, HeadingRunning}

// IsSailboatHeading reports whether heading belongs to the sailboat vocabulary.
func IsSailboatHeading(heading string) bool {
	return slices.Contains(SailboatHeadings, heading)
}
