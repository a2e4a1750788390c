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

package snapshot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/registry"
)

// Format selects how a harbor snapshot is rendered.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatNone Format = "none"
)

// ParseFormat returns the Format matching value (case-insensitive).
func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatYAML, FormatJSON, FormatNone:
		return format, nil
	default:
		return "", fmt.Errorf("unknown snapshot format %q, expected one of %s, %s, %s", value, FormatYAML, FormatJSON, FormatNone)
	}
}

// Harbor is an immutable view of a registry and a set of vessels.
// Warning: treat the returned snapshots as read-only
type Harbor struct {
	Registry registry.Snapshot          `json:"registry" yaml:"registry"`
	Vessels  []publicfsm.VesselSnapshot `json:"vessels" yaml:"vessels"`
}

// Capture collects the snapshots of reg and vessels. A registry snapshot
// without per-kind counts means the registry failed to copy them.
func Capture(reg *registry.Registry, vessels ...publicfsm.Vessel) (Harbor, error) {
	if reg == nil {
		return Harbor{}, errors.New("a vessel registry is required")
	}

	harbor := Harbor{
		Registry: reg.Snapshot(),
		Vessels:  make([]publicfsm.VesselSnapshot, 0, len(vessels)),
	}
	if harbor.Registry.ByKind == nil {
		return Harbor{}, errors.New("failed to snapshot the vessel registry")
	}

	for _, v := range vessels {
		harbor.Vessels = append(harbor.Vessels, v.Snapshot())
	}

	return harbor, nil
}

// Render writes harbor to w in the given format. FormatNone writes nothing.
func Render(w io.Writer, format Format, harbor Harbor) error {
	switch format {
	case FormatNone:
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(harbor, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal harbor snapshot: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("failed to write harbor snapshot: %w", err)
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(harbor); err != nil {
			return fmt.Errorf("failed to encode harbor snapshot: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
}
