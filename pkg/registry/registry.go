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

package registry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"

	"github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/logger"
	"github.com/united-manufacturing-hub/marina/pkg/metrics"
)

// Registry holds the aggregate counters shared by every vessel built against it.
//
// Counts are only updated through vessel lifecycle transitions and are never
// decremented when a vessel goes out of scope: TotalVessels is a historical
// count of constructions, not a live count.
type Registry struct {
	mu sync.RWMutex

	totalVessels        int
	navigating          int
	totalNavigationTime float64
	byKind              map[fsm.Kind]int

	promRegistry *prometheus.Registry
	collectors   *metrics.VesselCollectors

	logger *zap.SugaredLogger
}

// Snapshot is a point-in-time copy of the registry counters.
type Snapshot struct {
	TotalVessels        int              `json:"total_vessels" yaml:"total_vessels"`
	Navigating          int              `json:"navigating" yaml:"navigating"`
	TotalNavigationTime float64          `json:"total_navigation_time" yaml:"total_navigation_time"`
	ByKind              map[fsm.Kind]int `json:"by_kind" yaml:"by_kind"`
}

// New returns an empty registry with its own Prometheus registry.
func New() *Registry {
	promRegistry := prometheus.NewRegistry()

	return &Registry{
		byKind:       make(map[fsm.Kind]int),
		promRegistry: promRegistry,
		collectors:   metrics.NewVesselCollectors(promRegistry),
		logger:       logger.For(logger.ComponentRegistry),
	}
}

// RegisterVessel records the construction of a vessel and returns the
// sequence number of that vessel within its kind, starting at 1.
func (r *Registry) RegisterVessel(kind fsm.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totalVessels++
	r.byKind[kind]++
	r.collectors.Registered.WithLabelValues(string(kind)).Inc()
	r.logger.Debugf("Registered %s #%d (total vessels: %d)", kind, r.byKind[kind], r.totalVessels)

	return r.byKind[kind]
}

// NavigationStarted records a vessel leaving port.
func (r *Registry) NavigationStarted(kind fsm.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.navigating++
	r.collectors.Navigating.WithLabelValues(string(kind)).Inc()
}

// NavigationStopped records a vessel returning to port after hours of navigation.
// hours must be non-negative, the vessel validates it before calling.
func (r *Registry) NavigationStopped(kind fsm.Kind, hours float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.navigating > 0 {
		r.navigating--
		r.collectors.Navigating.WithLabelValues(string(kind)).Dec()
	} else {
		r.logger.Warnf("Navigation of a %s stopped while no vessel was navigating", kind)
		metrics.IncErrorCount(metrics.ComponentRegistry, string(kind))
	}

	r.totalNavigationTime += hours
	r.collectors.NavigationHours.WithLabelValues(string(kind)).Add(hours)
}

// HeadingChanged records a heading change. It does not affect the counters.
func (r *Registry) HeadingChanged(kind fsm.Kind) {
	r.collectors.HeadingChanges.WithLabelValues(string(kind)).Inc()
}

// TotalVessels returns the number of vessels ever constructed.
func (r *Registry) TotalVessels() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.totalVessels
}

// Navigating returns the number of vessels currently navigating.
func (r *Registry) Navigating() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.navigating
}

// TotalNavigationTime returns the accumulated navigation hours of all vessels.
func (r *Registry) TotalNavigationTime() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.totalNavigationTime
}

// CountByKind returns the number of vessels of kind ever constructed.
func (r *Registry) CountByKind(kind fsm.Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byKind[kind]
}

// Snapshot returns a deep copy of the counters. If the per-kind counts cannot
// be copied, ByKind is left nil and the failure is counted.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := Snapshot{
		TotalVessels:        r.totalVessels,
		Navigating:          r.navigating,
		TotalNavigationTime: r.totalNavigationTime,
	}

	if err := deepcopy.Copy(&snapshot.ByKind, &r.byKind); err != nil {
		r.logger.Errorf("failed to deep copy per-kind counts: %v", err)
		metrics.IncErrorCount(metrics.ComponentRegistry, "snapshot")
		snapshot.ByKind = nil
	}

	return snapshot
}

// Gatherer exposes the collectors of this registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.promRegistry
}
