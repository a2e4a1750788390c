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

package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
)

const (
	// Component Labels.
	ComponentDemo      = "demo"
	ComponentMotorboat = "motorboat"
	ComponentSailboat  = "sailboat"
	ComponentRegistry  = "registry"
)

const (
	// Namespace and subsystem for all metrics.
	Namespace = "marina"
	Subsystem = "harbor"
)

var (
	// Error counters.
	errorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "errors_total",
			Help:      "Total number of failed vessel operations by component",
		},
		[]string{"component", "instance"},
	)
)

// VesselCollectors are the collectors mirroring one vessel registry.
// Every registry owns its own set so that isolated registries never share series.
type VesselCollectors struct {
	Registered      *prometheus.CounterVec
	Navigating      *prometheus.GaugeVec
	NavigationHours *prometheus.CounterVec
	HeadingChanges  *prometheus.CounterVec
}

// NewVesselCollectors creates the vessel collectors and registers them with reg.
func NewVesselCollectors(reg prometheus.Registerer) *VesselCollectors {
	factory := promauto.With(reg)

	return &VesselCollectors{
		Registered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "vessels_registered_total",
				Help:      "Total number of vessels constructed, never decremented",
			},
			[]string{"kind"},
		),
		Navigating: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "vessels_navigating",
				Help:      "Number of vessels currently out of port",
			},
			[]string{"kind"},
		),
		NavigationHours: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "navigation_hours_total",
				Help:      "Cumulative navigation time in hours",
			},
			[]string{"kind"},
		),
		HeadingChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "heading_changes_total",
				Help:      "Total number of heading changes while navigating",
			},
			[]string{"kind"},
		),
	}
}

// IncErrorCountAndLog increments the error counter for a component and logs a debug message if a logger is provided.
func IncErrorCountAndLog(component, instance string, err error, logger *zap.SugaredLogger) {
	IncErrorCount(component, instance)

	if logger != nil {
		logger.Debugf("Component %s instance %s operation failed: %v", component, instance, err)
	}
}

// IncErrorCount increments the error counter for a component.
func IncErrorCount(component, instance string) {
	errorCounter.WithLabelValues(component, instance).Inc()
}

// InitErrorCounter initializes the error counter for a component.
func InitErrorCounter(component, instance string) {
	errorCounter.WithLabelValues(component, instance).Add(0)
}

// WriteText gathers every metric family whose name starts with the marina
// namespace and writes it to w in the Prometheus text exposition format.
func WriteText(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), Namespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to write metric family %s: %w", family.GetName(), err)
		}
	}

	return nil
}
