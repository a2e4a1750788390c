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

package registry_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/metrics"
	"github.com/united-manufacturing-hub/marina/pkg/registry"
)

// errorCount reads the global error counter of component and instance.
func errorCount(component, instance string) float64 {
	GinkgoHelper()

	families, err := prometheus.DefaultGatherer.Gather()
	Expect(err).NotTo(HaveOccurred())

	for _, family := range families {
		if family.GetName() != metrics.Namespace+"_"+metrics.Subsystem+"_errors_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["component"] == component && labels["instance"] == instance {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}

var _ = Describe("Registry", func() {
	var reg *registry.Registry

	BeforeEach(func() {
		reg = registry.New()
	})

	It("starts empty", func() {
		Expect(reg.TotalVessels()).To(Equal(0))
		Expect(reg.Navigating()).To(Equal(0))
		Expect(reg.TotalNavigationTime()).To(Equal(0.0))
	})

	It("numbers vessels per kind", func() {
		Expect(reg.RegisterVessel(fsm.KindSailboat)).To(Equal(1))
		Expect(reg.RegisterVessel(fsm.KindMotorboat)).To(Equal(1))
		Expect(reg.RegisterVessel(fsm.KindSailboat)).To(Equal(2))

		Expect(reg.TotalVessels()).To(Equal(3))
		Expect(reg.CountByKind(fsm.KindSailboat)).To(Equal(2))
		Expect(reg.CountByKind(fsm.KindMotorboat)).To(Equal(1))
	})

	It("tracks navigation and accumulates hours", func() {
		reg.NavigationStarted(fsm.KindSailboat)
		reg.NavigationStarted(fsm.KindMotorboat)
		Expect(reg.Navigating()).To(Equal(2))

		reg.NavigationStopped(fsm.KindSailboat, 1.0)
		reg.NavigationStopped(fsm.KindMotorboat, 0.5)
		Expect(reg.Navigating()).To(Equal(0))
		Expect(reg.TotalNavigationTime()).To(BeNumerically("~", 1.5, 1e-9))
	})

	It("never lets the navigating count go negative", func() {
		before := errorCount(metrics.ComponentRegistry, string(fsm.KindSailboat))

		reg.NavigationStopped(fsm.KindSailboat, 0)

		Expect(reg.Navigating()).To(Equal(0))
		Expect(errorCount(metrics.ComponentRegistry, string(fsm.KindSailboat))).To(Equal(before + 1))
	})

	It("keeps registries isolated from each other", func() {
		other := registry.New()
		reg.RegisterVessel(fsm.KindSailboat)

		Expect(other.TotalVessels()).To(Equal(0))
	})

	It("returns snapshots detached from the registry", func() {
		reg.RegisterVessel(fsm.KindSailboat)
		snap := reg.Snapshot()
		snap.ByKind[fsm.KindSailboat] = 42

		Expect(reg.Snapshot().ByKind).To(HaveKeyWithValue(fsm.KindSailboat, 1))
		Expect(snap.TotalVessels).To(Equal(1))
	})

	It("snapshots an empty registry with empty per-kind counts", func() {
		snap := reg.Snapshot()
		Expect(snap.ByKind).NotTo(BeNil())
		Expect(snap.ByKind).To(BeEmpty())
	})

	It("mirrors the counters into its collectors", func() {
		reg.RegisterVessel(fsm.KindMotorboat)
		reg.NavigationStarted(fsm.KindMotorboat)
		reg.HeadingChanged(fsm.KindMotorboat)
		reg.NavigationStopped(fsm.KindMotorboat, 0.42)

		Expect(testutil.GatherAndCount(reg.Gatherer(), "marina_harbor_vessels_registered_total")).To(Equal(1))
		count, err := testutil.GatherAndCount(reg.Gatherer())
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(4))
	})
})
