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

package vessel_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalfsm "github.com/united-manufacturing-hub/marina/internal/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/constants"
	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/fsm/vessel"
	"github.com/united-manufacturing-hub/marina/pkg/registry"
	"github.com/united-manufacturing-hub/marina/pkg/standarderrors"
)

func expectIdle(v *vessel.Vessel) {
	GinkgoHelper()
	Expect(v.IsNavigating()).To(BeFalse())
	Expect(v.GetCurrentFSMState()).To(Equal(internalfsm.NavigationStateIdle))
	Expect(v.Speed()).To(Equal(0.0))
	Expect(v.Heading()).To(Equal(constants.NoHeading))
	Expect(v.Captain()).To(Equal(constants.NoCaptain))
	Expect(v.Crew()).To(Equal(0))
}

var _ = Describe("Vessel", func() {
	var (
		ctx context.Context
		reg *registry.Registry
	)

	BeforeEach(func() {
		ctx = context.Background()
		reg = registry.New()
	})

	Describe("construction", func() {
		It("registers every valid construction", func() {
			for i := 0; i < 5; i++ {
				_, err := vessel.New(reg, publicfsm.KindSailboat, "Atlantis", i)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(reg.TotalVessels()).To(Equal(5))
		})

		DescribeTable("rejects invalid arguments without touching the registry",
			func(name string, maxCrew int) {
				v, err := vessel.New(reg, publicfsm.KindSailboat, name, maxCrew)
				Expect(v).To(BeNil())
				Expect(err).To(MatchError(standarderrors.ErrValidation))
				Expect(reg.TotalVessels()).To(Equal(0))
			},
			Entry("empty name", "", 3),
			Entry("blank name", "   ", 3),
			Entry("negative crew capacity", "Atlantis", -1),
		)

		It("requires a registry", func() {
			_, err := vessel.New(nil, publicfsm.KindSailboat, "Atlantis", 1)
			Expect(err).To(MatchError(standarderrors.ErrValidation))

			_, err = vessel.NewSequential(nil, publicfsm.KindSailboat)
			Expect(err).To(MatchError(standarderrors.ErrValidation))
		})

		It("names sequential vessels after their kind", func() {
			first, err := vessel.NewSequential(reg, publicfsm.KindMotorboat)
			Expect(err).NotTo(HaveOccurred())
			_, err = vessel.New(reg, publicfsm.KindMotorboat, "Rapidisima", 2)
			Expect(err).NotTo(HaveOccurred())
			third, err := vessel.NewSequential(reg, publicfsm.KindMotorboat)
			Expect(err).NotTo(HaveOccurred())

			Expect(first.Name()).To(Equal("Motorboat 1"))
			Expect(third.Name()).To(Equal("Motorboat 3"))
			Expect(third.MaxCrew()).To(Equal(constants.MinCrew))
		})

		It("starts idle with a unique id", func() {
			a, _ := vessel.New(reg, publicfsm.KindSailboat, "A", 1)
			b, _ := vessel.New(reg, publicfsm.KindSailboat, "B", 1)

			expectIdle(a)
			Expect(a.TotalNavigationTime()).To(Equal(0.0))
			Expect(a.GetID()).NotTo(Equal(b.GetID()))
			Expect(a.Kind()).To(Equal(publicfsm.KindSailboat))
		})

		DescribeTable("names its logger after its kind",
			func(kind publicfsm.Kind, expected string) {
				v, err := vessel.New(reg, kind, "Atlantis", 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(v.Logger().Desugar().Name()).To(Equal(expected))
			},
			Entry("motorboat", publicfsm.KindMotorboat, "Motorboat.Atlantis"),
			Entry("sailboat", publicfsm.KindSailboat, "Sailboat.Atlantis"),
			Entry("other kinds", publicfsm.Kind("barge"), "Vessel.Atlantis"),
		)
	})

	Describe("navigation", func() {
		var v *vessel.Vessel

		BeforeEach(func() {
			var err error
			v, err = vessel.New(reg, publicfsm.KindSailboat, "Atlantis", 5)
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns to the idle state after a start/stop cycle", func() {
			for _, hours := range []float64{0, 0.25, 1, 12.5} {
				Expect(v.StartNavigation(ctx, 10, constants.HeadingRunning, "Pepe", 1)).To(Succeed())
				Expect(v.IsNavigating()).To(BeTrue())
				Expect(v.Speed()).To(Equal(10.0))
				Expect(v.Heading()).To(Equal(constants.HeadingRunning))
				Expect(v.Captain()).To(Equal("Pepe"))
				Expect(v.Crew()).To(Equal(1))
				Expect(reg.Navigating()).To(Equal(1))

				Expect(v.StopNavigation(ctx, hours)).To(Succeed())
				expectIdle(v)
				Expect(reg.Navigating()).To(Equal(0))
			}

			Expect(v.TotalNavigationTime()).To(BeNumerically("~", 13.75, 1e-9))
			Expect(reg.TotalNavigationTime()).To(BeNumerically("~", 13.75, 1e-9))
		})

		It("rejects a second start without changing the voyage", func() {
			Expect(v.StartNavigation(ctx, 10, constants.HeadingRunning, "Pepe", 1)).To(Succeed())

			for i := 0; i < 2; i++ {
				err := v.StartNavigation(ctx, 12, constants.HeadingCloseHauled, "Maria", 2)
				Expect(err).To(MatchError(standarderrors.ErrState))
			}

			Expect(v.Speed()).To(Equal(10.0))
			Expect(v.Heading()).To(Equal(constants.HeadingRunning))
			Expect(v.Captain()).To(Equal("Pepe"))
			Expect(reg.Navigating()).To(Equal(1))
		})

		DescribeTable("rejects invalid voyages",
			func(speed float64, heading, captain string, crew int) {
				err := v.StartNavigation(ctx, speed, heading, captain, crew)
				Expect(err).To(MatchError(standarderrors.ErrValidation))
				expectIdle(v)
				Expect(reg.Navigating()).To(Equal(0))
			},
			Entry("negative speed", -1.0, constants.HeadingRunning, "Pepe", 1),
			Entry("NaN speed", math.NaN(), constants.HeadingRunning, "Pepe", 1),
			Entry("infinite speed", math.Inf(1), constants.HeadingRunning, "Pepe", 1),
			Entry("negative infinite speed", math.Inf(-1), constants.HeadingRunning, "Pepe", 1),
			Entry("empty heading", 10.0, "", "Pepe", 1),
			Entry("empty captain", 10.0, constants.HeadingRunning, " ", 1),
			Entry("negative crew", 10.0, constants.HeadingRunning, "Pepe", -1),
			Entry("crew over capacity", 10.0, constants.HeadingRunning, "Pepe", 6),
		)

		It("accepts a crew at full capacity", func() {
			Expect(v.StartNavigation(ctx, 10, constants.HeadingRunning, "Pepe", 5)).To(Succeed())
		})

		It("refuses to stop a vessel in port", func() {
			Expect(v.StopNavigation(ctx, 1)).To(MatchError(standarderrors.ErrState))
			Expect(v.TotalNavigationTime()).To(Equal(0.0))
		})

		It("refuses a negative navigation time", func() {
			Expect(v.StartNavigation(ctx, 10, constants.HeadingRunning, "Pepe", 1)).To(Succeed())
			Expect(v.StopNavigation(ctx, -0.5)).To(MatchError(standarderrors.ErrValidation))
			Expect(v.IsNavigating()).To(BeTrue())
			Expect(reg.TotalNavigationTime()).To(Equal(0.0))
		})

		DescribeTable("refuses navigation times that are not finite",
			func(hours float64) {
				Expect(v.StartNavigation(ctx, 10, constants.HeadingRunning, "Pepe", 1)).To(Succeed())
				Expect(v.StopNavigation(ctx, hours)).To(MatchError(standarderrors.ErrValidation))
				Expect(v.IsNavigating()).To(BeTrue())
				Expect(v.TotalNavigationTime()).To(Equal(0.0))
				Expect(reg.TotalNavigationTime()).To(Equal(0.0))

				Expect(v.StopNavigation(ctx, 1)).To(Succeed())
				Expect(v.TotalNavigationTime()).To(Equal(1.0))
				Expect(reg.TotalNavigationTime()).To(Equal(1.0))
			},
			Entry("NaN", math.NaN()),
			Entry("positive infinity", math.Inf(1)),
			Entry("negative infinity", math.Inf(-1)),
		)

		It("leaves the state unchanged when the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			Expect(v.StartNavigation(cancelled, 10, constants.HeadingRunning, "Pepe", 1)).To(MatchError(context.Canceled))
			expectIdle(v)
			Expect(reg.Navigating()).To(Equal(0))
		})
	})

	Describe("heading changes", func() {
		var v *vessel.Vessel

		BeforeEach(func() {
			v, _ = vessel.New(reg, publicfsm.KindSailboat, "Atlantis", 5)
		})

		It("requires the vessel to navigate", func() {
			Expect(v.SetHeading(ctx, constants.HeadingRunning)).To(MatchError(standarderrors.ErrState))
			Expect(v.Heading()).To(Equal(constants.NoHeading))
		})

		It("requires an actual change", func() {
			Expect(v.StartNavigation(ctx, 15, constants.HeadingCloseHauled, "Maria", 3)).To(Succeed())

			Expect(v.SetHeading(ctx, constants.HeadingCloseHauled)).To(MatchError(standarderrors.ErrState))
			Expect(v.SetHeading(ctx, constants.HeadingRunning)).To(Succeed())
			Expect(v.Heading()).To(Equal(constants.HeadingRunning))
		})

		It("rejects an empty heading", func() {
			Expect(v.StartNavigation(ctx, 15, constants.HeadingCloseHauled, "Maria", 3)).To(Succeed())
			Expect(v.SetHeading(ctx, "")).To(MatchError(standarderrors.ErrValidation))
		})
	})

	Describe("rendering", func() {
		It("describes idle and navigating vessels", func() {
			v, _ := vessel.New(reg, publicfsm.KindSailboat, "Atlantis", 5)
			Expect(v.String()).To(Equal("Vessel name: Atlantis, Crew: 0, Navigating: no, Total navigation time: 0.00 hours"))

			Expect(v.StartNavigation(ctx, 10, constants.HeadingRunning, "Pepe Martinez", 1)).To(Succeed())
			Expect(v.String()).To(Equal("Vessel name: Atlantis, Crew: 1, Navigating: yes, with captain Pepe Martinez heading running at 10 knots, Total navigation time: 0.00 hours"))
		})

		It("snapshots the navigation state", func() {
			v, _ := vessel.New(reg, publicfsm.KindSailboat, "Atlantis", 5)
			Expect(v.StartNavigation(ctx, 10, constants.HeadingRunning, "Pepe", 1)).To(Succeed())

			snap := v.Snapshot()
			Expect(snap.Name).To(Equal("Atlantis"))
			Expect(snap.State).To(Equal(internalfsm.NavigationStateNavigating))
			Expect(snap.Navigating).To(BeTrue())
			Expect(snap.Speed).To(Equal(10.0))
			Expect(snap.ID).To(Equal(v.GetID()))
		})
	})
})
