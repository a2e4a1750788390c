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

package snapshot_test

import (
	"bytes"
	"context"

	"github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/united-manufacturing-hub/marina/pkg/constants"
	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/fsm/motorboat"
	"github.com/united-manufacturing-hub/marina/pkg/fsm/sailboat"
	"github.com/united-manufacturing-hub/marina/pkg/registry"
	"github.com/united-manufacturing-hub/marina/pkg/snapshot"
)

var _ = Describe("Harbor snapshot", func() {
	var (
		reg    *registry.Registry
		boat   *motorboat.Motorboat
		sailer *sailboat.Sailboat
	)

	BeforeEach(func() {
		var err error
		reg = registry.New()
		boat, err = motorboat.New(reg, "Rapidisima", 2, 1, 30)
		Expect(err).NotTo(HaveOccurred())
		sailer, err = sailboat.New(reg, "Atlantis", 2, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(sailer.StartNavigation(context.Background(), 10, constants.HeadingRunning, "Pepe", 1)).To(Succeed())
	})

	It("captures registry and vessels", func() {
		harbor, err := snapshot.Capture(reg, boat, sailer)
		Expect(err).NotTo(HaveOccurred())

		Expect(harbor.Registry.TotalVessels).To(Equal(2))
		Expect(harbor.Registry.Navigating).To(Equal(1))
		Expect(harbor.Vessels).To(HaveLen(2))
		Expect(harbor.Vessels[0].Attributes).To(HaveKeyWithValue("fuel", 30))
		Expect(harbor.Vessels[1].Navigating).To(BeTrue())
	})

	It("is detached from later changes", func() {
		harbor, err := snapshot.Capture(reg, sailer)
		Expect(err).NotTo(HaveOccurred())

		Expect(sailer.StopNavigation(context.Background(), 1)).To(Succeed())

		Expect(harbor.Vessels[0].Navigating).To(BeTrue())
		Expect(harbor.Registry.TotalNavigationTime).To(Equal(0.0))
	})

	It("requires a registry", func() {
		_, err := snapshot.Capture(nil, boat)
		Expect(err).To(HaveOccurred())
	})

	It("is detached from the registry counts", func() {
		harbor, err := snapshot.Capture(reg)
		Expect(err).NotTo(HaveOccurred())

		harbor.Registry.ByKind[publicfsm.KindMotorboat] = 42
		Expect(reg.CountByKind(publicfsm.KindMotorboat)).To(Equal(1))
	})

	It("renders JSON", func() {
		harbor, err := snapshot.Capture(reg, boat)
		Expect(err).NotTo(HaveOccurred())

		var out bytes.Buffer
		Expect(snapshot.Render(&out, snapshot.FormatJSON, harbor)).To(Succeed())

		var decoded snapshot.Harbor
		Expect(json.Unmarshal(out.Bytes(), &decoded)).To(Succeed())
		Expect(decoded.Vessels[0].Name).To(Equal("Rapidisima"))
		Expect(decoded.Registry.ByKind).To(HaveKeyWithValue(publicfsm.KindMotorboat, 1))
	})

	It("renders YAML", func() {
		harbor, err := snapshot.Capture(reg, sailer)
		Expect(err).NotTo(HaveOccurred())

		var out bytes.Buffer
		Expect(snapshot.Render(&out, snapshot.FormatYAML, harbor)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("total_vessels: 2"))

		var decoded snapshot.Harbor
		Expect(yaml.Unmarshal(out.Bytes(), &decoded)).To(Succeed())
		Expect(decoded.Vessels[0].Heading).To(Equal(constants.HeadingRunning))
	})

	It("renders nothing for the none format", func() {
		var out bytes.Buffer
		Expect(snapshot.Render(&out, snapshot.FormatNone, snapshot.Harbor{})).To(Succeed())
		Expect(out.Len()).To(Equal(0))
	})

	It("parses formats", func() {
		Expect(snapshot.ParseFormat(" JSON ")).To(Equal(snapshot.FormatJSON))
		_, err := snapshot.ParseFormat("xml")
		Expect(err).To(HaveOccurred())
	})
})
