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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/united-manufacturing-hub/marina/pkg/config"
	"github.com/united-manufacturing-hub/marina/pkg/constants"
	publicfsm "github.com/united-manufacturing-hub/marina/pkg/fsm"
	"github.com/united-manufacturing-hub/marina/pkg/fsm/motorboat"
	"github.com/united-manufacturing-hub/marina/pkg/fsm/sailboat"
	"github.com/united-manufacturing-hub/marina/pkg/logger"
	"github.com/united-manufacturing-hub/marina/pkg/metrics"
	"github.com/united-manufacturing-hub/marina/pkg/registry"
	"github.com/united-manufacturing-hub/marina/pkg/snapshot"
	"github.com/united-manufacturing-hub/marina/pkg/standarderrors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.InitializeWith(cfg.LogLevel, cfg.Format())
	log := logger.For(logger.ComponentDemo)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting marina demonstration")

	if err := run(ctx, cfg, os.Stdout, log); err != nil {
		log.Errorf("Demonstration failed: %v", err)
		os.Exit(1)
	}

	log.Info("Marina demonstration finished")
}

// demo carries the shared state of one demonstration run.
type demo struct {
	reg *registry.Registry
	out io.Writer
	log *zap.SugaredLogger

	// vessels in construction order, used for the final snapshot
	vessels []publicfsm.Vessel
}

// run prints the full demonstration trace to out. Expected failures are part
// of the trace; only unexpected ones are returned.
func run(ctx context.Context, cfg config.DemoConfig, out io.Writer, log *zap.SugaredLogger) error {
	d := &demo{
		reg: registry.New(),
		out: out,
		log: log,
	}

	metrics.InitErrorCounter(metrics.ComponentDemo, "trace")

	steps := []struct {
		title string
		run   func(context.Context) error
	}{
		{"Constructors", d.constructors},
		{"Registry counters", func(context.Context) error {
			d.counters()

			return nil
		}},
		{"Start and stop navigation", d.startStop},
		{"Heading changes", d.headingChanges},
		{"Regatta", d.regatta},
		{"Signals", d.signals},
		{"String rendering", d.rendering},
		{"Error paths", d.errorPaths},
	}

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.printf("\n=== %d. %s ===\n", i+1, step.title)
		if err := step.run(ctx); err != nil {
			metrics.IncErrorCountAndLog(metrics.ComponentDemo, "trace", err, log)
			return fmt.Errorf("%s: %w", step.title, err)
		}
	}

	d.printf("\n=== Final statistics ===\n")
	d.counters()

	harbor, err := snapshot.Capture(d.reg, d.vessels...)
	if err != nil {
		return err
	}
	if format := cfg.Snapshot(); format != snapshot.FormatNone {
		d.printf("\n=== Harbor snapshot (%s) ===\n", format)
		if err := snapshot.Render(out, format, harbor); err != nil {
			return err
		}
	}

	if cfg.DumpMetrics {
		d.printf("\n=== Metrics ===\n")
		if err := metrics.WriteText(out, prometheus.Gatherers{d.reg.Gatherer(), prometheus.DefaultGatherer}); err != nil {
			return err
		}
	}

	return nil
}

func (d *demo) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.out, format, args...)
}

func (d *demo) track(v publicfsm.Vessel) {
	d.vessels = append(d.vessels, v)
}

// expectFailure prints an expected error and counts it. A nil error means
// the operation unexpectedly succeeded.
func (d *demo) expectFailure(component, instance, what string, err error) error {
	if err == nil {
		return fmt.Errorf("%s unexpectedly succeeded", what)
	}

	kind := "error"
	switch {
	case standarderrors.IsValidationError(err):
		kind = "validation error"
	case standarderrors.IsStateError(err):
		kind = "state error"
	}

	metrics.IncErrorCountAndLog(component, instance, err, d.log)
	d.printf("%s failed as expected (%s): %v\n", what, kind, err)

	return nil
}

func (d *demo) constructors(context.Context) error {
	atlantis, err := sailboat.New(d.reg, "Atlantis", 2, 5)
	if err != nil {
		return err
	}
	d.track(atlantis)
	d.printf("Created sailboat %s with %d masts and room for %d crew\n", atlantis.Name(), atlantis.MastCount(), atlantis.MaxCrew())

	defaultSailboat, err := sailboat.NewDefault(d.reg)
	if err != nil {
		return err
	}
	d.track(defaultSailboat)
	d.printf("Created default sailboat %s with %d mast\n", defaultSailboat.Name(), defaultSailboat.MastCount())

	rapidisima, err := motorboat.New(d.reg, "Rapidisima", 2, 1, 30)
	if err != nil {
		return err
	}
	d.track(rapidisima)
	d.printf("Created motorboat %s with %d motor and fuel level %d\n", rapidisima.Name(), rapidisima.MotorCount(), rapidisima.FuelLevel())

	defaultMotorboat, err := motorboat.NewDefault(d.reg)
	if err != nil {
		return err
	}
	d.track(defaultMotorboat)
	d.printf("Created default motorboat %s with fuel level %d\n", defaultMotorboat.Name(), defaultMotorboat.FuelLevel())

	return nil
}

func (d *demo) counters() {
	d.printf("Total vessels: %d\n", d.reg.TotalVessels())
	d.printf("Sailboats: %d, Motorboats: %d\n", d.reg.CountByKind(publicfsm.KindSailboat), d.reg.CountByKind(publicfsm.KindMotorboat))
	d.printf("Navigating: %d\n", d.reg.Navigating())
	d.printf("Total navigation time: %.2f hours\n", d.reg.TotalNavigationTime())
}

// lookup returns the tracked vessel named name.
func lookup[T publicfsm.Vessel](d *demo, name string) (T, error) {
	var zero T
	for _, v := range d.vessels {
		if typed, ok := v.(T); ok && v.Name() == name {
			return typed, nil
		}
	}

	return zero, fmt.Errorf("vessel %q not found", name)
}

func (d *demo) startStop(ctx context.Context) error {
	atlantis, err := lookup[*sailboat.Sailboat](d, "Atlantis")
	if err != nil {
		return err
	}
	rapidisima, err := lookup[*motorboat.Motorboat](d, "Rapidisima")
	if err != nil {
		return err
	}

	if err := atlantis.StartNavigation(ctx, 10, constants.HeadingRunning, "Pepe Martinez", 1); err != nil {
		return err
	}
	d.printf("%s set sail: %s\n", atlantis.Name(), atlantis)

	if err := rapidisima.StartNavigation(ctx, 25, constants.HeadingWest, "Juan Lopez", 2); err != nil {
		return err
	}
	d.printf("%s left port: %s\n", rapidisima.Name(), rapidisima)
	d.printf("Vessels navigating: %d\n", d.reg.Navigating())

	if err := atlantis.StopNavigation(ctx, 1.0); err != nil {
		return err
	}
	d.printf("%s moored after 1.00 hours\n", atlantis.Name())

	if err := rapidisima.StopNavigation(ctx, 0.42); err != nil {
		return err
	}
	d.printf("%s moored after 0.42 hours, fuel level %d\n", rapidisima.Name(), rapidisima.FuelLevel())

	return nil
}

func (d *demo) headingChanges(ctx context.Context) error {
	atlantis, err := lookup[*sailboat.Sailboat](d, "Atlantis")
	if err != nil {
		return err
	}

	if err := atlantis.StartNavigation(ctx, 15, constants.HeadingCloseHauled, "Maria Garcia", 3); err != nil {
		return err
	}
	d.printf("%s heading %s\n", atlantis.Name(), atlantis.Heading())

	if err := atlantis.SetHeading(ctx, constants.HeadingRunning); err != nil {
		return err
	}
	d.printf("%s changed heading to %s\n", atlantis.Name(), atlantis.Heading())

	if err := atlantis.StopNavigation(ctx, 0.5); err != nil {
		return err
	}
	d.printf("%s total navigation time: %.2f hours\n", atlantis.Name(), atlantis.TotalNavigationTime())

	return nil
}

func (d *demo) regatta(ctx context.Context) error {
	tormenta, err := sailboat.New(d.reg, "Tormenta", 2, 4)
	if err != nil {
		return err
	}
	d.track(tormenta)

	rayo, err := sailboat.New(d.reg, "Rayo", 2, 4)
	if err != nil {
		return err
	}
	d.track(rayo)

	if err := tormenta.StartNavigation(ctx, 20, constants.HeadingRunning, "Ana Ruiz", 4); err != nil {
		return err
	}
	if err := rayo.StartNavigation(ctx, 18, constants.HeadingRunning, "Luis Torres", 4); err != nil {
		return err
	}

	result, err := tormenta.Race(rayo)
	if err != nil {
		return err
	}
	d.printf("Regatta %s vs %s: %s (%s)\n", tormenta.Name(), rayo.Name(), result.Description, result.Outcome)

	return errors.Join(tormenta.StopNavigation(ctx, 0.8), rayo.StopNavigation(ctx, 0.8))
}

func (d *demo) signals(context.Context) error {
	for _, v := range d.vessels {
		d.printf("%s\n", v.Signal())
	}

	return nil
}

func (d *demo) rendering(context.Context) error {
	for _, v := range d.vessels {
		d.printf("%s\n", v)
	}

	return nil
}

func (d *demo) errorPaths(ctx context.Context) error {
	_, err := sailboat.New(d.reg, "Error", 10, 3)
	if err := d.expectFailure(metrics.ComponentSailboat, "Error", "Sailboat with 10 masts", err); err != nil {
		return err
	}

	_, err = motorboat.New(d.reg, "Seca", 2, 1, 7)
	if err := d.expectFailure(metrics.ComponentMotorboat, "Seca", "Motorboat with 7 fuel units", err); err != nil {
		return err
	}

	moored, err := lookup[*sailboat.Sailboat](d, "Sailboat 2")
	if err != nil {
		return err
	}
	err = moored.SetHeading(ctx, constants.HeadingRunning)
	if err := d.expectFailure(metrics.ComponentSailboat, moored.Name(), "Heading change while moored", err); err != nil {
		return err
	}

	viento, err := sailboat.New(d.reg, "Viento", 3, 2)
	if err != nil {
		return err
	}
	d.track(viento)

	mar, err := sailboat.New(d.reg, "Mar", 2, 2)
	if err != nil {
		return err
	}
	d.track(mar)

	if err := viento.StartNavigation(ctx, 12, constants.HeadingCloseHauled, "Carmen Diaz", 2); err != nil {
		return err
	}
	if err := mar.StartNavigation(ctx, 14, constants.HeadingCloseHauled, "Pablo Vega", 2); err != nil {
		return err
	}

	_, err = viento.Race(mar)
	if err := d.expectFailure(metrics.ComponentSailboat, viento.Name(), "Regatta with different mast counts", err); err != nil {
		return err
	}

	return errors.Join(viento.StopNavigation(ctx, 0.3), mar.StopNavigation(ctx, 0.3))
}
