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

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/united-manufacturing-hub/marina/pkg/logger"
	"github.com/united-manufacturing-hub/marina/pkg/snapshot"
)

// DemoConfig configures the demonstration trace. Every field has a default,
// the demo runs without any environment variable set.
type DemoConfig struct {
	LogLevel       string `env:"LOGGING_LEVEL" envDefault:"PRODUCTION"`
	LogFormat      string `env:"LOGGING_FORMAT" envDefault:"PRETTY"`
	SnapshotFormat string `env:"MARINA_SNAPSHOT_FORMAT" envDefault:"yaml"`
	DumpMetrics    bool   `env:"MARINA_DUMP_METRICS" envDefault:"false"`
}

// Load reads the configuration from the process environment.
func Load() (DemoConfig, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from environ instead of the process environment.
func LoadFrom(environ map[string]string) (DemoConfig, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (DemoConfig, error) {
	var cfg DemoConfig
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return DemoConfig{}, fmt.Errorf("parse env: %w", err)
	}

	if _, err := snapshot.ParseFormat(cfg.SnapshotFormat); err != nil {
		return DemoConfig{}, err
	}

	return cfg, nil
}

// Snapshot returns the parsed snapshot format. Load already validated it.
func (c DemoConfig) Snapshot() snapshot.Format {
	format, err := snapshot.ParseFormat(c.SnapshotFormat)
	if err != nil {
		return snapshot.FormatNone
	}

	return format
}

// Format returns the log format, falling back to the pretty format.
func (c DemoConfig) Format() logger.LogFormat {
	return logger.ParseFormat(c.LogFormat, logger.FormatPretty)
}
