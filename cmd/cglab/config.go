// seehuhn.de/go/cglab - computer graphics lab algorithms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"seehuhn.de/go/cglab/testcases"
)

// Config holds the settings of the command, read from CGLAB_* environment
// variables.
type Config struct {
	OutDir     string `envconfig:"OUT_DIR" default:"out"`
	Scale      int    `envconfig:"SCALE" default:"1"`
	Background string `envconfig:"BACKGROUND" default:"#ffffff"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("cglab", &cfg); err != nil {
		return nil, err
	}
	if cfg.Scale < 1 {
		return nil, errors.Errorf("CGLAB_SCALE must be at least 1, got %d", cfg.Scale)
	}
	if _, err := testcases.ParseColor(cfg.Background); err != nil {
		return nil, errors.Wrap(err, "CGLAB_BACKGROUND")
	}
	if _, err := cfg.level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, errors.Wrap(err, "CGLAB_LOG_LEVEL")
	}
	return l, nil
}
