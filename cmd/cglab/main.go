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

// Command cglab renders scenes to PNG files.
//
// Usage:
//
//	cglab [scene.yaml|scene.toml]...
//
// Without arguments, all scenes of the built-in catalogue are rendered.
// The output directory, an integer upscaling factor, the background colour
// and the log level are set by the environment variables CGLAB_OUT_DIR,
// CGLAB_SCALE, CGLAB_BACKGROUND and CGLAB_LOG_LEVEL.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/testcases"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cglab:", err)
		os.Exit(2)
	}
	level, _ := cfg.level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	cglab.SetLogger(logger)

	var scenes []testcases.TestCase
	if len(os.Args) > 1 {
		for _, fname := range os.Args[1:] {
			tc, err := loadScene(fname)
			if err != nil {
				slog.Error("load scene", "file", fname, "error", err)
				os.Exit(1)
			}
			scenes = append(scenes, tc)
		}
	} else {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[category] {
				tc.Name = category + "_" + tc.Name
				scenes = append(scenes, tc)
			}
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		slog.Error("create output directory", "error", err)
		os.Exit(1)
	}

	failed := 0
	for _, tc := range scenes {
		out := filepath.Join(cfg.OutDir, tc.Name+".png")
		if err := renderScene(cfg, tc, out); err != nil {
			slog.Error("render scene", "scene", tc.Name, "error", err)
			failed++
			continue
		}
		slog.Info("wrote", "scene", tc.Name, "file", out)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// renderScene draws tc and writes the result to the PNG file fname.
func renderScene(cfg *Config, tc testcases.TestCase, fname string) error {
	bg, err := testcases.ParseColor(cfg.Background)
	if err != nil {
		return err
	}
	img, err := testcases.Render(tc, bg)
	if err != nil {
		return err
	}

	var res image.Image = img.NRGBA
	if cfg.Scale > 1 {
		b := img.Bounds()
		scaled := image.NewNRGBA(image.Rect(0, 0, b.Dx()*cfg.Scale, b.Dy()*cfg.Scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		res = scaled
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
