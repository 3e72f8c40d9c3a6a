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
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/cglab/testcases"
)

const yamlScene = `
width: 32
height: 24
items:
  - op: line
    algorithm: wu
    color: "#ff0000"
    points: [[1, 1], [30, 20]]
  - op: circle
    center: [16, 12]
    radius: 8
`

const tomlScene = `
name = "from_toml"
width = 32
height = 24

[[items]]
op = "ellipse"
algorithm = "bresenham"
center = [16.0, 12.0]
a = 10
b = 5

[[items]]
op = "clip-rect"
boundary = "#0000ff"
window = [[4.0, 4.0], [28.0, 20.0]]
points = [[0.0, 0.0], [31.0, 23.0]]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0644))
	return fname
}

func TestLoadSceneYAML(t *testing.T) {
	tc, err := loadScene(writeFile(t, "demo.yaml", yamlScene))
	require.NoError(t, err)

	assert.Equal(t, "demo", tc.Name)
	assert.Equal(t, 32, tc.Width)
	assert.Equal(t, 24, tc.Height)
	require.Len(t, tc.Items, 2)
	assert.Equal(t, testcases.OpLine, tc.Items[0].Op)
	assert.Equal(t, [][2]float64{{1, 1}, {30, 20}}, tc.Items[0].Points)
	assert.Equal(t, "#ff0000", tc.Items[0].Color)
	assert.Equal(t, testcases.OpCircle, tc.Items[1].Op)
	assert.Equal(t, [2]float64{16, 12}, tc.Items[1].Center)
	assert.Equal(t, 8, tc.Items[1].Radius)
}

func TestLoadSceneTOML(t *testing.T) {
	tc, err := loadScene(writeFile(t, "demo.toml", tomlScene))
	require.NoError(t, err)

	assert.Equal(t, "from_toml", tc.Name)
	require.Len(t, tc.Items, 2)
	assert.Equal(t, testcases.OpEllipse, tc.Items[0].Op)
	assert.Equal(t, 10, tc.Items[0].A)
	assert.Equal(t, 5, tc.Items[0].B)
	assert.Equal(t, testcases.OpClipRect, tc.Items[1].Op)
	assert.Equal(t, [][2]float64{{4, 4}, {28, 20}}, tc.Items[1].Window)
}

func TestLoadSceneErrors(t *testing.T) {
	_, err := loadScene(writeFile(t, "scene.json", "{}"))
	assert.ErrorIs(t, err, errFormat)

	_, err = loadScene(writeFile(t, "broken.yaml", "items: [[["))
	assert.Error(t, err)

	_, err = loadScene(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, &Config{OutDir: "out", Scale: 1, Background: "#ffffff", LogLevel: "info"}, cfg)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("CGLAB_OUT_DIR", "/tmp/scenes")
		t.Setenv("CGLAB_SCALE", "4")
		t.Setenv("CGLAB_BACKGROUND", "#000")
		t.Setenv("CGLAB_LOG_LEVEL", "debug")
		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, &Config{OutDir: "/tmp/scenes", Scale: 4, Background: "#000", LogLevel: "debug"}, cfg)
	})

	for _, tc := range []struct{ key, value string }{
		{"CGLAB_SCALE", "0"},
		{"CGLAB_SCALE", "two"},
		{"CGLAB_BACKGROUND", "white"},
		{"CGLAB_LOG_LEVEL", "loud"},
	} {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := loadConfig()
			assert.Error(t, err)
		})
	}
}

func TestRenderScene(t *testing.T) {
	tc, err := loadScene(writeFile(t, "demo.yaml", yamlScene))
	require.NoError(t, err)

	cfg := &Config{Scale: 3, Background: "#ffffff"}
	out := filepath.Join(t.TempDir(), "demo.png")
	require.NoError(t, renderScene(cfg, tc, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 72, img.Bounds().Dy())

	// the circle passes through (16, 4), upscaled to a 3×3 block
	r, g, b, _ := img.At(16*3+1, 4*3+1).RGBA()
	assert.Zero(t, r|g|b)
}
