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
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/cglab/testcases"
)

// errFormat is returned for scene files with an unknown extension.
var errFormat = errors.New("unsupported scene file format")

// loadScene reads a scene from a YAML (.yaml, .yml) or TOML (.toml) file.
// If the file does not set a name, the base name of the file is used.
func loadScene(fname string) (testcases.TestCase, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return testcases.TestCase{}, err
	}

	ext := strings.ToLower(filepath.Ext(fname))
	var tc testcases.TestCase
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tc)
	case ".toml":
		err = toml.Unmarshal(data, &tc)
	default:
		return testcases.TestCase{}, errors.Wrap(errFormat, fname)
	}
	if err != nil {
		return testcases.TestCase{}, errors.Wrap(err, fname)
	}

	if tc.Name == "" {
		tc.Name = strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	}
	return tc, nil
}
