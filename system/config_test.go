// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestOpenConfigTOML(t *testing.T) {
	fn := writeConfig(t, "win.toml", `
title = "TOML Window"
fullscreen = true
size = { X = 1280, Y = 720 }
`)
	cfg, err := OpenConfig(fn)
	assert.NoError(t, err)
	assert.Equal(t, "TOML Window", cfg.Title)
	assert.True(t, cfg.Fullscreen)
	assert.Equal(t, image.Pt(1280, 720), cfg.Size)
	assert.True(t, cfg.Resizable, "unset fields keep defaults")
}

func TestOpenConfigYAML(t *testing.T) {
	fn := writeConfig(t, "win.yaml", `
title: YAML Window
resizable: false
size:
  x: 320
  y: 240
`)
	cfg, err := OpenConfig(fn)
	assert.NoError(t, err)
	assert.Equal(t, "YAML Window", cfg.Title)
	assert.False(t, cfg.Resizable)
	assert.Equal(t, image.Pt(320, 240), cfg.Size)
}

func TestOpenConfigErrors(t *testing.T) {
	_, err := OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	fn := writeConfig(t, "win.ini", "title=nope")
	_, err = OpenConfig(fn)
	assert.Error(t, err)

	fn = writeConfig(t, "bad.toml", "title = [not toml")
	_, err = OpenConfig(fn)
	assert.Error(t, err)
}
