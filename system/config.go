// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WindowConfig are the options for creating a new window. It is an
// immutable input to window creation; a live [Window] holds its own
// copy, updated by successful mutator calls.
type WindowConfig struct {

	// Title is the displayed window title.
	Title string `toml:"title" yaml:"title"`

	// Size is the requested size in raw pixels. Platforms may clamp
	// it to display bounds; the implicit resize event sent on window
	// creation carries the actual size. Zero values fall back to a
	// backend default.
	Size image.Point `toml:"size" yaml:"size"`

	// Pos is the requested left-top position relative to the screen.
	Pos image.Point `toml:"pos" yaml:"pos"`

	// Visible is whether the window is shown on creation.
	Visible bool `toml:"visible" yaml:"visible"`

	// Fullscreen is whether the window occupies the entire screen.
	Fullscreen bool `toml:"fullscreen" yaml:"fullscreen"`

	// Resizable is whether the user can resize the window.
	Resizable bool `toml:"resizable" yaml:"resizable"`

	// DragDrop is whether OS drag-and-drop onto the window is enabled.
	DragDrop bool `toml:"drag-drop" yaml:"drag-drop"`
}

// NewWindowConfig returns a [WindowConfig] with the default options:
// a visible, resizable 800x600 window.
func NewWindowConfig(title string) *WindowConfig {
	return &WindowConfig{
		Title:     title,
		Size:      image.Pt(800, 600),
		Visible:   true,
		Resizable: true,
	}
}

// OpenConfig reads a [WindowConfig] from the given TOML or YAML file,
// chosen by extension, on top of the defaults from [NewWindowConfig].
func OpenConfig(filename string) (*WindowConfig, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := NewWindowConfig("")
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return nil, fmt.Errorf("config file %q: unsupported extension %q", filename, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", filename, err)
	}
	return cfg, nil
}
