// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects the concrete backends for the platform the
// process is running on. The factory functions are pure and never
// return nil: platforms without a native implementation get the
// offscreen no-op backends, so callers never branch on operating
// system or check for absent backends.
package driver

import (
	"github.com/fenestralib/fenestra/events"
	"github.com/fenestralib/fenestra/system"
)

// NewWindow creates a window on the backend matching the detected
// platform, attached to the given event system. It is the usual entry
// point for applications; use [system.NewWindow] directly to supply
// your own backend.
func NewWindow(sys *events.System, cfg *system.WindowConfig) *system.Window {
	return system.NewWindow(sys, cfg, NewWindowBackend(system.Platform()))
}
