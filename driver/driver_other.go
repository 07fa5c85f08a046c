// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build android || ios || js || offscreen

package driver

import (
	"github.com/fenestralib/fenestra/driver/offscreen"
	"github.com/fenestralib/fenestra/events"
	"github.com/fenestralib/fenestra/gamepad"
	"github.com/fenestralib/fenestra/system"
)

// Mobile and web builds have no native backends in this module; the
// offscreen no-op implementations stand in so the factory contract
// (never nil, never fails) holds on every platform.

// NewWindowBackend returns the offscreen window backend: builds with
// one of these tags have opted out of native windowing, so windows
// are valid but render nowhere and produce no OS events.
func NewWindowBackend(p system.Platforms) system.WindowBackend {
	return offscreen.NewWindowBackend()
}

// NewEventSource returns the platform's global event source,
// which pumps nothing on this build.
func NewEventSource(p system.Platforms) events.Source {
	return offscreen.Source{}
}

// NewControllerBackend returns the no-op controller backend.
func NewControllerBackend(p system.Platforms) gamepad.Backend {
	return &offscreen.Controller{}
}
