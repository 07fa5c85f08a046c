// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(android || ios || js || offscreen)

package driver

import (
	"github.com/fenestralib/fenestra/driver/desktop"
	"github.com/fenestralib/fenestra/driver/offscreen"
	"github.com/fenestralib/fenestra/events"
	"github.com/fenestralib/fenestra/gamepad"
	"github.com/fenestralib/fenestra/logx"
	"github.com/fenestralib/fenestra/system"
)

// NewWindowBackend returns the window backend for the given platform:
// the glfw-backed desktop backend on desktop platforms, the offscreen
// backend on [system.Offscreen], and the Unavailable no-op backend
// (whose Create reports false) everywhere else.
func NewWindowBackend(p system.Platforms) system.WindowBackend {
	switch {
	case p.IsDesktop():
		return desktop.NewWindowBackend()
	case p == system.Offscreen:
		return offscreen.NewWindowBackend()
	}
	logx.Info("no window backend for platform, using no-op", "platform", p)
	return &offscreen.Unavailable{}
}

// NewEventSource returns the platform's global event source, for
// event pumping independent of any window. Window-scoped sources
// come from [system.WindowBackend.Events].
func NewEventSource(p system.Platforms) events.Source {
	if p.IsDesktop() {
		return desktop.PollSource{}
	}
	return offscreen.Source{}
}

// NewControllerBackend returns the controller backend for the given
// platform, a no-op backend where controllers are unsupported.
func NewControllerBackend(p system.Platforms) gamepad.Backend {
	if p.IsDesktop() {
		return desktop.NewControllerBackend()
	}
	return &offscreen.Controller{}
}
