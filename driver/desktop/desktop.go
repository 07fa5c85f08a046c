// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(android || ios || js || offscreen)

// Package desktop provides the glfw-backed backends for the desktop
// platforms (Windows, macOS, X11 and Wayland Linux): native windows,
// their event sources, and joystick/gamepad controller input.
//
// glfw requires that everything here runs on the thread that
// initialized it, which matches the single designated event thread
// the rest of fenestra already assumes.
package desktop

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fenestralib/fenestra/events"
)

// initGlfw initializes glfw once per process, returning the same
// result on every call. glfw stays initialized until process exit;
// there is no teardown contract for the backends.
var initGlfw = sync.OnceValue(func() error {
	return glfw.Init()
})

// PollSource is the global desktop event source: pumping it runs the
// glfw message loop once, which delivers pending OS notifications to
// every live window's callbacks. It produces no events of its own.
type PollSource struct{}

func (PollSource) Pump() []events.Event {
	if initGlfw() != nil {
		return nil
	}
	glfw.PollEvents()
	return nil
}
