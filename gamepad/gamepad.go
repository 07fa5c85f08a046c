// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamepad provides the controller backend contract and the
// poller that diffs controller state between polls, synthesizing
// connect, disconnect, button, and axis events into the event system.
package gamepad

import (
	"time"

	"github.com/fenestralib/fenestra/events"
)

const (
	// MaxControllers is the number of fixed controller slots tracked
	// by a [Poller], independent of physical connection order.
	MaxControllers = 8

	// MaxButtons is the number of buttons per controller,
	// per the standard gamepad layout (see [events.Buttons]).
	MaxButtons = int(events.ButtonsN)

	// MaxAxes is the number of axes per controller (see [events.Axes]).
	MaxAxes = int(events.AxesN)
)

// AxisDeltaMin is the minimum change in an axis value between two
// polls for a ControllerAxis event to be emitted. Changes below it
// are treated as noise and produce no events; the new value is still
// visible through [Poller.State].
var AxisDeltaMin = float32(0.01)

// State is the instantaneous input state of one controller slot.
// It is overwritten wholesale on each backend poll.
type State struct {

	// Connected is whether a controller is present in this slot.
	Connected bool

	// Buttons are the pressed states, indexed by [events.Buttons].
	Buttons [MaxButtons]bool

	// Axes are the axis values in [-1, 1], indexed by [events.Axes].
	Axes [MaxAxes]float32
}

// Info describes the capabilities of a connected controller.
type Info struct {

	// Name is the controller's reported name.
	Name string

	// NumButtons and NumAxes are the counts the device actually has,
	// at most [MaxButtons] and [MaxAxes].
	NumButtons int
	NumAxes    int
}

// Backend is the capability contract each platform implements for
// controller input. No-op implementations are valid: Init reports
// true, Poll does nothing, every slot stays disconnected, and Rumble
// is silently ignored.
type Backend interface {

	// Init prepares the controller subsystem, reporting success.
	Init() bool

	// Shutdown releases the controller subsystem.
	Shutdown()

	// Poll refreshes the backend's internal state for all slots.
	// It emits no events itself; the [Poller] diffs the state.
	Poll()

	// ConnectedCount returns the number of connected controllers.
	ConnectedCount() int

	// Info returns the capabilities of the controller in the slot.
	Info(slot int) Info

	// State returns the current input state of the slot.
	State(slot int) State

	// Rumble plays a force-feedback effect on the slot for the given
	// duration, best-effort: silently ignored where unsupported.
	Rumble(slot int, low, high, leftTrigger, rightTrigger float32, dur time.Duration)
}
