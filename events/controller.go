// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Buttons identify controller buttons, following the standard
// gamepad layout (face buttons, bumpers, sticks, dpad).
type Buttons int32

const (
	ButtonA Buttons = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftBumper
	ButtonRightBumper
	ButtonBack
	ButtonStart
	ButtonGuide
	ButtonLeftThumb
	ButtonRightThumb
	ButtonDpadUp
	ButtonDpadRight
	ButtonDpadDown
	ButtonDpadLeft

	ButtonsN
)

// Axes identify controller axes in the standard gamepad layout.
type Axes int32

const (
	AxisLeftX Axes = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger

	AxesN
)

// ControllerEvent reports controller state changes synthesized by the
// gamepad poller: connection transitions, button transitions, and axis
// motion past the minimum delta threshold. Slot is always set; Button
// is set for button events and Axis/Value for axis events.
type ControllerEvent struct {
	Base

	// Slot is the fixed controller slot index (0 based).
	Slot int

	// Button is the button that changed, for button events.
	Button Buttons

	// Axis is the axis that moved, for [ControllerAxis] events.
	Axis Axes

	// Value is the new axis value in [-1, 1], for [ControllerAxis] events.
	Value float32
}

// NewControllerConnection returns a [ControllerConnected] or
// [ControllerDisconnected] event for the given slot.
func NewControllerConnection(typ Types, slot int) *ControllerEvent {
	ev := &ControllerEvent{Slot: slot}
	ev.Init(typ)
	return ev
}

// NewControllerButton returns a [ControllerButtonPress] or
// [ControllerButtonRelease] event.
func NewControllerButton(typ Types, slot int, button Buttons) *ControllerEvent {
	ev := &ControllerEvent{Slot: slot, Button: button}
	ev.Init(typ)
	return ev
}

// NewControllerAxis returns a [ControllerAxis] event with the new value.
func NewControllerAxis(slot int, axis Axes, value float32) *ControllerEvent {
	ev := &ControllerEvent{Slot: slot, Axis: axis, Value: value}
	ev.Init(ControllerAxis)
	return ev
}

func (ev *ControllerEvent) String() string {
	switch ev.Typ {
	case ControllerButtonPress, ControllerButtonRelease:
		return fmt.Sprintf("%v{Slot: %d, Button: %d, Time: %v}", ev.Typ, ev.Slot, ev.Button, ev.Tm.Format("04:05"))
	case ControllerAxis:
		return fmt.Sprintf("%v{Slot: %d, Axis: %d, Value: %g, Time: %v}", ev.Typ, ev.Slot, ev.Axis, ev.Value, ev.Tm.Format("04:05"))
	}
	return fmt.Sprintf("%v{Slot: %d, Time: %v}", ev.Typ, ev.Slot, ev.Tm.Format("04:05"))
}
