// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of an event, and is the level at which
// listeners select which events to receive. The set is closed:
// applications needing their own event types use [Custom] with a
// Data payload, rather than extending this enum.
type Types int64

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Tick is a frame tick, sent by a [Source] such as ticker.Ticker
	// at a fixed cadence to drive per-frame updating.
	Tick

	// WindowResize happens when a window has been resized, including
	// the implicit resize sent when a window is first created, which
	// carries the actual backend-reported size (platforms may clamp
	// the requested size to display bounds).
	WindowResize

	// WindowClose is sent exactly once when a window is closed,
	// and by desktop backends when the OS requests a close
	// (e.g. the user clicks the close button).
	WindowClose

	// KeyDown is when a key is pressed down. It carries the key code,
	// the rune for printable keys, and the active modifiers.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// ControllerConnected is sent when a controller slot transitions
	// from disconnected to connected.
	ControllerConnected

	// ControllerDisconnected is sent when a controller slot transitions
	// from connected to disconnected.
	ControllerDisconnected

	// ControllerButtonPress is when a controller button transitions
	// from released to pressed.
	ControllerButtonPress

	// ControllerButtonRelease is when a controller button transitions
	// from pressed to released.
	ControllerButtonRelease

	// ControllerAxis is when a controller axis value changes by at
	// least the minimum delta threshold (see gamepad.AxisDeltaMin).
	ControllerAxis

	// Custom is a user-defined event with an arbitrary Data field.
	Custom

	// TypesN is the number of event types.
	TypesN
)

var typeNames = []string{
	"UnknownType",
	"Tick",
	"WindowResize",
	"WindowClose",
	"KeyDown",
	"KeyUp",
	"ControllerConnected",
	"ControllerDisconnected",
	"ControllerButtonPress",
	"ControllerButtonRelease",
	"ControllerAxis",
	"Custom",
}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "Types(invalid)"
	}
	return typeNames[tp]
}
