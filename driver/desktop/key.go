// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(android || ios || js || offscreen)

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fenestralib/fenestra/events"
)

// keyCode maps a glfw key to the fenestra code and rune. glfw uses
// ASCII values for printable keys, so those pass through directly;
// special keys go through the table below.
func keyCode(ky glfw.Key) (rune, events.Codes) {
	if ky >= glfw.KeySpace && ky <= glfw.KeyGraveAccent {
		return rune(ky), events.Codes(ky)
	}
	if code, ok := specialKeys[ky]; ok {
		return 0, code
	}
	return 0, events.CodeUnknown
}

var specialKeys = map[glfw.Key]events.Codes{
	glfw.KeyEscape:       events.CodeEscape,
	glfw.KeyEnter:        events.CodeEnter,
	glfw.KeyTab:          events.CodeTab,
	glfw.KeyBackspace:    events.CodeBackspace,
	glfw.KeyDelete:       events.CodeDelete,
	glfw.KeyInsert:       events.CodeInsert,
	glfw.KeyHome:         events.CodeHome,
	glfw.KeyEnd:          events.CodeEnd,
	glfw.KeyPageUp:       events.CodePageUp,
	glfw.KeyPageDown:     events.CodePageDown,
	glfw.KeyRight:        events.CodeRightArrow,
	glfw.KeyLeft:         events.CodeLeftArrow,
	glfw.KeyDown:         events.CodeDownArrow,
	glfw.KeyUp:           events.CodeUpArrow,
	glfw.KeyLeftShift:    events.CodeLeftShift,
	glfw.KeyRightShift:   events.CodeRightShift,
	glfw.KeyLeftControl:  events.CodeLeftControl,
	glfw.KeyRightControl: events.CodeRightControl,
	glfw.KeyLeftAlt:      events.CodeLeftAlt,
	glfw.KeyRightAlt:     events.CodeRightAlt,
	glfw.KeyLeftSuper:    events.CodeLeftMeta,
	glfw.KeyRightSuper:   events.CodeRightMeta,
	glfw.KeyF1:           events.CodeF1,
	glfw.KeyF2:           events.CodeF2,
	glfw.KeyF3:           events.CodeF3,
	glfw.KeyF4:           events.CodeF4,
	glfw.KeyF5:           events.CodeF5,
	glfw.KeyF6:           events.CodeF6,
	glfw.KeyF7:           events.CodeF7,
	glfw.KeyF8:           events.CodeF8,
	glfw.KeyF9:           events.CodeF9,
	glfw.KeyF10:          events.CodeF10,
	glfw.KeyF11:          events.CodeF11,
	glfw.KeyF12:          events.CodeF12,
}

func keyMods(mod glfw.ModifierKey) events.Modifiers {
	var m events.Modifiers
	if mod&glfw.ModShift != 0 {
		m |= events.Shift
	}
	if mod&glfw.ModControl != 0 {
		m |= events.Control
	}
	if mod&glfw.ModAlt != 0 {
		m |= events.Alt
	}
	if mod&glfw.ModSuper != 0 {
		m |= events.Meta
	}
	return m
}
