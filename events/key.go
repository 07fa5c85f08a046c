// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"
)

// Codes identify physical keys. Printable ASCII keys use their
// uppercase rune value directly (CodeA == 'A'), so backends can map
// them without a table; special keys occupy the range above ASCII.
type Codes int32

const (
	CodeUnknown Codes = 0

	CodeSpace Codes = ' '
	CodeA     Codes = 'A'
	CodeZ     Codes = 'Z'
	Code0     Codes = '0'
	Code9     Codes = '9'

	CodeEscape Codes = 0x100 + iota
	CodeEnter
	CodeTab
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeRightArrow
	CodeLeftArrow
	CodeDownArrow
	CodeUpArrow
	CodeLeftShift
	CodeRightShift
	CodeLeftControl
	CodeRightControl
	CodeLeftAlt
	CodeRightAlt
	CodeLeftMeta
	CodeRightMeta
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// IsModifier returns whether the code is for a modifier key.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftShift && c <= CodeRightMeta
}

// Modifiers are the modifier keys held down during an event,
// as a bit mask.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt

	// Meta is the system key: the command key on macOS
	// and the windows key on windows.
	Meta
)

// HasAny returns whether any of the given modifiers are held down.
func (m Modifiers) HasAny(mods ...Modifiers) bool {
	for _, mod := range mods {
		if m&mod != 0 {
			return true
		}
	}
	return false
}

var modifierNames = []struct {
	mod  Modifiers
	name string
}{{Shift, "Shift"}, {Control, "Control"}, {Alt, "Alt"}, {Meta, "Meta"}}

func (m Modifiers) String() string {
	var sb strings.Builder
	for _, mn := range modifierNames {
		if m&mn.mod != 0 {
			if sb.Len() > 0 {
				sb.WriteString("+")
			}
			sb.WriteString(mn.name)
		}
	}
	return sb.String()
}

// KeyEvent is a key press or release, carrying the physical key code,
// the rune for printable keys (0 otherwise), and the active modifiers.
type KeyEvent struct {
	Base

	Code Codes
	Rune rune
	Mods Modifiers
}

// NewKey returns a new [KeyDown] or [KeyUp] event.
func NewKey(typ Types, rn rune, code Codes, mods Modifiers) *KeyEvent {
	ev := &KeyEvent{Code: code, Rune: rn, Mods: mods}
	ev.Init(typ)
	return ev
}

func (ev *KeyEvent) String() string {
	if ev.Rune > 0 {
		return fmt.Sprintf("%v{Rune: %q, Code: %d, Mods: %v, Time: %v}", ev.Typ, ev.Rune, ev.Code, ev.Mods, ev.Tm.Format("04:05"))
	}
	return fmt.Sprintf("%v{Code: %d, Mods: %v, Time: %v}", ev.Typ, ev.Code, ev.Mods, ev.Tm.Format("04:05"))
}
