// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// WindowEvent reports window lifecycle changes: a resize carrying the
// new size, or a close. The resize sent on window creation carries the
// actual backend-reported size, which may differ from the requested one.
type WindowEvent struct {
	Base

	// Size is the new window size in raw pixels, for [WindowResize].
	Size image.Point
}

// NewWindowResize returns a new [WindowResize] event with the given size.
func NewWindowResize(sz image.Point) *WindowEvent {
	ev := &WindowEvent{Size: sz}
	ev.Init(WindowResize)
	return ev
}

// NewWindowClose returns a new [WindowClose] event.
func NewWindowClose() *WindowEvent {
	ev := &WindowEvent{}
	ev.Init(WindowClose)
	return ev
}

func (ev *WindowEvent) String() string {
	if ev.Typ == WindowResize {
		return fmt.Sprintf("%v{Size: %v, Time: %v}", ev.Typ, ev.Size, ev.Tm.Format("04:05"))
	}
	return ev.Base.String()
}
