// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"github.com/fenestralib/fenestra/events"
	"github.com/fenestralib/fenestra/logx"
)

// Window is the platform-independent window facade. It exclusively
// owns one [WindowBackend], drives its lifecycle, and reports
// lifecycle changes through the event system: the implicit resize on
// creation and the close on [Window.Close].
//
// A Window moves through Open to Closed exactly once; a closed window
// cannot be reopened, construct a new one instead. If backend creation
// fails the window is permanently invalid: read-only queries still
// work and return zero values, mutators are no-ops, and no events are
// ever produced. Check [Window.IsValid] and [Window.LastError] after
// construction.
type Window struct {
	sys *events.System
	be  WindowBackend
	cfg WindowConfig

	valid bool
	open  bool
	err   error
}

// NewWindow creates a window on the given backend, taking exclusive
// ownership of it. On success the window is open, its event source is
// attached to the event system under the backend's native handle, and
// a WindowResize event carrying the backend-reported actual size is
// queued. A nil cfg means the defaults from [NewWindowConfig].
//
// NewWindow never returns nil: on backend failure the returned window
// is invalid but still answers queries.
func NewWindow(sys *events.System, cfg *WindowConfig, be WindowBackend) *Window {
	if cfg == nil {
		cfg = NewWindowConfig("")
	}
	w := &Window{sys: sys, be: be, cfg: *cfg}
	if !be.Create(cfg) {
		w.err = &CreationError{Platform: Platform(), Backend: be.Name()}
		logx.Warn("window creation failed", "backend", be.Name(), "platform", Platform())
		return w
	}
	w.valid = true
	w.open = true
	w.cfg.Size = image.Pt(be.Width(), be.Height())
	sys.AttachSource(be.Handle(), be.Events())
	sys.Push(events.NewWindowResize(w.cfg.Size))
	return w
}

// IsValid reports whether backend creation succeeded. It is false
// forever if it did not.
func (w *Window) IsValid() bool {
	return w.valid
}

// IsOpen reports whether the window is open: true after successful
// creation, false after [Window.Close], never true again.
func (w *Window) IsOpen() bool {
	return w.open
}

// LastError returns the creation error for an invalid window,
// nil otherwise.
func (w *Window) LastError() error {
	return w.err
}

// Close closes the window: the backend releases its native resources,
// the event source is detached from the event system, and exactly one
// WindowClose event is queued. Closing an already closed or invalid
// window is a no-op. Close is also the cleanup contract: an open
// window must be closed before it is dropped.
func (w *Window) Close() {
	if !w.open {
		return
	}
	w.open = false
	w.be.Close()
	w.sys.DetachSource(w.be.Handle())
	w.sys.Push(events.NewWindowClose())
}

// PollEvents pumps the backend's OS message loop once. The event
// system does this as part of [events.System.Poll] via the attached
// source; PollEvents is for callers driving the backend directly.
func (w *Window) PollEvents() {
	if !w.open {
		return
	}
	w.be.PollEvents()
}

// SetSize requests a new window size in raw pixels.
func (w *Window) SetSize(sz image.Point) {
	if !w.open {
		return
	}
	w.be.SetSize(sz)
	w.cfg.Size = sz
}

// SetPosition requests a new window left-top position.
func (w *Window) SetPosition(pos image.Point) {
	if !w.open {
		return
	}
	w.be.SetPosition(pos)
	w.cfg.Pos = pos
}

// SetTitle sets the displayed window title.
func (w *Window) SetTitle(title string) {
	if !w.open {
		return
	}
	w.be.SetTitle(title)
	w.cfg.Title = title
}

// Width returns the current width in raw pixels, 0 for an invalid
// or closed window.
func (w *Window) Width() int {
	if !w.open {
		return 0
	}
	return w.be.Width()
}

// Height returns the current height in raw pixels, 0 for an invalid
// or closed window.
func (w *Window) Height() int {
	if !w.open {
		return 0
	}
	return w.be.Height()
}

// Position returns the window left-top position relative to the screen.
func (w *Window) Position() image.Point {
	if !w.open {
		return image.Point{}
	}
	return w.be.Position()
}

// Title returns the current window title.
func (w *Window) Title() string {
	return w.cfg.Title
}

// BackendName returns the diagnostic name of the owned backend.
func (w *Window) BackendName() string {
	return w.be.Name()
}

// Platform returns the platform this window was created on.
func (w *Window) Platform() Platforms {
	return Platform()
}
