// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides no-op backend implementations, used for
// headless operation, for testing, and as the stand-ins for platforms
// without a native backend. The Window backend goes through the full
// lifecycle (create, resize, close) without any native resources; the
// Unavailable backend additionally fails creation, for exercising the
// permanently-invalid window path.
package offscreen

import (
	"image"
	"time"

	"github.com/fenestralib/fenestra/events"
	"github.com/fenestralib/fenestra/gamepad"
	"github.com/fenestralib/fenestra/system"
)

// DefaultSize is the window size used when the config does not
// specify one.
var DefaultSize = image.Pt(800, 600)

// Window is the no-op implementation of [system.WindowBackend].
// Creation always succeeds and geometry behaves normally, but there
// is no native window behind it and its event source pumps nothing.
type Window struct {
	title   string
	size    image.Point
	pos     image.Point
	open    bool
	created bool
}

// NewWindowBackend returns a new offscreen window backend.
func NewWindowBackend() *Window {
	return &Window{}
}

func (w *Window) Create(cfg *system.WindowConfig) bool {
	w.title = cfg.Title
	w.size = cfg.Size
	if w.size.X <= 0 {
		w.size.X = DefaultSize.X
	}
	if w.size.Y <= 0 {
		w.size.Y = DefaultSize.Y
	}
	w.pos = cfg.Pos
	w.open = true
	w.created = true
	return true
}

func (w *Window) PollEvents() {}

func (w *Window) IsOpen() bool {
	return w.open
}

func (w *Window) Close() {
	w.open = false
}

func (w *Window) Width() int {
	if !w.created {
		return 0
	}
	return w.size.X
}

func (w *Window) Height() int {
	if !w.created {
		return 0
	}
	return w.size.Y
}

func (w *Window) Position() image.Point {
	return w.pos
}

func (w *Window) SetSize(sz image.Point) {
	w.size = sz
}

func (w *Window) SetPosition(pos image.Point) {
	w.pos = pos
}

func (w *Window) SetTitle(title string) {
	w.title = title
}

func (w *Window) Handle() any {
	return w
}

func (w *Window) Events() events.Source {
	return Source{}
}

func (w *Window) Name() string {
	return "offscreen"
}

// Source is the no-op event source: it pumps nothing, forever.
type Source struct{}

func (Source) Pump() []events.Event {
	return nil
}

// Unavailable is the window backend for platforms where no window
// can be constructed. Create reports false, so windows built on it
// are permanently invalid; everything else is a no-op returning
// zero values.
type Unavailable struct{}

func (u *Unavailable) Create(cfg *system.WindowConfig) bool { return false }
func (u *Unavailable) PollEvents()                          {}
func (u *Unavailable) IsOpen() bool                         { return false }
func (u *Unavailable) Close()                               {}
func (u *Unavailable) Width() int                           { return 0 }
func (u *Unavailable) Height() int                          { return 0 }
func (u *Unavailable) Position() image.Point                { return image.Point{} }
func (u *Unavailable) SetSize(sz image.Point)               {}
func (u *Unavailable) SetPosition(pos image.Point)          {}
func (u *Unavailable) SetTitle(title string)                {}
func (u *Unavailable) Handle() any                          { return u }
func (u *Unavailable) Events() events.Source                { return Source{} }
func (u *Unavailable) Name() string                         { return "Unavailable" }

// Controller is the no-op [gamepad.Backend]: initialization succeeds
// and every slot stays disconnected forever.
type Controller struct{}

func (c *Controller) Init() bool                { return true }
func (c *Controller) Shutdown()                 {}
func (c *Controller) Poll()                     {}
func (c *Controller) ConnectedCount() int       { return 0 }
func (c *Controller) Info(slot int) gamepad.Info {
	return gamepad.Info{}
}

func (c *Controller) State(slot int) gamepad.State {
	return gamepad.State{}
}

func (c *Controller) Rumble(slot int, low, high, leftTrigger, rightTrigger float32, dur time.Duration) {
}
