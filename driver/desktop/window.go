// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(android || ios || js || offscreen)

package desktop

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fenestralib/fenestra/events"
	"github.com/fenestralib/fenestra/logx"
	"github.com/fenestralib/fenestra/system"
)

// Window is the glfw implementation of [system.WindowBackend].
// Its glfw callbacks accumulate events in a pending list, which the
// window's event source drains on each pump.
type Window struct {
	glw *glfw.Window

	// size and pos are cached from the glfw callbacks so geometry
	// queries stay valid without touching the native handle.
	size image.Point
	pos  image.Point

	pending []events.Event
}

// NewWindowBackend returns a new, not yet created, glfw window backend.
func NewWindowBackend() *Window {
	return &Window{}
}

func (w *Window) Create(cfg *system.WindowConfig) bool {
	if err := initGlfw(); err != nil {
		logx.Warn("glfw initialization failed", "err", err)
		return false
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	hintBool(glfw.Visible, cfg.Visible)
	hintBool(glfw.Resizable, cfg.Resizable)

	sz := cfg.Size
	if sz.X <= 0 {
		sz.X = 800
	}
	if sz.Y <= 0 {
		sz.Y = 600
	}
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	glw, err := glfw.CreateWindow(sz.X, sz.Y, cfg.Title, monitor, nil)
	if err != nil {
		logx.Warn("glfw window creation failed", "err", err)
		return false
	}
	w.glw = glw
	if cfg.Pos != (image.Point{}) && monitor == nil {
		glw.SetPos(cfg.Pos.X, cfg.Pos.Y)
	}

	x, y := glw.GetSize()
	w.size = image.Pt(x, y)
	px, py := glw.GetPos()
	w.pos = image.Pt(px, py)

	glw.SetSizeCallback(w.sizeChanged)
	glw.SetPosCallback(w.posChanged)
	glw.SetCloseCallback(w.closeRequested)
	glw.SetKeyCallback(w.keyChanged)
	return true
}

func hintBool(hint glfw.Hint, v bool) {
	if v {
		glfw.WindowHint(hint, glfw.True)
	} else {
		glfw.WindowHint(hint, glfw.False)
	}
}

func (w *Window) sizeChanged(gw *glfw.Window, width, height int) {
	w.size = image.Pt(width, height)
	w.pending = append(w.pending, events.NewWindowResize(w.size))
}

func (w *Window) posChanged(gw *glfw.Window, x, y int) {
	w.pos = image.Pt(x, y)
}

// closeRequested is the OS asking for a close (e.g. the title-bar
// button). The backend only reports it; the application decides by
// calling Close on the window facade.
func (w *Window) closeRequested(gw *glfw.Window) {
	w.pending = append(w.pending, events.NewWindowClose())
}

func (w *Window) keyChanged(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	rn, code := keyCode(ky)
	w.pending = append(w.pending, events.NewKey(typ, rn, code, keyMods(mod)))
}

func (w *Window) PollEvents() {
	if w.glw == nil {
		return
	}
	glfw.PollEvents()
}

func (w *Window) IsOpen() bool {
	return w.glw != nil
}

func (w *Window) Close() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
}

func (w *Window) Width() int {
	return w.size.X
}

func (w *Window) Height() int {
	return w.size.Y
}

func (w *Window) Position() image.Point {
	return w.pos
}

func (w *Window) SetSize(sz image.Point) {
	if w.glw == nil {
		return
	}
	w.glw.SetSize(sz.X, sz.Y)
	w.size = sz
}

func (w *Window) SetPosition(pos image.Point) {
	if w.glw == nil {
		return
	}
	w.glw.SetPos(pos.X, pos.Y)
	w.pos = pos
}

func (w *Window) SetTitle(title string) {
	if w.glw == nil {
		return
	}
	w.glw.SetTitle(title)
}

// Handle returns the backend itself: it is stable across the whole
// lifecycle, unlike the glfw handle which goes away on Close.
func (w *Window) Handle() any {
	return w
}

func (w *Window) Events() events.Source {
	return &windowSource{w: w}
}

func (w *Window) Name() string {
	return "desktop (glfw)"
}

// windowSource drains the window's pending events after running the
// glfw message loop once.
type windowSource struct {
	w *Window
}

func (s *windowSource) Pump() []events.Event {
	if s.w.glw != nil {
		glfw.PollEvents()
	}
	evs := s.w.pending
	s.w.pending = nil
	return evs
}
