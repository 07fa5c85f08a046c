// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"github.com/fenestralib/fenestra/events"
)

// WindowBackend is the capability contract each platform implements
// for one native window. A [Window] owns exactly one backend; no-op
// implementations are valid and behave as "always empty, never fails"
// except that Create reports false.
type WindowBackend interface {

	// Create allocates the native window resources per the config.
	// It reports false if no resources were allocated, in which case
	// all queries return zero values thereafter. It is called at most
	// once per backend; there is no retry contract.
	Create(cfg *WindowConfig) bool

	// PollEvents pumps the OS message loop exactly once. It must not
	// block indefinitely.
	PollEvents()

	// IsOpen reports whether the native window is open.
	IsOpen() bool

	// Close releases the native window resources. Closing an already
	// closed backend is a no-op.
	Close()

	// Width returns the current width in raw pixels, 0 if never created.
	Width() int

	// Height returns the current height in raw pixels, 0 if never created.
	Height() int

	// Position returns the left-top position relative to the screen.
	Position() image.Point

	// SetSize sets the window size in raw pixels.
	SetSize(sz image.Point)

	// SetPosition sets the window left-top position.
	SetPosition(pos image.Point)

	// SetTitle sets the displayed window title.
	SetTitle(title string)

	// Handle returns an opaque value identifying the native window,
	// used as the attachment key in the event system. It is stable
	// for the life of the backend.
	Handle() any

	// Events returns the event source translating this window's OS
	// notifications into events. No-op backends return a source that
	// pumps nothing, forever.
	Events() events.Source

	// Name returns a diagnostic string identifying the concrete
	// backend, "Unavailable" if none could be constructed for the
	// detected platform.
	Name() string
}
