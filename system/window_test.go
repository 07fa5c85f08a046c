// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenestralib/fenestra/events"
)

// fakeBackend is a scripted [WindowBackend]. createOK controls whether
// Create succeeds; reportSize is the size the backend claims after
// creation, standing in for platforms that clamp the request.
type fakeBackend struct {
	createOK   bool
	reportSize image.Point

	created    bool
	open       bool
	title      string
	pos        image.Point
	closeCalls int
}

func (b *fakeBackend) Create(cfg *WindowConfig) bool {
	if !b.createOK {
		return false
	}
	b.created = true
	b.open = true
	b.title = cfg.Title
	return true
}

func (b *fakeBackend) PollEvents() {}

func (b *fakeBackend) IsOpen() bool { return b.open }

func (b *fakeBackend) Close() {
	if !b.open {
		return
	}
	b.open = false
	b.closeCalls++
}

func (b *fakeBackend) Width() int {
	if !b.created {
		return 0
	}
	return b.reportSize.X
}

func (b *fakeBackend) Height() int {
	if !b.created {
		return 0
	}
	return b.reportSize.Y
}

func (b *fakeBackend) Position() image.Point     { return b.pos }
func (b *fakeBackend) SetSize(sz image.Point)    { b.reportSize = sz }
func (b *fakeBackend) SetPosition(p image.Point) { b.pos = p }
func (b *fakeBackend) SetTitle(title string)     { b.title = title }
func (b *fakeBackend) Handle() any               { return b }
func (b *fakeBackend) Events() events.Source     { return noopSource{} }
func (b *fakeBackend) Name() string              { return "fake" }

type noopSource struct{}

func (noopSource) Pump() []events.Event { return nil }

func TestWindowCreate(t *testing.T) {
	sys := events.NewSystem()
	be := &fakeBackend{createOK: true, reportSize: image.Pt(640, 480)}
	w := NewWindow(sys, NewWindowConfig("test"), be)

	assert.True(t, w.IsValid())
	assert.True(t, w.IsOpen())
	assert.NoError(t, w.LastError())
	assert.Equal(t, 640, w.Width())
	assert.Equal(t, 480, w.Height())
	assert.Equal(t, 1, sys.NSources())

	// the implicit resize carries the backend-reported size
	ev, ok := sys.Poll()
	assert.True(t, ok)
	assert.Equal(t, events.WindowResize, ev.Type())
	assert.Equal(t, image.Pt(640, 480), ev.(*events.WindowEvent).Size)

	_, ok = sys.Poll()
	assert.False(t, ok)
}

func TestWindowClose(t *testing.T) {
	sys := events.NewSystem()
	be := &fakeBackend{createOK: true, reportSize: image.Pt(640, 480)}
	w := NewWindow(sys, nil, be)
	sys.Poll() // drain the creation resize

	w.Close()
	assert.False(t, w.IsOpen())
	assert.True(t, w.IsValid(), "a closed window is still valid")
	assert.Equal(t, 1, be.closeCalls)
	assert.Equal(t, 0, sys.NSources(), "event source detached on close")

	ev, ok := sys.Poll()
	assert.True(t, ok)
	assert.Equal(t, events.WindowClose, ev.Type())

	// idempotent: no further events, no state change
	w.Close()
	assert.Equal(t, 1, be.closeCalls)
	_, ok = sys.Poll()
	assert.False(t, ok)

	assert.Equal(t, 0, w.Width())
	assert.Equal(t, 0, w.Height())
}

func TestWindowCreationFailure(t *testing.T) {
	sys := events.NewSystem()
	be := &fakeBackend{createOK: false}
	w := NewWindow(sys, NewWindowConfig("nope"), be)

	assert.NotNil(t, w)
	assert.False(t, w.IsValid())
	assert.False(t, w.IsOpen())

	var cerr *CreationError
	assert.ErrorAs(t, w.LastError(), &cerr)
	assert.Equal(t, "fake", cerr.Backend)

	// no events, no sources, zero-value queries, mutators no-op
	assert.Equal(t, 0, sys.Len())
	assert.Equal(t, 0, sys.NSources())
	assert.Equal(t, 0, w.Width())
	assert.Equal(t, 0, w.Height())
	w.SetSize(image.Pt(100, 100))
	w.SetTitle("still nope")
	assert.Equal(t, 0, w.Width())
	_, ok := sys.Poll()
	assert.False(t, ok)

	w.Close()
	assert.Equal(t, 0, be.closeCalls)
	assert.Equal(t, 0, sys.Len())
}

func TestWindowMutators(t *testing.T) {
	sys := events.NewSystem()
	be := &fakeBackend{createOK: true, reportSize: image.Pt(640, 480)}
	w := NewWindow(sys, NewWindowConfig("before"), be)

	w.SetTitle("after")
	assert.Equal(t, "after", w.Title())
	assert.Equal(t, "after", be.title)

	w.SetSize(image.Pt(300, 200))
	assert.Equal(t, 300, w.Width())
	assert.Equal(t, 200, w.Height())

	w.SetPosition(image.Pt(10, 20))
	assert.Equal(t, image.Pt(10, 20), w.Position())

	w.Close()
	w.SetTitle("ignored")
	assert.Equal(t, "after", w.Title())
}
