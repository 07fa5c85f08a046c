// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedSource returns one batch of events per pump, then nothing.
type scriptedSource struct {
	batches [][]Event
	pumps   int
}

func (s *scriptedSource) Pump() []Event {
	s.pumps++
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}

func TestSystemFIFO(t *testing.T) {
	sys := NewSystem()
	const n = 7
	for i := 0; i < n; i++ {
		sys.Push(NewCustom(i))
	}
	for i := 0; i < n; i++ {
		ev, ok := sys.Poll()
		assert.True(t, ok)
		assert.Equal(t, i, ev.(*CustomEvent).Data)
	}
	ev, ok := sys.Poll()
	assert.False(t, ok)
	assert.Nil(t, ev)
	assert.Equal(t, 0, sys.Len())
}

func TestSystemDispatchOrder(t *testing.T) {
	sys := NewSystem()
	var got []string
	sys.SetGlobalCallback(func(ev Event) {
		got = append(got, "global")
	})
	sys.On(Custom, func(ev Event) {
		got = append(got, "custom1")
	})
	sys.On(Custom, func(ev Event) {
		got = append(got, "custom2")
	})
	sys.On(Tick, func(ev Event) {
		got = append(got, "tick")
	})

	sys.Push(NewCustom(nil))
	ev, ok := sys.Poll()
	assert.True(t, ok)
	assert.Equal(t, Custom, ev.Type())
	assert.Equal(t, []string{"global", "custom1", "custom2"}, got)

	// a Tick never reaches the Custom listeners
	got = nil
	sys.Push(NewTick(0, 0))
	_, ok = sys.Poll()
	assert.True(t, ok)
	assert.Equal(t, []string{"global", "tick"}, got)
}

func TestSystemGlobalCallbackReplaced(t *testing.T) {
	sys := NewSystem()
	calls := 0
	sys.SetGlobalCallback(func(ev Event) { calls += 100 })
	sys.SetGlobalCallback(func(ev Event) { calls++ })
	sys.Push(NewCustom(nil))
	sys.Poll()
	assert.Equal(t, 1, calls)
}

func TestSystemClearCallbacks(t *testing.T) {
	sys := NewSystem()
	calls := 0
	sys.SetGlobalCallback(func(ev Event) { calls++ })
	sys.On(Custom, func(ev Event) { calls++ })
	sys.Push(NewCustom(nil))
	sys.ClearCallbacks()

	// the queue is untouched, but nothing fires on dispatch
	ev, ok := sys.Poll()
	assert.True(t, ok)
	assert.NotNil(t, ev)
	assert.Equal(t, 0, calls)
}

func TestSystemPumpOrder(t *testing.T) {
	sys := NewSystem()
	first := &scriptedSource{batches: [][]Event{{NewCustom("a1"), NewCustom("a2")}}}
	second := &scriptedSource{batches: [][]Event{{NewCustom("b1")}}}
	sys.AttachSource("first", first)
	sys.AttachSource("second", second)

	// earlier-attached sources are queued first within one pump
	var got []any
	for {
		ev, ok := sys.Poll()
		if !ok {
			break
		}
		got = append(got, ev.(*CustomEvent).Data)
	}
	assert.Equal(t, []any{"a1", "a2", "b1"}, got)
}

func TestSystemPumpOnlyWhenEmpty(t *testing.T) {
	sys := NewSystem()
	src := &scriptedSource{}
	sys.AttachSource("src", src)

	sys.Push(NewCustom(nil))
	sys.Poll()
	assert.Equal(t, 0, src.pumps, "queued events are served without pumping")

	sys.Poll()
	assert.Equal(t, 1, src.pumps)
}

func TestSystemNoopSource(t *testing.T) {
	sys := NewSystem()
	sys.AttachSource("noop", &scriptedSource{})
	for i := 0; i < 5; i++ {
		ev, ok := sys.Poll()
		assert.False(t, ok)
		assert.Nil(t, ev)
	}
}

func TestSystemDetach(t *testing.T) {
	sys := NewSystem()
	src := &scriptedSource{batches: [][]Event{{NewCustom("x")}}}
	sys.AttachSource("src", src)
	assert.Equal(t, 1, sys.NSources())

	sys.DetachSource("src")
	assert.Equal(t, 0, sys.NSources())
	_, ok := sys.Poll()
	assert.False(t, ok)
	assert.Equal(t, 0, src.pumps)

	// detaching an unknown handle is a no-op
	sys.DetachSource("nope")
}

func TestSystemAttachReplacesInPlace(t *testing.T) {
	sys := NewSystem()
	a := &scriptedSource{batches: [][]Event{{NewCustom("a")}}}
	b := &scriptedSource{batches: [][]Event{{NewCustom("b")}}}
	c := &scriptedSource{batches: [][]Event{{NewCustom("c")}}}
	sys.AttachSource("h1", a)
	sys.AttachSource("h2", b)
	sys.AttachSource("h1", c) // replaces a, keeps first position
	assert.Equal(t, 2, sys.NSources())

	var got []any
	for {
		ev, ok := sys.Poll()
		if !ok {
			break
		}
		got = append(got, ev.(*CustomEvent).Data)
	}
	assert.Equal(t, []any{"c", "b"}, got)
	assert.Equal(t, 0, a.pumps)
}

func TestSystemDispatchOnDequeueOnce(t *testing.T) {
	sys := NewSystem()
	calls := 0
	sys.On(Custom, func(ev Event) { calls++ })
	sys.Push(NewCustom(nil))
	assert.Equal(t, 0, calls, "Push never dispatches")
	sys.Poll()
	assert.Equal(t, 1, calls)
	sys.Poll()
	assert.Equal(t, 1, calls, "an event is dispatched exactly once")
}
