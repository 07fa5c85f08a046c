// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// System is the central event hub: it owns the FIFO queue, the
// listener registry, and the ordered set of attached event sources.
// It is an explicit object rather than process-wide state; construct
// one with [NewSystem] at startup and hand it to whatever produces
// or consumes events (windows, the gamepad poller, tickers).
//
// All System methods must be called from one designated thread,
// typically the application's main loop. This is a caller contract,
// not an enforced invariant.
type System struct {
	queue     Queue
	listeners Listeners

	// global is called before type listeners for every dispatched
	// event. Single slot: setting it replaces the previous one.
	global func(Event)

	// sources are pumped in attachment order when the queue is empty.
	sources []attachedSource
}

type attachedSource struct {
	handle any
	source Source
}

// NewSystem returns a new empty event [System].
func NewSystem() *System {
	return &System{}
}

// Push appends an event to the tail of the queue. No dispatch happens
// here: listeners run when the event is dequeued by [System.Poll].
func (es *System) Push(ev Event) {
	es.queue.Push(ev)
}

// Poll returns the next event, or (nil, false) if there is none.
// If the queue is empty, every attached source is pumped once, in
// attachment order, and the produced events are queued before the
// head is taken. The dequeued event is dispatched exactly once (the
// global callback first, then type listeners in registration order)
// before being returned, so pull-style callers still see listener
// side effects; an application should consume each event type either
// by polling or through listeners, not both.
func (es *System) Poll() (Event, bool) {
	ev := es.queue.Pop()
	if ev == nil {
		es.pump()
		ev = es.queue.Pop()
		if ev == nil {
			return nil, false
		}
	}
	if es.global != nil {
		es.global(ev)
	}
	es.listeners.Call(ev)
	return ev, true
}

// pump asks every attached source for pending events, preserving
// attachment order across sources and discovery order within one.
func (es *System) pump() {
	for _, as := range es.sources {
		for _, ev := range as.source.Pump() {
			es.queue.Push(ev)
		}
	}
}

// Len returns the number of events currently queued.
func (es *System) Len() int {
	return es.queue.Len()
}

// On adds a listener for the given event type. Multiple listeners for
// the same type all fire, in the order they were added.
func (es *System) On(typ Types, fun func(Event)) {
	es.listeners.Add(typ, fun)
}

// SetGlobalCallback sets the callback invoked for every dispatched
// event, before any type listeners. It is a single slot: passing a
// new function replaces the previous one, and nil clears it.
func (es *System) SetGlobalCallback(fun func(Event)) {
	es.global = fun
}

// ClearCallbacks drops all type listeners and the global callback.
// The queue and attached sources are not affected.
func (es *System) ClearCallbacks() {
	es.listeners = nil
	es.global = nil
}

// AttachSource attaches an event source under the given handle, so
// that [System.Poll] pumps it. The handle is an opaque identity,
// typically a window's native handle. Attaching under a handle that
// is already attached replaces that source in place, keeping its
// position in the pump order.
func (es *System) AttachSource(handle any, src Source) {
	for i, as := range es.sources {
		if as.handle == handle {
			es.sources[i].source = src
			return
		}
	}
	es.sources = append(es.sources, attachedSource{handle: handle, source: src})
}

// DetachSource removes the event source attached under the given
// handle. Detaching a handle that is not attached is a no-op.
func (es *System) DetachSource(handle any) {
	for i, as := range es.sources {
		if as.handle == handle {
			es.sources = append(es.sources[:i], es.sources[i+1:]...)
			return
		}
	}
}

// NSources returns the number of attached event sources.
func (es *System) NSources() int {
	return len(es.sources)
}
