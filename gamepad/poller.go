// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamepad

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/fenestralib/fenestra/events"
	"github.com/fenestralib/fenestra/logx"
)

// Poller owns a controller [Backend] and a previous-state snapshot
// per slot. On each [Poller.Poll] it reads the new state, diffs it
// against the snapshot, and pushes the synthesized events into the
// event system. Direct state queries bypass the event stream.
//
// Like the event system it feeds, a Poller is driven from one
// designated thread, once per logical tick.
type Poller struct {
	sys  *events.System
	be   Backend
	prev [MaxControllers]State
}

// NewPoller returns a [Poller] on the given backend, initializing it.
// A backend whose Init reports false is kept and polled anyway; it
// behaves as if no controller is ever connected.
func NewPoller(sys *events.System, be Backend) *Poller {
	if !be.Init() {
		logx.Warn("controller backend failed to initialize, no controllers will be reported")
	}
	return &Poller{sys: sys, be: be}
}

// Poll refreshes the backend state and synthesizes events for every
// change since the previous call: connection transitions, button
// press/release transitions, and axis moves of at least
// [AxisDeltaMin]. Events are pushed in slot, then kind (connection,
// buttons, axes), then index order, so a given state change always
// produces the same sequence. A steady state produces nothing.
func (p *Poller) Poll() {
	p.be.Poll()
	for slot := 0; slot < MaxControllers; slot++ {
		cur := p.be.State(slot)
		p.diffSlot(slot, &p.prev[slot], &cur)
		p.prev[slot] = cur
	}
}

func (p *Poller) diffSlot(slot int, prev, cur *State) {
	if cur.Connected != prev.Connected {
		if cur.Connected {
			p.sys.Push(events.NewControllerConnection(events.ControllerConnected, slot))
		} else {
			p.sys.Push(events.NewControllerConnection(events.ControllerDisconnected, slot))
			// no button or axis events for a departed controller
			return
		}
	}
	if !cur.Connected {
		return
	}
	for b := 0; b < MaxButtons; b++ {
		if cur.Buttons[b] == prev.Buttons[b] {
			continue
		}
		typ := events.ControllerButtonRelease
		if cur.Buttons[b] {
			typ = events.ControllerButtonPress
		}
		p.sys.Push(events.NewControllerButton(typ, slot, events.Buttons(b)))
	}
	for a := 0; a < MaxAxes; a++ {
		if math32.Abs(cur.Axes[a]-prev.Axes[a]) < AxisDeltaMin {
			continue
		}
		p.sys.Push(events.NewControllerAxis(slot, events.Axes(a), cur.Axes[a]))
	}
}

// ConnectedCount returns the number of connected controllers.
func (p *Poller) ConnectedCount() int {
	return p.be.ConnectedCount()
}

// Info returns the capabilities of the controller in the given slot.
func (p *Poller) Info(slot int) Info {
	return p.be.Info(slot)
}

// State returns the current input state of the given slot, as read
// by the backend on the last poll. This is independent of the event
// stream: it reflects the state even when no events were emitted.
func (p *Poller) State(slot int) State {
	return p.be.State(slot)
}

// Rumble passes a force-feedback request straight through to the
// backend. No events are produced and nothing is queued.
func (p *Poller) Rumble(slot int, low, high, leftTrigger, rightTrigger float32, dur time.Duration) {
	p.be.Rumble(slot, low, high, leftTrigger, rightTrigger, dur)
}

// Shutdown releases the controller backend.
func (p *Poller) Shutdown() {
	p.be.Shutdown()
}
