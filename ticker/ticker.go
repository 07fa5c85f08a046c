// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticker provides a frame-tick event source: attached to an
// event system, it emits Tick events at a fixed interval whenever it
// is pumped, without ever blocking the pump.
package ticker

import (
	"time"

	"github.com/fenestralib/fenestra/events"
)

// MaxTicksPerPump caps how many Tick events one pump can emit after
// a stall, so a long pause does not flood the queue trying to catch
// up. The tick clock is resynchronized when the cap is hit.
const MaxTicksPerPump = 4

// Ticker is an [events.Source] producing Tick events at a fixed
// interval. Pump is non-blocking: it emits one event per interval
// elapsed since the last pump, up to [MaxTicksPerPump].
type Ticker struct {
	interval time.Duration
	last     time.Time
	frame    uint64

	// now is the clock, replaceable in tests.
	now func() time.Time
}

// New returns a [Ticker] with the given interval, e.g. time.Second/60
// for a 60Hz tick.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Ticker{interval: interval, now: time.Now}
}

// Pump implements [events.Source]. The first call starts the clock
// and emits nothing.
func (t *Ticker) Pump() []events.Event {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return nil
	}
	var evs []events.Event
	for t.last.Add(t.interval).Compare(now) <= 0 {
		t.last = t.last.Add(t.interval)
		evs = append(evs, events.NewTick(t.frame, t.interval))
		t.frame++
		if len(evs) == MaxTicksPerPump {
			t.last = now
			break
		}
	}
	return evs
}

// Frame returns the number of ticks emitted so far.
func (t *Ticker) Frame() uint64 {
	return t.frame
}
