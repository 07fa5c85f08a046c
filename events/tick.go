// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"
)

// TickEvent is a frame tick, carrying the frame number and the time
// elapsed since the previous tick.
type TickEvent struct {
	Base

	// Frame is the tick counter, starting at 0 for the first tick.
	Frame uint64

	// Delta is the time since the previous tick
	// (the nominal interval for the first one).
	Delta time.Duration
}

// NewTick returns a new [Tick] event.
func NewTick(frame uint64, delta time.Duration) *TickEvent {
	ev := &TickEvent{Frame: frame, Delta: delta}
	ev.Init(Tick)
	return ev
}

func (ev *TickEvent) String() string {
	return fmt.Sprintf("%v{Frame: %d, Delta: %v, Time: %v}", ev.Typ, ev.Frame, ev.Delta, ev.Tm.Format("04:05"))
}
