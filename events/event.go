// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the event model and the central event
// system for fenestra: a closed set of typed events, a FIFO queue,
// per-type callback listeners, and pluggable event sources that
// translate pending OS notifications into discrete events.
package events

import (
	"fmt"
	"time"
)

// Event is the interface implemented by all event types.
// Events are value objects: once pushed onto a queue they are
// not modified again.
type Event interface {

	// Type returns the type of the event, which determines
	// which listeners receive it.
	Type() Types

	// Time returns the time at which the event was created.
	Time() time.Time

	// String returns a diagnostic description of the event.
	String() string
}

// Source is an event backend that translates pending OS-level
// notifications into discrete [Event] values. Pump must be
// non-blocking: it returns the events discovered since the last
// call, in discovery order, and returns nil when there are none.
// Implementations for unsupported platforms return nil forever.
type Source interface {
	Pump() []Event
}

// Base is the base event type implementing the common parts of
// [Event]. Concrete event types embed it and call [Base.Init].
type Base struct {
	Typ Types
	Tm  time.Time
}

// Init sets the event type and stamps the event with the current time.
func (ev *Base) Init(typ Types) {
	ev.Typ = typ
	ev.Tm = time.Now()
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.Tm
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.Tm.Format("04:05"))
}
