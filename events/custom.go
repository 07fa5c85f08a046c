// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// CustomEvent is a user-specified event that can be sent and received
// as needed, with a Data field for arbitrary data.
type CustomEvent struct {
	Base

	Data any
}

// NewCustom returns a new [Custom] event with the given data.
func NewCustom(data any) *CustomEvent {
	ev := &CustomEvent{Data: data}
	ev.Init(Custom)
	return ev
}

func (ev *CustomEvent) String() string {
	return fmt.Sprintf("%v{Data: %v, Time: %v}", ev.Typ, ev.Data, ev.Tm.Format("04:05"))
}
