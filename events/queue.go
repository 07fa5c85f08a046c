// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Queue is a FIFO event queue. Dequeued entries are kept on a free
// list and reused, so a steady-state event loop does not allocate.
// The zero value is ready to use. Queue is not safe for concurrent
// use: the event system runs on one designated thread.
type Queue struct {
	head *entry
	tail *entry
	free *entry
	n    int
}

type entry struct {
	ev   Event
	next *entry
}

// Push appends an event to the tail of the queue.
func (q *Queue) Push(ev Event) {
	e := q.free
	if e == nil {
		e = &entry{}
	} else {
		q.free = e.next
	}
	e.ev = ev
	e.next = nil
	if q.tail == nil {
		q.head = e
	} else {
		q.tail.next = e
	}
	q.tail = e
	q.n++
}

// Pop removes and returns the event at the head of the queue,
// or nil if the queue is empty.
func (q *Queue) Pop() Event {
	e := q.head
	if e == nil {
		return nil
	}
	q.head = e.next
	if q.head == nil {
		q.tail = nil
	}
	ev := e.ev
	e.ev = nil
	e.next = q.free
	q.free = e
	q.n--
	return ev
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	return q.n
}
