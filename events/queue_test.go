// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFO(t *testing.T) {
	q := &Queue{}
	assert.Nil(t, q.Pop())
	assert.Equal(t, 0, q.Len())

	for i := 0; i < 10; i++ {
		q.Push(NewCustom(i))
	}
	assert.Equal(t, 10, q.Len())
	for i := 0; i < 10; i++ {
		ev := q.Pop()
		if assert.NotNil(t, ev) {
			assert.Equal(t, i, ev.(*CustomEvent).Data)
		}
	}
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Pop())
}

func TestQueueInterleaved(t *testing.T) {
	q := &Queue{}
	q.Push(NewCustom("a"))
	q.Push(NewCustom("b"))
	assert.Equal(t, "a", q.Pop().(*CustomEvent).Data)
	q.Push(NewCustom("c"))
	assert.Equal(t, "b", q.Pop().(*CustomEvent).Data)
	assert.Equal(t, "c", q.Pop().(*CustomEvent).Data)
	assert.Nil(t, q.Pop())

	// the free list refills entries without losing FIFO order
	q.Push(NewCustom("d"))
	q.Push(NewCustom("e"))
	assert.Equal(t, "d", q.Pop().(*CustomEvent).Data)
	assert.Equal(t, "e", q.Pop().(*CustomEvent).Data)
}
