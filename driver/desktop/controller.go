// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(android || ios || js || offscreen)

package desktop

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fenestralib/fenestra/gamepad"
)

// Controller is the glfw implementation of [gamepad.Backend].
// glfw joystick slots map one to one onto fenestra slots; devices
// with a gamepad mapping are read through the standard layout, so
// button and axis indices line up with [events.Buttons] and
// [events.Axes]. glfw has no force-feedback API, so Rumble is
// silently ignored.
type Controller struct {
	states [gamepad.MaxControllers]gamepad.State
	infos  [gamepad.MaxControllers]gamepad.Info
}

// NewControllerBackend returns a new glfw controller backend.
func NewControllerBackend() *Controller {
	return &Controller{}
}

func (c *Controller) Init() bool {
	return initGlfw() == nil
}

func (c *Controller) Shutdown() {}

func (c *Controller) Poll() {
	for slot := 0; slot < gamepad.MaxControllers; slot++ {
		js := glfw.Joystick(slot)
		if !js.Present() {
			c.states[slot] = gamepad.State{}
			c.infos[slot] = gamepad.Info{}
			continue
		}
		c.readSlot(slot, js)
	}
}

func (c *Controller) readSlot(slot int, js glfw.Joystick) {
	st := gamepad.State{Connected: true}
	info := gamepad.Info{Name: js.GetName()}
	if gs := js.GetGamepadState(); gs != nil {
		info.Name = js.GetGamepadName()
		info.NumButtons = gamepad.MaxButtons
		info.NumAxes = gamepad.MaxAxes
		for b, act := range gs.Buttons {
			st.Buttons[b] = act == glfw.Press
		}
		copy(st.Axes[:], gs.Axes[:])
	} else {
		// no standard mapping: raw buttons and axes, capped to the
		// standard layout sizes
		buttons := js.GetButtons()
		axes := js.GetAxes()
		info.NumButtons = min(len(buttons), gamepad.MaxButtons)
		info.NumAxes = min(len(axes), gamepad.MaxAxes)
		for b := 0; b < info.NumButtons; b++ {
			st.Buttons[b] = buttons[b] == glfw.Press
		}
		copy(st.Axes[:info.NumAxes], axes)
	}
	c.states[slot] = st
	c.infos[slot] = info
}

func (c *Controller) ConnectedCount() int {
	n := 0
	for _, st := range c.states {
		if st.Connected {
			n++
		}
	}
	return n
}

func (c *Controller) Info(slot int) gamepad.Info {
	if slot < 0 || slot >= gamepad.MaxControllers {
		return gamepad.Info{}
	}
	return c.infos[slot]
}

func (c *Controller) State(slot int) gamepad.State {
	if slot < 0 || slot >= gamepad.MaxControllers {
		return gamepad.State{}
	}
	return c.states[slot]
}

func (c *Controller) Rumble(slot int, low, high, leftTrigger, rightTrigger float32, dur time.Duration) {
	// glfw exposes no rumble; best-effort means doing nothing here.
}
