// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatform(t *testing.T) {
	p := Platform()
	assert.Equal(t, p, Platform(), "identity is computed once and stable")
	switch runtime.GOOS {
	case "windows":
		assert.Equal(t, Windows, p)
	case "darwin":
		assert.Equal(t, MacOS, p)
	case "linux":
		assert.True(t, p == LinuxX11 || p == LinuxWayland)
	}
}

func TestPlatformsString(t *testing.T) {
	assert.Equal(t, "Windows", Windows.String())
	assert.Equal(t, "Offscreen", Offscreen.String())
	assert.Equal(t, "Platforms(invalid)", Platforms(-1).String())
	assert.Equal(t, "Platforms(invalid)", PlatformsN.String())
}

func TestPlatformsKind(t *testing.T) {
	assert.True(t, Windows.IsDesktop())
	assert.True(t, LinuxWayland.IsDesktop())
	assert.False(t, Android.IsDesktop())
	assert.True(t, Android.IsMobile())
	assert.True(t, Web.IsMobile())
	assert.False(t, Offscreen.IsMobile())
}
