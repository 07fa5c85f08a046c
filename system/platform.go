// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the platform identity and the backend
// capability interfaces for fenestra, together with the window
// facade built on top of a backend. Concrete backends live in the
// driver packages; everything here is platform independent.
package system

import (
	"os"
	"runtime"
	"sync"
)

// Platforms are all the supported platforms.
type Platforms int32

const (
	// Unknown is an unrecognized platform; factories return
	// no-op backends for it.
	Unknown Platforms = iota

	// Windows is a Microsoft Windows machine.
	Windows

	// MacOS is a Mac OS machine (aka Darwin).
	MacOS

	// LinuxX11 is a Linux machine running an X11 session.
	LinuxX11

	// LinuxWayland is a Linux machine running a Wayland session.
	LinuxWayland

	// Android is an Android mobile phone or tablet.
	Android

	// IOS is an Apple iOS or iPadOS device.
	IOS

	// Web is a web browser running the app through WASM.
	Web

	// Console is a game console. There is no native backend for
	// consoles in this module; the no-op backend is used.
	Console

	// Offscreen is the headless platform used for testing and
	// for any platform without a native backend.
	Offscreen

	PlatformsN
)

var platformNames = []string{
	"Unknown",
	"Windows",
	"MacOS",
	"LinuxX11",
	"LinuxWayland",
	"Android",
	"IOS",
	"Web",
	"Console",
	"Offscreen",
}

func (p Platforms) String() string {
	if p < 0 || p >= PlatformsN {
		return "Platforms(invalid)"
	}
	return platformNames[p]
}

// IsMobile returns whether the platform is a mobile platform
// (Android, IOS, or Web). Web is considered mobile because it
// only supports one window.
func (p Platforms) IsMobile() bool {
	return p == Android || p == IOS || p == Web
}

// IsDesktop returns whether the platform is a desktop platform
// supporting multiple native windows.
func (p Platforms) IsDesktop() bool {
	return p == Windows || p == MacOS || p == LinuxX11 || p == LinuxWayland
}

// Platform returns the platform for the current process, computed
// once on first use and immutable thereafter.
var Platform = sync.OnceValue(detect)

func detect() Platforms {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			return LinuxWayland
		}
		return LinuxX11
	case "android":
		return Android
	case "ios":
		return IOS
	case "js":
		return Web
	}
	return Unknown
}
