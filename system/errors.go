// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "fmt"

// CreationError is the structured error recording why a window
// backend failed to create its native resources. It is surfaced
// through [Window.LastError]; backend failure is represented as
// data, never as a panic or process exit.
type CreationError struct {

	// Platform is the platform the creation was attempted on.
	Platform Platforms

	// Backend is the diagnostic name of the backend that failed.
	Backend string

	// Err is the underlying cause, if the backend reported one.
	Err error
}

func (e *CreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("window creation failed on %v (backend %q): %v", e.Platform, e.Backend, e.Err)
	}
	return fmt.Sprintf("window creation failed on %v (backend %q)", e.Platform, e.Backend)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}
