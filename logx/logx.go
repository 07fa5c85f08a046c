// Copyright (c) 2026, The Fenestra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for fenestra on top of
// [log/slog], with colored level tags on capable terminals.
// Backend and driver code logs degraded states here (a failed
// creation, an unsupported platform) instead of failing.
package logx

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level chosen by the end user.
// Messages below this level are dropped. The default is Info,
// or Debug when built with the debug tag.
var UserLevel = defaultUserLevel

var output = termenv.NewOutput(os.Stderr)

// levelColors are ANSI foreground colors for the level tags.
var levelColors = map[slog.Level]termenv.Color{
	slog.LevelDebug: termenv.ANSIBrightBlack,
	slog.LevelInfo:  termenv.ANSIBlue,
	slog.LevelWarn:  termenv.ANSIYellow,
	slog.LevelError: termenv.ANSIRed,
}

// LevelTag returns the given level as a colored tag string,
// colored only when the output terminal supports it.
func LevelTag(level slog.Level) string {
	return output.String(level.String()).Foreground(levelColors[level]).String()
}

func log(level slog.Level, msg string, args ...any) {
	if level < UserLevel {
		return
	}
	s := msg
	for i := 0; i+1 < len(args); i += 2 {
		s += fmt.Sprintf(" %v=%v", args[i], args[i+1])
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", LevelTag(level), s)
}

// Debug logs the given message at [slog.LevelDebug],
// with key=value pairs from args.
func Debug(msg string, args ...any) {
	log(slog.LevelDebug, msg, args...)
}

// Info logs the given message at [slog.LevelInfo],
// with key=value pairs from args.
func Info(msg string, args ...any) {
	log(slog.LevelInfo, msg, args...)
}

// Warn logs the given message at [slog.LevelWarn],
// with key=value pairs from args.
func Warn(msg string, args ...any) {
	log(slog.LevelWarn, msg, args...)
}

// Error logs the given message at [slog.LevelError],
// with key=value pairs from args.
func Error(msg string, args ...any) {
	log(slog.LevelError, msg, args...)
}
