// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger used by the
// scene graph packages and commands, with colored level labels.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically be
// set through the --mode flag of a command. It defaults to [slog.LevelInfo],
// which can be changed with the "debug" and "release" build tags.
var UserLevel = new(slog.LevelVar)

func init() {
	UserLevel.Set(defaultUserLevel)
}

// NewHandler returns a text [slog.Handler] writing to w, filtered by
// [UserLevel], whose level labels are colored when w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			if lvl, ok := a.Value.Any().(slog.Level); ok {
				a.Value = slog.StringValue(LevelLabel(out, lvl))
			}
			return a
		},
	})
}

// LevelLabel returns the label for the given level, colored for the
// given terminal output: red for errors, yellow for warnings,
// and gray for debug messages.
func LevelLabel(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lvl < slog.LevelInfo:
		s = s.Foreground(termenv.ANSIBrightBlack)
	}
	return s.String()
}

// SetDefaultLogger installs a [NewHandler] on stderr as the
// default [slog] logger.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
