// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerLevel(t *testing.T) {
	defer UserLevel.Set(UserLevel.Level())
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))

	UserLevel.Set(slog.LevelWarn)
	lg.Info("hidden")
	assert.Empty(t, buf.String())

	lg.Warn("shown", "node", "base")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "node=base")
}
