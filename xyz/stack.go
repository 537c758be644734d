// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/math32"
)

// ErrEmptyStack is returned when popping an empty [MatrixStack].
// During drawing it means the traversal has lost its parent transform,
// and the frame is aborted.
var ErrEmptyStack = errors.New("xyz: matrix stack is empty")

// MatrixStack is the stack of world matrices used during traversal.
// The top is the world matrix of the node currently being drawn.
type MatrixStack struct {
	stack []math32.Matrix4
}

// Push pushes the given matrix.
func (ms *MatrixStack) Push(m math32.Matrix4) {
	ms.stack = append(ms.stack, m)
}

// Pop removes and returns the top matrix.
func (ms *MatrixStack) Pop() (math32.Matrix4, error) {
	n := len(ms.stack)
	if n == 0 {
		return math32.Matrix4{}, ErrEmptyStack
	}
	m := ms.stack[n-1]
	ms.stack = ms.stack[:n-1]
	return m, nil
}

// Top returns the top matrix without removing it.
func (ms *MatrixStack) Top() (math32.Matrix4, error) {
	n := len(ms.stack)
	if n == 0 {
		return math32.Matrix4{}, ErrEmptyStack
	}
	return ms.stack[n-1], nil
}

// Len returns the number of matrices on the stack.
func (ms *MatrixStack) Len() int {
	return len(ms.stack)
}

// Reset sets the stack to a single identity matrix, the state at the
// start of each frame.
func (ms *MatrixStack) Reset() {
	ms.stack = append(ms.stack[:0], *math32.Identity4())
}

// Clear removes all matrices.
func (ms *MatrixStack) Clear() {
	ms.stack = ms.stack[:0]
}
