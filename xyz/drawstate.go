// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"strings"

	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/math32"
)

// DrawModes are the primitive modes all sub-meshes are drawn with.
type DrawModes int32

const (
	// Solid draws filled triangles.
	Solid DrawModes = iota

	// Lines draws line segments.
	Lines

	// Points draws one point per vertex.
	Points
)

func (dm DrawModes) String() string {
	switch dm {
	case Solid:
		return "solid"
	case Lines:
		return "lines"
	case Points:
		return "points"
	}
	return fmt.Sprintf("DrawModes(%d)", int32(dm))
}

// Topology returns the primitive topology for the mode.
func (dm DrawModes) Topology() gpu.Topologies {
	switch dm {
	case Lines:
		return gpu.LineList
	case Points:
		return gpu.PointList
	}
	return gpu.TriangleList
}

// ParseDrawMode returns the mode with the given name.
func ParseDrawMode(s string) (DrawModes, error) {
	for dm := Solid; dm <= Points; dm++ {
		if strings.EqualFold(s, dm.String()) {
			return dm, nil
		}
	}
	return Solid, fmt.Errorf("xyz.ParseDrawMode: unknown draw mode %q", s)
}

// MouseButtons are the pointer buttons currently held down.
type MouseButtons uint8

const (
	LeftButton MouseButtons = 1 << iota
	RightButton
	MiddleButton
)

// Mouse is the pointer state.
type Mouse struct {

	// Pos is the pointer position in window pixels, with Y down.
	Pos math32.Vector2

	// Buttons are the buttons currently pressed.
	Buttons MouseButtons
}

// NDC returns the pointer position in normalized device coordinates
// for a viewport of the given size in pixels.
func (ms Mouse) NDC(size math32.Vector2) math32.Vector2 {
	if size.X == 0 || size.Y == 0 {
		return math32.Vector2{}
	}
	return math32.Vec2(ms.Pos.X/size.X*2-1, -ms.Pos.Y/size.Y*2+1)
}

// DrawState is the render mode and pointer state shared by a frame.
// It is written by the input service between frames and only read
// while drawing.
type DrawState struct {
	Mode  DrawModes
	Mouse Mouse
}
