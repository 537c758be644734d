// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/scenegraph/math32"

// Group is a group of 3D shapes generated into one set of buffers,
// each positioned by its own Pos offset.
// Returns summary data for shape elements.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Shape
}

// NewGroup returns a Group of the given shapes.
func NewGroup(shapes ...Shape) *Group {
	return &Group{Shapes: shapes}
}

func (sb *Group) Validate() error {
	if len(sb.Shapes) == 0 {
		return invalid("empty shape group")
	}
	for _, sh := range sb.Shapes {
		if sh.Dim() != 3 {
			return invalid("group member has %d dimensions", sh.Dim())
		}
		if err := sh.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Size returns number of vertex, index points in this shape element.
// The group has color if any member does; members without color
// are set to opaque white.
func (sb *Group) Size() (numVertex, numIndex int, hasColor bool) {
	for _, sh := range sb.Shapes {
		nv, ni, hc := sh.Size()
		numVertex += nv
		numIndex += ni
		hasColor = hasColor || hc
	}
	return
}

// Set sets points in given allocated arrays, also updates offsets
func (sb *Group) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	vo := sb.VertexOffset
	io := sb.IndexOffset
	sb.CBBox.SetEmpty()
	for _, sh := range sb.Shapes {
		sh.SetOffsets(vo, io)
		sh.Set(vertex, normal, texcoord, clrs, index)
		sb.CBBox.ExpandByBox(sh.BBox())
		nv, ni, hc := sh.Size()
		if !hc {
			SetColor(clrs, vo, nv, math32.Vec4(1, 1, 1, 1))
		}
		vo += nv
		io += ni
	}
}
