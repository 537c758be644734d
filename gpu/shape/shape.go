// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides pure procedural generators for solids and
// point sets, producing flat vertex, normal, texcoord, color and index
// buffers ready for upload.
package shape

import (
	"fmt"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/base/slicesx"
	"cogentcore.org/scenegraph/math32"
)

// ErrInvalidParameter is returned when a generator is given parameters
// outside of its valid range. No buffers are produced in that case.
var ErrInvalidParameter = errors.New("shape: invalid parameter")

// Shape is an interface for all shape-constructing elements
type Shape interface {

	// Validate returns an [ErrInvalidParameter] error if the shape
	// parameters are out of range. It must be called before Size.
	Validate() error

	// Dim returns the number of position components per vertex (2 or 3).
	Dim() int

	// Size returns the number of vertex, index points in this shape element,
	// and whether it has per-vertex color values.
	Size() (numVertex, numIndex int, hasColor bool)

	// SetOffsets sets starting offsets for vertexes, indexes in full shape array,
	// in terms of points, not floats.
	SetOffsets(vtxOff, idxOff int)

	// Set sets points in given allocated arrays.
	// Normal and texcoord arrays are nil for 2D shapes,
	// and clrs is nil when no shape in the set has color.
	Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32)

	// BBox returns the bounding box for the shape, typically centered around 0.
	// This is only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base shape element
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// Dim returns 3, for solid shapes.
func (sb *ShapeBase) Dim() int { return 3 }

// SetOffsets sets starting offsets for vertexes, indexes in full shape array
func (sb *ShapeBase) SetOffsets(vtxOff, idxOff int) {
	sb.VertexOffset, sb.IndexOffset = vtxOff, idxOff
}

// BBox returns the bounding box for the shape, typically centered around 0
// This is only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// Buffers holds the generated data for one [Shape], as flat arrays.
type Buffers struct {

	// Dim is the number of position components per vertex (2 or 3).
	Dim int

	// Vertex has Dim floats per vertex.
	Vertex math32.ArrayF32

	// Normal has 3 floats per vertex, nil for 2D shapes.
	Normal math32.ArrayF32

	// TexCoord has 2 floats per vertex, nil for 2D shapes.
	TexCoord math32.ArrayF32

	// Color has 4 floats per vertex, nil if the shape has no colors.
	Color math32.ArrayF32

	// Index has the triangle indexes, nil for an unindexed point stream.
	Index math32.ArrayU32

	// BBox is the bounding box of the generated vertexes.
	BBox math32.Box3
}

// NumVertex returns the number of vertexes.
func (bf *Buffers) NumVertex() int {
	if bf.Dim == 0 {
		return 0
	}
	return len(bf.Vertex) / bf.Dim
}

// Generate validates the given shape and returns its generated buffers.
// Invalid parameters return an error wrapping [ErrInvalidParameter]
// and nil buffers.
func Generate(sh Shape) (*Buffers, error) {
	if err := sh.Validate(); err != nil {
		return nil, err
	}
	bf := &Buffers{Dim: sh.Dim()}
	nv, ni, hasColor := sh.Size()
	bf.Vertex = slicesx.SetLength(bf.Vertex, nv*bf.Dim)
	if bf.Dim == 3 {
		bf.Normal = slicesx.SetLength(bf.Normal, nv*3)
		bf.TexCoord = slicesx.SetLength(bf.TexCoord, nv*2)
	}
	if hasColor {
		bf.Color = slicesx.SetLength(bf.Color, nv*4)
	}
	if ni > 0 {
		bf.Index = slicesx.SetLength(bf.Index, ni)
	}
	sh.SetOffsets(0, 0)
	sh.Set(bf.Vertex, bf.Normal, bf.TexCoord, bf.Color, bf.Index)
	bf.BBox = sh.BBox()
	return bf, nil
}

// invalid returns an [ErrInvalidParameter] error with the given message.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// SetColor sets color for given range of vertex indexes
func SetColor(clrs math32.ArrayF32, vtxOff int, numVertex int, clr math32.Vector4) {
	if clrs == nil {
		return
	}
	cidx := vtxOff * 4
	for vi := 0; vi < numVertex; vi++ {
		clrs.SetVector4(cidx+vi*4, clr)
	}
}

// BBoxFromVtxs returns the bounding box updated from the range of vertex points
func BBoxFromVtxs(vertex math32.ArrayF32, vtxOff int, numVertex int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOff * 3
	var vtx math32.Vector3
	for vi := 0; vi < numVertex; vi++ {
		vertex.GetVector3(vidx+vi*3, &vtx)
		bb.ExpandByPoint(vtx)
	}
	return bb
}
