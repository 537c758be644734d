// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/scenegraph/math32"

// Box is a rectangular-shaped solid (cuboid)
type Box struct {
	ShapeBase

	// size along each dimension
	Extent math32.Vector3

	// number of segments to divide each plane into (at least 1);
	// may increase rendering quality to have > 1
	Segs int `min:"1"`
}

// NewBox returns a Box shape with given size
func NewBox(width, height, depth float32) *Box {
	return &Box{Extent: math32.Vec3(width, height, depth), Segs: 1}
}

func (bx *Box) Validate() error {
	if bx.Segs < 1 {
		return invalid("box segments %d < 1", bx.Segs)
	}
	return nil
}

func (bx *Box) Size() (numVertex, numIndex int, hasColor bool) {
	numVertex, numIndex = PlaneN(bx.Segs, bx.Segs)
	numVertex *= 6
	numIndex *= 6
	return
}

// boxFaces are the width, height axes and directions of each face,
// chosen so that the face normal points outward.
var boxFaces = [6]struct {
	w, h       math32.Dims
	wdir, hdir float32
	sign       float32
}{
	{math32.X, math32.Y, -1, 1, -1}, // -z
	{math32.X, math32.Z, 1, 1, -1},  // -y
	{math32.Z, math32.Y, -1, 1, 1},  // +x
	{math32.Z, math32.Y, 1, 1, -1},  // -x
	{math32.X, math32.Z, 1, -1, 1},  // +y
	{math32.X, math32.Y, 1, 1, 1},   // +z
}

// Set sets points in given allocated arrays
func (bx *Box) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	hSz := bx.Extent.DivScalar(2)
	nVtx, nIndex := PlaneN(bx.Segs, bx.Segs)
	voff := bx.VertexOffset
	ioff := bx.IndexOffset
	bb := math32.B3Empty()
	for _, f := range boxFaces {
		zaxis := 3 - f.w - f.h
		fb := SetPlane(vertex, normal, texcoord, index, voff, ioff, f.w, f.h, f.wdir, f.hdir, bx.Extent.Dim(f.w), bx.Extent.Dim(f.h), f.sign*hSz.Dim(zaxis), bx.Segs, bx.Segs, bx.Pos)
		bb.ExpandByBox(fb)
		voff += nVtx
		ioff += nIndex
	}
	bx.CBBox = bb
}
