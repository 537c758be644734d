// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/scenegraph/math32"

// Plane is a flat 2D plane in the XZ plane, facing +Y, centered on
// the origin.
type Plane struct {
	ShapeBase

	// size along X
	Width float32

	// size along Z
	Depth float32

	// number of segments along X
	WidthSegs int `min:"1"`

	// number of segments along Z
	DepthSegs int `min:"1"`
}

// NewPlane returns a Plane shape with given size, with one segment
// along each dimension.
func NewPlane(width, depth float32) *Plane {
	return &Plane{Width: width, Depth: depth, WidthSegs: 1, DepthSegs: 1}
}

func (pl *Plane) Validate() error {
	if pl.WidthSegs < 1 || pl.DepthSegs < 1 {
		return invalid("plane segments %dx%d < 1", pl.WidthSegs, pl.DepthSegs)
	}
	return nil
}

func (pl *Plane) Size() (numVertex, numIndex int, hasColor bool) {
	numVertex, numIndex = PlaneN(pl.WidthSegs, pl.DepthSegs)
	return
}

// Set sets points for the plane in given allocated arrays
func (pl *Plane) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	pl.CBBox = SetPlane(vertex, normal, texcoord, index, pl.VertexOffset, pl.IndexOffset, math32.X, math32.Z, 1, -1, pl.Width, pl.Depth, 0, pl.WidthSegs, pl.DepthSegs, pl.Pos)
}

// PlaneN returns the number of vertexes and indexes for a plane with
// the given number of segments.
func PlaneN(wsegs, hsegs int) (numVertex, numIndex int) {
	numVertex = (wsegs + 1) * (hsegs + 1)
	numIndex = wsegs * hsegs * 6
	return
}

// SetPlane sets plane vertex, normal, texcoord and index data at the
// given starting vertex and index offsets. The plane spans width along
// waxis in direction wdir (+1 or -1) and height along haxis in
// direction hdir, and sits at offset zoff along the remaining axis.
// Its normal is the cross product of the width and height directions,
// and its triangles are counter-clockwise seen from that side.
// pos is an arbitrary offset (for composing shapes). Returns the
// bounding box.
func SetPlane(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, waxis, haxis math32.Dims, wdir, hdir float32, width, height, zoff float32, wsegs, hsegs int, pos math32.Vector3) math32.Box3 {
	ew := math32.Axis(waxis).MulScalar(wdir)
	eh := math32.Axis(haxis).MulScalar(hdir)
	nrm := ew.Cross(eh)
	zaxis := 3 - waxis - haxis

	segW := width / float32(wsegs)
	segH := height / float32(hsegs)

	bb := math32.B3Empty()
	idx := 0
	vidx := vtxOff * 3
	tidx := vtxOff * 2
	for iy := 0; iy <= hsegs; iy++ {
		for ix := 0; ix <= wsegs; ix++ {
			var pt math32.Vector3
			pt.SetDim(waxis, wdir*(-width/2+float32(ix)*segW))
			pt.SetDim(haxis, hdir*(-height/2+float32(iy)*segH))
			pt.SetDim(zaxis, zoff)
			pt.SetAdd(pos)
			vertex.SetVector3(vidx+idx*3, pt)
			normal.SetVector3(vidx+idx*3, nrm)
			texcoord.Set(tidx+idx*2, float32(ix)/float32(wsegs), 1-float32(iy)/float32(hsegs))
			bb.ExpandByPoint(pt)
			idx++
		}
	}

	cols := wsegs + 1
	vOff := uint32(vtxOff)
	ii := idxOff
	for iy := 0; iy < hsegs; iy++ {
		for ix := 0; ix < wsegs; ix++ {
			a := vOff + uint32(iy*cols+ix)
			b := vOff + uint32(iy*cols+ix+1)
			c := vOff + uint32((iy+1)*cols+ix+1)
			d := vOff + uint32((iy+1)*cols+ix)
			index.Set(ii, a, b, c, a, c, d)
			ii += 6
		}
	}
	return bb
}
