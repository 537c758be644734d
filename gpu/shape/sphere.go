// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/scenegraph/math32"

// Sphere is a sphere shape centered on the origin.
type Sphere struct {
	ShapeBase

	// radius of the sphere
	Radius float32

	// number of segments around the width of the sphere (32 is reasonable default for full circle)
	WidthSegs int `min:"3"`

	// number of height segments (32 is reasonable default for full height)
	HeightSegs int `min:"2"`
}

// NewSphere returns a Sphere shape with given radius and number of
// segments in each direction.
func NewSphere(radius float32, segs int) *Sphere {
	return &Sphere{Radius: radius, WidthSegs: segs, HeightSegs: segs}
}

func (sp *Sphere) Validate() error {
	if sp.WidthSegs < 3 || sp.HeightSegs < 2 {
		return invalid("sphere segments %dx%d below 3x2", sp.WidthSegs, sp.HeightSegs)
	}
	return nil
}

func (sp *Sphere) Size() (numVertex, numIndex int, hasColor bool) {
	numVertex = (sp.WidthSegs + 1) * (sp.HeightSegs + 1)
	numIndex = sp.WidthSegs * sp.HeightSegs * 6
	return
}

// Set sets points for the sphere in given allocated arrays.
// Rows run from the north pole (+Y) down to the south pole.
func (sp *Sphere) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	ws, hs := sp.WidthSegs, sp.HeightSegs
	bb := math32.B3Empty()
	idx := 0
	vidx := sp.VertexOffset * 3
	tidx := sp.VertexOffset * 2
	for y := 0; y <= hs; y++ {
		v := float32(y) / float32(hs)
		sinT, cosT := math32.Sincos(v * math32.Pi)
		if y == 0 || y == hs {
			sinT = 0
		}
		for x := 0; x <= ws; x++ {
			u := float32(x) / float32(ws)
			sinP, cosP := math32.Sincos(u * 2 * math32.Pi)
			nrm := math32.Vec3(-cosP*sinT, cosT, sinP*sinT)
			pt := nrm.MulScalar(sp.Radius).Add(sp.Pos)
			vertex.SetVector3(vidx+idx*3, pt)
			normal.SetVector3(vidx+idx*3, nrm)
			texcoord.Set(tidx+idx*2, u, 1-v)
			bb.ExpandByPoint(pt)
			idx++
		}
	}

	cols := ws + 1
	vOff := uint32(sp.VertexOffset)
	ii := sp.IndexOffset
	for y := 0; y < hs; y++ {
		for x := 0; x < ws; x++ {
			v1 := vOff + uint32(y*cols+x+1)
			v2 := vOff + uint32(y*cols+x)
			v3 := vOff + uint32((y+1)*cols+x)
			v4 := vOff + uint32((y+1)*cols+x+1)
			index.Set(ii, v1, v2, v4, v2, v3, v4)
			ii += 6
		}
	}
	sp.CBBox = bb
}
