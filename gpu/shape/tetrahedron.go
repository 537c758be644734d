// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/scenegraph/math32"

// Tetrahedron is a regular tetrahedron inscribed in the unit sphere,
// with its apex at +Y and a distinct color on each base vertex.
// Faces share vertexes, so normals point radially outward.
type Tetrahedron struct {
	ShapeBase

	// Colors of the four vertexes: three base corners then the apex.
	Colors [4]math32.Vector4
}

// NewTetrahedron returns a Tetrahedron with red, green and blue base
// corners and a red apex.
func NewTetrahedron() *Tetrahedron {
	return &Tetrahedron{Colors: [4]math32.Vector4{
		{X: 1, Y: 0, Z: 0, W: 1},
		{X: 0, Y: 1, Z: 0, W: 1},
		{X: 0, Y: 0, Z: 1, W: 1},
		{X: 1, Y: 0, Z: 0, W: 1},
	}}
}

// TetrahedronVertexes are the unit tetrahedron corners.
var TetrahedronVertexes = [4]math32.Vector3{
	{X: math32.Sqrt(8.0 / 9), Y: -1.0 / 3, Z: 0},
	{X: -math32.Sqrt(2.0 / 9), Y: -1.0 / 3, Z: math32.Sqrt(2.0 / 3)},
	{X: -math32.Sqrt(2.0 / 9), Y: -1.0 / 3, Z: -math32.Sqrt(2.0 / 3)},
	{X: 0, Y: 1, Z: 0},
}

// TetrahedronIndexes are the four faces, counter-clockwise from outside.
var TetrahedronIndexes = [12]uint32{
	0, 3, 1,
	1, 3, 2,
	2, 3, 0,
	0, 1, 2,
}

func (th *Tetrahedron) Validate() error { return nil }

func (th *Tetrahedron) Size() (numVertex, numIndex int, hasColor bool) {
	return 4, 12, true
}

// Set sets points for the tetrahedron in given allocated arrays
func (th *Tetrahedron) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	vidx := th.VertexOffset * 3
	tidx := th.VertexOffset * 2
	bb := math32.B3Empty()
	for i, p := range TetrahedronVertexes {
		pt := p.Add(th.Pos)
		vertex.SetVector3(vidx+i*3, pt)
		normal.SetVector3(vidx+i*3, p.Normal())
		texcoord.Set(tidx+i*2, 0.5+p.X/2, 0.5+p.Y/2)
		bb.ExpandByPoint(pt)
		if clrs != nil {
			clrs.SetVector4((th.VertexOffset+i)*4, th.Colors[i])
		}
	}
	vOff := uint32(th.VertexOffset)
	for i, ix := range TetrahedronIndexes {
		index[th.IndexOffset+i] = vOff + ix
	}
	th.CBBox = bb
}
