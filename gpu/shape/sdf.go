// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"cogentcore.org/scenegraph/math32"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SDF is a solid defined by a signed distance function, tessellated
// with marching cubes. Each triangle gets its own three vertexes with
// the face normal, so the mesh is flat shaded.
type SDF struct {
	ShapeBase

	// Solid is the signed distance function to tessellate.
	Solid sdf.SDF3

	// Cells is the number of marching cubes cells along the
	// longest bounding box axis.
	Cells int `min:"8"`

	// tessellated triangle corners and face normals
	corners []math32.Vector3
	normals []math32.Vector3
}

// NewSDF returns an SDF shape for the given solid with the given
// tessellation resolution.
func NewSDF(s sdf.SDF3, cells int) *SDF {
	return &SDF{Solid: s, Cells: cells}
}

// NewRoundedBoxSDF returns an SDF shape for a box of the given size with
// edges rounded by the given radius.
func NewRoundedBoxSDF(size math32.Vector3, round float32, cells int) (*SDF, error) {
	s, err := sdf.Box3D(v3.Vec{X: float64(size.X), Y: float64(size.Y), Z: float64(size.Z)}, float64(round))
	if err != nil {
		return nil, invalid("rounded box: %v", err)
	}
	return NewSDF(s, cells), nil
}

// NewCapsuleSDF returns an SDF shape for a cylinder along Y of the given
// length and radius with a sphere joined on each end.
func NewCapsuleSDF(length, radius float32, cells int) (*SDF, error) {
	cyl, err := sdf.Cylinder3D(float64(length), float64(radius), 0)
	if err != nil {
		return nil, invalid("capsule: %v", err)
	}
	// sdfx cylinders run along Z
	cyl = sdf.Transform3D(cyl, sdf.RotateX(-math.Pi/2))
	top, err := sdf.Sphere3D(float64(radius))
	if err != nil {
		return nil, invalid("capsule: %v", err)
	}
	bot := sdf.Transform3D(top, sdf.Translate3d(v3.Vec{Y: -float64(length) / 2}))
	top = sdf.Transform3D(top, sdf.Translate3d(v3.Vec{Y: float64(length) / 2}))
	return NewSDF(sdf.Union3D(cyl, top, bot), cells), nil
}

// Validate tessellates the solid, returning an [ErrInvalidParameter]
// error if there is no solid, the resolution is too low, or the
// result is empty.
func (sd *SDF) Validate() error {
	if sd.Solid == nil {
		return invalid("sdf has no solid")
	}
	if sd.Cells < 8 {
		return invalid("sdf cells %d < 8", sd.Cells)
	}
	tris := render.ToTriangles(sd.Solid, render.NewMarchingCubesUniform(sd.Cells))
	if len(tris) == 0 {
		return invalid("sdf tessellated to no triangles")
	}
	sd.corners = make([]math32.Vector3, 0, 3*len(tris))
	sd.normals = make([]math32.Vector3, 0, len(tris))
	for _, tri := range tris {
		n := tri.Normal()
		sd.normals = append(sd.normals, math32.Vec3(float32(n.X), float32(n.Y), float32(n.Z)))
		for j := 0; j < 3; j++ {
			v := tri[j]
			sd.corners = append(sd.corners, math32.Vec3(float32(v.X), float32(v.Y), float32(v.Z)))
		}
	}
	return nil
}

func (sd *SDF) Size() (numVertex, numIndex int, hasColor bool) {
	numVertex = len(sd.corners)
	numIndex = numVertex
	return
}

// Set sets the tessellated triangles in the given allocated arrays.
func (sd *SDF) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	bb := math32.B3Empty()
	vidx := sd.VertexOffset * 3
	tidx := sd.VertexOffset * 2
	vOff := uint32(sd.VertexOffset)
	for idx, c := range sd.corners {
		pt := c.Add(sd.Pos)
		vertex.SetVector3(vidx+idx*3, pt)
		normal.SetVector3(vidx+idx*3, sd.normals[idx/3])
		texcoord.Set(tidx+idx*2, 0, 0)
		index[sd.IndexOffset+idx] = vOff + uint32(idx)
		bb.ExpandByPoint(pt)
	}
	sd.CBBox = bb
}
