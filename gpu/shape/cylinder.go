// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/scenegraph/math32"

// Cylinder is a generalized cylinder (a truncated cone when the two
// radii differ), open at both ends, with its axis along Y and
// centered at the origin.
type Cylinder struct {
	ShapeBase

	// radius of the top end, at y = +Length/2
	RadiusTop float32

	// radius of the bottom end, at y = -Length/2
	RadiusBottom float32

	// length along the Y axis
	Length float32

	// number of segments around the circumference
	RadialSteps int `min:"3"`

	// number of segments along the length
	LengthSteps int `min:"1"`

	// optional uniform vertex color; zero means no color
	Color math32.Vector4
}

// NewCylinder returns a Cylinder shape with the given dimensions
// and resolution.
func NewCylinder(radiusTop, radiusBottom, length float32, radialSteps, lengthSteps int) *Cylinder {
	return &Cylinder{RadiusTop: radiusTop, RadiusBottom: radiusBottom, Length: length, RadialSteps: radialSteps, LengthSteps: lengthSteps}
}

func (cy *Cylinder) Validate() error {
	if cy.RadialSteps < 3 {
		return invalid("cylinder radial steps %d < 3", cy.RadialSteps)
	}
	if cy.LengthSteps < 1 {
		return invalid("cylinder length steps %d < 1", cy.LengthSteps)
	}
	return nil
}

func (cy *Cylinder) Size() (numVertex, numIndex int, hasColor bool) {
	numVertex, numIndex = CylinderN(cy.RadialSteps, cy.LengthSteps)
	hasColor = cy.Color != (math32.Vector4{})
	return
}

// Set sets points for the cylinder in given allocated arrays
func (cy *Cylinder) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	cy.CBBox = SetCylinder(vertex, normal, texcoord, index, cy.VertexOffset, cy.IndexOffset, cy.RadiusTop, cy.RadiusBottom, cy.Length, cy.RadialSteps, cy.LengthSteps, cy.Pos)
	if cy.Color != (math32.Vector4{}) {
		nv, _ := CylinderN(cy.RadialSteps, cy.LengthSteps)
		SetColor(clrs, cy.VertexOffset, nv, cy.Color)
	}
}

// CylinderN returns the number of vertexes and indexes for a cylinder
// with the given number of radial and length steps.
func CylinderN(radialSteps, lengthSteps int) (numVertex, numIndex int) {
	numVertex = (radialSteps + 1) * (lengthSteps + 1)
	numIndex = radialSteps * lengthSteps * 6
	return
}

// SetCylinder sets cylinder vertex, normal, texcoord and index data at
// the given starting vertex and index offsets. Vertexes form a
// height-major grid: row y (0 at the bottom) holds radialSteps+1
// vertexes, the last duplicating the first to close the texture seam.
// The radius is interpolated linearly from radiusBottom to radiusTop.
// Normals are the unit radial direction of each column, the same on
// every row. Each grid quad yields two triangles wound counter-clockwise
// when seen from outside. pos is an arbitrary offset (for composing
// shapes). Returns the bounding box.
func SetCylinder(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, radiusTop, radiusBottom, length float32, radialSteps, lengthSteps int, pos math32.Vector3) math32.Box3 {
	hl := length / 2
	cols := radialSteps + 1

	bb := math32.B3Empty()
	idx := 0
	vidx := vtxOff * 3
	tidx := vtxOff * 2
	for y := 0; y <= lengthSteps; y++ {
		v := float32(y) / float32(lengthSteps)
		radius := radiusBottom + v*(radiusTop-radiusBottom)
		for x := 0; x <= radialSteps; x++ {
			u := float32(x) / float32(radialSteps)
			sin, cos := math32.Sincos(u * 2 * math32.Pi)
			pt := math32.Vec3(sin*radius, -hl+v*length, cos*radius)
			pt.SetAdd(pos)
			vertex.SetVector3(vidx+idx*3, pt)
			normal.SetVector3(vidx+idx*3, math32.Vec3(sin, 0, cos))
			texcoord.Set(tidx+idx*2, u, v)
			bb.ExpandByPoint(pt)
			idx++
		}
	}

	vOff := uint32(vtxOff)
	ii := idxOff
	for y := 0; y < lengthSteps; y++ {
		for x := 0; x < radialSteps; x++ {
			a := vOff + uint32(y*cols+x)
			b := vOff + uint32((y+1)*cols+x)
			c := vOff + uint32((y+1)*cols+x+1)
			d := vOff + uint32(y*cols+x+1)
			index.Set(ii, a, d, b, b, d, c)
			ii += 6
		}
	}
	return bb
}
