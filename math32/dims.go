// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

func (d Dims) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case W:
		return "W"
	}
	return "Dims(?)"
}

// Dim returns the given vector component
func (v Vector3) Dim(dim Dims) float32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return v.Z
	}
}

// SetDim sets the given vector component value
func (v *Vector3) SetDim(dim Dims, value float32) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	default:
		v.Z = value
	}
}

// Axis returns the unit vector along the given dimension.
func Axis(dim Dims) Vector3 {
	var v Vector3
	v.SetDim(dim, 1)
	return v
}
