// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix3 is 3x3 matrix organized internally as column matrix.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromMatrix4 returns the upper-left 3x3 portion of the
// given 4x4 matrix, as used for normal matrices.
func Matrix3FromMatrix4(m *Matrix4) Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// MulVector3 returns the given vector multiplied by this matrix.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// ToArray copies this matrix's elements to the specified array, starting at offset.
func (m Matrix3) ToArray(array []float32, offset int) {
	copy(array[offset:], m[:])
}
