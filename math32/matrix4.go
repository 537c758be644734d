// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "errors"

// ErrSingularMatrix is returned when inverting a matrix whose
// determinant is zero.
var ErrSingularMatrix = errors.New("math32: singular matrix")

// Matrix4 is 4x4 matrix organized internally as column matrix.
// Element i of column j is stored at index 4*j+i, so the translation
// lives at indexes 12, 13 and 14.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// IsIdentity returns true if this matrix is exactly the identity.
func (m *Matrix4) IsIdentity() bool {
	return *m == *Identity4()
}

// FromArray sets this matrix's elements from the specified array, starting at offset.
func (m *Matrix4) FromArray(array []float32, offset int) {
	copy(m[:], array[offset:offset+16])
}

// ToArray copies this matrix's elements to the specified array, starting at offset.
func (m *Matrix4) ToArray(array []float32, offset int) {
	copy(array[offset:], m[:])
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// SetMul sets this matrix to this matrix times other
func (m *Matrix4) SetMul(other *Matrix4) {
	m.MulMatrices(m, other)
}

// SetPremul sets this matrix to other matrix times this matrix.
func (m *Matrix4) SetPremul(other *Matrix4) {
	m.MulMatrices(other, m)
}

// MulMatrices sets this matrix to the matrix product a * b.
// It is safe for m to alias a or b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	a11 := a[0]
	a12 := a[4]
	a13 := a[8]
	a14 := a[12]
	a21 := a[1]
	a22 := a[5]
	a23 := a[9]
	a24 := a[13]
	a31 := a[2]
	a32 := a[6]
	a33 := a[10]
	a34 := a[14]
	a41 := a[3]
	a42 := a[7]
	a43 := a[11]
	a44 := a[15]

	b11 := b[0]
	b12 := b[4]
	b13 := b[8]
	b14 := b[12]
	b21 := b[1]
	b22 := b[5]
	b23 := b[9]
	b24 := b[13]
	b31 := b[2]
	b32 := b[6]
	b33 := b[10]
	b34 := b[14]
	b41 := b[3]
	b42 := b[7]
	b43 := b[11]
	b44 := b[15]

	m[0] = a11*b11 + a12*b21 + a13*b31 + a14*b41
	m[4] = a11*b12 + a12*b22 + a13*b32 + a14*b42
	m[8] = a11*b13 + a12*b23 + a13*b33 + a14*b43
	m[12] = a11*b14 + a12*b24 + a13*b34 + a14*b44

	m[1] = a21*b11 + a22*b21 + a23*b31 + a24*b41
	m[5] = a21*b12 + a22*b22 + a23*b32 + a24*b42
	m[9] = a21*b13 + a22*b23 + a23*b33 + a24*b43
	m[13] = a21*b14 + a22*b24 + a23*b34 + a24*b44

	m[2] = a31*b11 + a32*b21 + a33*b31 + a34*b41
	m[6] = a31*b12 + a32*b22 + a33*b32 + a34*b42
	m[10] = a31*b13 + a32*b23 + a33*b33 + a34*b43
	m[14] = a31*b14 + a32*b24 + a33*b34 + a34*b44

	m[3] = a41*b11 + a42*b21 + a43*b31 + a44*b41
	m[7] = a41*b12 + a42*b22 + a43*b32 + a44*b42
	m[11] = a41*b13 + a42*b23 + a43*b33 + a44*b43
	m[15] = a41*b14 + a42*b24 + a43*b34 + a44*b44
}

// Compose returns parent * local: the world matrix of a node whose
// local transform is local, attached under a node whose world matrix
// is parent. The operand order is fixed for all scene traversal.
func Compose(parent, local *Matrix4) Matrix4 {
	var w Matrix4
	w.MulMatrices(parent, local)
	return w
}

// Translate post-multiplies this matrix by a translation of x, y, z,
// so the translation applies in the current local frame.
func (m *Matrix4) Translate(x, y, z float32) {
	m[12] += m[0]*x + m[4]*y + m[8]*z
	m[13] += m[1]*x + m[5]*y + m[9]*z
	m[14] += m[2]*x + m[6]*y + m[10]*z
	m[15] += m[3]*x + m[7]*y + m[11]*z
}

// Scale post-multiplies this matrix by a scaling of x, y, z.
func (m *Matrix4) Scale(x, y, z float32) {
	for i := range 4 {
		m[i] *= x
		m[4+i] *= y
		m[8+i] *= z
	}
}

// Rotate post-multiplies this matrix by a rotation of angle radians
// about the given axis, which is normalized first. A zero axis is a no-op.
func (m *Matrix4) Rotate(angle float32, axis Vector3) {
	r := NewRotationAxis(axis, angle)
	if r == nil {
		return
	}
	m.SetMul(r)
}

// NewTranslation returns a new translation matrix.
func NewTranslation(x, y, z float32) *Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// NewScale returns a new scaling matrix.
func NewScale(x, y, z float32) *Matrix4 {
	m := &Matrix4{}
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
	return m
}

// NewRotationAxis returns a new rotation matrix of angle radians about
// the given axis. Returns nil for a zero-length axis.
func NewRotationAxis(axis Vector3, angle float32) *Matrix4 {
	l := axis.Length()
	if l == 0 {
		return nil
	}
	x, y, z := axis.X/l, axis.Y/l, axis.Z/l
	s, c := Sincos(angle)
	t := 1 - c
	tx := t * x
	ty := t * y
	m := &Matrix4{}
	m.Set(
		tx*x+c, tx*y-s*z, tx*z+s*y, 0,
		tx*y+s*z, ty*y+c, ty*z-s*x, 0,
		tx*z-s*y, ty*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
	return m
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	n11 := m[0]
	n12 := m[4]
	n13 := m[8]
	n14 := m[12]
	n21 := m[1]
	n22 := m[5]
	n23 := m[9]
	n24 := m[13]
	n31 := m[2]
	n32 := m[6]
	n33 := m[10]
	n34 := m[14]
	n41 := m[3]
	n42 := m[7]
	n43 := m[11]
	n44 := m[15]

	return n41*(+n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34) +
		n42*(+n11*n23*n34-n11*n24*n33+n14*n21*n33-n13*n21*n34+n13*n24*n31-n14*n23*n31) +
		n43*(+n11*n24*n32-n11*n22*n34-n14*n21*n32+n12*n21*n34+n14*n22*n31-n12*n24*n31) +
		n44*(-n13*n22*n31-n11*n23*n32+n11*n22*n33+n13*n21*n32-n12*n21*n33+n12*n23*n31)
}

// Inverse returns the inverse of this matrix.
// Returns [ErrSingularMatrix] if the determinant is zero.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	n11 := m[0]
	n12 := m[4]
	n13 := m[8]
	n14 := m[12]
	n21 := m[1]
	n22 := m[5]
	n23 := m[9]
	n24 := m[13]
	n31 := m[2]
	n32 := m[6]
	n33 := m[10]
	n34 := m[14]
	n41 := m[3]
	n42 := m[7]
	n43 := m[11]
	n44 := m[15]

	nm := &Matrix4{}
	nm[0] = n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	nm[4] = n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	nm[8] = n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	nm[12] = n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34
	nm[1] = n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44
	nm[5] = n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44
	nm[9] = n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44
	nm[13] = n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34
	nm[2] = n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44
	nm[6] = n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44
	nm[10] = n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44
	nm[14] = n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34
	nm[3] = n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43
	nm[7] = n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43
	nm[11] = n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43
	nm[15] = n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33

	det := n11*nm[0] + n21*nm[4] + n31*nm[8] + n41*nm[12]
	if det == 0 {
		return Identity4(), ErrSingularMatrix
	}
	for i := range nm {
		nm[i] /= det
	}
	return nm, nil
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4) Transpose() *Matrix4 {
	nm := *m
	nm[1], nm[4] = nm[4], nm[1]
	nm[2], nm[8] = nm[8], nm[2]
	nm[6], nm[9] = nm[9], nm[6]
	nm[3], nm[12] = nm[12], nm[3]
	nm[7], nm[13] = nm[13], nm[7]
	nm[11], nm[14] = nm[14], nm[11]
	return &nm
}

// InverseTranspose returns the inverse-transpose of this matrix, which
// is the matrix that transforms surface normals. Returns the identity
// and [ErrSingularMatrix] if this matrix cannot be inverted.
func (m *Matrix4) InverseTranspose() (*Matrix4, error) {
	inv, err := m.Inverse()
	if err != nil {
		return inv, err
	}
	return inv.Transpose(), nil
}

// Position returns the translation component of this matrix.
func (m *Matrix4) Position() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// MulVector3AsPoint returns the given point transformed by this matrix,
// with perspective divide.
func (m *Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return v.MulMatrix4AsPoint(m)
}

// MulVector4 returns the given vector transformed by this matrix.
func (m *Matrix4) MulVector4(v Vector4) Vector4 {
	return v.MulMatrix4(m)
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width / height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fov)/2)
	nf := 1 / (near - far)
	*m = Matrix4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) * nf
	m[11] = -1
	m[14] = 2 * far * near * nf
}

// NewPerspective returns a new perspective projection matrix,
// see [Matrix4.SetPerspective].
func NewPerspective(fov, aspect, near, far float32) *Matrix4 {
	m := &Matrix4{}
	m.SetPerspective(fov, aspect, near, far)
	return m
}

// SetOrthographic sets this matrix to an orthographic projection
// of the given box.
func (m *Matrix4) SetOrthographic(left, right, bottom, top, near, far float32) {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	*m = Matrix4{}
	m[0] = -2 * lr
	m[5] = -2 * bt
	m[10] = 2 * nf
	m[12] = (left + right) * lr
	m[13] = (top + bottom) * bt
	m[14] = (far + near) * nf
	m[15] = 1
}

// NewLookAt returns a new view matrix for a camera at eye looking at
// target with the given up direction. If eye equals target the
// identity is returned.
func NewLookAt(eye, target, up Vector3) *Matrix4 {
	z := eye.Sub(target)
	if z.LengthSquared() == 0 {
		return Identity4()
	}
	z.SetNormal()
	x := up.Cross(z)
	if x.LengthSquared() == 0 {
		// up is parallel to the view direction
		if Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z.SetNormal()
		x = up.Cross(z)
	}
	x.SetNormal()
	y := z.Cross(x)

	m := &Matrix4{}
	m.Set(
		x.X, x.Y, x.Z, -x.Dot(eye),
		y.X, y.Y, y.Z, -y.Dot(eye),
		z.X, z.Y, z.Z, -z.Dot(eye),
		0, 0, 0, 1,
	)
	return m
}
