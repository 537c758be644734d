// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/scenegraph/base/tolassert"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualMatrix4(t *testing.T, tol float32, expected [16]float32, actual *Matrix4) {
	t.Helper()
	tolassert.EqualTolSlice(t, expected[:], actual[:], tol)
}

func TolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestMatrix4Identity(t *testing.T) {
	m := Identity4()
	assert.True(t, m.IsIdentity())
	assert.Equal(t, [16]float32(mgl32.Ident4()), [16]float32(*m))

	v := Vec3(1, 2, 3)
	assert.Equal(t, v, m.MulVector3AsPoint(v))
}

func TestMatrix4Translate(t *testing.T) {
	m := Identity4()
	m.Translate(1, 2, 3)
	assert.Equal(t, [16]float32(mgl32.Translate3D(1, 2, 3)), [16]float32(*m))
	assert.Equal(t, Vec3(1, 2, 3), m.Position())

	// repeated calls compose
	m.Translate(1, 0, 0)
	assert.Equal(t, Vec3(2, 2, 3), m.Position())
}

func TestMatrix4RightMultiply(t *testing.T) {
	// translate then scale: the scale applies in the translated frame
	m := Identity4()
	m.Translate(1, 0, 0)
	m.Scale(2, 2, 2)
	exp := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2))
	TolAssertEqualMatrix4(t, StandardTol, exp, m)
	TolAssertEqualVector3(t, StandardTol, Vec3(3, 0, 0), m.MulVector3AsPoint(Vec3(1, 0, 0)))

	// rotate 90 about z then translate x: moves along world y
	r := Identity4()
	r.Rotate(DegToRad(90), Vec3(0, 0, 1))
	r.Translate(1, 0, 0)
	exp = mgl32.HomogRotate3D(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1}).Mul4(mgl32.Translate3D(1, 0, 0))
	TolAssertEqualMatrix4(t, StandardTol, exp, r)
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 1, 0), r.MulVector3AsPoint(Vec3(0, 0, 0)))
}

func TestMatrix4Rotate(t *testing.T) {
	axes := []Vector3{Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1), Vec3(1, 2, 3)}
	for _, ax := range axes {
		for _, deg := range []float32{-90, 30, 45, 180} {
			m := Identity4()
			m.Rotate(DegToRad(deg), ax)
			exp := mgl32.HomogRotate3D(mgl32.DegToRad(deg), mgl32.Vec3{ax.X, ax.Y, ax.Z}.Normalize())
			TolAssertEqualMatrix4(t, StandardTol, exp, m)
		}
	}

	// zero axis is a no-op
	m := Identity4()
	m.Rotate(1, Vector3{})
	assert.True(t, m.IsIdentity())
}

func TestMatrix4Mul(t *testing.T) {
	a := Identity4()
	a.Translate(1, -2, 3)
	a.Rotate(0.3, Vec3(0, 1, 0))
	b := Identity4()
	b.Scale(2, 3, 4)
	b.Rotate(-1.1, Vec3(1, 1, 0))

	exp := mgl32.Mat4(*a).Mul4(mgl32.Mat4(*b))
	TolAssertEqualMatrix4(t, StandardTol, exp, a.Mul(b))

	c := Compose(a, b)
	TolAssertEqualMatrix4(t, StandardTol, exp, &c)

	// SetMul aliases the receiver
	d := *a
	d.SetMul(b)
	TolAssertEqualMatrix4(t, StandardTol, exp, &d)

	e := *b
	e.SetPremul(a)
	TolAssertEqualMatrix4(t, StandardTol, exp, &e)
}

func TestMatrix4Inverse(t *testing.T) {
	m := Identity4()
	m.Translate(3, 1, -2)
	m.Rotate(0.7, Vec3(1, 1, 1))
	m.Scale(2, 0.5, 3)

	inv, err := m.Inverse()
	require.NoError(t, err)
	TolAssertEqualMatrix4(t, 1.0e-4, mgl32.Mat4(*m).Inv(), inv)
	TolAssertEqualMatrix4(t, 1.0e-4, mgl32.Ident4(), m.Mul(inv))
	tolassert.EqualTol(t, mgl32.Mat4(*m).Det(), m.Determinant(), 1.0e-4)

	it, err := m.InverseTranspose()
	require.NoError(t, err)
	TolAssertEqualMatrix4(t, 1.0e-4, mgl32.Mat4(*m).Inv().Transpose(), it)
}

func TestMatrix4Singular(t *testing.T) {
	m := Identity4()
	m.Scale(1, 0, 1)
	assert.Equal(t, float32(0), m.Determinant())

	inv, err := m.Inverse()
	assert.ErrorIs(t, err, ErrSingularMatrix)
	assert.True(t, inv.IsIdentity())

	it, err := m.InverseTranspose()
	assert.ErrorIs(t, err, ErrSingularMatrix)
	assert.True(t, it.IsIdentity())
}

func TestMatrix4Transpose(t *testing.T) {
	var m Matrix4
	for i := range m {
		m[i] = float32(i)
	}
	assert.Equal(t, [16]float32(mgl32.Mat4(m).Transpose()), [16]float32(*m.Transpose()))
	assert.Equal(t, m, *m.Transpose().Transpose())
}

func TestMatrix4Projection(t *testing.T) {
	p := NewPerspective(45, 1.5, 0.1, 100)
	TolAssertEqualMatrix4(t, StandardTol, mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.1, 100), p)

	var o Matrix4
	o.SetOrthographic(-2, 2, -1, 1, 0.1, 10)
	TolAssertEqualMatrix4(t, StandardTol, mgl32.Ortho(-2, 2, -1, 1, 0.1, 10), &o)

	v := NewLookAt(Vec3(0, 0, 6), Vec3(0, 0, 0), Vec3(0, 1, 0))
	TolAssertEqualMatrix4(t, StandardTol, mgl32.LookAtV(mgl32.Vec3{0, 0, 6}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}), v)

	v = NewLookAt(Vec3(3, 4, 5), Vec3(1, 0, -1), Vec3(0, 1, 0))
	TolAssertEqualMatrix4(t, StandardTol, mgl32.LookAtV(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{1, 0, -1}, mgl32.Vec3{0, 1, 0}), v)

	assert.True(t, NewLookAt(Vec3(1, 1, 1), Vec3(1, 1, 1), Vec3(0, 1, 0)).IsIdentity())
}

func TestMatrix4Array(t *testing.T) {
	m := NewTranslation(4, 5, 6)
	ary := make([]float32, 20)
	m.ToArray(ary, 4)
	var n Matrix4
	n.FromArray(ary, 4)
	assert.Equal(t, *m, n)
	assert.Equal(t, float32(4), ary[16])
}

func TestMatrix3(t *testing.T) {
	m := Identity4()
	m.Rotate(DegToRad(90), Vec3(0, 0, 1))
	m.Translate(5, 5, 5)
	m3 := Matrix3FromMatrix4(m)
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 1, 0), m3.MulVector3(Vec3(1, 0, 0)))
	assert.Equal(t, Identity3(), Matrix3FromMatrix4(Identity4()))
}

func TestBox3MulMatrix4(t *testing.T) {
	b := B3(-1, -1, -1, 1, 1, 1)
	m := NewTranslation(2, 0, 0)
	m.Scale(1, 2, 1)
	nb := b.MulMatrix4(m)
	TolAssertEqualVector3(t, StandardTol, Vec3(1, -2, -1), nb.Min)
	TolAssertEqualVector3(t, StandardTol, Vec3(3, 2, 1), nb.Max)

	e := B3Empty()
	assert.True(t, e.IsEmpty())
	e.SetFromArray(ArrayF32{0, 0, 0, 1, 2, 3})
	assert.Equal(t, Vec3(0.5, 1, 1.5), e.Center())
	assert.True(t, e.ContainsPoint(Vec3(1, 1, 1)))
}

func TestTriangleNormal(t *testing.T) {
	// counter-clockwise as seen from +z
	n := Normal(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0))
	assert.Equal(t, Vec3(0, 0, 1), n)
	tr := NewTriangle(Vec3(0, 0, 0), Vec3(0, 1, 0), Vec3(1, 0, 0))
	assert.Equal(t, Vec3(0, 0, -1), tr.Normal())
	assert.Equal(t, float32(0.5), tr.Area())
	assert.Equal(t, Vector3{}, Normal(Vec3(1, 1, 1), Vec3(1, 1, 1), Vec3(2, 2, 2)))
}
