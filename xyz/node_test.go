// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/scenegraph/base/tolassert"
	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
)

func assertMatrix(t *testing.T, expected, actual math32.Matrix4) {
	t.Helper()
	tolassert.EqualTolSlice(t, expected[:], actual[:], 1e-5)
}

func TestNewNode(t *testing.T) {
	n := NewNode("a", Drawable)
	assert.True(t, n.Local.IsIdentity())
	assert.True(t, n.Self.IsIdentity())
	assert.Equal(t, "Drawable", n.Capabilities.String())

	gp := NewGroup("g")
	assert.True(t, gp.Capabilities.Has(GroupOnly))
	assert.False(t, gp.Capabilities.Has(Drawable))
	gp.AddMesh(SubMesh{})
	assert.Equal(t, "Drawable", gp.Capabilities.String())

	assert.Equal(t, "None", Capabilities(0).String())
	assert.Equal(t, "Drawable|PointerAware", (Drawable | PointerAware).String())
}

func TestChildren(t *testing.T) {
	root := NewGroup("root")
	a, b, c := NewGroup("a"), NewGroup("b"), NewGroup("c")
	root.AddChild(a).AddChild(b).AddChild(c)
	assert.Equal(t, []*Node{a, b, c}, root.Children)
	assert.Same(t, b, root.ChildByName("b"))
	assert.Nil(t, root.ChildByName("z"))

	assert.True(t, root.RemoveChild(b))
	assert.False(t, root.RemoveChild(b))
	assert.Equal(t, []*Node{a, c}, root.Children)
}

func TestWalk(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	a.AddChild(NewGroup("a1")).AddChild(NewGroup("a2"))
	b := NewGroup("b")
	b.AddChild(NewGroup("b1"))
	root.AddChild(a).AddChild(b)

	var names []string
	var depths []int
	root.Walk(func(n *Node, depth int) bool {
		names = append(names, n.Name)
		depths = append(depths, depth)
		return n.Name != "b"
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, names)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)
}

func TestTransformsRightMultiply(t *testing.T) {
	n := NewGroup("n")
	n.Translate(1, 2, 3).RotateZ(90).Scale(2, 2, 2)

	want := *math32.NewTranslation(1, 2, 3)
	want.Rotate(math32.DegToRad(90), math32.Vec3(0, 0, 1))
	want.Scale(2, 2, 2)
	assertMatrix(t, want, n.Local)
	assert.True(t, n.Self.IsIdentity())

	// a point on x maps through scale, then rotate, then translate
	p := n.Local.MulVector3AsPoint(math32.Vec3(1, 0, 0))
	tolassert.EqualTol(t, 1, p.X, 1e-5)
	tolassert.EqualTol(t, 4, p.Y, 1e-5)
	tolassert.EqualTol(t, 3, p.Z, 1e-5)

	n.TranslateSelf(0, 0, 1).RotateSelf(45, math32.Vec3(1, 0, 0)).ScaleSelf(3, 1, 1)
	assertMatrix(t, want, n.Local)
	assert.False(t, n.Self.IsIdentity())

	n.SetPosition(5, 0, 0)
	assertMatrix(t, *math32.NewTranslation(5, 0, 0), n.Local)

	n.ResetTransforms()
	assert.True(t, n.Local.IsIdentity())
	assert.True(t, n.Self.IsIdentity())
}

func TestRotateZeroAxis(t *testing.T) {
	n := NewGroup("n")
	n.Rotate(30, math32.Vector3{})
	assert.True(t, n.Local.IsIdentity())
}

func TestWorldMatrix(t *testing.T) {
	root := NewGroup("root").Translate(1, 0, 0)
	arm := NewGroup("arm").RotateZ(90).ScaleSelf(2, 2, 2)
	hand := NewGroup("hand").Translate(0, 1, 0)
	root.AddChild(arm)
	arm.AddChild(hand)

	id := WorldMatrix()
	assert.True(t, id.IsIdentity())

	w := WorldMatrix(root, arm, hand)
	pos := w.Position()
	tolassert.EqualTol(t, 0, pos.X, 1e-5)
	tolassert.EqualTol(t, 0, pos.Y, 1e-5)

	// the self scale of arm is not inherited by hand
	tolassert.EqualTol(t, 1, w.MulVector3AsPoint(math32.Vec3(1, 0, 0)).Sub(pos).Length(), 1e-5)

	rm := RenderMatrix(root, arm)
	tolassert.EqualTol(t, 2, rm.MulVector3AsPoint(math32.Vec3(1, 0, 0)).Sub(rm.Position()).Length(), 1e-5)
}
