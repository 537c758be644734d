// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/scenegraph/gpu/gputest"
	"cogentcore.org/scenegraph/gpu/phong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	rc := gputest.NewRecorder()
	tri := newTriangleMesh(t, rc, "tri")
	mat := phong.DefaultMaterial()
	n := NewDrawable("wheel", SubMesh{Mesh: tri, Material: mat}).Translate(1, 0, 0).ScaleSelf(2, 2, 2)
	n.Capabilities |= PointerAware
	n.AddChild(NewGroup("hub"))

	c := n.Clone()
	assert.Equal(t, "wheel (Clone)", c.Name)
	assert.Equal(t, n.Capabilities, c.Capabilities)
	assert.Equal(t, n.Local, c.Local)
	assert.Equal(t, n.Self, c.Self)
	assert.Empty(t, c.Children)
	require.Len(t, c.Meshes, 1)
	assert.Same(t, tri, c.Meshes[0].Mesh)
	assert.Same(t, mat, c.Meshes[0].Material)

	// transforms and the sub-mesh list are independent
	c.Translate(0, 5, 0)
	c.Meshes[0].Material = nil
	assert.NotEqual(t, n.Local, c.Local)
	assert.Same(t, mat, n.Meshes[0].Material)
	n.RotateZ(45)
	assert.NotEqual(t, n.Local, c.Local)
}

func TestCloneTree(t *testing.T) {
	rc := gputest.NewRecorder()
	tri := newTriangleMesh(t, rc, "tri")
	car := NewGroup("car")
	front := NewGroup("front").Translate(0, 0, 2)
	wheel := NewDrawable("wheel", SubMesh{Mesh: tri})
	front.AddChild(wheel)
	car.AddChild(front)

	cc := car.CloneTree()
	assert.Equal(t, "car (Clone)", cc.Name)
	cf := cc.ChildByName("front")
	require.NotNil(t, cf)
	assert.NotSame(t, front, cf)
	assert.Equal(t, front.Local, cf.Local)
	cw := cf.ChildByName("wheel")
	require.NotNil(t, cw)
	assert.NotSame(t, wheel, cw)
	assert.Same(t, tri, cw.Meshes[0].Mesh)

	cf.Translate(1, 0, 0)
	assert.NotEqual(t, front.Local, cf.Local)
	assert.Len(t, front.Children, 1)
}
