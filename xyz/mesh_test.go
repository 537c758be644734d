// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/scenegraph/base/tolassert"
	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/gpu/gputest"
	"cogentcore.org/scenegraph/gpu/shape"
	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() *Geometry {
	return &Geometry{
		Source:   PrimitiveList,
		Dim:      3,
		Position: math32.ArrayF32{0, 0, 0, 1, 0, 0, 0, 1, 0},
	}
}

func newTriangleMesh(t *testing.T, be gpu.Backend, name string) *Mesh {
	t.Helper()
	ms, err := NewMesh(be, name, triangle())
	require.NoError(t, err)
	return ms
}

func TestGeometryValidate(t *testing.T) {
	assert.NoError(t, triangle().Validate())

	tests := []struct {
		name string
		mod  func(g *Geometry)
	}{
		{"dim", func(g *Geometry) { g.Dim = 4 }},
		{"empty", func(g *Geometry) { g.Position = nil }},
		{"ragged", func(g *Geometry) { g.Position = g.Position[:8] }},
		{"normals", func(g *Geometry) { g.Normal = make(math32.ArrayF32, 6) }},
		{"texcoords", func(g *Geometry) { g.TexCoord = make(math32.ArrayF32, 3) }},
		{"colors", func(g *Geometry) { g.Color = make(math32.ArrayF32, 9) }},
		{"listWithIndex", func(g *Geometry) { g.Index = math32.ArrayU32{0, 1, 2} }},
		{"indexedWithout", func(g *Geometry) { g.Source = IndexedMesh }},
		{"indexRange", func(g *Geometry) {
			g.Source = IndexedMesh
			g.Index = math32.ArrayU32{0, 1, 3}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := triangle()
			tt.mod(g)
			assert.ErrorIs(t, g.Validate(), ErrMalformedGeometry)
		})
	}

	g := triangle()
	g.Source = IndexedMesh
	g.Index = math32.ArrayU32{0, 1, 2}
	g.Normal = make(math32.ArrayF32, 9)
	g.TexCoord = make(math32.ArrayF32, 6)
	g.Color = make(math32.ArrayF32, 12)
	assert.NoError(t, g.Validate())
}

func TestNewMesh(t *testing.T) {
	rc := gputest.NewRecorder()
	geom, err := GeometryFromShape(shape.NewCylinder(1, 1, 2, 4, 1))
	require.NoError(t, err)
	assert.Equal(t, Procedural, geom.Source)
	ms, err := NewMesh(rc, "cyl", geom)
	require.NoError(t, err)

	vb := &ms.Binding
	require.NoError(t, vb.Validate())
	assert.Equal(t, 10, vb.NumVertex)
	assert.Equal(t, 24, vb.NumIndex)
	assert.True(t, vb.Indexed())
	names := []string{}
	for _, at := range vb.Attributes {
		names = append(names, at.Name)
	}
	assert.Equal(t, []string{gpu.PositionAttribute, gpu.NormalAttribute, gpu.TexCoordAttribute}, names)
	assert.Equal(t, []float32(geom.Position), rc.Float32s(vb.Attributes[0].Buffer))
	assert.Equal(t, []uint32(geom.Index), rc.Uint32s(vb.Index))

	tolassert.EqualTol(t, -1, ms.BBox.Min.Y, 1e-6)
	tolassert.EqualTol(t, 1, ms.BBox.Max.Y, 1e-6)
}

func TestNewMesh2D(t *testing.T) {
	rc := gputest.NewRecorder()
	geom, err := GeometryFromShape(shape.NewPointGrid(2, 2))
	require.NoError(t, err)
	ms, err := NewMesh(rc, "grid", geom)
	require.NoError(t, err)
	assert.Len(t, ms.Binding.Attributes, 1)
	assert.Equal(t, gpu.Float32Vector2, ms.Binding.Attributes[0].Type)
	assert.False(t, ms.Binding.Indexed())
	assert.Equal(t, 9, ms.Binding.Count())
	assert.Equal(t, float32(0), ms.BBox.Max.Z)
}

func TestNewMeshErrors(t *testing.T) {
	rc := gputest.NewRecorder()
	_, err := GeometryFromShape(shape.NewCylinder(1, 1, 2, 2, 1))
	assert.ErrorIs(t, err, shape.ErrInvalidParameter)

	g := triangle()
	g.Dim = 0
	_, err = NewMesh(rc, "bad", g)
	assert.ErrorIs(t, err, ErrMalformedGeometry)
	assert.Empty(t, rc.Buffers)

	rc.FailUpload = true
	_, err = NewMesh(rc, "tri", triangle())
	assert.ErrorIs(t, err, gpu.ErrUpload)
}
