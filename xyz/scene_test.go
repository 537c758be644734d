// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"testing"

	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/gpu/gputest"
	"cogentcore.org/scenegraph/gpu/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneMeshes(t *testing.T) {
	rc := gputest.NewRecorder()
	sc := NewScene(rc)
	ms, err := sc.SetShapeMesh("tet", shape.NewTetrahedron())
	require.NoError(t, err)
	got, err := sc.MeshByName("tet")
	require.NoError(t, err)
	assert.Same(t, ms, got)

	_, err = sc.MeshByName("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = sc.SetShapeMesh("bad", shape.NewCylinder(1, 1, 1, 3, 0))
	assert.ErrorIs(t, err, shape.ErrInvalidParameter)
	assert.Equal(t, 1, sc.Meshes.Len())

	_, err = sc.SetMesh("tri", triangle())
	require.NoError(t, err)
	assert.Equal(t, []string{"tet", "tri"}, sc.Meshes.Keys())
}

func TestSceneTextures(t *testing.T) {
	rc := gputest.NewRecorder()
	sc := NewScene(rc)
	tx, err := sc.SetTexture("checker", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	require.NoError(t, err)
	assert.True(t, tx.IsValid())
	got, ok := sc.TextureByName("checker")
	assert.True(t, ok)
	assert.Equal(t, tx, got)

	missing, ok := sc.TextureByName("missing")
	assert.False(t, ok)
	assert.Equal(t, gpu.Texture(0), missing)

	rc.FailUpload = true
	_, err = sc.SetTexture("fail", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, gpu.ErrUpload)
}

func TestSceneLibrary(t *testing.T) {
	rc := gputest.NewRecorder()
	sc := NewScene(rc)
	tri := newTriangleMesh(t, rc, "tri")
	sc.NewInLibrary("truck")
	car := sc.NewInLibrary("car")
	car.AddChild(NewDrawable("body", SubMesh{Mesh: tri}))
	sc.AddToLibrary(car)
	assert.Equal(t, []string{"truck", "car"}, sc.Library.Keys())

	c1, err := sc.AddFromLibrary("car", sc.Root)
	require.NoError(t, err)
	c2, err := sc.AddFromLibrary("car", sc.Root)
	require.NoError(t, err)
	assert.NotSame(t, c1, c2)
	c1.Translate(-2, 0, 0)
	c2.Translate(2, 0, 0)
	assert.Equal(t, 5, sc.Nodes())

	_, err = sc.AddFromLibrary("bus", sc.Root)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, sc.Render(testContext(rc)))
	require.Len(t, rc.Draws, 2)
	// the library copy itself is not in the graph
	assert.Empty(t, car.Children[0].Children)
}
