// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"math"
	"testing"

	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transformedNode() *Node {
	n := NewGroup("n")
	n.Translate(0.1, -2.7, 1e-3).Rotate(33.3, math32.Vec3(1, 1, 0)).Scale(1.0/3, 3, 7)
	n.RotateSelf(17, math32.Vec3(0, 1, 0)).TranslateSelf(0, 0.2, 0)
	return n
}

// assertSameBits checks that two pairs are bit-identical, which
// unlike == tells negative zero from zero.
func assertSameBits(t *testing.T, want, got TransformPair) {
	t.Helper()
	for i := range want.Local {
		assert.Equal(t, math.Float32bits(want.Local[i]), math.Float32bits(got.Local[i]), "local %d", i)
		assert.Equal(t, math.Float32bits(want.Self[i]), math.Float32bits(got.Self[i]), "self %d", i)
	}
}

func roundTripNodes() []*Node {
	return []*Node{
		transformedNode(),
		NewGroup("mirror").Scale(-1, 1, 1),
		NewGroup("flip").RotateZ(180).ScaleSelf(1, -1, -1),
	}
}

func TestTransformsYAML(t *testing.T) {
	for _, n := range roundTripNodes() {
		b, err := n.Transforms().YAML()
		require.NoError(t, err)
		tp, err := ReadTransformYAML(b)
		require.NoError(t, err, n.Name)
		assertSameBits(t, n.Transforms(), tp)

		m := NewGroup("m").SetTransforms(tp)
		assert.Equal(t, n.Local, m.Local)
		assert.Equal(t, n.Self, m.Self)
	}
	b, err := NewGroup("mirror").Scale(-1, 1, 1).Transforms().YAML()
	require.NoError(t, err)
	assert.Contains(t, string(b), "-0.0")
}

func TestTransformsTOML(t *testing.T) {
	for _, n := range roundTripNodes() {
		b, err := n.Transforms().TOML()
		require.NoError(t, err)
		assert.Contains(t, string(b), "local")
		tp, err := ReadTransformTOML(b)
		require.NoError(t, err, n.Name)
		assertSameBits(t, n.Transforms(), tp)
	}
}

func TestSnapshot(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a").Translate(1, 0, 0)
	a.AddChild(NewGroup("a1"))
	root.AddChild(a).AddChild(NewGroup("b"))
	snap := Snapshot(root)
	var paths []string
	for _, nt := range snap {
		paths = append(paths, nt.Path)
	}
	assert.Equal(t, []string{"root", "root/a", "root/a/a1", "root/b"}, paths)
	assert.Equal(t, a.Transforms(), snap[1].Transforms)
}
