// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/scenegraph/base/tolassert"
	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/gpu/phong"
	"cogentcore.org/scenegraph/gpu/shape"
	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attribute(t *testing.T, be *Backend, name string, data []float32, n int) gpu.Attribute {
	t.Helper()
	b, err := be.UploadBuffer(gpu.VertexBuffer, data)
	require.NoError(t, err)
	return gpu.Attribute{Name: name, Buffer: b, Type: gpu.VectorType(n)}
}

func binding(t *testing.T, be *Backend, pos []float32, dim int, idx []uint32, extra ...gpu.Attribute) *gpu.VertexBinding {
	t.Helper()
	vb := &gpu.VertexBinding{NumVertex: len(pos) / dim}
	vb.Attributes = append([]gpu.Attribute{attribute(t, be, gpu.PositionAttribute, pos, dim)}, extra...)
	if len(idx) > 0 {
		b, err := be.UploadBuffer(gpu.IndexBuffer, idx)
		require.NoError(t, err)
		vb.Index = b
		vb.NumIndex = len(idx)
	}
	return vb
}

// identityBackend returns a 100x100 backend with identity matrices and
// the default material bound.
func identityBackend() (*Backend, *phong.Binder) {
	be := NewBackend(100, 100)
	bd := phong.NewBinder(be)
	bd.BindMatrices("test", math32.Identity4(), math32.Identity4(), math32.Identity4())
	bd.BindMaterial(nil)
	return be, bd
}

var ccwTriangle = []float32{-1, -1, 0, 1, -1, 0, 0, 1, 0}

func TestUpload(t *testing.T) {
	be := NewBackend(10, 10)
	_, err := be.UploadBuffer(gpu.IndexBuffer, []float32{1})
	assert.ErrorIs(t, err, gpu.ErrUpload)
	_, err = be.UploadBuffer(gpu.VertexBuffer, []uint32{1})
	assert.ErrorIs(t, err, gpu.ErrUpload)
	_, err = be.UploadBuffer(gpu.VertexBuffer, []float64{1})
	assert.ErrorIs(t, err, gpu.ErrUpload)

	data := []float32{1, 2, 3}
	b, err := be.UploadBuffer(gpu.VertexBuffer, data)
	require.NoError(t, err)
	data[0] = 7
	assert.Equal(t, []float32{1, 2, 3}, be.float32s(b))

	_, err = be.UploadTexture(image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, gpu.ErrUpload)
	sub := image.NewNRGBA(image.Rect(2, 2, 4, 5))
	sub.SetNRGBA(3, 4, color.NRGBA{10, 20, 30, 255})
	tx, err := be.UploadTexture(sub)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 3), be.Texture(tx).Bounds())
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, be.Texture(tx).RGBAAt(1, 2))
}

func TestProjectAndShade(t *testing.T) {
	be, _ := identityBackend()
	normals := []float32{0, 0, 1, 0, 0, 1, 0, 0, 1}
	vb := binding(t, be, ccwTriangle, 3, nil, attribute(t, be, gpu.NormalAttribute, normals, 3))
	require.NoError(t, be.BindAndDraw(vb, gpu.TriangleList, 3))
	prims := be.Primitives()
	require.Len(t, prims, 1)
	pr := prims[0]
	assert.Equal(t, math32.Vec2(0, 100), pr.Verts[0].Pos)
	assert.Equal(t, math32.Vec2(100, 100), pr.Verts[1].Pos)
	assert.Equal(t, math32.Vec2(50, 0), pr.Verts[2].Pos)

	// ambient 0.2 plus diffuse 0.8 times the cosine to the light
	lambert := 1 / math32.Sqrt(0.3*0.3+0.5*0.5+1)
	for _, v := range pr.Verts {
		tolassert.EqualTol(t, 0.2+0.8*lambert, v.Color.X, 1e-5)
		assert.Equal(t, float32(1), v.Color.W)
	}

	be.BeginFrame(200, 50)
	assert.Empty(t, be.Primitives())
	require.NoError(t, be.BindAndDraw(vb, gpu.TriangleList, 3))
	assert.Equal(t, math32.Vec2(100, 0), be.Primitives()[0].Verts[2].Pos)
}

func TestCullBack(t *testing.T) {
	be, _ := identityBackend()
	cw := []float32{-1, -1, 0, 0, 1, 0, 1, -1, 0}
	vb := binding(t, be, cw, 3, nil)
	require.NoError(t, be.BindAndDraw(vb, gpu.TriangleList, 3))
	assert.Empty(t, be.Primitives())

	be.CullBack = false
	require.NoError(t, be.BindAndDraw(vb, gpu.TriangleList, 3))
	assert.Len(t, be.Primitives(), 1)
}

func TestAssemble(t *testing.T) {
	be, _ := identityBackend()
	quad := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	vb := binding(t, be, quad, 2, nil)
	tests := []struct {
		mode  gpu.Topologies
		count int
		want  int
		as    gpu.Topologies
	}{
		{gpu.PointList, 4, 4, gpu.PointList},
		{gpu.LineList, 4, 2, gpu.LineList},
		{gpu.LineList, 3, 1, gpu.LineList},
		{gpu.LineStrip, 4, 3, gpu.LineList},
		{gpu.TriangleStrip, 4, 2, gpu.TriangleList},
	}
	for _, tt := range tests {
		be.BeginFrame(100, 100)
		require.NoError(t, be.BindAndDraw(vb, tt.mode, tt.count))
		prims := be.Primitives()
		assert.Len(t, prims, tt.want, tt.mode.String())
		for _, pr := range prims {
			assert.Equal(t, tt.as, pr.Mode)
		}
	}
}

func TestIndexed(t *testing.T) {
	be, _ := identityBackend()
	quad := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	vb := binding(t, be, quad, 2, []uint32{0, 1, 2, 2, 1, 3})
	require.NoError(t, be.BindAndDraw(vb, gpu.TriangleList, vb.Count()))
	assert.Len(t, be.Primitives(), 2)

	err := be.BindAndDraw(vb, gpu.TriangleList, 9)
	assert.ErrorIs(t, err, gpu.ErrInvalidBinding)

	bad := binding(t, be, quad, 2, []uint32{0, 1, 7})
	err = be.BindAndDraw(bad, gpu.TriangleList, 3)
	assert.ErrorIs(t, err, gpu.ErrInvalidBinding)

	err = be.BindAndDraw(binding(t, be, quad, 2, nil), gpu.PointList, 5)
	assert.ErrorIs(t, err, gpu.ErrInvalidBinding)
}

func TestBehindCamera(t *testing.T) {
	be := NewBackend(100, 100)
	cam := phong.NewCamera(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, -1), 60, 1, 0.1, 10)
	bd := phong.NewBinder(be)
	bd.BindMatrices("test", math32.Identity4(), &cam.View, &cam.Projection)
	front := binding(t, be, []float32{0, 0, -2}, 3, nil)
	behind := binding(t, be, []float32{0, 0, 2}, 3, nil)
	require.NoError(t, be.BindAndDraw(front, gpu.PointList, 1))
	require.NoError(t, be.BindAndDraw(behind, gpu.PointList, 1))
	prims := be.Primitives()
	require.Len(t, prims, 1)
	tolassert.EqualTol(t, 50, prims[0].Verts[0].Pos.X, 1e-4)
	tolassert.EqualTol(t, 50, prims[0].Verts[0].Pos.Y, 1e-4)
}

func TestMissingUniform(t *testing.T) {
	be := NewBackend(100, 100)
	vb := binding(t, be, ccwTriangle, 3, nil)
	err := be.BindAndDraw(vb, gpu.TriangleList, 3)
	assert.ErrorIs(t, err, ErrMissingUniform)
	assert.ErrorContains(t, err, "uModelViewMatrix")

	err = be.BindAndDraw(&gpu.VertexBinding{}, gpu.TriangleList, 0)
	assert.ErrorIs(t, err, gpu.ErrInvalidBinding)
}

func TestDiffuseMapAndColor(t *testing.T) {
	be, bd := identityBackend()
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})
	tx, err := be.UploadTexture(img)
	require.NoError(t, err)
	mat := phong.DefaultMaterial()
	mat.Diffuse = math32.Vec3(1, 1, 1)
	mat.Ambient = math32.Vector3{}
	mat.DiffuseMap = tx
	bd.BindMaterial(mat)

	uv := []float32{0.1, 0, 0.9, 0, 0.1, 1}
	vb := binding(t, be, ccwTriangle, 3, nil, attribute(t, be, gpu.TexCoordAttribute, uv, 2))
	require.NoError(t, be.BindAndDraw(vb, gpu.TriangleList, 3))
	pr := be.Primitives()[0]
	assert.Equal(t, math32.Vec4(1, 0, 0, 1), pr.Verts[0].Color)
	assert.Equal(t, math32.Vec4(0, 0, 1, 1), pr.Verts[1].Color)

	// the next material without a map is not textured
	bd.BindMaterial(&phong.Material{Diffuse: math32.Vec3(0, 1, 0)})
	colors := []float32{1, 1, 1, 1, 0.5, 0.5, 0.5, 1, 1, 1, 1, 1}
	vb = binding(t, be, ccwTriangle, 3, nil, attribute(t, be, gpu.ColorAttribute, colors, 4))
	be.BeginFrame(100, 100)
	require.NoError(t, be.BindAndDraw(vb, gpu.TriangleList, 3))
	pr = be.Primitives()[0]
	assert.Equal(t, math32.Vec4(0, 1, 0, 1), pr.Verts[0].Color)
	assert.Equal(t, math32.Vec4(0, 0.5, 0, 1), pr.Verts[1].Color)
}

func TestGroupColors(t *testing.T) {
	be, _ := identityBackend()
	be.CullBack = false
	bf, err := shape.Generate(shape.NewGroup(shape.NewCylinder(0.5, 0.5, 1, 8, 1), shape.NewTetrahedron()))
	require.NoError(t, err)
	vb := binding(t, be, bf.Vertex, 3, bf.Index,
		attribute(t, be, gpu.NormalAttribute, bf.Normal, 3),
		attribute(t, be, gpu.ColorAttribute, bf.Color, 4))
	require.NoError(t, be.BindAndDraw(vb, gpu.TriangleList, len(bf.Index)))
	prims := be.Primitives()
	require.Len(t, prims, len(bf.Index)/3)
	for i, pr := range prims {
		for _, v := range pr.Verts {
			assert.Equal(t, float32(1), v.Color.W, i)
		}
	}
}

func TestPointerPull(t *testing.T) {
	be, bd := identityBackend()
	pts := []float32{0, 0, 0.5, 0}
	vb := binding(t, be, pts, 2, nil)

	require.NoError(t, be.BindAndDraw(vb, gpu.PointList, 2))
	still := be.Primitives()[0].Verts[0].Pos

	bd.BindPointer(math32.Vec2(100, 100), math32.Vec3(0.5, 0, 0), 4)
	be.BeginFrame(100, 100)
	require.NoError(t, be.BindAndDraw(vb, gpu.PointList, 2))
	prims := be.Primitives()
	pulled := prims[0].Verts[0].Pos.X - still.X
	assert.Greater(t, pulled, float32(0))
	tolassert.EqualTol(t, 75, prims[1].Verts[0].Pos.X, 1e-4)
	assert.Equal(t, float32(4), prims[0].Size)

	bd.BindPointer(math32.Vec2(100, 100), math32.Vec3(0.5, 0, 1), 4)
	be.BeginFrame(100, 100)
	require.NoError(t, be.BindAndDraw(vb, gpu.PointList, 2))
	tolassert.EqualTol(t, 2*pulled, be.Primitives()[0].Verts[0].Pos.X-still.X, 1e-4)

	// 3D streams are not pulled
	be.BeginFrame(100, 100)
	require.NoError(t, be.BindAndDraw(binding(t, be, []float32{0, 0, 0}, 3, nil), gpu.PointList, 1))
	assert.Equal(t, still, be.Primitives()[0].Verts[0].Pos)
}

func TestSortPrimitives(t *testing.T) {
	pt := func(depth float32, size float32) Primitive {
		return Primitive{Mode: gpu.PointList, Verts: [3]Vertex{{Depth: depth}}, Size: size}
	}
	tri := Primitive{Mode: gpu.TriangleList, Verts: [3]Vertex{{Depth: 0}, {Depth: 0.3}, {Depth: 0.6}}}
	tolassert.EqualTol(t, 0.3, tri.Depth(), 1e-6)
	tri.Verts = [3]Vertex{{Depth: 0.5}, {Depth: 0}, {Depth: 0.25}}
	prims := []Primitive{pt(-0.5, 1), tri, pt(0.9, 2), pt(0.25, 3)}
	SortPrimitives(prims)
	assert.Equal(t, float32(2), prims[0].Size)
	assert.Equal(t, gpu.TriangleList, prims[1].Mode)
	assert.Equal(t, float32(3), prims[2].Size)
	assert.Equal(t, float32(1), prims[3].Size)
}
