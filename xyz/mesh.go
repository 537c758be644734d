// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/gpu/phong"
	"cogentcore.org/scenegraph/gpu/shape"
	"cogentcore.org/scenegraph/math32"
)

// ErrMalformedGeometry is returned for geometry whose attribute
// streams or indexes are inconsistent.
var ErrMalformedGeometry = errors.New("xyz: malformed geometry")

// Sources are where the data of a [Geometry] came from.
type Sources int32

const (
	// PrimitiveList is an unindexed stream of vertexes.
	PrimitiveList Sources = iota

	// IndexedMesh is a vertex stream with an index buffer.
	IndexedMesh

	// Procedural geometry was produced by a [shape.Shape] generator.
	Procedural
)

func (s Sources) String() string {
	switch s {
	case PrimitiveList:
		return "PrimitiveList"
	case IndexedMesh:
		return "IndexedMesh"
	case Procedural:
		return "Procedural"
	}
	return fmt.Sprintf("Sources(%d)", int32(s))
}

// Geometry is host-side vertex data for a mesh, prior to upload.
type Geometry struct {

	// Source records how the geometry was made.
	Source Sources

	// Dim is the number of position components per vertex, 2 or 3.
	Dim int

	// Position has Dim floats per vertex.
	Position math32.ArrayF32

	// Normal has 3 floats per vertex, or is empty.
	Normal math32.ArrayF32

	// TexCoord has 2 floats per vertex, or is empty.
	TexCoord math32.ArrayF32

	// Color has 4 floats per vertex, or is empty.
	Color math32.ArrayF32

	// Index has the vertex indexes, required for [IndexedMesh]
	// and absent for [PrimitiveList].
	Index math32.ArrayU32
}

// NumVertex returns the number of vertexes.
func (g *Geometry) NumVertex() int {
	if g.Dim <= 0 {
		return 0
	}
	return len(g.Position) / g.Dim
}

// Validate checks that the attribute streams agree with the number
// of vertexes and that all indexes are in range.
func (g *Geometry) Validate() error {
	if g.Dim != 2 && g.Dim != 3 {
		return fmt.Errorf("%w: dimension %d is not 2 or 3", ErrMalformedGeometry, g.Dim)
	}
	if len(g.Position) == 0 || len(g.Position)%g.Dim != 0 {
		return fmt.Errorf("%w: %d position floats for dimension %d", ErrMalformedGeometry, len(g.Position), g.Dim)
	}
	nv := g.NumVertex()
	streams := []struct {
		name string
		data math32.ArrayF32
		n    int
	}{
		{"normal", g.Normal, 3},
		{"texcoord", g.TexCoord, 2},
		{"color", g.Color, 4},
	}
	for _, st := range streams {
		if len(st.data) != 0 && len(st.data) != nv*st.n {
			return fmt.Errorf("%w: %d %s floats for %d vertexes", ErrMalformedGeometry, len(st.data), st.name, nv)
		}
	}
	switch g.Source {
	case IndexedMesh:
		if len(g.Index) == 0 {
			return fmt.Errorf("%w: indexed mesh without indexes", ErrMalformedGeometry)
		}
	case PrimitiveList:
		if len(g.Index) != 0 {
			return fmt.Errorf("%w: primitive list with %d indexes", ErrMalformedGeometry, len(g.Index))
		}
	}
	for i, ix := range g.Index {
		if int(ix) >= nv {
			return fmt.Errorf("%w: index %d at %d is out of range for %d vertexes", ErrMalformedGeometry, ix, i, nv)
		}
	}
	return nil
}

// BBox returns the bounding box of the positions, with Z = 0
// for 2D geometry.
func (g *Geometry) BBox() math32.Box3 {
	if g.Dim == 3 {
		var bb math32.Box3
		bb.SetFromArray(g.Position)
		return bb
	}
	bb := math32.B3Empty()
	for i := 0; i+1 < len(g.Position); i += 2 {
		bb.ExpandByPoint(math32.Vec3(g.Position[i], g.Position[i+1], 0))
	}
	return bb
}

// GeometryFromShape generates the geometry for the given shape.
// Invalid shape parameters return [shape.ErrInvalidParameter].
func GeometryFromShape(sh shape.Shape) (*Geometry, error) {
	bf, err := shape.Generate(sh)
	if err != nil {
		return nil, err
	}
	return &Geometry{
		Source:   Procedural,
		Dim:      bf.Dim,
		Position: bf.Vertex,
		Normal:   bf.Normal,
		TexCoord: bf.TexCoord,
		Color:    bf.Color,
		Index:    bf.Index,
	}, nil
}

// Mesh is uploaded, immutable geometry. It can be shared by any
// number of nodes and their clones.
type Mesh struct {

	// Name is the name of the mesh in the [Scene] registry.
	Name string

	// Geometry is the host copy of the uploaded data.
	Geometry *Geometry

	// Binding has the uploaded vertex attribute and index buffers.
	Binding gpu.VertexBinding

	// BBox is the bounding box in mesh coordinates.
	BBox math32.Box3
}

// NewMesh validates the given geometry and uploads it to the backend.
func NewMesh(be gpu.Backend, name string, geom *Geometry) (*Mesh, error) {
	if err := geom.Validate(); err != nil {
		return nil, fmt.Errorf("mesh %q: %w", name, err)
	}
	ms := &Mesh{Name: name, Geometry: geom, BBox: geom.BBox()}
	vb := &ms.Binding
	vb.NumVertex = geom.NumVertex()
	attrs := []struct {
		name string
		data math32.ArrayF32
		typ  gpu.Types
	}{
		{gpu.PositionAttribute, geom.Position, gpu.VectorType(geom.Dim)},
		{gpu.NormalAttribute, geom.Normal, gpu.Float32Vector3},
		{gpu.TexCoordAttribute, geom.TexCoord, gpu.Float32Vector2},
		{gpu.ColorAttribute, geom.Color, gpu.Float32Vector4},
	}
	for _, at := range attrs {
		if len(at.data) == 0 {
			continue
		}
		buf, err := be.UploadBuffer(gpu.VertexBuffer, []float32(at.data))
		if err != nil {
			return nil, fmt.Errorf("mesh %q %s: %w", name, at.name, err)
		}
		vb.Attributes = append(vb.Attributes, gpu.Attribute{Name: at.name, Buffer: buf, Type: at.typ})
	}
	if len(geom.Index) > 0 {
		buf, err := be.UploadBuffer(gpu.IndexBuffer, []uint32(geom.Index))
		if err != nil {
			return nil, fmt.Errorf("mesh %q index: %w", name, err)
		}
		vb.Index = buf
		vb.NumIndex = len(geom.Index)
	}
	return ms, nil
}

// SubMesh is one mesh of a node together with its material.
// A nil Material draws with [phong.DefaultMaterial].
type SubMesh struct {
	Mesh     *Mesh
	Material *phong.Material
}
