// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"fmt"
	"image"
	"slices"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/math32"
)

// ErrMissingUniform is returned by a draw when a matrix uniform
// it needs has not been set.
var ErrMissingUniform = errors.New("raster: uniform not set")

// DefaultPointSize is the point size when no point size uniform is set.
const DefaultPointSize = 2

// Vertex is a projected and shaded vertex.
type Vertex struct {

	// Pos is the position in window pixels, with y down.
	Pos math32.Vector2

	// Depth is the normalized device z, -1 near to 1 far.
	Depth float32

	// Color is the shaded RGBA color, each component in [0, 1].
	Color math32.Vector4
}

// Primitive is one assembled point, line or triangle.
type Primitive struct {

	// Mode is [gpu.PointList], [gpu.LineList] or [gpu.TriangleList].
	Mode gpu.Topologies

	// Verts holds Mode.Vertices() vertexes.
	Verts [3]Vertex

	// Size is the point size in pixels.
	Size float32
}

// Depth returns the mean depth of the vertexes.
func (pr *Primitive) Depth() float32 {
	n := pr.Mode.Vertices()
	var d float32
	for i := range n {
		d += pr.Verts[i].Depth
	}
	return d / float32(n)
}

// shaded is a vertex with its clip status.
type shaded struct {
	Vertex
	clipped bool
}

// BindAndDraw runs the vertex stage for the binding and assembles
// count elements into primitives for the current frame. Strips are
// assembled into lists. Primitives with a vertex behind the camera
// are dropped, as are back-facing triangles if CullBack is set.
func (be *Backend) BindAndDraw(vb *gpu.VertexBinding, mode gpu.Topologies, count int) error {
	if err := vb.Validate(); err != nil {
		return err
	}
	mv, ok := uniform[math32.Matrix4](be, be.Names.ModelView)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingUniform, be.Names.ModelView)
	}
	proj, ok := uniform[math32.Matrix4](be, be.Names.Projection)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingUniform, be.Names.Projection)
	}
	var idx []uint32
	if vb.Indexed() {
		idx = be.uint32s(vb.Index)
		if count > len(idx) {
			return fmt.Errorf("%w: count %d exceeds %d indexes", gpu.ErrInvalidBinding, count, len(idx))
		}
	} else if count > vb.NumVertex {
		return fmt.Errorf("%w: count %d exceeds %d vertexes", gpu.ErrInvalidBinding, count, vb.NumVertex)
	}
	verts, err := be.vertexStage(vb, &mv, &proj)
	if err != nil {
		return err
	}
	at := func(i int) (shaded, error) {
		vi := i
		if idx != nil {
			vi = int(idx[i])
		}
		if vi < 0 || vi >= len(verts) {
			return shaded{}, fmt.Errorf("%w: index %d out of range", gpu.ErrInvalidBinding, vi)
		}
		return verts[vi], nil
	}
	size := float32(DefaultPointSize)
	if ps, ok := uniform[float32](be, be.Names.PointSize); ok && ps > 0 {
		size = ps
	}
	for _, el := range assemble(mode, count) {
		pr := Primitive{Mode: el.mode, Size: size}
		keep := true
		for i := range el.mode.Vertices() {
			sv, err := at(el.elems[i])
			if err != nil {
				return err
			}
			if sv.clipped {
				keep = false
			}
			pr.Verts[i] = sv.Vertex
		}
		if !keep {
			continue
		}
		if be.CullBack && pr.Mode == gpu.TriangleList && !frontFacing(&pr) {
			continue
		}
		be.frame = append(be.frame, pr)
	}
	return nil
}

// element is one primitive's worth of element numbers.
type element struct {
	mode  gpu.Topologies
	elems [3]int
}

// assemble returns the primitives for count elements of the given
// topology, converting strips to lists.
func assemble(mode gpu.Topologies, count int) []element {
	var els []element
	switch mode {
	case gpu.PointList:
		for i := range count {
			els = append(els, element{gpu.PointList, [3]int{i}})
		}
	case gpu.LineList:
		for i := 0; i+1 < count; i += 2 {
			els = append(els, element{gpu.LineList, [3]int{i, i + 1}})
		}
	case gpu.LineStrip:
		for i := 0; i+1 < count; i++ {
			els = append(els, element{gpu.LineList, [3]int{i, i + 1}})
		}
	case gpu.TriangleList:
		for i := 0; i+2 < count; i += 3 {
			els = append(els, element{gpu.TriangleList, [3]int{i, i + 1, i + 2}})
		}
	case gpu.TriangleStrip:
		for i := 0; i+2 < count; i++ {
			if i%2 == 0 {
				els = append(els, element{gpu.TriangleList, [3]int{i, i + 1, i + 2}})
			} else {
				els = append(els, element{gpu.TriangleList, [3]int{i + 1, i, i + 2}})
			}
		}
	}
	return els
}

// frontFacing returns true if the triangle winds counter-clockwise
// in normalized device coordinates, which is clockwise in window
// coordinates with y down.
func frontFacing(pr *Primitive) bool {
	a, b, c := pr.Verts[0].Pos, pr.Verts[1].Pos, pr.Verts[2].Pos
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.X*ac.Y-ab.Y*ac.X < 0
}

// vertexStage projects and shades all vertexes of the binding.
func (be *Backend) vertexStage(vb *gpu.VertexBinding, mv, proj *math32.Matrix4) ([]shaded, error) {
	pa, _ := vb.Attribute(gpu.PositionAttribute)
	dim := pa.Type.Components()
	pos := be.float32s(pa.Buffer)
	if len(pos) < vb.NumVertex*dim {
		return nil, fmt.Errorf("%w: %d position values for %d vertexes", gpu.ErrInvalidBinding, len(pos), vb.NumVertex)
	}
	stream := func(name string, n int) []float32 {
		at, ok := vb.Attribute(name)
		if !ok {
			return nil
		}
		d := be.float32s(at.Buffer)
		if len(d) < vb.NumVertex*n {
			return nil
		}
		return d
	}
	normals := stream(gpu.NormalAttribute, 3)
	texcoords := stream(gpu.TexCoordAttribute, 2)
	colors := stream(gpu.ColorAttribute, 4)

	nrm := math32.Identity3()
	if nm, ok := uniform[math32.Matrix4](be, be.Names.Normal); ok {
		nrm = math32.Matrix3FromMatrix4(&nm)
	}
	mtl := be.material()
	mouse, pull := be.pointerPull(dim)

	out := make([]shaded, vb.NumVertex)
	for i := range out {
		p := math32.Vector4{X: pos[i*dim], Y: pos[i*dim+1], W: 1}
		if dim == 3 {
			p.Z = pos[i*dim+2]
		}
		clip := p.MulMatrix4(mv).MulMatrix4(proj)
		if clip.W <= 0 {
			out[i].clipped = true
			continue
		}
		ndc := clip.PerspDiv()
		if pull > 0 {
			d := math32.Vec2(mouse.X-ndc.X, mouse.Y-ndc.Y)
			k := pull / (1 + 40*(d.X*d.X+d.Y*d.Y))
			ndc.X += d.X * k
			ndc.Y += d.Y * k
		}
		v := &out[i].Vertex
		v.Pos = math32.Vec2((ndc.X+1)/2*be.Size.X, (1-ndc.Y)/2*be.Size.Y)
		v.Depth = ndc.Z

		light := float32(1)
		if normals != nil {
			n := nrm.MulVector3(math32.Vec3(normals[i*3], normals[i*3+1], normals[i*3+2])).Normal()
			light = max(0, n.Dot(be.Light))
		}
		diffuse := mtl.diffuse
		if mtl.diffuseMap != nil && texcoords != nil {
			diffuse = mulColor(diffuse, sample(mtl.diffuseMap, texcoords[i*2], texcoords[i*2+1]))
		}
		c := math32.Vector4{
			X: mtl.ambient.X + diffuse.X*light,
			Y: mtl.ambient.Y + diffuse.Y*light,
			Z: mtl.ambient.Z + diffuse.Z*light,
			W: 1,
		}
		if colors != nil {
			c = mulColor(c, math32.Vec4(colors[i*4], colors[i*4+1], colors[i*4+2], colors[i*4+3]))
		}
		v.Color = clampColor(c)
	}
	return out, nil
}

// shading is the material state read from the uniforms for one draw.
type shading struct {
	ambient, diffuse math32.Vector4
	diffuseMap       *image.RGBA
}

// material returns the current material shading state, with the
// default material values for unset uniforms.
func (be *Backend) material() shading {
	sh := shading{ambient: math32.Vec4(0.2, 0.2, 0.2, 1), diffuse: math32.Vec4(0.8, 0.8, 0.8, 1)}
	if a, ok := uniform[math32.Vector4](be, be.Names.Ambient); ok {
		sh.ambient = a
	}
	if d, ok := uniform[math32.Vector4](be, be.Names.Diffuse); ok {
		sh.diffuse = d
	}
	if en, _ := uniform[int32](be, be.Names.EnableDiffuse); en == 1 {
		unit, _ := uniform[int32](be, be.Names.DiffuseMap)
		sh.diffuseMap = be.textures[be.units[int(unit)]]
	}
	return sh
}

// pointerPull returns the pointer position in normalized device
// coordinates and the pull strength toward it. Only 2D position
// streams are pulled, as drawn by pointer-aware point grids.
func (be *Backend) pointerPull(dim int) (math32.Vector3, float32) {
	mouse, ok := uniform[math32.Vector3](be, be.Names.Mouse)
	if !ok || dim != 2 || be.Gravity <= 0 {
		return mouse, 0
	}
	if mouse.Z != 0 {
		return mouse, 2 * be.Gravity
	}
	return mouse, be.Gravity
}

// sample returns the texel nearest to the given texture coordinates,
// wrapping coordinates outside [0, 1]. Row 0 is at v = 0.
func sample(img *image.RGBA, u, v float32) math32.Vector4 {
	b := img.Bounds()
	u -= math32.Floor(u)
	v -= math32.Floor(v)
	x := min(int(u*float32(b.Dx())), b.Dx()-1)
	y := min(int(v*float32(b.Dy())), b.Dy()-1)
	c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
	return math32.Vec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

func mulColor(a, b math32.Vector4) math32.Vector4 {
	return math32.Vec4(a.X*b.X, a.Y*b.Y, a.Z*b.Z, a.W*b.W)
}

func clampColor(c math32.Vector4) math32.Vector4 {
	cl := func(f float32) float32 { return math32.Clamp(f, 0, 1) }
	return math32.Vec4(cl(c.X), cl(c.Y), cl(c.Z), cl(c.W))
}

// SortPrimitives sorts the primitives far to near, keeping draw order
// among primitives at the same depth.
func SortPrimitives(prims []Primitive) {
	slices.SortStableFunc(prims, func(a, b Primitive) int {
		da, db := a.Depth(), b.Depth()
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
}
