// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a software [gpu.Backend] that projects and
// shades vertexes on the CPU, assembling each frame into a list of
// window-space primitives for a 2D painter to draw.
package raster

import (
	"fmt"
	"image"

	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/gpu/phong"
	"cogentcore.org/scenegraph/math32"
	"github.com/anthonynsimon/bild/clone"
)

// Backend is a [gpu.Backend] that keeps buffers and textures in memory.
// Each draw is transformed, lit and assembled into [Primitive]s on the
// CPU; a driver then paints [Backend.Primitives] in [SortPrimitives] order.
type Backend struct {

	// Names are the uniform names read at draw time.
	Names phong.UniformNames

	// Size is the viewport size in pixels.
	Size math32.Vector2

	// Light is the direction toward the light, in view coordinates.
	Light math32.Vector3

	// CullBack skips triangles facing away from the camera.
	CullBack bool

	// Gravity is the strength with which pointer-aware points are
	// pulled toward the pointer; doubled while a button is down.
	Gravity float32

	buffers  map[gpu.Buffer]any
	textures map[gpu.Texture]*image.RGBA
	uniforms map[string]any
	units    map[int]gpu.Texture
	frame    []Primitive
	next     uint32
}

// NewBackend returns a new [Backend] for a viewport of the given size.
func NewBackend(width, height int) *Backend {
	return &Backend{
		Names:    phong.DefaultUniformNames(),
		Size:     math32.Vec2(float32(width), float32(height)),
		Light:    math32.Vec3(0.3, 0.5, 1).Normal(),
		CullBack: true,
		Gravity:  0.05,
		buffers:  map[gpu.Buffer]any{},
		textures: map[gpu.Texture]*image.RGBA{},
		uniforms: map[string]any{},
		units:    map[int]gpu.Texture{},
	}
}

func (be *Backend) handle() uint32 {
	be.next++
	return be.next
}

func (be *Backend) UploadBuffer(target gpu.BufferTargets, data any) (gpu.Buffer, error) {
	switch d := data.(type) {
	case []float32:
		if target != gpu.VertexBuffer {
			return 0, fmt.Errorf("%w: float32 data for %s", gpu.ErrUpload, target)
		}
		data = append([]float32(nil), d...)
	case []uint32:
		if target != gpu.IndexBuffer {
			return 0, fmt.Errorf("%w: uint32 data for %s", gpu.ErrUpload, target)
		}
		data = append([]uint32(nil), d...)
	default:
		return 0, fmt.Errorf("%w: unsupported data type %T", gpu.ErrUpload, d)
	}
	b := gpu.Buffer(be.handle())
	be.buffers[b] = data
	return b, nil
}

func (be *Backend) UploadTexture(img image.Image) (gpu.Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return 0, fmt.Errorf("%w: empty texture image", gpu.ErrUpload)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) {
		rgba = clone.AsRGBA(img)
		// the copy is freshly allocated, so its origin can move to zero
		rgba.Rect = rgba.Rect.Sub(rgba.Rect.Min)
	}
	t := gpu.Texture(be.handle())
	be.textures[t] = rgba
	return t, nil
}

func (be *Backend) SetUniform(name string, value any) {
	be.uniforms[name] = value
}

func (be *Backend) BindTexture(unit int, tex gpu.Texture) {
	be.units[unit] = tex
}

// BeginFrame clears the primitives of the previous frame and sets the
// viewport size.
func (be *Backend) BeginFrame(width, height int) {
	be.frame = be.frame[:0]
	be.Size = math32.Vec2(float32(width), float32(height))
}

// Primitives returns the primitives assembled so far in this frame,
// in draw order.
func (be *Backend) Primitives() []Primitive {
	return be.frame
}

// Texture returns the image of the given texture, or nil.
func (be *Backend) Texture(tex gpu.Texture) *image.RGBA {
	return be.textures[tex]
}

func (be *Backend) float32s(b gpu.Buffer) []float32 {
	d, _ := be.buffers[b].([]float32)
	return d
}

func (be *Backend) uint32s(b gpu.Buffer) []uint32 {
	d, _ := be.buffers[b].([]uint32)
	return d
}

// uniform returns the current value of the named uniform if it
// has type T.
func uniform[T any](be *Backend, name string) (T, bool) {
	v, ok := be.uniforms[name].(T)
	return v, ok
}
