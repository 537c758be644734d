// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the narrow interface through which the scene graph
// talks to a rendering backend: buffer and texture upload, uniform
// setting, texture unit binding, and draw submission.
// The backend owns the lifetime of all device resources; the scene
// graph only holds the opaque handles returned here.
package gpu

import (
	"image"

	"cogentcore.org/scenegraph/base/errors"
)

var (
	// ErrUpload is returned by a [Backend] when a buffer or texture
	// could not be uploaded to the device.
	ErrUpload = errors.New("gpu: upload failed")

	// ErrInvalidBinding is returned when a [VertexBinding] refers to
	// absent buffers or has an inconsistent element count.
	ErrInvalidBinding = errors.New("gpu: invalid vertex binding")
)

// Buffer is an opaque handle to a device buffer.
// The zero value means no buffer.
type Buffer uint32

// IsValid returns true if this is a real buffer handle.
func (b Buffer) IsValid() bool { return b != 0 }

// Texture is an opaque handle to a device texture.
// The zero value means no texture, which disables
// any material channel that refers to it.
type Texture uint32

// IsValid returns true if this is a real texture handle.
func (t Texture) IsValid() bool { return t != 0 }

// BufferTargets are the kinds of buffer a [Backend] can hold.
type BufferTargets int32

const (
	// VertexBuffer holds per-vertex float32 attribute data.
	VertexBuffer BufferTargets = iota

	// IndexBuffer holds uint32 triangle, line or point indexes.
	IndexBuffer
)

func (bt BufferTargets) String() string {
	switch bt {
	case VertexBuffer:
		return "VertexBuffer"
	case IndexBuffer:
		return "IndexBuffer"
	}
	return "BufferTargets(?)"
}

// Backend is the rendering service called by the scene graph.
// All methods are called from the single frame loop goroutine.
// Submission is fire-and-forget: the backend may schedule the actual
// device work asynchronously, and device-level failures are the
// backend's to surface.
type Backend interface {

	// UploadBuffer copies data to the device and returns its handle.
	// data is a []float32 for a [VertexBuffer] and a []uint32 for an
	// [IndexBuffer].
	UploadBuffer(target BufferTargets, data any) (Buffer, error)

	// UploadTexture copies the given image to the device and
	// returns its handle.
	UploadTexture(img image.Image) (Texture, error)

	// SetUniform sets the named uniform of the current program.
	// Supported values are float32, int32, [math32.Vector2],
	// [math32.Vector3], [math32.Vector4], [math32.Matrix3] and
	// [math32.Matrix4].
	SetUniform(name string, value any)

	// BindTexture makes the given texture current on the given unit.
	BindTexture(unit int, tex Texture)

	// BindAndDraw binds the vertex attributes and optional index buffer
	// of vb and draws count elements with the given topology.
	BindAndDraw(vb *VertexBinding, mode Topologies, count int) error
}
