// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a [gpu.Backend] that records every call,
// for testing code that renders without a device.
package gputest

import (
	"fmt"
	"image"
	"maps"

	"cogentcore.org/scenegraph/gpu"
)

// Draw is one recorded BindAndDraw call, with a snapshot of the
// uniform and texture unit state current at the time of the draw.
type Draw struct {
	Binding  *gpu.VertexBinding
	Mode     gpu.Topologies
	Count    int
	Uniforms map[string]any
	Units    map[int]gpu.Texture
}

// Recorder is a [gpu.Backend] that keeps uploaded data in memory and
// records uniform, texture and draw calls in order.
type Recorder struct {

	// Buffers holds uploaded buffer contents by handle.
	Buffers map[gpu.Buffer]any

	// Textures holds uploaded images by handle.
	Textures map[gpu.Texture]image.Image

	// Uniforms is the current value of each uniform.
	Uniforms map[string]any

	// Units is the texture currently bound on each unit.
	Units map[int]gpu.Texture

	// Calls is the sequence of method names called, with the
	// uniform name for SetUniform (e.g. "SetUniform mat_diffuse").
	Calls []string

	// Draws records each BindAndDraw call.
	Draws []Draw

	// FailUpload makes all uploads fail with [gpu.ErrUpload].
	FailUpload bool

	// FailDraw, if set, is called for each draw and any
	// error it returns is returned from BindAndDraw.
	FailDraw func(vb *gpu.VertexBinding) error

	next uint32
}

// NewRecorder returns a new empty [Recorder].
func NewRecorder() *Recorder {
	return &Recorder{
		Buffers:  map[gpu.Buffer]any{},
		Textures: map[gpu.Texture]image.Image{},
		Uniforms: map[string]any{},
		Units:    map[int]gpu.Texture{},
	}
}

func (rc *Recorder) handle() uint32 {
	rc.next++
	return rc.next
}

func (rc *Recorder) UploadBuffer(target gpu.BufferTargets, data any) (gpu.Buffer, error) {
	rc.Calls = append(rc.Calls, "UploadBuffer")
	if rc.FailUpload {
		return 0, gpu.ErrUpload
	}
	switch d := data.(type) {
	case []float32:
		if target != gpu.VertexBuffer {
			return 0, fmt.Errorf("%w: float32 data for %s", gpu.ErrUpload, target)
		}
	case []uint32:
		if target != gpu.IndexBuffer {
			return 0, fmt.Errorf("%w: uint32 data for %s", gpu.ErrUpload, target)
		}
	default:
		return 0, fmt.Errorf("%w: unsupported data type %T", gpu.ErrUpload, d)
	}
	b := gpu.Buffer(rc.handle())
	rc.Buffers[b] = data
	return b, nil
}

func (rc *Recorder) UploadTexture(img image.Image) (gpu.Texture, error) {
	rc.Calls = append(rc.Calls, "UploadTexture")
	if rc.FailUpload || img == nil {
		return 0, gpu.ErrUpload
	}
	t := gpu.Texture(rc.handle())
	rc.Textures[t] = img
	return t, nil
}

func (rc *Recorder) SetUniform(name string, value any) {
	rc.Calls = append(rc.Calls, "SetUniform "+name)
	rc.Uniforms[name] = value
}

func (rc *Recorder) BindTexture(unit int, tex gpu.Texture) {
	rc.Calls = append(rc.Calls, fmt.Sprintf("BindTexture %d", unit))
	rc.Units[unit] = tex
}

func (rc *Recorder) BindAndDraw(vb *gpu.VertexBinding, mode gpu.Topologies, count int) error {
	rc.Calls = append(rc.Calls, "BindAndDraw")
	if err := vb.Validate(); err != nil {
		return err
	}
	if rc.FailDraw != nil {
		if err := rc.FailDraw(vb); err != nil {
			return err
		}
	}
	rc.Draws = append(rc.Draws, Draw{
		Binding:  vb,
		Mode:     mode,
		Count:    count,
		Uniforms: maps.Clone(rc.Uniforms),
		Units:    maps.Clone(rc.Units),
	})
	return nil
}

// Reset clears the recorded calls and draws, and the current uniform
// and texture unit state, keeping uploaded data.
func (rc *Recorder) Reset() {
	rc.Calls = nil
	rc.Draws = nil
	clear(rc.Uniforms)
	clear(rc.Units)
}

// Float32s returns the uploaded float32 data for the given buffer.
func (rc *Recorder) Float32s(b gpu.Buffer) []float32 {
	d, _ := rc.Buffers[b].([]float32)
	return d
}

// Uint32s returns the uploaded uint32 data for the given buffer.
func (rc *Recorder) Uint32s(b gpu.Buffer) []uint32 {
	d, _ := rc.Buffers[b].([]uint32)
	return d
}
