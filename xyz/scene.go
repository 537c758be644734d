// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/base/ordmap"
	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/gpu/shape"
)

var (
	// ErrUnbalancedStack is returned by [Scene.Render] when a frame
	// leaves the matrix stack at a depth other than one.
	ErrUnbalancedStack = errors.New("xyz: matrix stack unbalanced after frame")

	// ErrNotFound is returned for a missing mesh, texture or library item.
	ErrNotFound = errors.New("xyz: not found")
)

// Scene is the root of a scene graph together with the meshes and
// textures uploaded for it, and a library of subtrees that can be
// instantiated by cloning.
type Scene struct {

	// Root is the top node; it is drawn with the identity as parent.
	Root *Node

	// DrawState is the mode and pointer state read by each frame.
	DrawState DrawState

	// Backend receives uploads and draws.
	Backend gpu.Backend

	// Meshes are the uploaded meshes by name.
	Meshes ordmap.Map[string, *Mesh]

	// Textures are the uploaded textures by name.
	Textures ordmap.Map[string, gpu.Texture]

	// Library has subtrees that can be added with [Scene.AddFromLibrary].
	Library ordmap.Map[string, *Node]

	stack MatrixStack
}

// NewScene returns a new scene with an empty root group, using the
// given backend.
func NewScene(be gpu.Backend) *Scene {
	return &Scene{Root: NewGroup("root"), Backend: be}
}

// Render draws one frame. The stack is seeded with the identity, the
// root is drawn, and the stack must return to the seed depth; otherwise
// [ErrUnbalancedStack] is returned and the stack is reset. Errors from
// the root's own geometry are logged and do not fail the frame.
func (sc *Scene) Render(ctx *Context) error {
	sc.stack.Reset()
	err := sc.Root.Draw(&sc.stack, &sc.DrawState, ctx)
	if err != nil {
		if errors.Is(err, ErrEmptyStack) {
			sc.stack.Reset()
			slog.Error("xyz.Scene.Render: frame aborted", "err", err)
			return err
		}
		slog.Error("xyz.Scene.Render", "node", sc.Root.Name, "err", err)
	}
	if d := sc.stack.Len(); d != 1 {
		sc.stack.Reset()
		err := fmt.Errorf("%w: depth %d", ErrUnbalancedStack, d)
		slog.Error("xyz.Scene.Render", "err", err)
		return err
	}
	return nil
}

// SetMesh uploads the given geometry and registers it under the given
// name, replacing any existing mesh of that name.
func (sc *Scene) SetMesh(name string, geom *Geometry) (*Mesh, error) {
	ms, err := NewMesh(sc.Backend, name, geom)
	if err != nil {
		return nil, err
	}
	sc.Meshes.Add(name, ms)
	return ms, nil
}

// SetShapeMesh generates the given shape and uploads it as a mesh.
func (sc *Scene) SetShapeMesh(name string, sh shape.Shape) (*Mesh, error) {
	geom, err := GeometryFromShape(sh)
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", name, err)
	}
	return sc.SetMesh(name, geom)
}

// MeshByName returns the mesh with the given name.
func (sc *Scene) MeshByName(name string) (*Mesh, error) {
	ms, ok := sc.Meshes.ValueByKeyTry(name)
	if !ok {
		return nil, fmt.Errorf("%w: mesh %q", ErrNotFound, name)
	}
	return ms, nil
}

// SetTexture uploads the given image and registers it under the
// given name.
func (sc *Scene) SetTexture(name string, img image.Image) (gpu.Texture, error) {
	tx, err := sc.Backend.UploadTexture(img)
	if err != nil {
		return 0, fmt.Errorf("texture %q: %w", name, err)
	}
	sc.Textures.Add(name, tx)
	return tx, nil
}

// TextureByName returns the texture with the given name. A missing
// texture returns 0, which disables the material channel it is used for.
func (sc *Scene) TextureByName(name string) (gpu.Texture, bool) {
	return sc.Textures.ValueByKeyTry(name)
}

// Nodes returns the number of nodes in the graph.
func (sc *Scene) Nodes() int {
	n := 0
	sc.Root.Walk(func(*Node, int) bool {
		n++
		return true
	})
	return n
}
