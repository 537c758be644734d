// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"log/slog"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/gpu/phong"
	"cogentcore.org/scenegraph/math32"
)

// TracePhases are the points in drawing a node at which
// [Context.Trace] is called.
type TracePhases int32

const (
	// TraceEnter is before the node's geometry is submitted.
	TraceEnter TracePhases = iota

	// TraceExit is after all children have been drawn,
	// before the node's world matrix is popped.
	TraceExit
)

// TraceEvent describes one node visited by a traversal.
type TraceEvent struct {
	Node  *Node
	Phase TracePhases

	// Depth is the stack depth with the node's world matrix on top.
	Depth int

	// World is the node's world matrix, inherited by its children.
	World math32.Matrix4

	// Render is World times the node's Self transform.
	Render math32.Matrix4
}

// Context holds everything a traversal needs besides the matrix stack
// and draw state: the backend to draw with, the material binder, and
// the camera and viewport for the frame.
type Context struct {
	Backend gpu.Backend
	Binder  *phong.Binder

	// Camera has the view and projection matrices.
	Camera phong.Camera

	// Size is the viewport size in pixels.
	Size math32.Vector2

	// PointSize is the point size for [PointerAware] nodes.
	PointSize float32

	// Trace, if set, is called for each node visited.
	Trace func(ev TraceEvent)
}

// NewContext returns a new context for the given backend and camera,
// with a viewport of the given size.
func NewContext(be gpu.Backend, cam *phong.Camera, width, height int) *Context {
	return &Context{
		Backend:   be,
		Binder:    phong.NewBinder(be),
		Camera:    *cam,
		Size:      math32.Vec2(float32(width), float32(height)),
		PointSize: 3,
	}
}

func (ctx *Context) trace(n *Node, phase TracePhases, depth int, world, render *math32.Matrix4) {
	if ctx.Trace == nil {
		return
	}
	ctx.Trace(TraceEvent{Node: n, Phase: phase, Depth: depth, World: *world, Render: *render})
}

// Draw draws this node and its subtree. The top of the stack must be
// the parent's world matrix, and the stack is left as it was found on
// every return path. Errors drawing a child are logged and the child is
// skipped; [ErrEmptyStack] aborts the traversal and is returned.
// An error drawing this node's own sub-meshes is returned after the
// children have been drawn.
func (n *Node) Draw(st *MatrixStack, ds *DrawState, ctx *Context) error {
	top, err := st.Pop()
	if err != nil {
		return fmt.Errorf("drawing %q: %w", n.Name, err)
	}
	world := math32.Compose(&top, &n.Local)
	st.Push(top)
	st.Push(world)
	defer st.Pop()

	render := math32.Compose(&world, &n.Self)
	depth := st.Len()
	ctx.trace(n, TraceEnter, depth, &world, &render)

	var drawErr error
	if n.Capabilities.Has(Drawable) {
		drawErr = n.drawMeshes(&render, ds, ctx)
	}
	for _, c := range n.Children {
		if err := c.Draw(st, ds, ctx); err != nil {
			if errors.Is(err, ErrEmptyStack) {
				return err
			}
			slog.Error("xyz.Node.Draw", "node", c.Name, "parent", n.Name, "err", err)
		}
	}
	ctx.trace(n, TraceExit, depth, &world, &render)
	return drawErr
}

// drawMeshes binds and draws each sub-mesh with the given model matrix.
// A failing sub-mesh does not stop the others.
func (n *Node) drawMeshes(model *math32.Matrix4, ds *DrawState, ctx *Context) error {
	bd := ctx.Binder
	mode := ds.Mode.Topology()
	var errs []error
	for i, sm := range n.Meshes {
		if sm.Mesh == nil {
			errs = append(errs, fmt.Errorf("%w: sub-mesh %d of %q has no mesh", ErrMalformedGeometry, i, n.Name))
			continue
		}
		bd.BindMatrices(n.Name, model, &ctx.Camera.View, &ctx.Camera.Projection)
		if n.Capabilities.Has(PointerAware) {
			ndc := ds.Mouse.NDC(ctx.Size)
			bd.BindPointer(ctx.Size, math32.Vec3(ndc.X, ndc.Y, float32(ds.Mouse.Buttons)), ctx.PointSize)
		}
		bd.BindMaterial(sm.Material)
		vb := &sm.Mesh.Binding
		if err := ctx.Backend.BindAndDraw(vb, mode, vb.Count()); err != nil {
			errs = append(errs, fmt.Errorf("drawing %q sub-mesh %d: %w", n.Name, i, err))
		}
	}
	return errors.Join(errs...)
}
