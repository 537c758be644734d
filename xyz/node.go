// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a hierarchical 3D scene graph. Each [Node] carries a
// local transform that is inherited by its children and a self
// transform that applies only to its own geometry. Frames are drawn by
// a depth-first traversal over a [MatrixStack], binding each sub-mesh's
// material and submitting its geometry to a [gpu.Backend].
package xyz

import (
	"slices"
	"strings"

	"cogentcore.org/scenegraph/math32"
)

// Capabilities are the roles a [Node] can play during drawing.
type Capabilities uint8

const (
	// Drawable nodes submit their sub-meshes when drawn.
	Drawable Capabilities = 1 << iota

	// GroupOnly nodes have no geometry of their own and only
	// contribute their local transform to their children.
	GroupOnly

	// PointerAware nodes also receive the viewport resolution,
	// pointer position and point size uniforms.
	PointerAware
)

// Has returns whether all of the given capabilities are set.
func (c Capabilities) Has(flag Capabilities) bool {
	return c&flag == flag
}

func (c Capabilities) String() string {
	var s []string
	if c.Has(Drawable) {
		s = append(s, "Drawable")
	}
	if c.Has(GroupOnly) {
		s = append(s, "GroupOnly")
	}
	if c.Has(PointerAware) {
		s = append(s, "PointerAware")
	}
	if len(s) == 0 {
		return "None"
	}
	return strings.Join(s, "|")
}

// Node is an element of the scene graph. Children are drawn in order
// after the node's own geometry. The graph must be acyclic; [Node.AddChild]
// does not check.
type Node struct {

	// Name identifies the node in logs and lookups.
	Name string

	// Capabilities determine what the node does when drawn.
	Capabilities Capabilities

	// Local is the transform of this node relative to its parent,
	// inherited by all children.
	Local math32.Matrix4

	// Self is applied after Local to this node's geometry only.
	Self math32.Matrix4

	// Meshes are the sub-meshes drawn for a [Drawable] node, each with
	// its own material. Meshes are shared by pointer with clones.
	Meshes []SubMesh

	// Children are drawn in order after this node.
	Children []*Node `copier:"-"`
}

// NewNode returns a new node with identity transforms and the
// given capabilities.
func NewNode(name string, caps Capabilities) *Node {
	n := &Node{Name: name, Capabilities: caps}
	n.Local.SetIdentity()
	n.Self.SetIdentity()
	return n
}

// NewGroup returns a new [GroupOnly] node.
func NewGroup(name string) *Node {
	return NewNode(name, GroupOnly)
}

// NewDrawable returns a new [Drawable] node with the given sub-meshes.
func NewDrawable(name string, meshes ...SubMesh) *Node {
	n := NewNode(name, Drawable)
	n.Meshes = meshes
	return n
}

// AddChild appends the given child, which is drawn after any
// existing children.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// RemoveChild removes the given child, returning false if it
// is not a direct child of this node.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.Children, child)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	return true
}

// ChildByName returns the first direct child with the given name, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddMesh appends a sub-mesh and marks the node [Drawable].
func (n *Node) AddMesh(sm SubMesh) *Node {
	n.Meshes = append(n.Meshes, sm)
	n.Capabilities |= Drawable
	n.Capabilities &^= GroupOnly
	return n
}

// Walk calls fn for this node and all descendants in draw order.
// If fn returns false the children of that node are skipped.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Translate translates the local transform.
func (n *Node) Translate(x, y, z float32) *Node {
	n.Local.Translate(x, y, z)
	return n
}

// TranslateSelf translates the self transform, moving this node's
// geometry without moving its children.
func (n *Node) TranslateSelf(x, y, z float32) *Node {
	n.Self.Translate(x, y, z)
	return n
}

// Rotate rotates the local transform by the given angle in degrees
// about the given axis. A zero axis leaves the transform unchanged.
func (n *Node) Rotate(deg float32, axis math32.Vector3) *Node {
	n.Local.Rotate(math32.DegToRad(deg), axis)
	return n
}

// RotateZ rotates the local transform by the given angle in degrees
// about the Z axis.
func (n *Node) RotateZ(deg float32) *Node {
	return n.Rotate(deg, math32.Vec3(0, 0, 1))
}

// RotateSelf rotates the self transform by the given angle in degrees
// about the given axis.
func (n *Node) RotateSelf(deg float32, axis math32.Vector3) *Node {
	n.Self.Rotate(math32.DegToRad(deg), axis)
	return n
}

// Scale scales the local transform, which also scales all children.
func (n *Node) Scale(x, y, z float32) *Node {
	n.Local.Scale(x, y, z)
	return n
}

// ScaleSelf scales the self transform.
func (n *Node) ScaleSelf(x, y, z float32) *Node {
	n.Self.Scale(x, y, z)
	return n
}

// SetPosition resets the local transform to a pure translation,
// discarding any rotation or scale.
func (n *Node) SetPosition(x, y, z float32) *Node {
	n.Local = *math32.NewTranslation(x, y, z)
	return n
}

// ResetTransforms sets both transforms to identity.
func (n *Node) ResetTransforms() *Node {
	n.Local.SetIdentity()
	n.Self.SetIdentity()
	return n
}

// WorldMatrix returns the product of the local transforms along the
// given path from the root down to the last node, which is the world
// matrix the traversal computes for that node. An empty path returns
// the identity.
func WorldMatrix(path ...*Node) math32.Matrix4 {
	w := *math32.Identity4()
	for _, n := range path {
		w = math32.Compose(&w, &n.Local)
	}
	return w
}

// RenderMatrix returns the world matrix of the path followed by the
// self transform of its last node, which is the model matrix its
// geometry is drawn with.
func RenderMatrix(path ...*Node) math32.Matrix4 {
	w := WorldMatrix(path...)
	if len(path) == 0 {
		return w
	}
	return math32.Compose(&w, &path[len(path)-1].Self)
}
