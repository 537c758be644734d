// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// Standard vertex attribute names, looked up by the shader service.
const (
	PositionAttribute = "aVertexPosition"
	NormalAttribute   = "aNormal"
	TexCoordAttribute = "aTexCoords"
	ColorAttribute    = "aVertexColor"
)

// Attribute is one vertex attribute stream in a [VertexBinding].
type Attribute struct {

	// Name is the shader attribute name.
	Name string

	// Buffer is the uploaded [VertexBuffer] holding the data.
	Buffer Buffer

	// Type is the per-vertex type of the data.
	Type Types
}

// VertexBinding describes the uploaded buffers for one mesh:
// the attribute streams plus an optional index buffer.
// It is created once when the mesh is uploaded and is
// immutable thereafter.
type VertexBinding struct {

	// Attributes are the vertex attribute streams; the position
	// stream is always first.
	Attributes []Attribute

	// Index is the [IndexBuffer], or 0 for an unindexed
	// primitive stream.
	Index Buffer

	// NumVertex is the number of vertexes in each attribute stream.
	NumVertex int

	// NumIndex is the number of indexes, 0 if not indexed.
	NumIndex int
}

// Indexed returns true if the binding has an index buffer.
func (vb *VertexBinding) Indexed() bool {
	return vb.Index.IsValid()
}

// Count returns the number of elements to draw: the number
// of indexes if indexed, otherwise the number of vertexes.
func (vb *VertexBinding) Count() int {
	if vb.Indexed() {
		return vb.NumIndex
	}
	return vb.NumVertex
}

// Attribute returns the attribute with the given name, and false if
// there is none.
func (vb *VertexBinding) Attribute(name string) (Attribute, bool) {
	for _, at := range vb.Attributes {
		if at.Name == name {
			return at, true
		}
	}
	return Attribute{}, false
}

// Validate returns an [ErrInvalidBinding] error if any buffer
// handle is absent or the element counts are inconsistent.
func (vb *VertexBinding) Validate() error {
	if len(vb.Attributes) == 0 || vb.Attributes[0].Name != PositionAttribute {
		return fmt.Errorf("%w: first attribute must be %s", ErrInvalidBinding, PositionAttribute)
	}
	for _, at := range vb.Attributes {
		if !at.Buffer.IsValid() {
			return fmt.Errorf("%w: attribute %s has no buffer", ErrInvalidBinding, at.Name)
		}
		if at.Type.Components() == 0 {
			return fmt.Errorf("%w: attribute %s has undefined type", ErrInvalidBinding, at.Name)
		}
	}
	if vb.Indexed() != (vb.NumIndex > 0) {
		return fmt.Errorf("%w: index buffer %d with %d indexes", ErrInvalidBinding, vb.Index, vb.NumIndex)
	}
	return nil
}
