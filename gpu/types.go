// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Types is a list of supported vertex attribute data types.
type Types int32

const (
	UndefinedType Types = iota

	Uint32

	Float32
	Float32Vector2
	Float32Vector3
	Float32Vector4
)

// Bytes returns number of bytes for this type
func (tp Types) Bytes() int {
	return 4 * tp.Components()
}

// Components returns the number of scalar components in this type.
func (tp Types) Components() int {
	switch tp {
	case Uint32, Float32:
		return 1
	case Float32Vector2:
		return 2
	case Float32Vector3:
		return 3
	case Float32Vector4:
		return 4
	}
	return 0
}

// VectorType returns the float32 vector type with the given
// number of components, or [UndefinedType] if there is none.
func VectorType(n int) Types {
	switch n {
	case 1:
		return Float32
	case 2:
		return Float32Vector2
	case 3:
		return Float32Vector3
	case 4:
		return Float32Vector4
	}
	return UndefinedType
}

func (tp Types) String() string {
	switch tp {
	case Uint32:
		return "Uint32"
	case Float32:
		return "Float32"
	case Float32Vector2:
		return "Float32Vector2"
	case Float32Vector3:
		return "Float32Vector3"
	case Float32Vector4:
		return "Float32Vector4"
	}
	return "UndefinedType"
}
