// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Topologies are the different vertex topology
type Topologies int32

const (
	PointList Topologies = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

func (tp Topologies) String() string {
	switch tp {
	case PointList:
		return "PointList"
	case LineList:
		return "LineList"
	case LineStrip:
		return "LineStrip"
	case TriangleList:
		return "TriangleList"
	case TriangleStrip:
		return "TriangleStrip"
	}
	return "Topologies(?)"
}

// Vertices returns the number of vertexes per primitive,
// or 0 for strips.
func (tp Topologies) Vertices() int {
	switch tp {
	case PointList:
		return 1
	case LineList:
		return 2
	case TriangleList:
		return 3
	}
	return 0
}
