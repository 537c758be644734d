// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/scenegraph/math32"

// PointGrid is a regular 2D grid of points, drawn as an unindexed
// point stream. It has (Rows+1)*(Cols+1) points spanning Extent in
// each direction, centered on the origin, row by row from the bottom.
type PointGrid struct {
	ShapeBase

	// number of rows between the first and last row of points
	Rows int `min:"1"`

	// number of columns between the first and last column of points
	Cols int `min:"1"`

	// total size of the grid along each axis
	Extent float32
}

// NewPointGrid returns a PointGrid with given rows and columns and an
// extent of 1.25 in normalized device coordinates.
func NewPointGrid(rows, cols int) *PointGrid {
	return &PointGrid{Rows: rows, Cols: cols, Extent: 1.25}
}

// Dim returns 2: grid points are 2D.
func (pg *PointGrid) Dim() int { return 2 }

func (pg *PointGrid) Validate() error {
	if pg.Rows < 1 || pg.Cols < 1 {
		return invalid("point grid %dx%d < 1x1", pg.Rows, pg.Cols)
	}
	return nil
}

func (pg *PointGrid) Size() (numVertex, numIndex int, hasColor bool) {
	numVertex = (pg.Rows + 1) * (pg.Cols + 1)
	return
}

// Set sets the grid points in the given vertex array, 2 floats per point.
func (pg *PointGrid) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	bb := math32.B3Empty()
	vidx := pg.VertexOffset * 2
	idx := 0
	for r := 0; r <= pg.Rows; r++ {
		for c := 0; c <= pg.Cols; c++ {
			pt := math32.Vec2((float32(c)/float32(pg.Cols)-0.5)*pg.Extent+pg.Pos.X, (float32(r)/float32(pg.Rows)-0.5)*pg.Extent+pg.Pos.Y)
			vertex.SetVector2(vidx+idx*2, pt)
			bb.ExpandByPoint(math32.Vec3(pt.X, pt.Y, 0))
			idx++
		}
	}
	pg.CBBox = bb
}
