// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ebitengine runs an [xyz.Scene] in an ebiten window, painting
// the primitives of a [raster.Backend] and feeding pointer and key
// input into the scene [xyz.DrawState].
package ebitengine

import (
	"image"
	"image/color"
	"math"

	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/gpu/raster"
	"cogentcore.org/scenegraph/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the 1x1 center of a 3x3 white image, made on first use.
// Use whiteSubImage at DrawTriangles instead of the full image in order to avoid bleeding edges.
var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Paint draws the given primitives onto dst far to near.
// Runs of triangles are drawn with a single DrawTriangles call.
func Paint(dst *ebiten.Image, prims []raster.Primitive) {
	raster.SortPrimitives(prims)
	var vs []ebiten.Vertex
	var is []uint16
	flushTris := func() {
		if len(is) == 0 {
			return
		}
		op := &ebiten.DrawTrianglesOptions{}
		op.FillRule = ebiten.FillAll
		dst.DrawTriangles(vs, is, white(), op)
		vs = vs[:0]
		is = is[:0]
	}
	for i := range prims {
		pr := &prims[i]
		switch pr.Mode {
		case gpu.TriangleList:
			if len(vs)+3 > math.MaxUint16 {
				flushTris()
			}
			for j := range 3 {
				is = append(is, uint16(len(vs)))
				vs = append(vs, ebitenVertex(&pr.Verts[j]))
			}
		case gpu.LineList:
			flushTris()
			a, b := pr.Verts[0], pr.Verts[1]
			vector.StrokeLine(dst, a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y, 1, rgba(a.Color), true)
		case gpu.PointList:
			flushTris()
			p := pr.Verts[0]
			vector.DrawFilledRect(dst, p.Pos.X-pr.Size/2, p.Pos.Y-pr.Size/2, pr.Size, pr.Size, rgba(p.Color), false)
		}
	}
	flushTris()
}

func ebitenVertex(v *raster.Vertex) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   v.Pos.X,
		DstY:   v.Pos.Y,
		SrcX:   1,
		SrcY:   1,
		ColorR: v.Color.X,
		ColorG: v.Color.Y,
		ColorB: v.Color.Z,
		ColorA: v.Color.W,
	}
}

func rgba(c math32.Vector4) color.RGBA {
	return color.RGBA{uint8(c.X * 255), uint8(c.Y * 255), uint8(c.Z * 255), uint8(c.W * 255)}
}
