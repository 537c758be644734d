// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import (
	"image/color"

	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/math32"
)

// Material holds the colors and optional texture maps for one
// sub-mesh. A zero [gpu.Texture] map means the channel is disabled.
type Material struct {

	// Ambient is the color reflected from ambient light (Ka).
	Ambient math32.Vector3

	// Diffuse is the main surface color (Kd).
	Diffuse math32.Vector3

	// Specular is the color of specular highlights (Ks).
	Specular math32.Vector3

	// Shininess is the specular exponent: 0 is a very broad
	// reflection, and higher values (typically up to 128) give
	// a smaller, more focal highlight.
	Shininess float32

	// AmbientMap, DiffuseMap and SpecularMap are optional textures
	// for each channel.
	AmbientMap  gpu.Texture
	DiffuseMap  gpu.Texture
	SpecularMap gpu.Texture
}

// DefaultMaterial returns a light gray material with no maps.
func DefaultMaterial() *Material {
	return &Material{
		Ambient:   math32.Vector3Scalar(0.2),
		Diffuse:   math32.Vector3Scalar(0.8),
		Specular:  math32.Vector3Scalar(0.1),
		Shininess: 30,
	}
}

// NewMaterial returns a new material with the given color used for
// both ambient and diffuse, scaled by 0.25 for ambient, and the given
// shininess and specular brightness.
func NewMaterial(clr color.Color, shininess, specular float32) *Material {
	mt := &Material{}
	mt.SetColor(clr)
	mt.Specular = math32.Vector3Scalar(specular)
	mt.Shininess = shininess
	return mt
}

// SetColor sets the diffuse color, and the ambient color to a
// darker version of it, from a standard Go color.
func (mt *Material) SetColor(clr color.Color) *Material {
	mt.Diffuse = colorVector3(clr)
	mt.Ambient = mt.Diffuse.MulScalar(0.25)
	return mt
}

// HasMaps returns whether any of the channel maps is set.
func (mt *Material) HasMaps() bool {
	return mt.AmbientMap.IsValid() || mt.DiffuseMap.IsValid() || mt.SpecularMap.IsValid()
}

func colorVector3(clr color.Color) math32.Vector3 {
	r, g, b, _ := clr.RGBA()
	return math32.Vec3(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff)
}
