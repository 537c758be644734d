// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phong binds Blinn-Phong material and transform uniforms
// for a [gpu.Backend] program, one sub-mesh at a time.
package phong

import (
	"log/slog"

	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/math32"
)

// Texture units used for the material channel maps.
const (
	AmbientUnit  = 0
	DiffuseUnit  = 1
	SpecularUnit = 2
)

// UniformNames are the names of the uniforms set by a [Binder].
// The defaults match the shaders used by the lab scenes; programs
// with other names can use their own.
type UniformNames struct {
	Ambient   string
	Diffuse   string
	Specular  string
	Shininess string

	// EnableAmbient etc are the 1/0 int flags for each map channel.
	EnableAmbient  string
	EnableDiffuse  string
	EnableSpecular string

	// AmbientMap etc are the sampler uniforms, set to the texture unit.
	AmbientMap  string
	DiffuseMap  string
	SpecularMap string

	Model      string
	ModelView  string
	Projection string
	Normal     string

	Resolution string
	Mouse      string
	PointSize  string
}

// DefaultUniformNames returns the standard uniform names.
func DefaultUniformNames() UniformNames {
	return UniformNames{
		Ambient:        "mat_ambient",
		Diffuse:        "mat_diffuse",
		Specular:       "mat_specular",
		Shininess:      "mat_shininess",
		EnableAmbient:  "enableMapKa",
		EnableDiffuse:  "enableMapKd",
		EnableSpecular: "enableMapKs",
		AmbientMap:     "textureKa",
		DiffuseMap:     "textureKd",
		SpecularMap:    "textureKs",
		Model:          "uModelMatrix",
		ModelView:      "uModelViewMatrix",
		Projection:     "uProjectionMatrix",
		Normal:         "uNormalMatrix",
		Resolution:     "uResolution",
		Mouse:          "uMouse",
		PointSize:      "uPointSize",
	}
}

// Binder sets material and matrix uniforms on a [gpu.Backend].
// Every bind call sets the full set of uniforms it owns, so no
// state from a previous sub-mesh can leak into the next draw.
type Binder struct {

	// Backend receives the uniform and texture calls.
	Backend gpu.Backend

	// Names are the uniform names to set.
	Names UniformNames

	// singular records the keys for which a singular model-view
	// matrix has already been logged.
	singular map[string]bool
}

// NewBinder returns a new [Binder] for the given backend
// using [DefaultUniformNames].
func NewBinder(be gpu.Backend) *Binder {
	return &Binder{Backend: be, Names: DefaultUniformNames(), singular: map[string]bool{}}
}

// BindMaterial sets all material uniforms for the given material.
// A nil material binds [DefaultMaterial]. A channel without a valid
// texture is disabled; otherwise its texture is bound on the channel
// unit and the sampler uniform is set to that unit.
func (bd *Binder) BindMaterial(mat *Material) {
	if mat == nil {
		mat = DefaultMaterial()
	}
	be := bd.Backend
	nm := &bd.Names
	be.SetUniform(nm.Ambient, math32.Vector4FromVector3(mat.Ambient, 1))
	be.SetUniform(nm.Diffuse, math32.Vector4FromVector3(mat.Diffuse, 1))
	be.SetUniform(nm.Specular, math32.Vector4FromVector3(mat.Specular, 1))
	be.SetUniform(nm.Shininess, mat.Shininess)
	bd.bindMap(nm.EnableAmbient, nm.AmbientMap, AmbientUnit, mat.AmbientMap)
	bd.bindMap(nm.EnableDiffuse, nm.DiffuseMap, DiffuseUnit, mat.DiffuseMap)
	bd.bindMap(nm.EnableSpecular, nm.SpecularMap, SpecularUnit, mat.SpecularMap)
}

func (bd *Binder) bindMap(enable, sampler string, unit int, tex gpu.Texture) {
	if !tex.IsValid() {
		bd.Backend.SetUniform(enable, int32(0))
		return
	}
	bd.Backend.SetUniform(enable, int32(1))
	bd.Backend.BindTexture(unit, tex)
	bd.Backend.SetUniform(sampler, int32(unit))
}

// BindMatrices sets the model, model-view, projection and normal
// matrix uniforms. The normal matrix is the inverse transpose of
// the model-view matrix; if that is singular, identity is used and
// the condition is logged once for the given key (typically the
// node name), and drawing continues.
func (bd *Binder) BindMatrices(key string, model, view, projection *math32.Matrix4) {
	mv := view.Mul(model)
	nrm, err := mv.InverseTranspose()
	if err != nil && !bd.singular[key] {
		if bd.singular == nil {
			bd.singular = map[string]bool{}
		}
		bd.singular[key] = true
		slog.Warn("phong.Binder.BindMatrices: using identity normal matrix", "node", key, "err", err)
	}
	be := bd.Backend
	be.SetUniform(bd.Names.Model, *model)
	be.SetUniform(bd.Names.ModelView, *mv)
	be.SetUniform(bd.Names.Projection, *projection)
	be.SetUniform(bd.Names.Normal, *nrm)
}

// BindPointer sets the viewport resolution and pointer uniforms used
// by pointer-aware programs. mouse holds the pointer position in
// normalized device coordinates, and the button flags in Z.
func (bd *Binder) BindPointer(resolution math32.Vector2, mouse math32.Vector3, pointSize float32) {
	be := bd.Backend
	be.SetUniform(bd.Names.Resolution, resolution)
	be.SetUniform(bd.Names.Mouse, mouse)
	be.SetUniform(bd.Names.PointSize, pointSize)
}
