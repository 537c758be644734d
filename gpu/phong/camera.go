// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import (
	"cogentcore.org/scenegraph/math32"
)

// Camera contains the camera view and projection matrices.
type Camera struct {
	// View transforms world into camera-centered 3D coordinates.
	View math32.Matrix4

	// Projection transforms camera coordinates into clip coordinates.
	Projection math32.Matrix4
}

// NewCamera returns a camera at the given eye position looking at
// target, with a perspective projection of the given vertical field
// of view in degrees.
func NewCamera(eye, target math32.Vector3, fov, aspect, near, far float32) *Camera {
	cm := &Camera{}
	cm.LookAt(eye, target, math32.Vec3(0, 1, 0))
	cm.Projection.SetPerspective(fov, aspect, near, far)
	return cm
}

// LookAt sets the view matrix for a camera at eye facing target,
// with the given up vector.
func (cm *Camera) LookAt(eye, target, up math32.Vector3) {
	cm.View = *math32.NewLookAt(eye, target, up)
}

// SetAspect updates the projection for a new viewport aspect ratio,
// keeping the given field of view and clip planes.
func (cm *Camera) SetAspect(fov, aspect, near, far float32) {
	cm.Projection.SetPerspective(fov, aspect, near, far)
}
