// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/config"
	"cogentcore.org/scenegraph/driver/ebitengine"
	"cogentcore.org/scenegraph/gpu"
	"cogentcore.org/scenegraph/gpu/phong"
	"cogentcore.org/scenegraph/gpu/shape"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/texture"
	"cogentcore.org/scenegraph/xyz"
	"github.com/lucasb-eyer/go-colorful"
)

// Lab is a lab scene along with the nodes it animates.
type Lab struct {
	Scene  *xyz.Scene
	Config *config.Config

	// Turntable holds the cars and turns slowly about Y.
	Turntable *xyz.Node

	// Wheels are the wheel axle groups of all cars, spun about Z.
	Wheels []*xyz.Node

	// Patch is the pointer-aware point grid of the gravity lab.
	Patch *xyz.Node
}

// NewLab builds the lab scene named in the config on the given backend.
func NewLab(ctx context.Context, be gpu.Backend, cfg *config.Config) (*Lab, error) {
	lb := &Lab{Scene: xyz.NewScene(be), Config: cfg}
	var err error
	switch cfg.Lab.Name {
	case "car":
		lb.loadTextures(ctx)
		err = lb.buildCar()
	case "gravity":
		err = lb.buildGravity()
	default:
		err = fmt.Errorf("unknown lab %q", cfg.Lab.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s lab: %w", cfg.Lab.Name, err)
	}
	return lb, nil
}

// loadTextures uploads the configured textures. Textures that fail to
// load are logged, leaving the material channels that use them disabled.
func (lb *Lab) loadTextures(ctx context.Context) {
	cfg := lb.Config
	if len(cfg.Textures) == 0 {
		return
	}
	dir := errors.Log1(config.ExpandPath(cfg.TextureDir))
	if dir == "" {
		dir = "."
	}
	imgs, err := texture.OpenAll(ctx, os.DirFS(dir), cfg.Textures, texture.Options{FlipY: cfg.FlipTextures, MaxSize: cfg.MaxTextureSize})
	if err != nil {
		slog.Error("labs: loading textures", "dir", dir, "err", err)
	}
	for name, img := range imgs {
		if _, err := lb.Scene.SetTexture(name, img); err != nil {
			slog.Error("labs: uploading texture", "texture", name, "err", err)
		}
	}
}

// paint returns the car paint material from the configured color.
func (lb *Lab) paint() *phong.Material {
	var clr color.Color = color.RGBA{0xaa, 0x00, 0xff, 0xff}
	if c, err := colorful.Hex(lb.Config.Lab.Color); err == nil {
		clr = c
	} else {
		slog.Warn("labs: car color", "color", lb.Config.Lab.Color, "err", err)
	}
	return phong.NewMaterial(clr, 60, 0.5)
}

// buildCar makes two cars from a library car on a turntable over a floor.
func (lb *Lab) buildCar() error {
	sc := lb.Scene
	lc := lb.Config.Lab
	body, err := shape.NewRoundedBoxSDF(math32.Vec3(4, 1, 2), 0.2, lc.SDFCells)
	if err != nil {
		return err
	}
	exhaust, err := shape.NewCapsuleSDF(0.6, 0.1, lc.SDFCells)
	if err != nil {
		return err
	}
	meshes := []struct {
		name string
		sh   shape.Shape
	}{
		{"body", body},
		{"exhaust", exhaust},
		{"cabin", shape.NewBox(2, 0.8, 1.6)},
		{"tire", shape.NewCylinder(0.5, 0.5, 0.4, lc.RadialSteps, lc.LengthSteps)},
		{"antenna", shape.NewTetrahedron()},
		{"floor", shape.NewPlane(40, 40)},
	}
	ms := map[string]*xyz.Mesh{}
	for _, m := range meshes {
		mesh, err := sc.SetShapeMesh(m.name, m.sh)
		if err != nil {
			return err
		}
		ms[m.name] = mesh
	}

	rubber := phong.NewMaterial(color.RGBA{40, 40, 40, 255}, 5, 0.05)
	if tx, ok := sc.TextureByName("tread"); ok {
		rubber.DiffuseMap = tx
	}
	glass := phong.NewMaterial(color.RGBA{150, 200, 230, 255}, 100, 0.8)
	chrome := phong.NewMaterial(color.RGBA{200, 200, 200, 255}, 120, 1)
	ground := phong.NewMaterial(color.RGBA{90, 110, 80, 255}, 2, 0)
	if tx, ok := sc.TextureByName("ground"); ok {
		ground.DiffuseMap = tx
	}

	car := sc.NewInLibrary("car")
	car.AddChild(xyz.NewDrawable("body", xyz.SubMesh{Mesh: ms["body"], Material: lb.paint()}).Translate(0, 0.9, 0)).
		AddChild(xyz.NewDrawable("cabin", xyz.SubMesh{Mesh: ms["cabin"], Material: glass}).Translate(-0.3, 1.7, 0)).
		AddChild(xyz.NewDrawable("antenna", xyz.SubMesh{Mesh: ms["antenna"]}).Translate(1, 2.2, 0).ScaleSelf(0.2, 0.4, 0.2)).
		AddChild(xyz.NewDrawable("exhaust", xyz.SubMesh{Mesh: ms["exhaust"], Material: chrome}).Translate(-2.1, 0.5, 0.6).RotateZ(90))
	corners := []struct {
		name string
		x, z float32
	}{
		{"wheel-fl", 1.3, 1.1}, {"wheel-fr", 1.3, -1.1}, {"wheel-rl", -1.3, 1.1}, {"wheel-rr", -1.3, -1.1},
	}
	for _, cn := range corners {
		axle := xyz.NewGroup(cn.name).Translate(cn.x, 0.5, cn.z)
		// the cylinder runs along Y; turn it onto the Z axle
		axle.AddChild(xyz.NewDrawable("tire", xyz.SubMesh{Mesh: ms["tire"], Material: rubber}).Rotate(90, math32.Vec3(1, 0, 0)))
		car.AddChild(axle)
	}

	sc.Root.AddChild(xyz.NewDrawable("floor", xyz.SubMesh{Mesh: ms["floor"], Material: ground}))
	lb.Turntable = xyz.NewGroup("turntable")
	sc.Root.AddChild(lb.Turntable)
	for i, z := range []float32{-2.5, 2.5} {
		c, err := sc.AddFromLibrary("car", lb.Turntable)
		if err != nil {
			return err
		}
		c.Name = fmt.Sprintf("car%d", i+1)
		c.Translate(0, 0, z)
	}
	sc.Root.Walk(func(n *xyz.Node, depth int) bool {
		if strings.HasPrefix(n.Name, "wheel-") {
			lb.Wheels = append(lb.Wheels, n)
		}
		return true
	})
	return nil
}

// buildGravity makes the pointer-aware point grid, drawn directly in
// normalized device coordinates.
func (lb *Lab) buildGravity() error {
	sc := lb.Scene
	lc := lb.Config.Lab
	grid, err := sc.SetShapeMesh("grid", shape.NewPointGrid(lc.GridRows, lc.GridCols))
	if err != nil {
		return err
	}
	lb.Patch = xyz.NewNode("patch", xyz.Drawable|xyz.PointerAware)
	lb.Patch.AddMesh(xyz.SubMesh{Mesh: grid, Material: phong.NewMaterial(color.White, 1, 0)})
	sc.Root.AddChild(lb.Patch)
	sc.DrawState.Mode = xyz.Points
	return nil
}

// Setup configures the game for this lab and sets it to animate the lab.
func (lb *Lab) Setup(g *ebitengine.Game) {
	if lb.Patch != nil {
		g.KeepCamera = true
		g.Context.Camera.View.SetIdentity()
		g.Context.Camera.Projection.SetIdentity()
		g.Scene.DrawState.Mode = xyz.Points
	}
	g.Animate = lb.Animate
}

// Animate advances the lab by one frame.
func (lb *Lab) Animate(g *ebitengine.Game) error {
	lb.Step()
	return nil
}

// Step spins the wheels and turns the turntable by one frame.
func (lb *Lab) Step() {
	speed := lb.Config.Lab.WheelSpeed
	for _, w := range lb.Wheels {
		w.RotateZ(-speed)
	}
	if lb.Turntable != nil {
		lb.Turntable.Rotate(speed/10, math32.Vec3(0, 1, 0))
	}
}
