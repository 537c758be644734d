// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ebitengine

import (
	"image/color"
	"log/slog"

	"cogentcore.org/scenegraph/base/logx"
	"cogentcore.org/scenegraph/config"
	"cogentcore.org/scenegraph/gpu/phong"
	"cogentcore.org/scenegraph/gpu/raster"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/xyz"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lucasb-eyer/go-colorful"
)

// Game is an [ebiten.Game] that renders a scene each frame with a
// [raster.Backend].
type Game struct {
	Scene   *xyz.Scene
	Context *xyz.Context
	Backend *raster.Backend
	Config  *config.Config

	// Reload delivers new configs, which are applied at the start
	// of the next update, between frames.
	Reload <-chan *config.Config

	// Animate, if set, is called once per update after input is
	// read, to move nodes for the next frame.
	Animate func(g *Game) error

	// KeepCamera keeps the context camera as set, ignoring the
	// config camera and window aspect.
	KeepCamera bool

	// Frame is the number of updates so far.
	Frame int

	background color.Color
	width      int
	height     int
}

// NewGame returns a new game drawing the given scene, which must
// have been created on the given backend.
func NewGame(sc *xyz.Scene, be *raster.Backend, cfg *config.Config) *Game {
	g := &Game{Scene: sc, Backend: be}
	g.Context = xyz.NewContext(be, &phong.Camera{}, cfg.Width, cfg.Height)
	g.width, g.height = cfg.Width, cfg.Height
	g.ApplyConfig(cfg)
	return g
}

// ApplyConfig applies the given config. Invalid values are logged
// and leave the current setting unchanged.
func (g *Game) ApplyConfig(cfg *config.Config) {
	g.Config = cfg
	if dm, err := xyz.ParseDrawMode(cfg.Mode); err == nil {
		g.Scene.DrawState.Mode = dm
	} else {
		slog.Error("ebitengine.Game.ApplyConfig", "err", err)
	}
	if lvl, err := cfg.Level(); err == nil {
		logx.UserLevel.Set(lvl)
	}
	if c, err := colorful.Hex(cfg.Background); err == nil {
		g.background = c
	} else {
		slog.Error("ebitengine.Game.ApplyConfig: background", "err", err)
		if g.background == nil {
			g.background = color.Black
		}
	}
	g.Context.PointSize = cfg.PointSize
	g.setCamera()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
}

func (g *Game) setCamera() {
	if g.KeepCamera {
		return
	}
	cc := g.Config.Camera
	aspect := float32(g.width) / float32(max(g.height, 1))
	g.Context.Camera = *phong.NewCamera(math32.Vec3(cc.Eye[0], cc.Eye[1], cc.Eye[2]),
		math32.Vec3(cc.Target[0], cc.Target[1], cc.Target[2]), cc.FOV, aspect, cc.Near, cc.Far)
}

// Update reads input into the scene draw state and animates the scene.
func (g *Game) Update() error {
	select {
	case cfg, ok := <-g.Reload:
		if ok {
			slog.Info("ebitengine.Game: config reloaded")
			g.ApplyConfig(cfg)
		}
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.readInput()
	g.Frame++
	if g.Animate != nil {
		return g.Animate(g)
	}
	return nil
}

func (g *Game) readInput() {
	ds := &g.Scene.DrawState
	x, y := ebiten.CursorPosition()
	ds.Mouse.Pos = math32.Vec2(float32(x), float32(y))
	ds.Mouse.Buttons = 0
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		ds.Mouse.Buttons |= xyz.LeftButton
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		ds.Mouse.Buttons |= xyz.RightButton
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		ds.Mouse.Buttons |= xyz.MiddleButton
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		ds.Mode = xyz.Solid
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		ds.Mode = xyz.Lines
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		ds.Mode = xyz.Points
	}
}

// Draw renders the scene and paints it onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.Backend.BeginFrame(g.width, g.height)
	g.Context.Size = math32.Vec2(float32(g.width), float32(g.height))
	if err := g.Scene.Render(g.Context); err != nil {
		slog.Debug("ebitengine.Game.Draw", "frame", g.Frame, "err", err)
	}
	Paint(screen, g.Backend.Primitives())
}

// Layout uses the full window, updating the camera aspect
// when the window size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.setCamera()
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and runs the game until the window is closed
// or escape is pressed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.Config.Width, g.Config.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
