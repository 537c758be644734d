// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command labs runs the scene graph lab scenes in a window.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/scenegraph/base/logx"
	"cogentcore.org/scenegraph/config"
	"cogentcore.org/scenegraph/driver/ebitengine"
	"cogentcore.org/scenegraph/gpu/raster"
	"cogentcore.org/scenegraph/xyz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// options are the command line flags, which override the config
// file values when given.
type options struct {
	config string
	lab    string
	mode   string
	width  int
	height int
	dump   bool
	watch  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "labs",
		Short:        "Run the scene graph labs",
		Long:         "Run the car or gravity lab scene. Keys 1, 2 and 3 switch between solid, lines and points; escape quits.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", config.DefaultFile, "config file, created with the defaults if it does not exist")
	f.StringVar(&opts.lab, "lab", "", "lab to run: car or gravity")
	f.StringVar(&opts.mode, "mode", "", "draw mode: solid, lines or points")
	f.IntVar(&opts.width, "width", 0, "window width in pixels")
	f.IntVar(&opts.height, "height", 0, "window height in pixels")
	f.BoolVar(&opts.dump, "dump", false, "print the scene transforms as YAML and exit")
	f.BoolVar(&opts.watch, "watch", true, "reload the config file when it changes")
	return cmd
}

// apply sets the config values for the flags given on the command line.
func (o *options) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("lab") {
		cfg.Lab.Name = o.lab
	}
	if f.Changed("mode") {
		cfg.Mode = o.mode
	}
	if f.Changed("width") {
		cfg.Width = o.width
	}
	if f.Changed("height") {
		cfg.Height = o.height
	}
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.OpenOrCreate(opts.config)
	if err != nil {
		return err
	}
	opts.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	be := raster.NewBackend(cfg.Width, cfg.Height)
	lab, err := NewLab(cmd.Context(), be, cfg)
	if err != nil {
		return err
	}
	if opts.dump {
		return dump(cmd.OutOrStdout(), lab.Scene)
	}
	g := ebitengine.NewGame(lab.Scene, be, cfg)
	lab.Setup(g)
	if opts.watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		g.Reload, err = config.Watch(ctx, opts.config)
		if err != nil {
			slog.Warn("labs: not watching config", "file", opts.config, "err", err)
		}
	}
	slog.Info("labs: running", "lab", cfg.Lab.Name, "nodes", lab.Scene.Nodes(), "meshes", lab.Scene.Meshes.Len())
	return ebitengine.Run(g)
}

// dump writes the path and transforms of every node in the scene as YAML.
func dump(w io.Writer, sc *xyz.Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(xyz.Snapshot(sc.Root)); err != nil {
		return err
	}
	return enc.Close()
}
