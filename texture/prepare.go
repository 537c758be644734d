// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"runtime"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/sync/errgroup"
)

// Options control how a decoded image is prepared for upload.
type Options struct {

	// FlipY flips the image vertically, so that row 0 is the bottom
	// row, matching texture coordinates with v up.
	FlipY bool

	// MaxSize, if positive, scales the image down so that neither
	// dimension exceeds it, keeping the aspect ratio.
	MaxSize int
}

// Prepare returns an RGBA copy of the image with the given options
// applied. The source image is not modified.
func Prepare(img image.Image, opts Options) *image.RGBA {
	rgba := clone.AsRGBA(img)
	if opts.MaxSize > 0 {
		sz := rgba.Bounds().Size()
		if sz.X > opts.MaxSize || sz.Y > opts.MaxSize {
			w, h := opts.MaxSize, opts.MaxSize
			if sz.X > sz.Y {
				h = max(1, sz.Y*opts.MaxSize/sz.X)
			} else {
				w = max(1, sz.X*opts.MaxSize/sz.Y)
			}
			rgba = transform.Resize(rgba, w, h, transform.Linear)
		}
	}
	if opts.FlipY {
		rgba = transform.FlipV(rgba)
	}
	return rgba
}

// OpenAll opens and prepares the given files in parallel, returning
// the images keyed by the same names as files. The first error
// cancels the remaining loads and is returned.
func OpenAll(ctx context.Context, fsys fs.FS, files map[string]string, opts Options) (map[string]*image.RGBA, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	var mu sync.Mutex
	out := make(map[string]*image.RGBA, len(files))
	for name, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, _, err := OpenFS(fsys, file)
			if err != nil {
				return fmt.Errorf("texture %q: %w", name, err)
			}
			rgba := Prepare(img, opts)
			mu.Lock()
			out[name] = rgba
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
