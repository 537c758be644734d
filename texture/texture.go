// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture reads and prepares images for use as material
// channel maps.
package texture

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/scenegraph/base/errors"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupported is returned for data that is not a supported image format.
var ErrUnsupported = errors.New("texture: unsupported image format")

// Formats are the supported image encoding / decoding formats
type Formats int32

// The supported image encoding formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

func (f Formats) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	case WebP:
		return "webp"
	}
	return "none"
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, fmt.Errorf("%w: empty extension", ErrUnsupported)
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("%w: extension %q", ErrUnsupported, ext)
}

// sniffLen is the number of header bytes filetype needs to match.
const sniffLen = 262

// Sniff returns the image format of data starting with the given header.
func Sniff(head []byte) (Formats, error) {
	kind, err := filetype.Image(head)
	if err != nil || kind == filetype.Unknown {
		return None, fmt.Errorf("%w: unrecognized content", ErrUnsupported)
	}
	return ExtToFormat(kind.Extension)
}

// Open opens an image from the given filename.
// The format is inferred from the file contents.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// OpenFS opens an image from the given filename
// using the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(fsys fs.FS, filename string) (image.Image, Formats, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image from the given reader.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func Read(r io.Reader) (image.Image, Formats, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, None, err
	}
	f, err := Sniff(head)
	if err != nil {
		return nil, None, err
	}
	im, _, err := image.Decode(br)
	if err != nil {
		return nil, f, fmt.Errorf("decoding %s: %w", f, err)
	}
	return im, f, nil
}

// Save saves the image to the given filename,
// with the format inferred from the filename.
// png, jpeg, gif, tiff, and bmp are supported.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(im, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the image to the given writer using the given format.
// png, jpeg, gif, tiff, and bmp are supported.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	}
	return fmt.Errorf("%w: cannot write %s", ErrUnsupported, f)
}
