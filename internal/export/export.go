package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

var (
	ErrUnknownFormat = errors.New("export: unknown image format")
	ErrInvalidScale  = errors.New("export: scale must be at least 1")
)

type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	GIF  Format = "gif"
	JPEG Format = "jpeg"
)

// Formats lists the supported encoders.
var Formats = []Format{PNG, BMP, TIFF, GIF, JPEG}

// Options control how a frame is written.
type Options struct {
	// Format overrides the format implied by the file extension.
	Format Format
	// Scale is the nearest-neighbour upscaling factor; 0 means 1.
	Scale int
	// Background fills transparent pixels for formats without alpha.
	Background color.Color
}

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "gif":
		return GIF, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, bg color.Color) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case GIF:
		return gif.Encode(w, toPaletted(img), nil)
	case JPEG:
		return jpeg.Encode(w, Flatten(img, bg), &jpeg.Options{Quality: 95})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Scale enlarges img by an integer factor, keeping hard pixel edges.
func Scale(img image.Image, factor int) (image.Image, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, factor)
	}
	if factor == 1 {
		return img, nil
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}

// Flatten composites img over an opaque background, black when bg is nil.
func Flatten(img image.Image, bg color.Color) *image.RGBA {
	if bg == nil {
		bg = color.Black
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	pal := make(color.Palette, 0, len(palette.Plan9)+1)
	pal = append(pal, color.Transparent)
	pal = append(pal, palette.Plan9[:255]...)
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), pal)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// SaveFile writes img to path, creating parent directories.
func SaveFile(path string, img image.Image, opts Options) error {
	f := opts.Format
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return err
		}
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	scaled, err := Scale(img, scale)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(out, scaled, f, opts.Background); err != nil {
		out.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return out.Close()
}
