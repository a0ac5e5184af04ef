package gui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
)

// ErrNoTileSize is returned when patterns are requested at size zero.
var ErrNoTileSize = errors.New("gui: tile size must be positive")

// PatternFile returns the asset name of pattern i.
func PatternFile(i int) string {
	return fmt.Sprintf("pattern_%d.png", i)
}

// LoadPatterns decodes pattern_0.png .. pattern_{n-1}.png from dir and
// scales each to size x size. Any missing or broken file is an error.
func LoadPatterns(dir string, n, size int) ([]image.Image, error) {
	if size <= 0 {
		return nil, ErrNoTileSize
	}

	out := make([]image.Image, 0, n)
	for i := range n {
		img, err := decodePNG(filepath.Join(dir, PatternFile(i)))
		if err != nil {
			return nil, fmt.Errorf("gui: pattern %d: %w", i, err)
		}
		out = append(out, scale(img, size))
	}
	return out, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// scale resamples src into a size x size RGBA image.
func scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if src.Bounds().Dx() == size && src.Bounds().Dy() == size {
		xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// GeneratePatterns draws a placeholder for every configured pattern: a disc
// in the pattern's colour with i+1 notches so patterns stay distinct even
// when colours repeat.
func GeneratePatterns(patterns []config.PatternConfig, size int) ([]image.Image, error) {
	if size <= 0 {
		return nil, ErrNoTileSize
	}

	out := make([]image.Image, len(patterns))
	for i, p := range patterns {
		c, ok := core.ParseColor(p.Color)
		if !ok {
			c = core.ColorWhite
		}
		out[i] = disc(size, RGBA(c), i+1)
	}
	return out, nil
}

func disc(size int, fill color.RGBA, notches int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.Draw(img, img.Bounds(), &image.Uniform{C: colTile}, image.Point{}, xdraw.Src)

	r := size * 3 / 10
	cx, cy := size/2, size/2
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, fill)
			}
		}
	}

	// Notches along the bottom edge
	w := max(size/20, 1)
	for i := range notches {
		x0 := size/10 + i*2*w
		notch := image.Rect(x0, size-size/10-w, x0+w, size-size/10)
		xdraw.Draw(img, notch, &image.Uniform{C: fill}, image.Point{}, xdraw.Src)
	}
	return img
}
