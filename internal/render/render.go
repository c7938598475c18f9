// Package render turns a board into a fixed-size bitmap suitable for use as
// a desktop background.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/wall2048/internal/board"
)

// Overlay selects the caption drawn over the board.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayGameOver
	OverlayWin
)

// Captions.
const (
	GameOverCaption = "Game over"
	WinCaption      = "You win!"
)

const outlineWidth = 2

// captionFill and captionStroke are half-transparent so the board stays visible.
var (
	captionFill   = color.NRGBA{0, 0, 0, 128}
	captionStroke = color.NRGBA{255, 255, 255, 128}
)

// Renderer draws boards. It is safe to reuse across frames.
type Renderer struct {
	tileSize int
	fontPath string // Empty when the bundled bitmap face is in use

	digits      typeface
	smallDigits typeface // For four and five digit tiles
	caption     typeface
}

// New creates a renderer with square tiles of tileSize pixels. The first
// loadable font from fontPaths is used; if none loads, the bundled bitmap
// face is used instead and Fallback reports true.
func New(tileSize int, fontPaths []string) (*Renderer, error) {
	r := &Renderer{tileSize: tileSize}

	f, path, err := LoadFont(fontPaths)
	if err != nil && !errors.Is(err, ErrFontMissing) {
		return nil, err
	}
	if err == nil {
		r.fontPath = path
	}

	return r, r.buildFaces(f)
}

func (r *Renderer) buildFaces(f *opentype.Font) error {
	ts := float64(r.tileSize)

	var err error
	if r.digits, err = newTypeface(f, ts*0.4); err != nil {
		return err
	}
	if r.smallDigits, err = newTypeface(f, ts*0.28); err != nil {
		return err
	}
	if r.caption, err = newTypeface(f, ts*0.6); err != nil {
		return err
	}
	return nil
}

// Fallback reports whether the bundled bitmap face is being used.
func (r *Renderer) Fallback() bool {
	return r.fontPath == ""
}

// FontPath returns the file the vector font was loaded from.
func (r *Renderer) FontPath() string {
	return r.fontPath
}

// Size returns the width and height of rendered images in pixels.
func (r *Renderer) Size() int {
	return r.tileSize * board.Size
}

// Render draws the board and the requested overlay.
func (r *Renderer) Render(b board.Board, ov Overlay) *image.RGBA {
	size := r.Size()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)

	for y := range board.Size {
		for x := range board.Size {
			value := b[y][x]
			if value == 0 {
				continue
			}

			cell := image.Rect(x*r.tileSize, y*r.tileSize, (x+1)*r.tileSize, (y+1)*r.tileSize)
			draw.Draw(img, cell, image.NewUniform(OutlineColor), image.Point{}, draw.Src)
			draw.Draw(img, cell.Inset(outlineWidth), image.NewUniform(TileColor(value)), image.Point{}, draw.Src)

			text := strconv.Itoa(value)
			tf := r.digits
			if len(text) >= 4 {
				tf = r.smallDigits
			}
			drawCentered(img, cell, text, tf, TextColor(value), nil)
		}
	}

	switch ov {
	case OverlayGameOver:
		drawCentered(img, img.Bounds(), GameOverCaption, r.caption, captionFill, captionStroke)
	case OverlayWin:
		drawCentered(img, img.Bounds(), WinCaption, r.caption, captionFill, captionStroke)
	}

	return img
}

// drawCentered draws text centred in area. A non-nil stroke draws an outline
// around the glyphs first.
func drawCentered(dst draw.Image, area image.Rectangle, text string, tf typeface, fill, stroke color.Color) {
	metrics := tf.face.Metrics()
	w := font.MeasureString(tf.face, text).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()

	pad := 0
	if stroke != nil {
		pad = max(1, outlineWidth/tf.scale)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w+2*pad, h+2*pad))
	baseline := pad + metrics.Ascent.Ceil()

	if stroke != nil {
		for dy := -pad; dy <= pad; dy++ {
			for dx := -pad; dx <= pad; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				drawString(canvas, tf.face, text, stroke, pad+dx, baseline+dy)
			}
		}
	}
	drawString(canvas, tf.face, text, fill, pad, baseline)

	sw, sh := canvas.Bounds().Dx()*tf.scale, canvas.Bounds().Dy()*tf.scale
	x := area.Min.X + (area.Dx()-sw)/2
	y := area.Min.Y + (area.Dy()-sh)/2
	target := image.Rect(x, y, x+sw, y+sh)

	if tf.scale == 1 {
		draw.Draw(dst, target, canvas, image.Point{}, draw.Over)
		return
	}
	draw.NearestNeighbor.Scale(dst, target, canvas, canvas.Bounds(), draw.Over, nil)
}

func drawString(dst draw.Image, face font.Face, text string, c color.Color, x, baseline int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: cannot encode png: %w", err)
	}
	return nil
}

// WriteFile writes img as a PNG at path. The file is written next to its
// destination and renamed into place so readers never see a partial image.
func WriteFile(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".wall2048-*.png")
	if err != nil {
		return fmt.Errorf("render: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("render: cannot close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("render: cannot move image into place: %w", err)
	}
	return nil
}
