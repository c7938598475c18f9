package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/wall2048/internal/board"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(100, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return r
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestRenderSizeAndColors(t *testing.T) {
	r := newTestRenderer(t)
	if !r.Fallback() {
		t.Fatal("renderer without font paths should use the bundled face")
	}

	b := board.Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4096, 0},
		{0, 0, 0, 2048},
	}
	img := r.Render(b, OverlayNone)

	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 400 {
		t.Fatalf("image size = %v, want 400x400", img.Bounds())
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"empty cell shows background", 150, 150, BackgroundColor},
		{"tile outline", 0, 0, OutlineColor},
		{"tile 2 fill", 5, 5, TileColor(2)},
		{"overflow fill", 205, 205, OverflowColor},
		{"tile 2048 fill", 305, 305, TileColor(2048)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rgbaAt(img, tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRenderDrawsDigits(t *testing.T) {
	r := newTestRenderer(t)
	b := board.Board{{8, 0, 0, 0}}
	img := r.Render(b, OverlayNone)

	// Some pixel inside the 8 tile must carry the light text colour.
	found := false
	for y := 10; y < 90 && !found; y++ {
		for x := 10; x < 90; x++ {
			if rgbaAt(img, x, y) == LightTextColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("tile value text was not drawn")
	}
}

func TestRenderOverlays(t *testing.T) {
	r := newTestRenderer(t)
	b := board.New()

	plain := r.Render(b, OverlayNone)
	over := r.Render(b, OverlayGameOver)
	win := r.Render(b, OverlayWin)

	if bytes.Equal(plain.Pix, over.Pix) {
		t.Error("game over overlay should change the image")
	}
	if bytes.Equal(plain.Pix, win.Pix) {
		t.Error("win overlay should change the image")
	}
	if bytes.Equal(over.Pix, win.Pix) {
		t.Error("win and game over captions should differ")
	}
}

func TestTextColor(t *testing.T) {
	if TextColor(2) != DarkTextColor || TextColor(4) != DarkTextColor {
		t.Error("2 and 4 should use dark text")
	}
	if TextColor(8) != LightTextColor || TextColor(65536) != LightTextColor {
		t.Error("8 and above should use light text")
	}
}

func TestHex(t *testing.T) {
	if got := Hex(BackgroundColor); got != "#bbada0" {
		t.Errorf("Hex(background) = %q, want #bbada0", got)
	}
}

func TestLoadFontMissing(t *testing.T) {
	_, _, err := LoadFont([]string{filepath.Join(t.TempDir(), "none.ttf")})
	if !errors.Is(err, ErrFontMissing) {
		t.Errorf("LoadFont error = %v, want ErrFontMissing", err)
	}

	bogus := filepath.Join(t.TempDir(), "bogus.ttf")
	if err := os.WriteFile(bogus, []byte("not a font"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err = LoadFont([]string{bogus})
	if !errors.Is(err, ErrFontMissing) {
		t.Errorf("unparsable font error = %v, want ErrFontMissing", err)
	}

	// A bad font file must not stop the renderer from starting.
	r, err := New(50, []string{bogus})
	if err != nil {
		t.Fatalf("New() with bad font failed: %v", err)
	}
	if !r.Fallback() {
		t.Error("renderer should fall back to the bitmap face")
	}
}

func TestFontCandidatesPrependsExtra(t *testing.T) {
	got := FontCandidates([]string{"/my/font.ttf"})
	if len(got) == 0 || got[0] != "/my/font.ttf" {
		t.Errorf("FontCandidates should start with extra paths, got %v", got)
	}
}

func TestWriteFile(t *testing.T) {
	r := newTestRenderer(t)
	path := filepath.Join(t.TempDir(), "out", "board.png")

	if err := WriteFile(path, r.Render(board.New(), OverlayNone)); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output not created: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a png: %v", err)
	}
	if img.Bounds().Dx() != r.Size() {
		t.Errorf("decoded width = %d, want %d", img.Bounds().Dx(), r.Size())
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}
