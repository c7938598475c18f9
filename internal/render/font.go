package render

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ErrFontMissing is returned when no usable TrueType/OpenType font was found.
// The renderer recovers by using the bundled bitmap face.
var ErrFontMissing = errors.New("render: no usable font found")

// systemFonts lists well-known bold sans fonts per platform, most preferred first.
var systemFonts = map[string][]string{
	"windows": {
		`C:\Windows\Fonts\arialbd.ttf`,
		`C:\Windows\Fonts\arial.ttf`,
		`C:\Windows\Fonts\segoeuib.ttf`,
	},
	"darwin": {
		"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/Library/Fonts/Arial.ttf",
	},
	"linux": {
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Bold.ttf",
		"/usr/share/fonts/noto/NotoSans-Bold.ttf",
		"/usr/share/fonts/truetype/noto/NotoSans-Bold.ttf",
	},
}

// FontCandidates returns the search list: extra paths first, then the
// platform defaults.
func FontCandidates(extra []string) []string {
	out := make([]string, 0, len(extra)+len(systemFonts[runtime.GOOS]))
	out = append(out, extra...)
	out = append(out, systemFonts[runtime.GOOS]...)
	return out
}

// LoadFont parses the first readable font in paths.
// Returns the font, the path it came from, or ErrFontMissing.
func LoadFont(paths []string) (*opentype.Font, string, error) {
	var lastErr error
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			lastErr = fmt.Errorf("render: cannot parse font %s: %w", p, err)
			continue
		}
		return f, p, nil
	}
	if lastErr != nil {
		return nil, "", errors.Join(ErrFontMissing, lastErr)
	}
	return nil, "", ErrFontMissing
}

// typeface pairs a face with an integer upscale factor. Vector faces are
// built at the requested pixel size (scale 1); the bitmap fallback is drawn
// small and scaled up.
type typeface struct {
	face  font.Face
	scale int
}

// newTypeface builds a face of roughly px pixels. f may be nil, in which
// case the bundled 7x13 bitmap face is used.
func newTypeface(f *opentype.Font, px float64) (typeface, error) {
	if f == nil {
		scale := int(px/float64(basicfont.Face7x13.Height) + 0.5)
		return typeface{face: basicfont.Face7x13, scale: max(scale, 1)}, nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    px,
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingFull,
	})
	if err != nil {
		return typeface{}, fmt.Errorf("render: cannot create face: %w", err)
	}
	return typeface{face: face, scale: 1}, nil
}
