package render

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Classic 2048 colours.
var (
	BackgroundColor = color.RGBA{187, 173, 160, 255}
	OutlineColor    = color.RGBA{197, 173, 160, 255}
	OverflowColor   = color.RGBA{205, 193, 180, 255} // Values above the table
	DarkTextColor   = colornames.Black
	LightTextColor  = colornames.White
)

var tileColors = map[int]color.RGBA{
	2:    {238, 228, 218, 255},
	4:    {237, 224, 200, 255},
	8:    {242, 177, 121, 255},
	16:   {245, 149, 99, 255},
	32:   {246, 124, 95, 255},
	64:   {246, 94, 59, 255},
	128:  {237, 207, 114, 255},
	256:  {237, 204, 97, 255},
	512:  {237, 200, 80, 255},
	1024: {237, 197, 63, 255},
	2048: {237, 194, 46, 255},
}

// TileColor returns the fill colour for a tile value.
func TileColor(value int) color.RGBA {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return OverflowColor
}

// TextColor returns the digit colour for a tile value: dark on the pale
// 2 and 4 tiles, light on everything else.
func TextColor(value int) color.RGBA {
	if value < 8 {
		return DarkTextColor
	}
	return LightTextColor
}

// Hex formats a colour as #rrggbb, the form lipgloss accepts.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
