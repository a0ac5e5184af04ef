package gui

import (
	"image/color"

	"github.com/vovakirdan/tilestack/internal/core"
)

// palette maps terminal colours to window RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 220, G: 220, B: 220, A: 255},
	core.ColorRed:           {R: 255, G: 0, B: 0, A: 255},
	core.ColorGreen:         {R: 0, G: 255, B: 0, A: 255},
	core.ColorYellow:        {R: 205, G: 205, B: 0, A: 255},
	core.ColorBlue:          {R: 0, G: 0, B: 255, A: 255},
	core.ColorMagenta:       {R: 205, G: 0, B: 205, A: 255},
	core.ColorCyan:          {R: 0, G: 205, B: 205, A: 255},
	core.ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	core.ColorBrightRed:     {R: 255, G: 85, B: 85, A: 255},
	core.ColorBrightGreen:   {R: 85, G: 255, B: 85, A: 255},
	core.ColorBrightYellow:  {R: 255, G: 255, B: 0, A: 255},
	core.ColorBrightBlue:    {R: 92, G: 92, B: 255, A: 255},
	core.ColorBrightMagenta: {R: 255, G: 85, B: 255, A: 255},
	core.ColorBrightCyan:    {R: 85, G: 255, B: 255, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 165, B: 0, A: 255},
	core.ColorGray:          {R: 128, G: 128, B: 128, A: 255},
}

var (
	colBackground = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	colTile       = color.RGBA{R: 48, G: 48, B: 56, A: 255}
	colButton     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colButtonEdge = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colHighlight  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

// RGBA returns the window colour of a terminal colour, white when unknown.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorWhite]
}
