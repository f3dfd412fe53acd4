package chart

import "image/color"

// Palette for rendered charts, modeled on the FiveThirtyEight plotting
// style: a light gray canvas, muted blue bars, and soft horizontal grid
// lines.
var (
	// Background fills the canvas and the plot area.
	Background = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}

	// BarFill is the fill color for bars.
	BarFill = color.RGBA{R: 0x00, G: 0x8F, B: 0xD5, A: 0xFF}

	// GridLine is the color of the horizontal grid lines.
	GridLine = color.RGBA{R: 0xCB, G: 0xCB, B: 0xCB, A: 0xFF}
)
