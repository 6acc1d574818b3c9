package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbGold       = tcell.NewRGBColor(255, 215, 0)

	RgbOfficeWall   = tcell.NewRGBColor(122, 162, 247) // Blue
	RgbOfficeLocked = tcell.NewRGBColor(65, 72, 104)   // Muted gray-blue

	RgbDeskFree     = tcell.NewRGBColor(158, 206, 106) // Green
	RgbDeskOccupied = tcell.NewRGBColor(224, 175, 104) // Amber

	RgbWorker      = tcell.NewRGBColor(255, 158, 100) // Orange
	RgbWorkerQueue = tcell.NewRGBColor(187, 154, 247) // Purple

	RgbProgressFill  = tcell.NewRGBColor(125, 207, 255) // Cyan
	RgbProgressEmpty = tcell.NewRGBColor(52, 59, 88)

	RgbButton         = tcell.NewRGBColor(41, 46, 66)
	RgbButtonDisabled = tcell.NewRGBColor(30, 32, 44)

	RgbToast      = tcell.NewRGBColor(247, 118, 142) // Red
	RgbDebugPanel = tcell.NewRGBColor(15, 15, 20)
)

// Fade blends fg toward bg by 1-alpha
func Fade(fg, bg tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1 {
		return fg
	}
	if alpha < 0 {
		alpha = 0
	}
	fr, fgG, fb := fg.RGB()
	br, bgG, bb := bg.RGB()
	mix := func(a, b int32) int32 {
		return b + int32(float64(a-b)*alpha)
	}
	return tcell.NewRGBColor(mix(fr, br), mix(fgG, bgG), mix(fb, bb))
}
