package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the reel, dark arcade palette
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 18)  // Near black
	RgbScreenBg   = tcell.NewRGBColor(17, 17, 17)  // Card screen fill
	RgbBorder     = tcell.NewRGBColor(51, 51, 51)  // #333 screen border
	RgbBorderLit  = tcell.NewRGBColor(255, 255, 255) // Flash highlight
	RgbCorner     = tcell.NewRGBColor(90, 90, 110)  // Decorative corners

	RgbNeonGreen  = tcell.NewRGBColor(57, 255, 20)  // Title prompt and settled card
	RgbNeonPink   = tcell.NewRGBColor(255, 41, 117) // Needles
	RgbTextBright = tcell.NewRGBColor(240, 240, 240) // Primary text
	RgbTextDim    = tcell.NewRGBColor(150, 150, 160) // Secondary text
	RgbHint       = tcell.NewRGBColor(100, 100, 115) // Help line

	RgbButtonBg       = tcell.NewRGBColor(255, 204, 0)  // Idle button
	RgbButtonText     = tcell.NewRGBColor(0, 0, 0)      // Button label
	RgbButtonBusyBg   = tcell.NewRGBColor(80, 80, 80)   // Disabled button
	RgbButtonBusyText = tcell.NewRGBColor(200, 200, 200) // Disabled label

	RgbCategoryOn  = tcell.NewRGBColor(0, 255, 255)  // Selected category
	RgbCategoryOff = tcell.NewRGBColor(110, 110, 120) // Unselected category
)

// RGB is a plain color triple for blending
type RGB struct {
	R, G, B uint8
}

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as the reel background
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RGB{10, 10, 18}
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Lerp blends from a toward b by t in [0, 1]
func Lerp(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca, cb := TcellToRGB(a), TcellToRGB(b)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return RGBToTcell(RGB{mix(ca.R, cb.R), mix(ca.G, cb.G), mix(ca.B, cb.B)})
}
