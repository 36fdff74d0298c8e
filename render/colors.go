package render

import "github.com/gdamore/tcell/v2"

// Board palette
var (
	RgbBackground = tcell.NewRGBColor(10, 12, 16)
	RgbGrid       = tcell.NewRGBColor(0, 60, 20)    // Faint green dots
	RgbBorder     = tcell.NewRGBColor(0, 160, 60)   // Board frame
	RgbSnakeHead  = tcell.NewRGBColor(0, 255, 255)  // Cyan
	RgbSnakeBody  = tcell.NewRGBColor(0, 255, 0)    // Green
	RgbFood       = tcell.NewRGBColor(255, 0, 85)   // Apple red
	RgbFoodDim    = tcell.NewRGBColor(110, 0, 40)   // Apple red at pulse minimum
	RgbMagenta    = tcell.NewRGBColor(255, 0, 255)  // Food and explosion particles
	RgbText       = tcell.NewRGBColor(200, 200, 200)
	RgbTextDim    = tcell.NewRGBColor(110, 110, 110)
	RgbTitle      = tcell.NewRGBColor(0, 255, 120)
	RgbWarning    = tcell.NewRGBColor(255, 80, 80)
	RgbHighScore  = tcell.NewRGBColor(255, 215, 0) // Gold
)

// Difficulty badge backgrounds
var (
	RgbBadgeEasy   = tcell.NewRGBColor(144, 238, 144)
	RgbBadgeMedium = tcell.NewRGBColor(255, 165, 0)
	RgbBadgeHard   = tcell.NewRGBColor(220, 50, 50)
	RgbBadgeText   = tcell.NewRGBColor(0, 0, 0)
)

// lerpColor blends a toward b by t in [0,1]
func lerpColor(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	return tcell.NewRGBColor(
		ar+int32(float64(br-ar)*t),
		ag+int32(float64(bg-ag)*t),
		ab+int32(float64(bb-ab)*t),
	)
}

// FoodPulseColor returns the food colour for a pulse level in [0,1]
func FoodPulseColor(level float64) tcell.Color {
	return lerpColor(RgbFoodDim, RgbFood, level)
}

// FadeColor darkens c toward the background as alpha drops to 0
func FadeColor(c tcell.Color, alpha float64) tcell.Color {
	return lerpColor(RgbBackground, c, alpha)
}
