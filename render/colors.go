package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/scene"
)

// toColor converts a normalized scene color to a tcell color
func toColor(c scene.RGB) tcell.Color {
	return tcell.NewRGBColor(
		int32(clamp01(c.R)*255),
		int32(clamp01(c.G)*255),
		int32(clamp01(c.B)*255),
	)
}

// dimColor converts a scene color at reduced intensity, used for trails
func dimColor(c scene.RGB, factor float64) tcell.Color {
	return toColor(scene.RGB{R: c.R * factor, G: c.G * factor, B: c.B * factor})
}

// wellColor shades a curvature sample: flat space is a faint blue, deep
// wells brighten toward white-blue. depth is the (negative) grid height
func wellColor(height float64) tcell.Color {
	// Typical well values run from ~0 (flat) to several hundred negative
	// near a heavy body; compress with a crude knee
	d := -height
	if d < 0 {
		d = 0
	}
	t := d / (d + 20.0) // 0 flat, →1 deep
	return tcell.NewRGBColor(
		int32(60+140*t),
		int32(60+140*t),
		int32(160+95*t),
	)
}

// wellRune picks a sample glyph by well depth
func wellRune(height float64) rune {
	switch d := -height; {
	case d > 40:
		return '▒'
	case d > 8:
		return '+'
	default:
		return '·'
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
