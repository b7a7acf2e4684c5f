package tui

import tui "github.com/grindlemire/go-tui"

// palette is one color theme for the board, cycled with Shift+arrows.
type palette struct {
	name     string
	cursor   tui.Color
	given    tui.Color
	digit    tui.Color
	conflict tui.Color
	frame    tui.Color
}

var palettes = [...]palette{
	{
		name:     "blue",
		cursor:   tui.RGBColor(96, 165, 250),
		given:    tui.RGBColor(37, 99, 235),
		digit:    tui.RGBColor(226, 232, 240),
		conflict: tui.BrightRed,
		frame:    tui.RGBColor(96, 165, 250),
	},
	{
		name:     "emerald",
		cursor:   tui.RGBColor(52, 211, 153),
		given:    tui.RGBColor(5, 150, 105),
		digit:    tui.RGBColor(226, 232, 240),
		conflict: tui.BrightRed,
		frame:    tui.RGBColor(52, 211, 153),
	},
	{
		name:     "indigo",
		cursor:   tui.RGBColor(129, 140, 248),
		given:    tui.RGBColor(79, 70, 229),
		digit:    tui.RGBColor(226, 232, 240),
		conflict: tui.BrightRed,
		frame:    tui.RGBColor(129, 140, 248),
	},
	{
		name:     "red",
		cursor:   tui.RGBColor(248, 113, 113),
		given:    tui.RGBColor(220, 38, 38),
		digit:    tui.RGBColor(226, 232, 240),
		conflict: tui.BrightYellow,
		frame:    tui.RGBColor(248, 113, 113),
	},
}
