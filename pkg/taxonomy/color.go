package taxonomy

// Color is the display hue of a state. The palette is fixed; anything
// outside it resolves to DefaultColor.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
)

// DefaultColor is the fallback for absent or invalid color input.
const DefaultColor = ColorGray

var palette = map[Color]bool{
	ColorRed:    true,
	ColorOrange: true,
	ColorYellow: true,
	ColorGreen:  true,
	ColorBlue:   true,
	ColorPurple: true,
	ColorGray:   true,
}

// ParseColor validates a color name against the palette, falling back to
// DefaultColor for anything it does not recognize.
func ParseColor(s string) Color {
	c := Color(s)
	if palette[c] {
		return c
	}
	return DefaultColor
}
