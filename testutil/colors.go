package testutil

// Color is a named RGB color.
type Color struct {
	Name string
	Hex  string
	R    uint8
	G    uint8
	B    uint8
}

// RGB implements distance.RGB.
func (c Color) RGB() (r, g, b float64) {
	return float64(c.R), float64(c.G), float64(c.B)
}

// HTMLColors returns the 16 standard HTML colors.
func HTMLColors() []Color {
	return []Color{
		{"White", "#FFFFFF", 255, 255, 255},
		{"Silver", "#C0C0C0", 192, 192, 192},
		{"Gray", "#808080", 128, 128, 128},
		{"Black", "#000000", 0, 0, 0},
		{"Red", "#FF0000", 255, 0, 0},
		{"Maroon", "#800000", 128, 0, 0},
		{"Yellow", "#FFFF00", 255, 255, 0},
		{"Olive", "#808000", 128, 128, 0},
		{"Lime", "#00FF00", 0, 255, 0},
		{"Green", "#008000", 0, 128, 0},
		{"Aqua", "#00FFFF", 0, 255, 255},
		{"Teal", "#008080", 0, 128, 128},
		{"Blue", "#0000FF", 0, 0, 255},
		{"Navy", "#000080", 0, 0, 128},
		{"Fuchsia", "#FF00FF", 255, 0, 255},
		{"Purple", "#800080", 128, 0, 128},
	}
}

// ColorNames returns the names of colors in order.
func ColorNames(colors []Color) []string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.Name
	}
	return names
}
