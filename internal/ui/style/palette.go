package style

import "github.com/muesli/termenv"

// Palette holds the colors used for each semantic role.
// Values are ANSI color numbers (0-255) or "bold".
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// Dark uses bright colors for dark terminal backgrounds.
var Dark = Palette{
	Success: "10",
	Warning: "11",
	Error:   "9",
	Info:    "14",
	Muted:   "245",
	Header:  "bold",
}

// Light uses deep colors for light terminal backgrounds.
var Light = Palette{
	Success: "28",
	Warning: "130",
	Error:   "160",
	Info:    "25",
	Muted:   "243",
	Header:  "bold",
}

// DetectPalette picks Dark or Light from the terminal's reported background.
func DetectPalette() Palette {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}
