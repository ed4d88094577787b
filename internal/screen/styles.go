package screen

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles for one color scheme. A zero style renders
// text unchanged, which is how plain (no-color) mode works.
type Theme struct {
	Name string

	Header    lipgloss.Style
	Label     lipgloss.Style
	Keyword   lipgloss.Style
	Prompt    lipgloss.Style
	Good      lipgloss.Style
	Bad       lipgloss.Style
	Warn      lipgloss.Style
	Dim       lipgloss.Style
	StatusBar lipgloss.Style
	Key       lipgloss.Style
	Hint      lipgloss.Style

	BorderColor lipgloss.TerminalColor

	// Progress bar gradient endpoints; empty means a textual counter.
	GradFrom string
	GradTo   string
}

// ThemeNames lists the accepted --theme values.
func ThemeNames() []string {
	return []string{"default", "high-contrast", "solarized"}
}

// NewTheme resolves a theme by name. Plain drops all styling, for
// non-TTY output and NO_COLOR runs.
func NewTheme(name string, plain bool) (Theme, error) {
	if plain {
		return Theme{Name: name, BorderColor: lipgloss.NoColor{}}, nil
	}
	switch name {
	case "", "default":
		return defaultTheme(), nil
	case "high-contrast":
		return highContrastTheme(), nil
	case "solarized":
		return solarizedTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (available: default, high-contrast, solarized)", name)
	}
}

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite   = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim     = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed     = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow  = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorMagenta = lipgloss.AdaptiveColor{Light: "127", Dark: "213"}
	colorCyan    = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
	colorBlue    = lipgloss.AdaptiveColor{Light: "25", Dark: "33"}
)

func defaultTheme() Theme {
	return Theme{
		Name:      "default",
		Header:    lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorBlue),
		Label:     lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Keyword:   lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(colorMagenta),
		Good:      lipgloss.NewStyle().Foreground(colorGreen),
		Bad:       lipgloss.NewStyle().Foreground(colorRed),
		Warn:      lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(colorDim),
		StatusBar: lipgloss.NewStyle().Foreground(colorWhite).Background(lipgloss.AdaptiveColor{Light: "254", Dark: "236"}),
		Key:       lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		Hint:      lipgloss.NewStyle().Foreground(colorDim),

		BorderColor: colorCyan,
		GradFrom:    "#5A56E0",
		GradTo:      "#EE6FF8",
	}
}

func highContrastTheme() Theme {
	white := lipgloss.AdaptiveColor{Light: "0", Dark: "231"}
	return Theme{
		Name:      "high-contrast",
		Header:    lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("0")),
		Label:     lipgloss.NewStyle().Bold(true).Underline(true).Foreground(white),
		Keyword:   lipgloss.NewStyle().Bold(true).Reverse(true),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(white),
		Good:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		Bad:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Warn:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StatusBar: lipgloss.NewStyle().Bold(true).Foreground(white),
		Key:       lipgloss.NewStyle().Bold(true).Underline(true).Foreground(white),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		BorderColor: white,
		GradFrom:    "#FFFFFF",
		GradTo:      "#FFFF00",
	}
}

func solarizedTheme() Theme {
	var (
		base1   = lipgloss.Color("#93a1a1")
		base01  = lipgloss.Color("#586e75")
		yellow  = lipgloss.Color("#b58900")
		red     = lipgloss.Color("#dc322f")
		magenta = lipgloss.Color("#d33682")
		blue    = lipgloss.Color("#268bd2")
		cyan    = lipgloss.Color("#2aa198")
		green   = lipgloss.Color("#859900")
	)
	return Theme{
		Name:      "solarized",
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fdf6e3")).Background(blue),
		Label:     lipgloss.NewStyle().Bold(true).Foreground(cyan),
		Keyword:   lipgloss.NewStyle().Bold(true).Foreground(yellow),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(magenta),
		Good:      lipgloss.NewStyle().Foreground(green),
		Bad:       lipgloss.NewStyle().Foreground(red),
		Warn:      lipgloss.NewStyle().Bold(true).Foreground(yellow),
		Dim:       lipgloss.NewStyle().Foreground(base01),
		StatusBar: lipgloss.NewStyle().Foreground(base1).Background(lipgloss.Color("#073642")),
		Key:       lipgloss.NewStyle().Bold(true).Foreground(base1),
		Hint:      lipgloss.NewStyle().Foreground(base01),

		BorderColor: blue,
		GradFrom:    "#268bd2",
		GradTo:      "#2aa198",
	}
}
