package render

// Theme is a frozen named color palette. Every stroke and fill in a
// rendered card resolves through the active theme.
type Theme struct {
	// BgStart and BgEnd are the two stops of the diagonal background gradient.
	BgStart string
	BgEnd   string

	Border string
	Title  string
	Text   string
	Icon   string

	// Accent is also the fallback fill for bars of unregistered languages.
	Accent string
}

// DefaultThemeName is used when a requested theme is unknown.
const DefaultThemeName = "default"

var themes = map[string]Theme{
	"default": {
		BgStart: "#0d1117",
		BgEnd:   "#161b22",
		Border:  "#30363d",
		Title:   "#58a6ff",
		Text:    "#c9d1d9",
		Icon:    "#8b949e",
		Accent:  "#58a6ff",
	},
	"ocean": {
		BgStart: "#0a192f",
		BgEnd:   "#112240",
		Border:  "#233554",
		Title:   "#64ffda",
		Text:    "#ccd6f6",
		Icon:    "#8892b0",
		Accent:  "#64ffda",
	},
	"midnight": {
		BgStart: "#13111c",
		BgEnd:   "#1e1b2e",
		Border:  "#2d2b3d",
		Title:   "#bd93f9",
		Text:    "#e2e0f0",
		Icon:    "#6272a4",
		Accent:  "#ff79c6",
	},
}

// ThemeByName returns the theme registered under given name.
// Unknown names silently fall back to the default theme.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultThemeName]
}
