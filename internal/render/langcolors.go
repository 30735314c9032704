package render

// langColors maps language names to their display colors.
// Values follow the colors github's linguist assigns to each language.
var langColors = map[string]string{
	"Go":          "#00ADD8",
	"JavaScript":  "#f1e05a",
	"TypeScript":  "#3178c6",
	"Python":      "#3572A5",
	"Java":        "#b07219",
	"C":           "#555555",
	"C++":         "#f34b7d",
	"C#":          "#178600",
	"Ruby":        "#701516",
	"Rust":        "#dea584",
	"PHP":         "#4F5D95",
	"Swift":       "#F05138",
	"Kotlin":      "#A97BFF",
	"Dart":        "#00B4AB",
	"HTML":        "#e34c26",
	"CSS":         "#563d7c",
	"Shell":       "#89e051",
	"Lua":         "#000080",
	"Haskell":     "#5e5086",
	"Elixir":      "#6e4a7e",
	"Scala":       "#c22d40",
	"Vue":         "#41b883",
	"Dockerfile":  "#384d54",
	"Makefile":    "#427819",
	"Objective-C": "#438eff",
}

// languageColor returns the registered color for given language,
// or fallback if the language is not listed.
func languageColor(name string, fallback string) string {
	if c, ok := langColors[name]; ok {
		return c
	}
	return fallback
}
