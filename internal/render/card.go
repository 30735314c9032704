package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/statscard/statscard/internal/app"
)

// Card layout constants. All block coordinates below are relative to the
// content origin, which is offset (25,25) from the canvas origin.
const (
	cardWidth  = 450
	cardHeight = 195

	contentOffset = 25
	dividerY      = 35

	statGridY     = 60
	statColWidth  = 110
	statRowHeight = 55

	langPanelX    = 220
	langPanelY    = 55
	langRowHeight = 28
	langBarWidth  = 120
	langBarMin    = 10

	maxLangRows = 4
)

// Card renders aggregated stats as a themed svg document.
// It is a pure function: identical inputs yield byte-identical output.
// Malformed stats are the caller's responsibility; Card never fails.
func Card(stats app.Stats, theme Theme, animate bool) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" fill="none" role="img">`,
		cardWidth, cardHeight, cardWidth, cardHeight,
	)
	b.WriteString("\n")

	fmt.Fprintf(&b,
		`<defs><linearGradient id="bg" x1="0" y1="0" x2="1" y2="1"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/></linearGradient></defs>`,
		theme.BgStart, theme.BgEnd,
	)
	b.WriteString("\n")

	writeStyle(&b, theme, animate)

	fmt.Fprintf(&b,
		`<rect x="0.5" y="0.5" width="%d" height="%d" rx="6" fill="url(#bg)" stroke="%s"/>`,
		cardWidth-1, cardHeight-1, theme.Border,
	)
	b.WriteString("\n")

	fmt.Fprintf(&b, `<g transform="translate(%d, %d)">`, contentOffset, contentOffset)
	b.WriteString("\n")

	fmt.Fprintf(&b, `<text x="0" y="15" class="title">@%s</text>`, escape(stats.Username))
	b.WriteString("\n")
	fmt.Fprintf(&b,
		`<line x1="0" y1="%d" x2="%d" y2="%d" stroke="%s"/>`,
		dividerY, cardWidth-75, dividerY, theme.Border,
	)
	b.WriteString("\n")

	writeStatGrid(&b, stats, theme, animate)
	writeLangPanel(&b, stats.TopLanguages, theme, animate)

	b.WriteString("</g>\n</svg>\n")

	return b.String()
}

func writeStyle(b *strings.Builder, theme Theme, animate bool) {
	b.WriteString("<style>\n")
	fmt.Fprintf(b, ".title { font: 600 18px 'Segoe UI', Ubuntu, sans-serif; fill: %s; }\n", theme.Title)
	fmt.Fprintf(b, ".value { font: 600 14px 'Segoe UI', Ubuntu, sans-serif; fill: %s; }\n", theme.Text)
	fmt.Fprintf(b, ".label { font: 400 12px 'Segoe UI', Ubuntu, sans-serif; fill: %s; }\n", theme.Icon)
	fmt.Fprintf(b, ".lang { font: 400 11px 'Segoe UI', Ubuntu, sans-serif; fill: %s; }\n", theme.Text)
	if animate {
		b.WriteString(".stat { opacity: 0; animation: fadein 0.8s ease forwards; }\n")
		b.WriteString(".bar { transform: scaleX(0); transform-origin: left; animation: grow 1s ease forwards; }\n")
		b.WriteString("@keyframes fadein { to { opacity: 1; } }\n")
		b.WriteString("@keyframes grow { to { transform: scaleX(1); } }\n")
	}
	b.WriteString("</style>\n")
}

// writeStatGrid emits the 2x2 grid of stat blocks. Block order, and with it
// the animation stagger, is fixed regardless of values.
func writeStatGrid(b *strings.Builder, stats app.Stats, theme Theme, animate bool) {
	blocks := []struct {
		label string
		value int
		icon  string
		x, y  int
	}{
		{"Stars", stats.TotalStars, iconStar, 0, 0},
		{"Commits", stats.TotalCommits, iconCommit, statColWidth, 0},
		{"Repos", stats.TotalRepos, iconRepo, 0, statRowHeight},
		{"Forks", stats.TotalForks, iconFork, statColWidth, statRowHeight},
	}

	fmt.Fprintf(b, `<g transform="translate(0, %d)">`, statGridY)
	b.WriteString("\n")
	for i, blk := range blocks {
		if animate {
			fmt.Fprintf(b,
				`<g transform="translate(%d, %d)" class="stat" style="animation-delay: %dms">`,
				blk.x, blk.y, (i+1)*100,
			)
		} else {
			fmt.Fprintf(b, `<g transform="translate(%d, %d)" class="stat">`, blk.x, blk.y)
		}
		b.WriteString("\n")
		fmt.Fprintf(b, `<g transform="scale(1.2)"><path d="%s" fill="%s"/></g>`, blk.icon, theme.Icon)
		b.WriteString("\n")
		fmt.Fprintf(b, `<text x="28" y="12" class="value">%s</text>`, groupDigits(blk.value))
		b.WriteString("\n")
		fmt.Fprintf(b, `<text x="0" y="32" class="label">%s</text>`, blk.label)
		b.WriteString("\n</g>\n")
	}
	b.WriteString("</g>\n")
}

// writeLangPanel emits up to the first maxLangRows entries of the already
// rank-sorted language breakdown.
func writeLangPanel(b *strings.Builder, langs []app.LanguageStat, theme Theme, animate bool) {
	if len(langs) > maxLangRows {
		langs = langs[:maxLangRows]
	}

	fmt.Fprintf(b, `<g transform="translate(%d, %d)">`, langPanelX, langPanelY)
	b.WriteString("\n")
	for i, lang := range langs {
		fmt.Fprintf(b, `<g transform="translate(0, %d)">`, i*langRowHeight)
		b.WriteString("\n")
		fmt.Fprintf(b, `<text x="0" y="10" class="lang">%s</text>`, escape(lang.Name))
		b.WriteString("\n")
		fmt.Fprintf(b,
			`<rect x="0" y="16" width="%d" height="8" rx="4" fill="%s" fill-opacity="0.4"/>`,
			langBarWidth, theme.Border,
		)
		b.WriteString("\n")

		width := lang.Percentage / 100 * langBarWidth
		if width < langBarMin {
			width = langBarMin
		}
		color := languageColor(lang.Name, theme.Accent)
		if animate {
			fmt.Fprintf(b,
				`<rect x="0" y="16" width="%s" height="8" rx="4" fill="%s" class="bar" style="animation-delay: %dms"/>`,
				formatUnits(width), color, (i+2)*150,
			)
		} else {
			fmt.Fprintf(b,
				`<rect x="0" y="16" width="%s" height="8" rx="4" fill="%s" class="bar"/>`,
				formatUnits(width), color,
			)
		}
		b.WriteString("\n</g>\n")
	}
	b.WriteString("</g>\n")
}

// groupDigits formats n with thousands separators, e.g. 1234567 -> "1,234,567".
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// formatUnits formats a coordinate value with fixed precision so that
// rendering stays byte-identical across calls.
func formatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escape makes upstream-controlled text (user handle, language names) safe
// to splice into the svg document.
func escape(s string) string {
	return xmlEscaper.Replace(s)
}
