package app

import "sort"

// Aggregate reduces a profile and its raw repository list into Stats.
// It is a pure transformation: no i/o, no side effects.
//
// TopLanguages covers every observed language, sorted by occurrence count
// descending, ties kept in encounter order. Percentages are computed over
// all observed languages, so they sum to ~100 even though callers may
// render only a prefix.
func Aggregate(profile Profile, repositories []Repository) Stats {
	stats := Stats{
		Username:   profile.Login,
		TotalRepos: profile.PublicRepos,
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range repositories {
		stats.TotalStars += r.Stars
		stats.TotalForks += r.Forks

		if r.Language == "" {
			continue
		}
		if _, ok := counts[r.Language]; !ok {
			order = append(order, r.Language)
		}
		counts[r.Language]++
	}

	var total int
	for _, c := range counts {
		total += c
	}

	langs := make([]LanguageStat, 0, len(order))
	for _, name := range order {
		var percentage float64
		if total > 0 {
			percentage = 100 * float64(counts[name]) / float64(total)
		}
		langs = append(langs, LanguageStat{
			Name:       name,
			Count:      counts[name],
			Percentage: percentage,
		})
	}
	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].Count > langs[j].Count
	})

	if len(langs) > 0 {
		stats.TopLanguages = langs
	}

	return stats
}
