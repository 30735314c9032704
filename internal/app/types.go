package app

// Profile entity
type Profile struct {
	Login       string
	PublicRepos int
}

// Repository entity. Language is empty when the repository has no
// language tag.
type Repository struct {
	Name     string
	Stars    int
	Forks    int
	Language string
}

// LanguageStat is one entry of a language breakdown.
type LanguageStat struct {
	Name       string
	Count      int
	Percentage float64
}

// Stats is the aggregated view over a user's repositories.
// TotalCommits is always 0: commit counts are not sourced from the api.
type Stats struct {
	Username     string
	TotalRepos   int
	TotalStars   int
	TotalForks   int
	TotalCommits int
	TopLanguages []LanguageStat
}
