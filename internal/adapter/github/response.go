package github

import (
	"github.com/statscard/statscard/internal/app"
)

type profileResponse struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
}

func (r profileResponse) ToProfile() app.Profile {
	return app.Profile{
		Login:       r.Login,
		PublicRepos: r.PublicRepos,
	}
}

type reposResponse []struct {
	Name            string  `json:"name"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	Language        *string `json:"language"`
}

func (r reposResponse) ToRepositories() []app.Repository {
	rs := make([]app.Repository, 0, len(r))
	for _, el := range r {
		repo := app.Repository{
			Name:  el.Name,
			Stars: el.StargazersCount,
			Forks: el.ForksCount,
		}
		if el.Language != nil {
			repo.Language = *el.Language
		}
		rs = append(rs, repo)
	}

	return rs
}
