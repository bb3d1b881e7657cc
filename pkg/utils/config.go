package utils

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, loaded from environment variables.
type Config struct {
	Port int `env:"PORT" envDefault:"3000"`

	// GitHubToken is optional; without it the GraphQL API still answers but
	// with a much lower rate limit.
	GitHubToken  string `env:"GITHUB_TOKEN"`
	GitHubAPIURL string `env:"GITHUB_API_URL" envDefault:"https://api.github.com/graphql"`

	GitLabBaseURL string `env:"GITLAB_BASE_URL" envDefault:"https://gitlab.com"`

	// DeploymentID tags ETags; when empty a random id is generated per
	// process so a restart invalidates cached graphs.
	DeploymentID string `env:"DEPLOYMENT_ID"`

	// FontPaths are candidate font files tried in order at startup. None of
	// them existing is fine; rendering falls back to an embedded typeface.
	FontPaths []string `env:"FONT_PATHS" envDefault:"fonts/NotoSans-Regular.ttf,backend/fonts/NotoSans-Regular.ttf"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
