package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"contribgraph/pkg/models"
)

const defaultGitHubAPIURL = "https://api.github.com/graphql"

// contributionsQuery pulls the user's contribution calendar; the API returns
// roughly the trailing year as weeks of days.
const contributionsQuery = `
query($username: String!) {
  user(login: $username) {
    contributionsCollection {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

// GitHub fetches a user's daily contribution counts from the GitHub GraphQL
// API. An API token raises the rate limit but is optional.
type GitHub struct {
	Client *http.Client
	APIURL string
	Token  string
}

func NewGitHub(apiURL, token string) *GitHub {
	if apiURL == "" {
		apiURL = defaultGitHubAPIURL
	}
	return &GitHub{
		Client: &http.Client{Timeout: 12 * time.Second},
		APIURL: apiURL,
		Token:  token,
	}
}

func (s *GitHub) Name() string { return "github" }

type ghResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
}

func (s *GitHub) Fetch(ctx context.Context, username string) ([]models.DayRecord, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     contributionsQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, fmt.Errorf("github: encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("github: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if s.Token != "" {
		req.Header.Set("Authorization", "token "+s.Token)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github: status %d: %s", resp.StatusCode, string(body))
	}

	var gh ghResponse
	if err := json.Unmarshal(body, &gh); err != nil {
		return nil, fmt.Errorf("github: decode: %w", err)
	}

	var records []models.DayRecord
	for _, week := range gh.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			records = append(records, models.DayRecord{
				Date:  day.Date,
				Count: day.ContributionCount,
			})
		}
	}
	return records, nil
}
