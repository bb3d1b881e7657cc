package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"contribgraph/pkg/models"
)

const defaultGitLabBaseURL = "https://gitlab.com"

// GitLab fetches a user's daily activity counts from the public calendar.json
// endpoint, which needs no authentication.
type GitLab struct {
	Client  *http.Client
	BaseURL string
}

func NewGitLab(baseURL string) *GitLab {
	if baseURL == "" {
		baseURL = defaultGitLabBaseURL
	}
	return &GitLab{
		Client:  &http.Client{Timeout: 12 * time.Second},
		BaseURL: baseURL,
	}
}

func (s *GitLab) Name() string { return "gitlab" }

func (s *GitLab) Fetch(ctx context.Context, username string) ([]models.DayRecord, error) {
	endpoint := fmt.Sprintf("%s/users/%s/calendar.json", s.BaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gitlab: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gitlab: request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gitlab: status %d: %s", resp.StatusCode, string(body))
	}

	// Response shape is a flat {"YYYY-MM-DD": count} map.
	var calendar map[string]int
	if err := json.Unmarshal(body, &calendar); err != nil {
		return nil, fmt.Errorf("gitlab: decode: %w", err)
	}

	records := make([]models.DayRecord, 0, len(calendar))
	for date, count := range calendar {
		records = append(records, models.DayRecord{Date: date, Count: count})
	}
	return records, nil
}
