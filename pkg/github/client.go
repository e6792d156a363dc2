package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	graphqlURL = "https://api.github.com/graphql"
	restURL    = "https://api.github.com"
)

// Client fetches contribution activity from the GitHub API
type Client struct {
	token  string
	client *http.Client
}

// NewClient creates a GitHub API client. The token is optional; without
// it only the public events API is available (approximate counts).
func NewClient(token string) *Client {
	return &Client{
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// contributionsQuery is the GraphQL query for the contribution calendar
const contributionsQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
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

type graphqlResponse struct {
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
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchContributions returns daily contribution counts keyed by UTC date
// (YYYY-MM-DD) for the given range. With a token it uses the GraphQL
// contribution calendar; without one it approximates from public events.
func (c *Client) FetchContributions(ctx context.Context, login string, from, to time.Time) (map[string]int, error) {
	if c.token != "" {
		return c.fetchCalendar(ctx, login, from, to)
	}
	return c.fetchFromEvents(ctx, login, from, to)
}

func (c *Client) fetchCalendar(ctx context.Context, login string, from, to time.Time) (map[string]int, error) {
	payload := map[string]interface{}{
		"query": contributionsQuery,
		"variables": map[string]string{
			"login": login,
			"from":  from.UTC().Format(time.RFC3339),
			"to":    to.UTC().Format(time.RFC3339),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github graphql returned status %d", resp.StatusCode)
	}

	var out graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("github graphql error: %s", out.Errors[0].Message)
	}

	counts := make(map[string]int)
	for _, week := range out.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			counts[day.Date] = day.ContributionCount
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("github user %q has no contribution calendar", login)
	}
	return counts, nil
}

type publicEvent struct {
	CreatedAt time.Time `json:"created_at"`
}

// fetchFromEvents approximates daily counts from the public events feed.
// The feed only covers recent activity, so older days stay at zero.
func (c *Client) fetchFromEvents(ctx context.Context, login string, from, to time.Time) (map[string]int, error) {
	reqURL := fmt.Sprintf("%s/users/%s/events/public?per_page=100", restURL, login)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github events returned status %d", resp.StatusCode)
	}

	var events []publicEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, ev := range events {
		t := ev.CreatedAt.UTC()
		if t.Before(from) || t.After(to) {
			continue
		}
		counts[t.Format("2006-01-02")]++
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no public events for github user %q", login)
	}
	return counts, nil
}
