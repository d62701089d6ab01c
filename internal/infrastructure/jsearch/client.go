package jsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"resume-evaluator-api/internal/domain/job"
)

const (
	DefaultBaseURL = "https://jsearch.p.rapidapi.com"
	rapidAPIHost   = "jsearch.p.rapidapi.com"
	sourceName     = "rapidapi"
	requestTimeout = 15 * time.Second
)

var ErrNotConfigured = errors.New("job search api key is not configured")

type (
	Client struct {
		http    *http.Client
		baseURL string
		apiKey  string
	}

	item struct {
		Title          string `mapstructure:"job_title"`
		Employer       string `mapstructure:"employer_name"`
		City           string `mapstructure:"job_city"`
		Description    string `mapstructure:"job_description"`
		RequiredSkills any    `mapstructure:"job_required_skills"`
		Salary         any    `mapstructure:"job_salary"`
		EmploymentType string `mapstructure:"job_employment_type"`
		ApplyLink      string `mapstructure:"job_apply_link"`
		PostedAt       string `mapstructure:"job_posted_at_datetime_utc"`
	}
)

func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Search returns at most limit postings for the query.
func (c *Client) Search(ctx context.Context, query, location string, limit int) (job.Postings, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("location", location)
	params.Set("num_pages", "1")
	params.Set("page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job search status %d", resp.StatusCode)
	}

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode job search response: %w", err)
	}

	out := make(job.Postings, 0)
	for _, raw := range body.Data {
		if limit > 0 && len(out) == limit {
			break
		}
		var it item
		if err = mapstructure.WeakDecode(raw, &it); err != nil {
			continue
		}
		out = append(out, it.posting())
	}

	return out, nil
}

func (it item) posting() *job.Posting {
	return &job.Posting{
		Title:           it.Title,
		Company:         it.Employer,
		Location:        it.City,
		Description:     it.Description,
		Requirements:    flatten(it.RequiredSkills),
		SalaryRange:     flatten(it.Salary),
		JobType:         it.EmploymentType,
		ExperienceLevel: job.ExperienceLevel(it.Description),
		Source:          sourceName,
		SourceURL:       it.ApplyLink,
		PostedAt:        it.PostedAt,
		IsActive:        true,
	}
}

func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}
