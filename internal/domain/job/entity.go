package job

import (
	"context"
	"time"
)

type (
	Posting struct {
		ID              int64
		Title           string
		Company         string
		Location        string
		Description     string
		Requirements    string
		SalaryRange     string
		JobType         string
		ExperienceLevel string
		Source          string
		SourceURL       string
		PostedAt        string
		IsActive        bool

		// MatchScore is computed per request and never stored.
		MatchScore float64

		CreatedAt time.Time
	}
	Postings []*Posting

	Repository interface {
		// UpsertPostings caches search results keyed by source url.
		UpsertPostings(ctx context.Context, ps Postings) error
		FetchActive(ctx context.Context, limit int) (Postings, error)
	}
)
