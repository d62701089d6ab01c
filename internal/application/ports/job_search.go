package ports

import (
	"context"

	"resume-evaluator-api/internal/domain/job"
)

type JobSearch interface {
	Search(ctx context.Context, query, location string, limit int) (job.Postings, error)
}
