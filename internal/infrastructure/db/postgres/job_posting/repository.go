package job_posting

import (
	"context"
	"fmt"

	"resume-evaluator-api/internal/domain/job"
	"resume-evaluator-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) job.Repository {
	return &Repository{db: db}
}

// UpsertPostings skips postings without a source url; they have no cache key.
func (r *Repository) UpsertPostings(ctx context.Context, ps job.Postings) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, p := range ps {
		if p.SourceURL == "" {
			continue
		}
		if _, err = tx.Exec(ctx, UpsertPosting,
			p.Title, p.Company, p.Location, p.Description, p.Requirements, p.SalaryRange, p.JobType,
			p.ExperienceLevel, p.Source, p.SourceURL, p.PostedAt,
		); err != nil {
			return fmt.Errorf("upsert posting %s: %w", p.SourceURL, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *Repository) FetchActive(ctx context.Context, limit int) (job.Postings, error) {
	rows, err := r.db.Query(ctx, SelectActivePostings, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(job.Postings, 0)
	for rows.Next() {
		p := new(job.Posting)
		if err = rows.Scan(
			&p.ID, &p.Title, &p.Company, &p.Location, &p.Description, &p.Requirements, &p.SalaryRange,
			&p.JobType, &p.ExperienceLevel, &p.Source, &p.SourceURL, &p.PostedAt, &p.IsActive, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
