package analysis

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "resume-evaluator-api/internal/domain/analysis"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateAnalysis(ctx context.Context, req *domain.ResumeAnalysis) (*domain.ResumeAnalysis, error) {
	m, err := toDBModel(req)
	if err != nil {
		return nil, err
	}

	created, err := scanAnalysis(r.db.QueryRow(ctx, InsertAnalysis,
		m.UserID, m.ResumeFileID, m.ResumeText, m.JobDescription,
		m.AIEvaluation, m.KeywordGaps, m.JobAnalysis,
	))
	if err != nil {
		return nil, err
	}

	return fromDBModel(created), nil
}

func (r *Repository) FetchRecent(ctx context.Context, userID user.ID, limit int) (domain.ResumeAnalyses, error) {
	rows, err := r.db.Query(ctx, SelectRecentAnalyses, int64(userID), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(domain.ResumeAnalyses, 0)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fromDBModel(a))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Repository) FetchAnalysis(ctx context.Context, userID user.ID, id int64) (*domain.ResumeAnalysis, error) {
	a, err := scanAnalysis(r.db.QueryRow(ctx, SelectAnalysis, id, int64(userID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}
