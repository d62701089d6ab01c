package analysis

import (
	"context"

	"resume-evaluator-api/internal/domain/user"
)

type Repository interface {
	CreateAnalysis(ctx context.Context, req *ResumeAnalysis) (*ResumeAnalysis, error)
	FetchRecent(ctx context.Context, userID user.ID, limit int) (ResumeAnalyses, error)
	// FetchAnalysis returns (nil, nil) when the record is absent or owned by another user.
	FetchAnalysis(ctx context.Context, userID user.ID, id int64) (*ResumeAnalysis, error)
}
