package analysis

import (
	"time"

	"github.com/jackc/pgx/v5"
)

// ResumeAnalysis keeps the three result payloads as the JSON text they are stored in.
type ResumeAnalysis struct {
	ID             int64
	UserID         int64
	ResumeFileID   *int64
	ResumeText     string
	JobDescription string

	AIEvaluation string
	KeywordGaps  string
	JobAnalysis  string

	CreatedAt time.Time
}

func scanAnalysis(row pgx.Row) (*ResumeAnalysis, error) {
	a := new(ResumeAnalysis)
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ResumeFileID,
		&a.ResumeText,
		&a.JobDescription,

		&a.AIEvaluation,
		&a.KeywordGaps,
		&a.JobAnalysis,

		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}
