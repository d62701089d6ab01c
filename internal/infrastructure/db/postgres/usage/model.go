package usage

import (
	"time"

	"github.com/jackc/pgx/v5"

	domain "resume-evaluator-api/internal/domain/usage"
	"resume-evaluator-api/internal/domain/user"
)

type Record struct {
	ID                          int64
	UserID                      int64
	Month                       string
	ScansUsed                   int
	CoverLettersGenerated       int
	InterviewQuestionsGenerated int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func scanRecord(row pgx.Row) (*Record, error) {
	r := new(Record)
	if err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.Month,
		&r.ScansUsed,
		&r.CoverLettersGenerated,
		&r.InterviewQuestionsGenerated,

		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return r, nil
}

func fromDBModel(m *Record) *domain.Record {
	return &domain.Record{
		ID:                          m.ID,
		UserID:                      user.ID(m.UserID),
		Month:                       m.Month,
		ScansUsed:                   m.ScansUsed,
		CoverLettersGenerated:       m.CoverLettersGenerated,
		InterviewQuestionsGenerated: m.InterviewQuestionsGenerated,
		CreatedAt:                   m.CreatedAt,
		UpdatedAt:                   m.UpdatedAt,
	}
}
