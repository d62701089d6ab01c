package usage

import (
	"time"

	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
)

const monthLayout = "2006-01"

type (
	// Record holds one user's counters for one calendar month ("YYYY-MM").
	Record struct {
		ID                          int64
		UserID                      user.ID
		Month                       string
		ScansUsed                   int
		CoverLettersGenerated       int
		InterviewQuestionsGenerated int

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	Status struct {
		Plan   plan.Plan
		Month  string
		Usage  Record
		Limits plan.Limits
	}
)

// MonthOf returns the ledger key for t in UTC.
func MonthOf(t time.Time) string {
	return t.UTC().Format(monthLayout)
}

func (r *Record) Count(a plan.Action) int {
	switch a {
	case plan.Scan:
		return r.ScansUsed
	case plan.CoverLetter:
		return r.CoverLettersGenerated
	case plan.InterviewQuestions:
		return r.InterviewQuestionsGenerated
	default:
		return 0
	}
}

// Deltas returns the per-counter increments for one occurrence of a.
func Deltas(a plan.Action) (scans, coverLetters, interviewQuestions int) {
	switch a {
	case plan.Scan:
		return 1, 0, 0
	case plan.CoverLetter:
		return 0, 1, 0
	case plan.InterviewQuestions:
		return 0, 0, 1
	default:
		return 0, 0, 0
	}
}
