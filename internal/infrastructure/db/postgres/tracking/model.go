package tracking

import (
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"

	domain "resume-evaluator-api/internal/domain/tracking"
	"resume-evaluator-api/internal/domain/user"
)

type (
	JobApplication struct {
		ID               int64
		UserID           int64
		ResumeAnalysisID *int64
		JobTitle         string
		Company          string
		JobURL           string
		Status           string
		Notes            string
		AppliedAt        *time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	OptimizedResume struct {
		ID             int64
		UserID         int64
		OriginalFileID *int64
		JobTitle       string
		Company        string
		JobDescription string
		Content        string

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// InterviewPreparation holds questions as a JSON array in text.
	InterviewPreparation struct {
		ID               int64
		UserID           int64
		JobApplicationID *int64
		JobTitle         string
		Company          string
		Questions        string
		Notes            string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)

func scanJobApplication(row pgx.Row) (*JobApplication, error) {
	a := new(JobApplication)
	if err := row.Scan(
		&a.ID, &a.UserID, &a.ResumeAnalysisID,
		&a.JobTitle, &a.Company, &a.JobURL, &a.Status, &a.Notes, &a.AppliedAt,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}

func scanOptimizedResume(row pgx.Row) (*OptimizedResume, error) {
	o := new(OptimizedResume)
	if err := row.Scan(
		&o.ID, &o.UserID, &o.OriginalFileID,
		&o.JobTitle, &o.Company, &o.JobDescription, &o.Content,
		&o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return o, nil
}

func scanInterviewPreparation(row pgx.Row) (*InterviewPreparation, error) {
	p := new(InterviewPreparation)
	if err := row.Scan(
		&p.ID, &p.UserID, &p.JobApplicationID,
		&p.JobTitle, &p.Company, &p.Questions, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func applicationFromDB(m *JobApplication) *domain.JobApplication {
	return &domain.JobApplication{
		ID:               m.ID,
		UserID:           user.ID(m.UserID),
		ResumeAnalysisID: m.ResumeAnalysisID,
		JobTitle:         m.JobTitle,
		Company:          m.Company,
		JobURL:           m.JobURL,
		Status:           domain.ApplicationStatus(m.Status),
		Notes:            m.Notes,
		AppliedAt:        m.AppliedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func optimizedFromDB(m *OptimizedResume) *domain.OptimizedResume {
	return &domain.OptimizedResume{
		ID:             m.ID,
		UserID:         user.ID(m.UserID),
		OriginalFileID: m.OriginalFileID,
		JobTitle:       m.JobTitle,
		Company:        m.Company,
		JobDescription: m.JobDescription,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func preparationFromDB(m *InterviewPreparation) *domain.InterviewPreparation {
	questions := make([]string, 0)
	if err := json.Unmarshal([]byte(m.Questions), &questions); err != nil {
		questions = make([]string, 0)
	}

	return &domain.InterviewPreparation{
		ID:               m.ID,
		UserID:           user.ID(m.UserID),
		JobApplicationID: m.JobApplicationID,
		JobTitle:         m.JobTitle,
		Company:          m.Company,
		Questions:        questions,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func encodeQuestions(qs []string) (string, error) {
	if qs == nil {
		qs = []string{}
	}
	b, err := json.Marshal(qs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
