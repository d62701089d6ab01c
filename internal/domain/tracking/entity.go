package tracking

import (
	"time"

	"resume-evaluator-api/internal/domain/user"
)

type ApplicationStatus string

const (
	StatusSaved        ApplicationStatus = "saved"
	StatusApplied      ApplicationStatus = "applied"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffer        ApplicationStatus = "offer"
	StatusRejected     ApplicationStatus = "rejected"
	StatusWithdrawn    ApplicationStatus = "withdrawn"
)

type (
	JobApplication struct {
		ID               int64
		UserID           user.ID
		ResumeAnalysisID *int64
		JobTitle         string
		Company          string
		JobURL           string
		Status           ApplicationStatus
		Notes            string
		AppliedAt        *time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	JobApplications []*JobApplication

	OptimizedResume struct {
		ID             int64
		UserID         user.ID
		OriginalFileID *int64
		JobTitle       string
		Company        string
		JobDescription string
		Content        string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	OptimizedResumes []*OptimizedResume

	InterviewPreparation struct {
		ID               int64
		UserID           user.ID
		JobApplicationID *int64
		JobTitle         string
		Company          string
		Questions        []string
		Notes            string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	InterviewPreparations []*InterviewPreparation
)

func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	st := ApplicationStatus(s)
	switch st {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected, StatusWithdrawn:
		return st, true
	default:
		return "", false
	}
}
