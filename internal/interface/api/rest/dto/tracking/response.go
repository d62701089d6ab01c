package tracking

import (
	"time"
)

type (
	ApplicationRequest struct {
		ResumeAnalysisID *int64     `json:"resume_analysis_id"`
		JobTitle         string     `json:"job_title"`
		Company          string     `json:"company"`
		JobURL           string     `json:"job_url"`
		Status           string     `json:"status"`
		Notes            string     `json:"notes"`
		AppliedAt        *time.Time `json:"applied_at"`
	}

	Application struct {
		ID               int64      `json:"id"`
		ResumeAnalysisID *int64     `json:"resume_analysis_id"`
		JobTitle         string     `json:"job_title"`
		Company          string     `json:"company"`
		JobURL           string     `json:"job_url,omitempty"`
		Status           string     `json:"status"`
		Notes            string     `json:"notes,omitempty"`
		AppliedAt        *time.Time `json:"applied_at"`
		CreatedAt        time.Time  `json:"created_at"`
		UpdatedAt        time.Time  `json:"updated_at"`
	}

	OptimizedResume struct {
		ID             int64     `json:"id"`
		OriginalFileID *int64    `json:"original_file_id"`
		JobTitle       string    `json:"job_title,omitempty"`
		Company        string    `json:"company,omitempty"`
		Content        string    `json:"content"`
		CreatedAt      time.Time `json:"created_at"`
	}

	PreparationRequest struct {
		JobApplicationID *int64   `json:"job_application_id"`
		JobTitle         string   `json:"job_title"`
		Company          string   `json:"company"`
		Questions        []string `json:"questions"`
		Notes            string   `json:"notes"`
	}

	Preparation struct {
		ID               int64     `json:"id"`
		JobApplicationID *int64    `json:"job_application_id"`
		JobTitle         string    `json:"job_title"`
		Company          string    `json:"company,omitempty"`
		Questions        []string  `json:"questions"`
		Notes            string    `json:"notes,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}

	ResponseData[T any] struct {
		Data []T `json:"data"`
	}
)
