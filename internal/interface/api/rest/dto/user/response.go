package user

import (
	"time"
)

type (
	Request struct {
		Email         string `json:"email"`
		FirstName     string `json:"first_name"`
		MiddleName    string `json:"middle_name"`
		LastName      string `json:"last_name"`
		PositionLevel string `json:"position_level"`
		JobCategory   string `json:"job_category"`
	}

	CurrentResumeRequest struct {
		FileID *int64 `json:"file_id"`
	}

	User struct {
		ID              string    `json:"id"`
		Email           string    `json:"email"`
		FirstName       string    `json:"first_name"`
		MiddleName      string    `json:"middle_name,omitempty"`
		LastName        string    `json:"last_name"`
		PositionLevel   string    `json:"position_level,omitempty"`
		JobCategory     string    `json:"job_category,omitempty"`
		Plan            string    `json:"plan"`
		CurrentResumeID *int64    `json:"current_resume_id"`
		CreatedAt       time.Time `json:"created_at"`
	}

	Usage struct {
		Month                       string `json:"month"`
		ScansUsed                   int    `json:"scans_used"`
		CoverLettersGenerated       int    `json:"cover_letters_generated"`
		InterviewQuestionsGenerated int    `json:"interview_questions_generated"`
	}

	// Limits use -1 for unlimited.
	Limits struct {
		Scans              int      `json:"scans"`
		CoverLetters       int      `json:"cover_letters"`
		InterviewQuestions int      `json:"interview_questions"`
		Features           []string `json:"features"`
	}

	PlanStatus struct {
		Plan   string `json:"plan"`
		Usage  Usage  `json:"usage"`
		Limits Limits `json:"limits"`
	}

	UsageHistory struct {
		Data []Usage `json:"data"`
	}
)
