package analysis

import (
	"time"

	"resume-evaluator-api/internal/domain/analysis"
)

type (
	EvaluateRequest struct {
		ResumeText     string `json:"resume_text"`
		JobDescription string `json:"job_description"`
		ResumeFileID   *int64 `json:"resume_file_id"`
	}

	CoverLetterRequest struct {
		ResumeText     string `json:"resume_text"`
		JobDescription string `json:"job_description"`
		CompanyName    string `json:"company_name"`
	}

	InterviewQuestionsRequest struct {
		ResumeText     string `json:"resume_text"`
		JobDescription string `json:"job_description"`
	}

	OptimizeRequest struct {
		ResumeText       string `json:"resume_text"`
		JobDescription   string `json:"job_description"`
		JobRequirements  string `json:"job_requirements"`
		JobTitle         string `json:"job_title"`
		CompanyName      string `json:"company_name"`
		OriginalResumeID *int64 `json:"original_resume_id"`
	}

	Analysis struct {
		ID             int64                `json:"id"`
		ResumeFileID   *int64               `json:"resume_file_id"`
		JobDescription string               `json:"job_description"`
		Evaluation     analysis.Evaluation  `json:"evaluation"`
		KeywordGaps    analysis.KeywordGaps `json:"keyword_gaps"`
		JobAnalysis    analysis.JobAnalysis `json:"job_analysis"`
		CreatedAt      time.Time            `json:"created_at"`
	}
	Analyses     []Analysis
	ResponseData struct {
		Data Analyses `json:"data"`
	}

	CoverLetter struct {
		CoverLetter string `json:"cover_letter"`
	}

	InterviewQuestions struct {
		Questions []string `json:"questions"`
	}
)
