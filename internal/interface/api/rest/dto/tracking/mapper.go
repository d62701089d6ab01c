package tracking

import (
	"resume-evaluator-api/internal/domain/tracking"
)

func ToDomainApplication(r ApplicationRequest) tracking.JobApplication {
	return tracking.JobApplication{
		ResumeAnalysisID: r.ResumeAnalysisID,
		JobTitle:         r.JobTitle,
		Company:          r.Company,
		JobURL:           r.JobURL,
		Status:           tracking.ApplicationStatus(r.Status),
		Notes:            r.Notes,
		AppliedAt:        r.AppliedAt,
	}
}

func ToResponseApplication(a tracking.JobApplication) Application {
	return Application{
		ID:               a.ID,
		ResumeAnalysisID: a.ResumeAnalysisID,
		JobTitle:         a.JobTitle,
		Company:          a.Company,
		JobURL:           a.JobURL,
		Status:           string(a.Status),
		Notes:            a.Notes,
		AppliedAt:        a.AppliedAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func ToResponseOptimizedResume(o tracking.OptimizedResume) OptimizedResume {
	return OptimizedResume{
		ID:             o.ID,
		OriginalFileID: o.OriginalFileID,
		JobTitle:       o.JobTitle,
		Company:        o.Company,
		Content:        o.Content,
		CreatedAt:      o.CreatedAt,
	}
}

func ToDomainPreparation(r PreparationRequest) tracking.InterviewPreparation {
	return tracking.InterviewPreparation{
		JobApplicationID: r.JobApplicationID,
		JobTitle:         r.JobTitle,
		Company:          r.Company,
		Questions:        r.Questions,
		Notes:            r.Notes,
	}
}

func ToResponsePreparation(p tracking.InterviewPreparation) Preparation {
	qs := p.Questions
	if qs == nil {
		qs = []string{}
	}
	return Preparation{
		ID:               p.ID,
		JobApplicationID: p.JobApplicationID,
		JobTitle:         p.JobTitle,
		Company:          p.Company,
		Questions:        qs,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// MapAll converts a domain list into a response envelope.
func MapAll[D any, R any](in []*D, fn func(D) R) ResponseData[R] {
	out := ResponseData[R]{Data: make([]R, len(in))}
	for idx, v := range in {
		out.Data[idx] = fn(*v)
	}
	return out
}
