package analysis

import (
	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/analysis"
)

func ToResponseAnalysis(a analysis.ResumeAnalysis) Analysis {
	return Analysis{
		ID:             a.ID,
		ResumeFileID:   a.ResumeFileID,
		JobDescription: a.JobDescription,
		Evaluation:     a.Evaluation,
		KeywordGaps:    a.KeywordGaps,
		JobAnalysis:    a.JobAnalysis,
		CreatedAt:      a.CreatedAt,
	}
}

func ToResponseAnalyses(as analysis.ResumeAnalyses) Analyses {
	out := make(Analyses, len(as))
	for idx, a := range as {
		out[idx] = ToResponseAnalysis(*a)
	}
	return out
}

func ToEvaluateRequest(r EvaluateRequest) ports.EvaluateRequest {
	return ports.EvaluateRequest{
		ResumeText:     r.ResumeText,
		JobDescription: r.JobDescription,
		ResumeFileID:   r.ResumeFileID,
	}
}

func ToCoverLetterRequest(r CoverLetterRequest) ports.CoverLetterRequest {
	return ports.CoverLetterRequest{
		ResumeText:     r.ResumeText,
		JobDescription: r.JobDescription,
		Company:        r.CompanyName,
	}
}

func ToOptimizeRequest(r OptimizeRequest) ports.OptimizeRequest {
	return ports.OptimizeRequest{
		ResumeText:     r.ResumeText,
		JobDescription: r.JobDescription,
		Requirements:   r.JobRequirements,
		JobTitle:       r.JobTitle,
		Company:        r.CompanyName,
		OriginalFileID: r.OriginalResumeID,
	}
}
