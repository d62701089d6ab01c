package analysis

import (
	"fmt"

	domain "resume-evaluator-api/internal/domain/analysis"
	"resume-evaluator-api/internal/domain/user"
)

func fromDBModel(m *ResumeAnalysis) *domain.ResumeAnalysis {
	return &domain.ResumeAnalysis{
		ID:             m.ID,
		UserID:         user.ID(m.UserID),
		ResumeFileID:   m.ResumeFileID,
		ResumeText:     m.ResumeText,
		JobDescription: m.JobDescription,

		Evaluation:  domain.DecodeEvaluation(m.AIEvaluation),
		KeywordGaps: domain.DecodeKeywordGaps(m.KeywordGaps),
		JobAnalysis: domain.DecodeJobAnalysis(m.JobAnalysis),

		CreatedAt: m.CreatedAt,
	}
}

func toDBModel(a *domain.ResumeAnalysis) (*ResumeAnalysis, error) {
	eval, err := domain.EncodePayload(a.Evaluation)
	if err != nil {
		return nil, fmt.Errorf("encode evaluation: %w", err)
	}
	gaps, err := domain.EncodePayload(a.KeywordGaps)
	if err != nil {
		return nil, fmt.Errorf("encode keyword gaps: %w", err)
	}
	job, err := domain.EncodePayload(a.JobAnalysis)
	if err != nil {
		return nil, fmt.Errorf("encode job analysis: %w", err)
	}

	return &ResumeAnalysis{
		UserID:         int64(a.UserID),
		ResumeFileID:   a.ResumeFileID,
		ResumeText:     a.ResumeText,
		JobDescription: a.JobDescription,
		AIEvaluation:   eval,
		KeywordGaps:    gaps,
		JobAnalysis:    job,
	}, nil
}
