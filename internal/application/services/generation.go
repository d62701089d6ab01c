package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/tracking"
	"resume-evaluator-api/internal/domain/user"
)

// GenerationService produces the premium documents. Cover letters and
// interview questions are metered; optimization is a plan feature.
type GenerationService struct {
	userRepository      user.Repository
	optimizedRepository tracking.OptimizedResumeRepository
	evaluator           ports.ResumeEvaluator
	entitlement         *EntitlementService
	logger              *zap.Logger
}

func NewGenerationService(
	userRepository user.Repository,
	optimizedRepository tracking.OptimizedResumeRepository,
	evaluator ports.ResumeEvaluator,
	entitlement *EntitlementService,
	logger *zap.Logger,
) ports.GenerationService {
	return &GenerationService{
		userRepository:      userRepository,
		optimizedRepository: optimizedRepository,
		evaluator:           evaluator,
		entitlement:         entitlement,
		logger:              logger,
	}
}

func (gs *GenerationService) CoverLetter(ctx context.Context, externalID string, req ports.CoverLetterRequest) (string, error) {
	if err := requireTexts(req.ResumeText, req.JobDescription); err != nil {
		return "", err
	}

	u, err := gs.authorize(ctx, externalID, plan.CoverLetter)
	if err != nil {
		return "", err
	}

	letter, err := gs.evaluator.GenerateCoverLetter(ctx, req.ResumeText, req.JobDescription, strings.TrimSpace(req.Company))
	if err != nil {
		return "", upstreamError("generate cover letter", err)
	}

	gs.entitlement.record(ctx, u, plan.CoverLetter)

	return letter, nil
}

func (gs *GenerationService) InterviewQuestions(ctx context.Context, externalID, resumeText, jobDescription string) ([]string, error) {
	if err := requireTexts(resumeText, jobDescription); err != nil {
		return nil, err
	}

	u, err := gs.authorize(ctx, externalID, plan.InterviewQuestions)
	if err != nil {
		return nil, err
	}

	qs, err := gs.evaluator.GenerateInterviewQuestions(ctx, resumeText, jobDescription)
	if err != nil {
		return nil, upstreamError("generate interview questions", err)
	}

	gs.entitlement.record(ctx, u, plan.InterviewQuestions)

	return qs, nil
}

// OptimizeResume rewrites the resume for the job and keeps the result.
func (gs *GenerationService) OptimizeResume(ctx context.Context, externalID string, req ports.OptimizeRequest) (*tracking.OptimizedResume, error) {
	if err := requireTexts(req.ResumeText, req.JobDescription); err != nil {
		return nil, err
	}

	u, err := findUser(ctx, gs.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	if err = gs.entitlement.requireFeature(u, plan.ResumeOptimization); err != nil {
		return nil, err
	}

	content, err := gs.evaluator.OptimizeResume(ctx, req.ResumeText, req.JobDescription, req.Requirements)
	if err != nil {
		return nil, upstreamError("optimize resume", err)
	}

	return gs.optimizedRepository.CreateOptimizedResume(ctx, &tracking.OptimizedResume{
		UserID:         u.ID,
		OriginalFileID: req.OriginalFileID,
		JobTitle:       strings.TrimSpace(req.JobTitle),
		Company:        strings.TrimSpace(req.Company),
		JobDescription: req.JobDescription,
		Content:        content,
	})
}

func (gs *GenerationService) authorize(ctx context.Context, externalID string, a plan.Action) (*user.User, error) {
	u, err := findUser(ctx, gs.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	if err = gs.entitlement.authorize(ctx, u, a); err != nil {
		return nil, err
	}
	return u, nil
}

func requireTexts(resumeText, jobDescription string) error {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return validationError("resume text and job description are required")
	}
	return nil
}
