package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	domain "resume-evaluator-api/internal/domain/analysis"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/domain/user_file"
	"resume-evaluator-api/internal/infrastructure/metrics"
	"resume-evaluator-api/internal/infrastructure/mq"
)

const (
	DefaultAnalysesLimit = 10
	MaxAnalysesLimit     = 50
)

type AnalysisService struct {
	userRepository     user.Repository
	userFileRepository user_file.Repository
	analysisRepository domain.Repository
	evaluator          ports.ResumeEvaluator
	entitlement        *EntitlementService
	mq                 ports.EventPublisher
	logger             *zap.Logger
	mCounter           *prometheus.CounterVec
}

func NewAnalysisService(
	userRepository user.Repository,
	userFileRepository user_file.Repository,
	analysisRepository domain.Repository,
	evaluator ports.ResumeEvaluator,
	entitlement *EntitlementService,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.AnalysisService {
	return &AnalysisService{
		userRepository:     userRepository,
		userFileRepository: userFileRepository,
		analysisRepository: analysisRepository,
		evaluator:          evaluator,
		entitlement:        entitlement,
		mq:                 mq,
		logger:             logger,
		mCounter:           mCounter,
	}
}

// Evaluate runs one metered scan. Usage is counted only after the record is
// saved, so a failed model call or a failed insert costs the user nothing.
func (as *AnalysisService) Evaluate(ctx context.Context, externalID string, req ports.EvaluateRequest) (*domain.ResumeAnalysis, error) {
	req.ResumeText = strings.TrimSpace(req.ResumeText)
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	if req.ResumeText == "" || req.JobDescription == "" {
		return nil, validationError("resume text and job description are required")
	}

	u, err := findUser(ctx, as.userRepository, externalID)
	if err != nil {
		return nil, err
	}

	if err = as.entitlement.authorize(ctx, u, plan.Scan); err != nil {
		return nil, err
	}

	if req.ResumeFileID != nil {
		f, err := as.userFileRepository.FetchUserFile(ctx, u.ID, *req.ResumeFileID)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, ErrNotFound
		}
	}

	eval, err := as.evaluator.EvaluateResume(ctx, req.ResumeText, req.JobDescription)
	if err != nil {
		return nil, upstreamError("evaluate resume", err)
	}

	saved, err := as.analysisRepository.CreateAnalysis(ctx, &domain.ResumeAnalysis{
		UserID:         u.ID,
		ResumeFileID:   req.ResumeFileID,
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		Evaluation:     *eval,
		KeywordGaps:    domain.FindKeywordGaps(req.ResumeText, req.JobDescription),
		JobAnalysis:    domain.AnalyzeJobRequirements(req.JobDescription),
	})
	if err != nil {
		return nil, err
	}

	as.entitlement.record(ctx, u, plan.Scan)

	as.mq.Publish(mq.NewEvent(mq.EventAnalysisCreated, u.ExternalID, map[string]string{
		"analysis_id": strconv.FormatInt(saved.ID, 10),
		"match_score": strconv.FormatFloat(saved.Evaluation.MatchScore, 'f', -1, 64),
	}))
	as.mCounter.WithLabelValues(metrics.AnalysisSaved).Inc()

	return saved, nil
}

// List clamps limit into [1, MaxAnalysesLimit]; zero or less means the default.
func (as *AnalysisService) List(ctx context.Context, externalID string, limit int) (domain.ResumeAnalyses, error) {
	u, err := findUser(ctx, as.userRepository, externalID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultAnalysesLimit
	}
	limit = min(limit, MaxAnalysesLimit)

	return as.analysisRepository.FetchRecent(ctx, u.ID, limit)
}

func (as *AnalysisService) Get(ctx context.Context, externalID string, id int64) (*domain.ResumeAnalysis, error) {
	u, err := findUser(ctx, as.userRepository, externalID)
	if err != nil {
		return nil, err
	}

	a, err := as.analysisRepository.FetchAnalysis(ctx, u.ID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}

	return a, nil
}
