package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/analysis"
	domain "resume-evaluator-api/internal/domain/job"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
)

const (
	DefaultJobsLimit = 10
	MaxJobsLimit     = 50
)

type JobService struct {
	userRepository user.Repository
	jobRepository  domain.Repository
	search         ports.JobSearch
	entitlement    *EntitlementService
	logger         *zap.Logger
}

func NewJobService(
	userRepository user.Repository,
	jobRepository domain.Repository,
	search ports.JobSearch,
	entitlement *EntitlementService,
	logger *zap.Logger,
) ports.JobService {
	return &JobService{
		userRepository: userRepository,
		jobRepository:  jobRepository,
		search:         search,
		entitlement:    entitlement,
		logger:         logger,
	}
}

// Analyze is available on every plan and is not metered.
func (js *JobService) Analyze(jobDescription string) (analysis.JobAnalysis, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return analysis.JobAnalysis{}, validationError("job description is required")
	}
	return analysis.AnalyzeJobRequirements(jobDescription), nil
}

func (js *JobService) Search(ctx context.Context, externalID, query, location string, limit int) (domain.Postings, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validationError("query is required")
	}

	if _, err := js.featureUser(ctx, externalID, plan.JobSearch); err != nil {
		return nil, err
	}

	return js.find(ctx, query, location, clampJobs(limit))
}

// Match searches with a query derived from the job description and ranks the
// postings by keyword coverage of the resume.
func (js *JobService) Match(ctx context.Context, externalID, resumeText, jobDescription, location string, limit int) (domain.Postings, error) {
	if err := requireTexts(resumeText, jobDescription); err != nil {
		return nil, err
	}

	if _, err := js.featureUser(ctx, externalID, plan.JobMatching); err != nil {
		return nil, err
	}

	limit = clampJobs(limit)
	ps, err := js.find(ctx, domain.SearchQuery(jobDescription), location, limit*2)
	if err != nil {
		return nil, err
	}

	return domain.Rank(resumeText, ps, limit), nil
}

func (js *JobService) find(ctx context.Context, query, location string, limit int) (domain.Postings, error) {
	ps, err := js.search.Search(ctx, query, strings.TrimSpace(location), limit)
	if err != nil {
		return nil, upstreamError("search jobs", err)
	}

	for _, p := range ps {
		if p.ExperienceLevel == "" {
			p.ExperienceLevel = domain.ExperienceLevel(p.Description)
		}
	}

	if err = js.jobRepository.UpsertPostings(ctx, ps); err != nil {
		js.logger.Warn("UpsertPostings() error", zap.Int("count", len(ps)), zap.Error(err))
	}

	return ps, nil
}

func (js *JobService) featureUser(ctx context.Context, externalID string, f plan.Feature) (*user.User, error) {
	u, err := findUser(ctx, js.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	if err = js.entitlement.requireFeature(u, f); err != nil {
		return nil, err
	}
	return u, nil
}

func clampJobs(limit int) int {
	if limit <= 0 {
		return DefaultJobsLimit
	}
	return min(limit, MaxJobsLimit)
}
