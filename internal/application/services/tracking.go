package services

import (
	"context"
	"strings"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/tracking"
	"resume-evaluator-api/internal/domain/user"
)

type TrackingService struct {
	userRepository        user.Repository
	applicationRepository tracking.JobApplicationRepository
	optimizedRepository   tracking.OptimizedResumeRepository
	preparationRepository tracking.InterviewPreparationRepository
}

func NewTrackingService(
	userRepository user.Repository,
	applicationRepository tracking.JobApplicationRepository,
	optimizedRepository tracking.OptimizedResumeRepository,
	preparationRepository tracking.InterviewPreparationRepository,
) ports.TrackingService {
	return &TrackingService{
		userRepository:        userRepository,
		applicationRepository: applicationRepository,
		optimizedRepository:   optimizedRepository,
		preparationRepository: preparationRepository,
	}
}

func (ts *TrackingService) Applications(ctx context.Context, externalID string) (tracking.JobApplications, error) {
	u, err := findUser(ctx, ts.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	return ts.applicationRepository.FetchJobApplications(ctx, u.ID)
}

func (ts *TrackingService) CreateApplication(ctx context.Context, externalID string, req tracking.JobApplication) (*tracking.JobApplication, error) {
	u, err := findUser(ctx, ts.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	if err = validateApplication(&req); err != nil {
		return nil, err
	}

	req.UserID = u.ID
	return ts.applicationRepository.CreateJobApplication(ctx, &req)
}

// UpdateApplication replaces the mutable fields of an application the caller owns.
func (ts *TrackingService) UpdateApplication(ctx context.Context, externalID string, req tracking.JobApplication) (*tracking.JobApplication, error) {
	u, err := findUser(ctx, ts.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	if err = validateApplication(&req); err != nil {
		return nil, err
	}

	req.UserID = u.ID
	out, err := ts.applicationRepository.UpdateJobApplication(ctx, &req)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

func (ts *TrackingService) DeleteApplication(ctx context.Context, externalID string, id int64) error {
	return ts.delete(ctx, externalID, id, ts.applicationRepository.DeleteJobApplication)
}

func (ts *TrackingService) OptimizedResumes(ctx context.Context, externalID string) (tracking.OptimizedResumes, error) {
	u, err := findUser(ctx, ts.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	return ts.optimizedRepository.FetchOptimizedResumes(ctx, u.ID)
}

func (ts *TrackingService) DeleteOptimizedResume(ctx context.Context, externalID string, id int64) error {
	return ts.delete(ctx, externalID, id, ts.optimizedRepository.DeleteOptimizedResume)
}

func (ts *TrackingService) Preparations(ctx context.Context, externalID string) (tracking.InterviewPreparations, error) {
	u, err := findUser(ctx, ts.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	return ts.preparationRepository.FetchInterviewPreparations(ctx, u.ID)
}

func (ts *TrackingService) CreatePreparation(ctx context.Context, externalID string, req tracking.InterviewPreparation) (*tracking.InterviewPreparation, error) {
	u, err := findUser(ctx, ts.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.JobTitle) == "" {
		return nil, validationError("job title is required")
	}

	req.UserID = u.ID
	return ts.preparationRepository.CreateInterviewPreparation(ctx, &req)
}

func (ts *TrackingService) UpdatePreparation(ctx context.Context, externalID string, req tracking.InterviewPreparation) (*tracking.InterviewPreparation, error) {
	u, err := findUser(ctx, ts.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.JobTitle) == "" {
		return nil, validationError("job title is required")
	}

	req.UserID = u.ID
	out, err := ts.preparationRepository.UpdateInterviewPreparation(ctx, &req)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

func (ts *TrackingService) DeletePreparation(ctx context.Context, externalID string, id int64) error {
	return ts.delete(ctx, externalID, id, ts.preparationRepository.DeleteInterviewPreparation)
}

func (ts *TrackingService) delete(
	ctx context.Context,
	externalID string,
	id int64,
	del func(context.Context, user.ID, int64) (bool, error),
) error {
	u, err := findUser(ctx, ts.userRepository, externalID)
	if err != nil {
		return err
	}

	ok, err := del(ctx, u.ID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validateApplication(req *tracking.JobApplication) error {
	if strings.TrimSpace(req.JobTitle) == "" || strings.TrimSpace(req.Company) == "" {
		return validationError("job title and company are required")
	}
	if req.Status == "" {
		req.Status = tracking.StatusSaved
	}
	if _, ok := tracking.ParseApplicationStatus(string(req.Status)); !ok {
		return validationError("unknown application status %q", req.Status)
	}
	return nil
}
