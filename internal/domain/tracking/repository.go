package tracking

import (
	"context"

	"resume-evaluator-api/internal/domain/user"
)

// Every mutation carries the owner id in its predicate. A row owned by another
// user is indistinguishable from a missing one: (nil, nil) or false.
type (
	JobApplicationRepository interface {
		FetchJobApplications(ctx context.Context, userID user.ID) (JobApplications, error)
		CreateJobApplication(ctx context.Context, req *JobApplication) (*JobApplication, error)
		UpdateJobApplication(ctx context.Context, req *JobApplication) (*JobApplication, error)
		DeleteJobApplication(ctx context.Context, userID user.ID, id int64) (bool, error)
	}

	OptimizedResumeRepository interface {
		FetchOptimizedResumes(ctx context.Context, userID user.ID) (OptimizedResumes, error)
		CreateOptimizedResume(ctx context.Context, req *OptimizedResume) (*OptimizedResume, error)
		DeleteOptimizedResume(ctx context.Context, userID user.ID, id int64) (bool, error)
	}

	InterviewPreparationRepository interface {
		FetchInterviewPreparations(ctx context.Context, userID user.ID) (InterviewPreparations, error)
		CreateInterviewPreparation(ctx context.Context, req *InterviewPreparation) (*InterviewPreparation, error)
		UpdateInterviewPreparation(ctx context.Context, req *InterviewPreparation) (*InterviewPreparation, error)
		DeleteInterviewPreparation(ctx context.Context, userID user.ID, id int64) (bool, error)
	}
)
