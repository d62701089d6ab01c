package ports

import (
	"context"
	"mime/multipart"

	"resume-evaluator-api/internal/domain/analysis"
	"resume-evaluator-api/internal/domain/job"
	"resume-evaluator-api/internal/domain/payment"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/tracking"
	"resume-evaluator-api/internal/domain/usage"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/domain/user_file"
)

type (
	EvaluateRequest struct {
		ResumeText     string
		JobDescription string
		ResumeFileID   *int64
	}

	CoverLetterRequest struct {
		ResumeText     string
		JobDescription string
		Company        string
	}

	OptimizeRequest struct {
		ResumeText     string
		JobDescription string
		Requirements   string
		JobTitle       string
		Company        string
		OriginalFileID *int64
	}

	// Upload is a stored resume together with what was read from it.
	Upload struct {
		File      *user_file.UserFile
		Text      string
		Structure analysis.ResumeStructure
	}
)

type (
	UserService interface {
		FindUser(ctx context.Context, externalID string) (*user.User, error)
		CreateOrMerge(ctx context.Context, externalID string, p user.Profile) (*user.User, error)
		UpdateProfile(ctx context.Context, externalID string, p user.Profile) (*user.User, error)
		SetCurrentResume(ctx context.Context, externalID string, fileID *int64) (*user.User, error)
		ChangePlan(ctx context.Context, externalID string, p plan.Plan) (*user.User, error)
		DeleteUser(ctx context.Context, externalID string) error
	}

	EntitlementService interface {
		IsAllowed(ctx context.Context, externalID string, a plan.Action) (bool, error)
		Status(ctx context.Context, externalID string) (*usage.Status, error)
		History(ctx context.Context, externalID string, months int) ([]*usage.Record, error)
	}

	UserFileService interface {
		ListFiles(ctx context.Context, externalID string, fileType *user_file.FileType) (user_file.UserFiles, error)
		UploadResume(ctx context.Context, externalID string, in *multipart.FileHeader) (*Upload, error)
		DeleteFile(ctx context.Context, externalID string, id int64) error
	}

	AnalysisService interface {
		Evaluate(ctx context.Context, externalID string, req EvaluateRequest) (*analysis.ResumeAnalysis, error)
		List(ctx context.Context, externalID string, limit int) (analysis.ResumeAnalyses, error)
		Get(ctx context.Context, externalID string, id int64) (*analysis.ResumeAnalysis, error)
	}

	GenerationService interface {
		CoverLetter(ctx context.Context, externalID string, req CoverLetterRequest) (string, error)
		InterviewQuestions(ctx context.Context, externalID, resumeText, jobDescription string) ([]string, error)
		OptimizeResume(ctx context.Context, externalID string, req OptimizeRequest) (*tracking.OptimizedResume, error)
	}

	JobService interface {
		Analyze(jobDescription string) (analysis.JobAnalysis, error)
		Search(ctx context.Context, externalID, query, location string, limit int) (job.Postings, error)
		Match(ctx context.Context, externalID, resumeText, jobDescription, location string, limit int) (job.Postings, error)
	}

	BillingService interface {
		CreateCheckout(ctx context.Context, externalID, planName string) (*payment.CheckoutSession, error)
		Portal(ctx context.Context, externalID string) (string, error)
		Payments(ctx context.Context, externalID string) ([]*payment.Payment, error)
		HandleWebhook(ctx context.Context, body []byte, signature string) error
	}

	TrackingService interface {
		Applications(ctx context.Context, externalID string) (tracking.JobApplications, error)
		CreateApplication(ctx context.Context, externalID string, req tracking.JobApplication) (*tracking.JobApplication, error)
		UpdateApplication(ctx context.Context, externalID string, req tracking.JobApplication) (*tracking.JobApplication, error)
		DeleteApplication(ctx context.Context, externalID string, id int64) error
		OptimizedResumes(ctx context.Context, externalID string) (tracking.OptimizedResumes, error)
		DeleteOptimizedResume(ctx context.Context, externalID string, id int64) error
		Preparations(ctx context.Context, externalID string) (tracking.InterviewPreparations, error)
		CreatePreparation(ctx context.Context, externalID string, req tracking.InterviewPreparation) (*tracking.InterviewPreparation, error)
		UpdatePreparation(ctx context.Context, externalID string, req tracking.InterviewPreparation) (*tracking.InterviewPreparation, error)
		DeletePreparation(ctx context.Context, externalID string, id int64) error
	}
)
