package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/analysis"
	"resume-evaluator-api/internal/domain/job"
	"resume-evaluator-api/internal/domain/payment"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/tracking"
	"resume-evaluator-api/internal/domain/usage"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/domain/user_file"
	jwtSvc "resume-evaluator-api/internal/infrastructure/jwt"
)

const (
	testSecret     = "test-secret"
	testExternalID = "auth0|jane"
	testEmail      = "jane@example.com"
)

var errNotUsed = errors.New("not used")

type FakeUserService struct {
	FindUserFunc         func(ctx context.Context, externalID string) (*user.User, error)
	CreateOrMergeFunc    func(ctx context.Context, externalID string, p user.Profile) (*user.User, error)
	UpdateProfileFunc    func(ctx context.Context, externalID string, p user.Profile) (*user.User, error)
	SetCurrentResumeFunc func(ctx context.Context, externalID string, fileID *int64) (*user.User, error)
	ChangePlanFunc       func(ctx context.Context, externalID string, p plan.Plan) (*user.User, error)
	DeleteUserFunc       func(ctx context.Context, externalID string) error
}

func (f *FakeUserService) FindUser(ctx context.Context, externalID string) (*user.User, error) {
	if f.FindUserFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUserFunc(ctx, externalID)
}
func (f *FakeUserService) CreateOrMerge(ctx context.Context, externalID string, p user.Profile) (*user.User, error) {
	if f.CreateOrMergeFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateOrMergeFunc(ctx, externalID, p)
}
func (f *FakeUserService) UpdateProfile(ctx context.Context, externalID string, p user.Profile) (*user.User, error) {
	if f.UpdateProfileFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateProfileFunc(ctx, externalID, p)
}
func (f *FakeUserService) SetCurrentResume(ctx context.Context, externalID string, fileID *int64) (*user.User, error) {
	if f.SetCurrentResumeFunc == nil {
		return nil, errNotUsed
	}
	return f.SetCurrentResumeFunc(ctx, externalID, fileID)
}
func (f *FakeUserService) ChangePlan(ctx context.Context, externalID string, p plan.Plan) (*user.User, error) {
	if f.ChangePlanFunc == nil {
		return nil, errNotUsed
	}
	return f.ChangePlanFunc(ctx, externalID, p)
}
func (f *FakeUserService) DeleteUser(ctx context.Context, externalID string) error {
	if f.DeleteUserFunc == nil {
		return errNotUsed
	}
	return f.DeleteUserFunc(ctx, externalID)
}

type FakeEntitlementService struct {
	IsAllowedFunc func(ctx context.Context, externalID string, a plan.Action) (bool, error)
	StatusFunc    func(ctx context.Context, externalID string) (*usage.Status, error)
	HistoryFunc   func(ctx context.Context, externalID string, months int) ([]*usage.Record, error)
}

func (f *FakeEntitlementService) IsAllowed(ctx context.Context, externalID string, a plan.Action) (bool, error) {
	if f.IsAllowedFunc == nil {
		return false, errNotUsed
	}
	return f.IsAllowedFunc(ctx, externalID, a)
}
func (f *FakeEntitlementService) Status(ctx context.Context, externalID string) (*usage.Status, error) {
	if f.StatusFunc == nil {
		return nil, errNotUsed
	}
	return f.StatusFunc(ctx, externalID)
}
func (f *FakeEntitlementService) History(ctx context.Context, externalID string, months int) ([]*usage.Record, error) {
	if f.HistoryFunc == nil {
		return nil, errNotUsed
	}
	return f.HistoryFunc(ctx, externalID, months)
}

type FakeUserFileService struct {
	ListFilesFunc    func(ctx context.Context, externalID string, fileType *user_file.FileType) (user_file.UserFiles, error)
	UploadResumeFunc func(ctx context.Context, externalID string, in *multipart.FileHeader) (*ports.Upload, error)
	DeleteFileFunc   func(ctx context.Context, externalID string, id int64) error
}

func (f *FakeUserFileService) ListFiles(ctx context.Context, externalID string, fileType *user_file.FileType) (user_file.UserFiles, error) {
	if f.ListFilesFunc == nil {
		return nil, errNotUsed
	}
	return f.ListFilesFunc(ctx, externalID, fileType)
}
func (f *FakeUserFileService) UploadResume(ctx context.Context, externalID string, in *multipart.FileHeader) (*ports.Upload, error) {
	if f.UploadResumeFunc == nil {
		return nil, errNotUsed
	}
	return f.UploadResumeFunc(ctx, externalID, in)
}
func (f *FakeUserFileService) DeleteFile(ctx context.Context, externalID string, id int64) error {
	if f.DeleteFileFunc == nil {
		return errNotUsed
	}
	return f.DeleteFileFunc(ctx, externalID, id)
}

type FakeAnalysisService struct {
	EvaluateFunc func(ctx context.Context, externalID string, req ports.EvaluateRequest) (*analysis.ResumeAnalysis, error)
	ListFunc     func(ctx context.Context, externalID string, limit int) (analysis.ResumeAnalyses, error)
	GetFunc      func(ctx context.Context, externalID string, id int64) (*analysis.ResumeAnalysis, error)
}

func (f *FakeAnalysisService) Evaluate(ctx context.Context, externalID string, req ports.EvaluateRequest) (*analysis.ResumeAnalysis, error) {
	if f.EvaluateFunc == nil {
		return nil, errNotUsed
	}
	return f.EvaluateFunc(ctx, externalID, req)
}
func (f *FakeAnalysisService) List(ctx context.Context, externalID string, limit int) (analysis.ResumeAnalyses, error) {
	if f.ListFunc == nil {
		return nil, errNotUsed
	}
	return f.ListFunc(ctx, externalID, limit)
}
func (f *FakeAnalysisService) Get(ctx context.Context, externalID string, id int64) (*analysis.ResumeAnalysis, error) {
	if f.GetFunc == nil {
		return nil, errNotUsed
	}
	return f.GetFunc(ctx, externalID, id)
}

type FakeGenerationService struct {
	CoverLetterFunc        func(ctx context.Context, externalID string, req ports.CoverLetterRequest) (string, error)
	InterviewQuestionsFunc func(ctx context.Context, externalID, resumeText, jobDescription string) ([]string, error)
	OptimizeResumeFunc     func(ctx context.Context, externalID string, req ports.OptimizeRequest) (*tracking.OptimizedResume, error)
}

func (f *FakeGenerationService) CoverLetter(ctx context.Context, externalID string, req ports.CoverLetterRequest) (string, error) {
	if f.CoverLetterFunc == nil {
		return "", errNotUsed
	}
	return f.CoverLetterFunc(ctx, externalID, req)
}
func (f *FakeGenerationService) InterviewQuestions(ctx context.Context, externalID, resumeText, jobDescription string) ([]string, error) {
	if f.InterviewQuestionsFunc == nil {
		return nil, errNotUsed
	}
	return f.InterviewQuestionsFunc(ctx, externalID, resumeText, jobDescription)
}
func (f *FakeGenerationService) OptimizeResume(ctx context.Context, externalID string, req ports.OptimizeRequest) (*tracking.OptimizedResume, error) {
	if f.OptimizeResumeFunc == nil {
		return nil, errNotUsed
	}
	return f.OptimizeResumeFunc(ctx, externalID, req)
}

type FakeJobService struct {
	AnalyzeFunc func(jobDescription string) (analysis.JobAnalysis, error)
	SearchFunc  func(ctx context.Context, externalID, query, location string, limit int) (job.Postings, error)
	MatchFunc   func(ctx context.Context, externalID, resumeText, jobDescription, location string, limit int) (job.Postings, error)
}

func (f *FakeJobService) Analyze(jobDescription string) (analysis.JobAnalysis, error) {
	if f.AnalyzeFunc == nil {
		return analysis.JobAnalysis{}, errNotUsed
	}
	return f.AnalyzeFunc(jobDescription)
}
func (f *FakeJobService) Search(ctx context.Context, externalID, query, location string, limit int) (job.Postings, error) {
	if f.SearchFunc == nil {
		return nil, errNotUsed
	}
	return f.SearchFunc(ctx, externalID, query, location, limit)
}
func (f *FakeJobService) Match(ctx context.Context, externalID, resumeText, jobDescription, location string, limit int) (job.Postings, error) {
	if f.MatchFunc == nil {
		return nil, errNotUsed
	}
	return f.MatchFunc(ctx, externalID, resumeText, jobDescription, location, limit)
}

type FakeBillingService struct {
	CreateCheckoutFunc func(ctx context.Context, externalID, planName string) (*payment.CheckoutSession, error)
	PortalFunc         func(ctx context.Context, externalID string) (string, error)
	PaymentsFunc       func(ctx context.Context, externalID string) ([]*payment.Payment, error)
	HandleWebhookFunc  func(ctx context.Context, body []byte, signature string) error
}

func (f *FakeBillingService) CreateCheckout(ctx context.Context, externalID, planName string) (*payment.CheckoutSession, error) {
	if f.CreateCheckoutFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateCheckoutFunc(ctx, externalID, planName)
}
func (f *FakeBillingService) Portal(ctx context.Context, externalID string) (string, error) {
	if f.PortalFunc == nil {
		return "", errNotUsed
	}
	return f.PortalFunc(ctx, externalID)
}
func (f *FakeBillingService) Payments(ctx context.Context, externalID string) ([]*payment.Payment, error) {
	if f.PaymentsFunc == nil {
		return nil, errNotUsed
	}
	return f.PaymentsFunc(ctx, externalID)
}
func (f *FakeBillingService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if f.HandleWebhookFunc == nil {
		return errNotUsed
	}
	return f.HandleWebhookFunc(ctx, body, signature)
}

// FakeTrackingService embeds the interface so tests only stub what they call.
type FakeTrackingService struct {
	ports.TrackingService

	ApplicationsFunc      func(ctx context.Context, externalID string) (tracking.JobApplications, error)
	CreateApplicationFunc func(ctx context.Context, externalID string, req tracking.JobApplication) (*tracking.JobApplication, error)
	UpdateApplicationFunc func(ctx context.Context, externalID string, req tracking.JobApplication) (*tracking.JobApplication, error)
	DeleteApplicationFunc func(ctx context.Context, externalID string, id int64) error
	PreparationsFunc      func(ctx context.Context, externalID string) (tracking.InterviewPreparations, error)
}

func (f *FakeTrackingService) Applications(ctx context.Context, externalID string) (tracking.JobApplications, error) {
	return f.ApplicationsFunc(ctx, externalID)
}
func (f *FakeTrackingService) CreateApplication(ctx context.Context, externalID string, req tracking.JobApplication) (*tracking.JobApplication, error) {
	return f.CreateApplicationFunc(ctx, externalID, req)
}
func (f *FakeTrackingService) UpdateApplication(ctx context.Context, externalID string, req tracking.JobApplication) (*tracking.JobApplication, error) {
	return f.UpdateApplicationFunc(ctx, externalID, req)
}
func (f *FakeTrackingService) DeleteApplication(ctx context.Context, externalID string, id int64) error {
	return f.DeleteApplicationFunc(ctx, externalID, id)
}
func (f *FakeTrackingService) Preparations(ctx context.Context, externalID string) (tracking.InterviewPreparations, error) {
	return f.PreparationsFunc(ctx, externalID)
}

func newTestRouter(t *testing.T) (*gin.Engine, *jwtSvc.Service, *zap.Logger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return gin.New(), jwtSvc.New(testSecret), zap.NewNop()
}

func authHeader(t *testing.T, j *jwtSvc.Service) map[string]string {
	t.Helper()

	tok, err := j.GenerateJWT(testExternalID, testEmail, "user", time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	case []byte:
		buf = bytes.NewReader(v)
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
