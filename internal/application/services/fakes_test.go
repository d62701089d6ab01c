package services

import (
	"context"
	"errors"
	"path"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"resume-evaluator-api/internal/domain/analysis"
	"resume-evaluator-api/internal/domain/job"
	"resume-evaluator-api/internal/domain/payment"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/tracking"
	"resume-evaluator-api/internal/domain/usage"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/domain/user_file"
	"resume-evaluator-api/internal/infrastructure/mq"
)

var errNotUsed = errors.New("not used")

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

type FakeUserRepository struct {
	FetchUserByIDFunc               func(ctx context.Context, id user.ID) (*user.User, error)
	FetchUserByExternalIDFunc       func(ctx context.Context, externalID string) (*user.User, error)
	FetchUserByEmailFunc            func(ctx context.Context, email string) (*user.User, error)
	FetchUserByStripeCustomerIDFunc func(ctx context.Context, customerID string) (*user.User, error)
	CreateUserFunc                  func(ctx context.Context, req user.User) (*user.User, error)
	UpdateProfileFunc               func(ctx context.Context, id user.ID, p user.Profile) (*user.User, error)
	AttachExternalIDFunc            func(ctx context.Context, id user.ID, externalID string) (*user.User, error)
	UpdatePlanFunc                  func(ctx context.Context, id user.ID, p plan.Plan) (*user.User, error)
	SetStripeCustomerIDFunc         func(ctx context.Context, id user.ID, customerID string) error
	SetCurrentResumeFunc            func(ctx context.Context, id user.ID, fileID *int64) (*user.User, error)
	DeleteUserFunc                  func(ctx context.Context, id user.ID) (*user.User, error)
}

func (f *FakeUserRepository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserByIDFunc(ctx, id)
}
func (f *FakeUserRepository) FetchUserByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	if f.FetchUserByExternalIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserByExternalIDFunc(ctx, externalID)
}
func (f *FakeUserRepository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *FakeUserRepository) FetchUserByStripeCustomerID(ctx context.Context, customerID string) (*user.User, error) {
	if f.FetchUserByStripeCustomerIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserByStripeCustomerIDFunc(ctx, customerID)
}
func (f *FakeUserRepository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeUserRepository) UpdateProfile(ctx context.Context, id user.ID, p user.Profile) (*user.User, error) {
	if f.UpdateProfileFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateProfileFunc(ctx, id, p)
}
func (f *FakeUserRepository) AttachExternalID(ctx context.Context, id user.ID, externalID string) (*user.User, error) {
	if f.AttachExternalIDFunc == nil {
		return nil, errNotUsed
	}
	return f.AttachExternalIDFunc(ctx, id, externalID)
}
func (f *FakeUserRepository) UpdatePlan(ctx context.Context, id user.ID, p plan.Plan) (*user.User, error) {
	if f.UpdatePlanFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdatePlanFunc(ctx, id, p)
}
func (f *FakeUserRepository) SetStripeCustomerID(ctx context.Context, id user.ID, customerID string) error {
	if f.SetStripeCustomerIDFunc == nil {
		return errNotUsed
	}
	return f.SetStripeCustomerIDFunc(ctx, id, customerID)
}
func (f *FakeUserRepository) SetCurrentResume(ctx context.Context, id user.ID, fileID *int64) (*user.User, error) {
	if f.SetCurrentResumeFunc == nil {
		return nil, errNotUsed
	}
	return f.SetCurrentResumeFunc(ctx, id, fileID)
}
func (f *FakeUserRepository) DeleteUser(ctx context.Context, id user.ID) (*user.User, error) {
	if f.DeleteUserFunc == nil {
		return nil, errNotUsed
	}
	return f.DeleteUserFunc(ctx, id)
}

// MemUsageRepository is a ledger kept in memory, keyed like the real table.
type MemUsageRepository struct {
	mu         sync.Mutex
	records    map[user.ID]map[string]*usage.Record
	increments int
	FailWith   error
}

func NewMemUsageRepository() *MemUsageRepository {
	return &MemUsageRepository{records: map[user.ID]map[string]*usage.Record{}}
}

func (m *MemUsageRepository) GetOrCreate(_ context.Context, userID user.ID, month string) (*usage.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	rec := m.get(userID, month)
	out := *rec
	return &out, nil
}

func (m *MemUsageRepository) Increment(_ context.Context, userID user.ID, month string, a plan.Action) (*usage.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	rec := m.get(userID, month)
	s, c, q := usage.Deltas(a)
	rec.ScansUsed += s
	rec.CoverLettersGenerated += c
	rec.InterviewQuestionsGenerated += q
	m.increments++
	out := *rec
	return &out, nil
}

func (m *MemUsageRepository) FetchHistory(_ context.Context, userID user.ID, limit int) ([]*usage.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*usage.Record
	for _, r := range m.records[userID] {
		cp := *r
		out = append(out, &cp)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemUsageRepository) get(userID user.ID, month string) *usage.Record {
	byMonth, ok := m.records[userID]
	if !ok {
		byMonth = map[string]*usage.Record{}
		m.records[userID] = byMonth
	}
	rec, ok := byMonth[month]
	if !ok {
		rec = &usage.Record{UserID: userID, Month: month}
		byMonth[month] = rec
	}
	return rec
}

// lookup reads a row without creating it.
func (m *MemUsageRepository) lookup(userID user.ID, month string) (*usage.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[userID][month]
	if !ok {
		return nil, false
	}
	out := *rec
	return &out, true
}

func (m *MemUsageRepository) count(userID user.ID, month string, a plan.Action) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(userID, month).Count(a)
}

type FakeUserFileRepository struct {
	FetchUserFilesFunc func(ctx context.Context, userID user.ID, fileType *user_file.FileType) (user_file.UserFiles, error)
	FetchUserFileFunc  func(ctx context.Context, userID user.ID, id int64) (*user_file.UserFile, error)
	CreateUserFileFunc func(ctx context.Context, userID user.ID, req *user_file.UserFile) (*user_file.UserFile, error)
	DeleteUserFileFunc func(ctx context.Context, userID user.ID, id int64) (*user_file.UserFile, error)
}

func (f *FakeUserFileRepository) FetchUserFiles(ctx context.Context, userID user.ID, fileType *user_file.FileType) (user_file.UserFiles, error) {
	if f.FetchUserFilesFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserFilesFunc(ctx, userID, fileType)
}
func (f *FakeUserFileRepository) FetchUserFile(ctx context.Context, userID user.ID, id int64) (*user_file.UserFile, error) {
	if f.FetchUserFileFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserFileFunc(ctx, userID, id)
}
func (f *FakeUserFileRepository) CreateUserFile(ctx context.Context, userID user.ID, req *user_file.UserFile) (*user_file.UserFile, error) {
	if f.CreateUserFileFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateUserFileFunc(ctx, userID, req)
}
func (f *FakeUserFileRepository) DeleteUserFile(ctx context.Context, userID user.ID, id int64) (*user_file.UserFile, error) {
	if f.DeleteUserFileFunc == nil {
		return nil, errNotUsed
	}
	return f.DeleteUserFileFunc(ctx, userID, id)
}

type FakeAnalysisRepository struct {
	CreateAnalysisFunc func(ctx context.Context, req *analysis.ResumeAnalysis) (*analysis.ResumeAnalysis, error)
	FetchRecentFunc    func(ctx context.Context, userID user.ID, limit int) (analysis.ResumeAnalyses, error)
	FetchAnalysisFunc  func(ctx context.Context, userID user.ID, id int64) (*analysis.ResumeAnalysis, error)
}

func (f *FakeAnalysisRepository) CreateAnalysis(ctx context.Context, req *analysis.ResumeAnalysis) (*analysis.ResumeAnalysis, error) {
	if f.CreateAnalysisFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateAnalysisFunc(ctx, req)
}
func (f *FakeAnalysisRepository) FetchRecent(ctx context.Context, userID user.ID, limit int) (analysis.ResumeAnalyses, error) {
	if f.FetchRecentFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchRecentFunc(ctx, userID, limit)
}
func (f *FakeAnalysisRepository) FetchAnalysis(ctx context.Context, userID user.ID, id int64) (*analysis.ResumeAnalysis, error) {
	if f.FetchAnalysisFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchAnalysisFunc(ctx, userID, id)
}

type FakePaymentRepository struct {
	RecordCheckoutFunc     func(ctx context.Context, req *payment.Payment, p plan.Plan) (bool, error)
	RecordCancellationFunc func(ctx context.Context, eventID string, userID user.ID, p plan.Plan) (bool, error)
	FetchPaymentsFunc      func(ctx context.Context, userID user.ID) ([]*payment.Payment, error)
}

func (f *FakePaymentRepository) RecordCheckout(ctx context.Context, req *payment.Payment, p plan.Plan) (bool, error) {
	if f.RecordCheckoutFunc == nil {
		return false, errNotUsed
	}
	return f.RecordCheckoutFunc(ctx, req, p)
}
func (f *FakePaymentRepository) RecordCancellation(ctx context.Context, eventID string, userID user.ID, p plan.Plan) (bool, error) {
	if f.RecordCancellationFunc == nil {
		return false, errNotUsed
	}
	return f.RecordCancellationFunc(ctx, eventID, userID, p)
}
func (f *FakePaymentRepository) FetchPayments(ctx context.Context, userID user.ID) ([]*payment.Payment, error) {
	if f.FetchPaymentsFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchPaymentsFunc(ctx, userID)
}

type FakeJobRepository struct {
	UpsertPostingsFunc func(ctx context.Context, ps job.Postings) error
}

func (f *FakeJobRepository) UpsertPostings(ctx context.Context, ps job.Postings) error {
	if f.UpsertPostingsFunc == nil {
		return nil
	}
	return f.UpsertPostingsFunc(ctx, ps)
}
func (f *FakeJobRepository) FetchActive(context.Context, int) (job.Postings, error) {
	return nil, errNotUsed
}

type FakeTrackingRepository struct {
	FetchJobApplicationsFunc       func(ctx context.Context, userID user.ID) (tracking.JobApplications, error)
	CreateJobApplicationFunc       func(ctx context.Context, req *tracking.JobApplication) (*tracking.JobApplication, error)
	UpdateJobApplicationFunc       func(ctx context.Context, req *tracking.JobApplication) (*tracking.JobApplication, error)
	DeleteJobApplicationFunc       func(ctx context.Context, userID user.ID, id int64) (bool, error)
	CreateOptimizedResumeFunc      func(ctx context.Context, req *tracking.OptimizedResume) (*tracking.OptimizedResume, error)
	DeleteOptimizedResumeFunc      func(ctx context.Context, userID user.ID, id int64) (bool, error)
	UpdateInterviewPreparationFunc func(ctx context.Context, req *tracking.InterviewPreparation) (*tracking.InterviewPreparation, error)
}

func (f *FakeTrackingRepository) FetchJobApplications(ctx context.Context, userID user.ID) (tracking.JobApplications, error) {
	if f.FetchJobApplicationsFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchJobApplicationsFunc(ctx, userID)
}
func (f *FakeTrackingRepository) CreateJobApplication(ctx context.Context, req *tracking.JobApplication) (*tracking.JobApplication, error) {
	if f.CreateJobApplicationFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateJobApplicationFunc(ctx, req)
}
func (f *FakeTrackingRepository) UpdateJobApplication(ctx context.Context, req *tracking.JobApplication) (*tracking.JobApplication, error) {
	if f.UpdateJobApplicationFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateJobApplicationFunc(ctx, req)
}
func (f *FakeTrackingRepository) DeleteJobApplication(ctx context.Context, userID user.ID, id int64) (bool, error) {
	if f.DeleteJobApplicationFunc == nil {
		return false, errNotUsed
	}
	return f.DeleteJobApplicationFunc(ctx, userID, id)
}
func (f *FakeTrackingRepository) FetchOptimizedResumes(context.Context, user.ID) (tracking.OptimizedResumes, error) {
	return nil, errNotUsed
}
func (f *FakeTrackingRepository) CreateOptimizedResume(ctx context.Context, req *tracking.OptimizedResume) (*tracking.OptimizedResume, error) {
	if f.CreateOptimizedResumeFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateOptimizedResumeFunc(ctx, req)
}
func (f *FakeTrackingRepository) DeleteOptimizedResume(ctx context.Context, userID user.ID, id int64) (bool, error) {
	if f.DeleteOptimizedResumeFunc == nil {
		return false, errNotUsed
	}
	return f.DeleteOptimizedResumeFunc(ctx, userID, id)
}
func (f *FakeTrackingRepository) FetchInterviewPreparations(context.Context, user.ID) (tracking.InterviewPreparations, error) {
	return nil, errNotUsed
}
func (f *FakeTrackingRepository) CreateInterviewPreparation(context.Context, *tracking.InterviewPreparation) (*tracking.InterviewPreparation, error) {
	return nil, errNotUsed
}
func (f *FakeTrackingRepository) UpdateInterviewPreparation(ctx context.Context, req *tracking.InterviewPreparation) (*tracking.InterviewPreparation, error) {
	if f.UpdateInterviewPreparationFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateInterviewPreparationFunc(ctx, req)
}
func (f *FakeTrackingRepository) DeleteInterviewPreparation(context.Context, user.ID, int64) (bool, error) {
	return false, errNotUsed
}

type FakeS3 struct {
	PutFunc     func(ctx context.Context, key, contentType string, body []byte) error
	DeleteFunc  func(ctx context.Context, key string) error
	PresignFunc func(ctx context.Context, key string) (string, error)
}

func (f *FakeS3) Put(ctx context.Context, key, contentType string, body []byte) error {
	if f.PutFunc == nil {
		return errNotUsed
	}
	return f.PutFunc(ctx, key, contentType, body)
}
func (f *FakeS3) Delete(ctx context.Context, key string) error {
	if f.DeleteFunc == nil {
		return errNotUsed
	}
	return f.DeleteFunc(ctx, key)
}
func (f *FakeS3) PresignGetURL(ctx context.Context, key string) (string, error) {
	if f.PresignFunc == nil {
		return "https://files.example.com/" + key, nil
	}
	return f.PresignFunc(ctx, key)
}
func (f *FakeS3) GetBucket() string { return "test-bucket" }

type FakeExtractor struct {
	TextFunc func(filename string, data []byte) (string, error)
}

func (f *FakeExtractor) Supported(filename string) bool {
	switch strings.ToLower(path.Ext(filename)) {
	case ".pdf", ".docx", ".doc":
		return true
	}
	return false
}
func (f *FakeExtractor) Text(filename string, data []byte) (string, error) {
	if f.TextFunc == nil {
		return "", errNotUsed
	}
	return f.TextFunc(filename, data)
}

type FakeEvaluator struct {
	EvaluateResumeFunc             func(ctx context.Context, resume, job string) (*analysis.Evaluation, error)
	GenerateCoverLetterFunc        func(ctx context.Context, resume, job, company string) (string, error)
	GenerateInterviewQuestionsFunc func(ctx context.Context, resume, job string) ([]string, error)
	OptimizeResumeFunc             func(ctx context.Context, resume, job, requirements string) (string, error)
}

func (f *FakeEvaluator) EvaluateResume(ctx context.Context, resume, job string) (*analysis.Evaluation, error) {
	if f.EvaluateResumeFunc == nil {
		return nil, errNotUsed
	}
	return f.EvaluateResumeFunc(ctx, resume, job)
}
func (f *FakeEvaluator) GenerateCoverLetter(ctx context.Context, resume, job, company string) (string, error) {
	if f.GenerateCoverLetterFunc == nil {
		return "", errNotUsed
	}
	return f.GenerateCoverLetterFunc(ctx, resume, job, company)
}
func (f *FakeEvaluator) GenerateInterviewQuestions(ctx context.Context, resume, job string) ([]string, error) {
	if f.GenerateInterviewQuestionsFunc == nil {
		return nil, errNotUsed
	}
	return f.GenerateInterviewQuestionsFunc(ctx, resume, job)
}
func (f *FakeEvaluator) OptimizeResume(ctx context.Context, resume, job, requirements string) (string, error) {
	if f.OptimizeResumeFunc == nil {
		return "", errNotUsed
	}
	return f.OptimizeResumeFunc(ctx, resume, job, requirements)
}

type FakeJobSearch struct {
	SearchFunc func(ctx context.Context, query, location string, limit int) (job.Postings, error)
}

func (f *FakeJobSearch) Search(ctx context.Context, query, location string, limit int) (job.Postings, error) {
	if f.SearchFunc == nil {
		return nil, errNotUsed
	}
	return f.SearchFunc(ctx, query, location, limit)
}

type FakeBilling struct {
	CreateCustomerFunc        func(ctx context.Context, email, externalID string) (string, error)
	CreateCheckoutSessionFunc func(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error)
	CreatePortalSessionFunc   func(ctx context.Context, customerID, returnURL string) (string, error)
	ParseWebhookFunc          func(body []byte, signature string) (*payment.WebhookEvent, error)
}

func (f *FakeBilling) CreateCustomer(ctx context.Context, email, externalID string) (string, error) {
	if f.CreateCustomerFunc == nil {
		return "", errNotUsed
	}
	return f.CreateCustomerFunc(ctx, email, externalID)
}
func (f *FakeBilling) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	if f.CreateCheckoutSessionFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateCheckoutSessionFunc(ctx, req)
}
func (f *FakeBilling) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	if f.CreatePortalSessionFunc == nil {
		return "", errNotUsed
	}
	return f.CreatePortalSessionFunc(ctx, customerID, returnURL)
}
func (f *FakeBilling) ParseWebhook(body []byte, signature string) (*payment.WebhookEvent, error) {
	if f.ParseWebhookFunc == nil {
		return nil, errNotUsed
	}
	return f.ParseWebhookFunc(body, signature)
}

type FakePublisher struct {
	mu     sync.Mutex
	Events []mq.Event
}

func (f *FakePublisher) Publish(e mq.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Events = append(f.Events, e)
}

func (f *FakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Events))
	for i, e := range f.Events {
		out[i] = e.Type
	}
	return out
}

// usersByExternalID serves lookups from a fixed set of users.
func usersByExternalID(us ...*user.User) func(context.Context, string) (*user.User, error) {
	return func(_ context.Context, externalID string) (*user.User, error) {
		for _, u := range us {
			if u.ExternalID == externalID {
				return u, nil
			}
		}
		return nil, nil
	}
}
