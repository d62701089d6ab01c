package services

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/usage"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/infrastructure/metrics"
)

// EntitlementService decides whether a user may perform a metered action this
// month and records the action afterwards. Check and record are separate
// statements, so concurrent requests can overshoot a quota by at most the
// number of requests in flight.
type EntitlementService struct {
	userRepository  user.Repository
	usageRepository usage.Repository
	catalog         plan.Catalog
	logger          *zap.Logger
	mCounter        *prometheus.CounterVec
	now             func() time.Time
}

func NewEntitlementService(
	userRepository user.Repository,
	usageRepository usage.Repository,
	catalog plan.Catalog,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) *EntitlementService {
	return &EntitlementService{
		userRepository:  userRepository,
		usageRepository: usageRepository,
		catalog:         catalog,
		logger:          logger,
		mCounter:        mCounter,
		now:             time.Now,
	}
}

// IsAllowed fails closed: an unknown user is never allowed.
func (es *EntitlementService) IsAllowed(ctx context.Context, externalID string, a plan.Action) (bool, error) {
	u, err := es.userRepository.FetchUserByExternalID(ctx, externalID)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}

	return es.allowed(ctx, u, a)
}

// Record counts one occurrence of a for the current month. Failures are logged
// and swallowed since the action already happened.
func (es *EntitlementService) Record(ctx context.Context, externalID string, a plan.Action) {
	u, err := es.userRepository.FetchUserByExternalID(ctx, externalID)
	if err != nil || u == nil {
		es.logger.Error("Record() user lookup error", zap.String("external_id", externalID), zap.Error(err))
		return
	}
	es.record(ctx, u, a)
}

// Status reports plan, limits and current month usage. Unknown users get the free defaults.
func (es *EntitlementService) Status(ctx context.Context, externalID string) (*usage.Status, error) {
	month := usage.MonthOf(es.now())

	u, err := es.userRepository.FetchUserByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return &usage.Status{
			Plan:   plan.Free,
			Month:  month,
			Usage:  usage.Record{Month: month},
			Limits: es.catalog.Limits(plan.Free),
		}, nil
	}

	rec, err := es.usageRepository.GetOrCreate(ctx, u.ID, month)
	if err != nil {
		return nil, err
	}

	return &usage.Status{
		Plan:   u.Plan,
		Month:  month,
		Usage:  *rec,
		Limits: es.catalog.Limits(u.Plan),
	}, nil
}

func (es *EntitlementService) History(ctx context.Context, externalID string, months int) ([]*usage.Record, error) {
	u, err := es.userRepository.FetchUserByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return es.usageRepository.FetchHistory(ctx, u.ID, months)
}

func (es *EntitlementService) allowed(ctx context.Context, u *user.User, a plan.Action) (bool, error) {
	quota := es.catalog.Quota(u.Plan, a)
	if quota.IsUnlimited() {
		return true, nil
	}
	if quota == 0 {
		return false, nil
	}

	rec, err := es.usageRepository.GetOrCreate(ctx, u.ID, usage.MonthOf(es.now()))
	if err != nil {
		return false, fmt.Errorf("load usage: %w", err)
	}

	return quota.Allows(rec.Count(a)), nil
}

// authorize is allowed with the denial turned into ErrQuotaExceeded.
func (es *EntitlementService) authorize(ctx context.Context, u *user.User, a plan.Action) error {
	ok, err := es.allowed(ctx, u, a)
	if err != nil {
		return err
	}
	if !ok {
		es.mCounter.WithLabelValues(metrics.QuotaDenied).Inc()
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, a)
	}
	return nil
}

func (es *EntitlementService) record(ctx context.Context, u *user.User, a plan.Action) {
	if _, err := es.usageRepository.Increment(ctx, u.ID, usage.MonthOf(es.now()), a); err != nil {
		es.logger.Error("Increment() error",
			zap.Int64("user_id", int64(u.ID)),
			zap.String("action", a.String()),
			zap.Error(err),
		)
		return
	}
	if a == plan.Scan {
		es.mCounter.WithLabelValues(metrics.ScanRecorded).Inc()
	}
}

func (es *EntitlementService) requireFeature(u *user.User, f plan.Feature) error {
	if !es.catalog.HasFeature(u.Plan, f) {
		return fmt.Errorf("%w: %s", ErrFeatureLocked, f)
	}
	return nil
}

var _ ports.EntitlementService = (*EntitlementService)(nil)
