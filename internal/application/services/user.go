package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/usage"
	domain "resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/domain/user_file"
	"resume-evaluator-api/internal/infrastructure/metrics"
	"resume-evaluator-api/internal/infrastructure/mq"
)

type UserService struct {
	userRepository     domain.Repository
	usageRepository    usage.Repository
	userFileRepository user_file.Repository
	s3                 ports.S3Client
	mq                 ports.EventPublisher
	logger             *zap.Logger
	mCounter           *prometheus.CounterVec
	now                func() time.Time
}

func NewUserService(
	userRepository domain.Repository,
	usageRepository usage.Repository,
	userFileRepository user_file.Repository,
	s3 ports.S3Client,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) *UserService {
	return &UserService{
		userRepository:     userRepository,
		usageRepository:    usageRepository,
		userFileRepository: userFileRepository,
		s3:                 s3,
		mq:                 mq,
		logger:             logger,
		mCounter:           mCounter,
		now:                time.Now,
	}
}

func (us *UserService) FindUser(ctx context.Context, externalID string) (*domain.User, error) {
	return findUser(ctx, us.userRepository, externalID)
}

// CreateOrMerge resolves the caller to exactly one user record:
// a known external id updates that user; a known email under another
// external id re-points the record to the new external id; anything else
// creates a free user with an empty ledger for the current month.
func (us *UserService) CreateOrMerge(ctx context.Context, externalID string, p domain.Profile) (*domain.User, error) {
	externalID = strings.TrimSpace(externalID)
	p.Email = normalizeEmail(p.Email)
	if externalID == "" {
		return nil, validationError("user id is required")
	}
	if p.Email == "" {
		return nil, validationError("email is required")
	}

	u, err := us.merge(ctx, externalID, p)
	if err != nil || u != nil {
		return u, err
	}

	created, err := us.userRepository.CreateUser(ctx, domain.User{
		ExternalID:    externalID,
		Email:         p.Email,
		FirstName:     p.FirstName,
		MiddleName:    p.MiddleName,
		LastName:      p.LastName,
		PositionLevel: p.PositionLevel,
		JobCategory:   p.JobCategory,
		Plan:          plan.Free,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// lost a race with a concurrent create for the same identity
		u, err = us.merge(ctx, externalID, p)
		if err == nil && u == nil {
			err = fmt.Errorf("create user: %w", domain.ErrAlreadyExists)
		}
		return u, err
	}
	if err != nil {
		return nil, err
	}

	if _, err = us.usageRepository.GetOrCreate(ctx, created.ID, usage.MonthOf(us.now())); err != nil {
		us.logger.Error("GetOrCreate() usage error", zap.Int64("user_id", int64(created.ID)), zap.Error(err))
	}

	us.mq.Publish(mq.NewEvent(mq.EventUserCreated, created.ExternalID, map[string]string{
		"email": created.Email,
		"plan":  created.Plan.String(),
	}))
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return created, nil
}

// merge returns (nil, nil) when neither the external id nor the email is known.
func (us *UserService) merge(ctx context.Context, externalID string, p domain.Profile) (*domain.User, error) {
	existing, err := us.userRepository.FetchUserByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return us.updateProfile(ctx, existing, p)
	}

	existing, err = us.userRepository.FetchUserByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	previous := existing.ExternalID
	attached, err := us.userRepository.AttachExternalID(ctx, existing.ID, externalID)
	if err != nil {
		return nil, err
	}
	if attached == nil {
		return nil, ErrNotFound
	}

	us.logger.Info("user identity merged",
		zap.Int64("user_id", int64(attached.ID)),
		zap.String("previous_external_id", previous),
		zap.String("external_id", externalID),
	)
	us.mq.Publish(mq.NewEvent(mq.EventUserMerged, externalID, map[string]string{
		"previous_external_id": previous,
	}))

	return us.updateProfile(ctx, attached, p)
}

func (us *UserService) UpdateProfile(ctx context.Context, externalID string, p domain.Profile) (*domain.User, error) {
	u, err := findUser(ctx, us.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	p.Email = normalizeEmail(p.Email)

	return us.updateProfile(ctx, u, p)
}

func (us *UserService) updateProfile(ctx context.Context, u *domain.User, p domain.Profile) (*domain.User, error) {
	merged := u.Profile().Merge(p)
	if merged == u.Profile() {
		return u, nil
	}

	updated, err := us.userRepository.UpdateProfile(ctx, u.ID, merged)
	if errors.Is(err, domain.ErrEmailTaken) {
		return nil, validationError("email already in use")
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	return updated, nil
}

// SetCurrentResume points the user at one of their own resume files.
// A nil fileID clears the pointer.
func (us *UserService) SetCurrentResume(ctx context.Context, externalID string, fileID *int64) (*domain.User, error) {
	u, err := findUser(ctx, us.userRepository, externalID)
	if err != nil {
		return nil, err
	}

	if fileID != nil {
		f, err := us.userFileRepository.FetchUserFile(ctx, u.ID, *fileID)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, ErrNotFound
		}
		if f.FileType != user_file.TypeResume {
			return nil, validationError("file %d is not a resume", f.ID)
		}
	}

	updated, err := us.userRepository.SetCurrentResume(ctx, u.ID, fileID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	return updated, nil
}

// ChangePlan is the only path that mutates a user's plan outside of checkout.
func (us *UserService) ChangePlan(ctx context.Context, externalID string, p plan.Plan) (*domain.User, error) {
	u, err := findUser(ctx, us.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	return us.changePlan(ctx, u, p)
}

func (us *UserService) changePlan(ctx context.Context, u *domain.User, p plan.Plan) (*domain.User, error) {
	if _, ok := plan.Parse(string(p)); !ok {
		return nil, validationError("unknown plan %q", p)
	}
	if u.Plan == p {
		return u, nil
	}

	updated, err := us.userRepository.UpdatePlan(ctx, u.ID, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	us.mq.Publish(mq.NewEvent(mq.EventPlanChanged, updated.ExternalID, map[string]string{
		"from": u.Plan.String(),
		"to":   p.String(),
	}))
	us.mCounter.WithLabelValues(metrics.PlanChanged).Inc()

	return updated, nil
}

// DeleteUser removes stored objects first; the row delete cascades to every
// dependent table.
func (us *UserService) DeleteUser(ctx context.Context, externalID string) error {
	u, err := findUser(ctx, us.userRepository, externalID)
	if err != nil {
		return err
	}

	files, err := us.userFileRepository.FetchUserFiles(ctx, u.ID, nil)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err = us.s3.Delete(ctx, f.StorageKey); err != nil {
			us.logger.Error("Delete() s3 object error", zap.String("key", f.StorageKey), zap.Error(err))
		}
	}

	if _, err = us.userRepository.DeleteUser(ctx, u.ID); err != nil {
		return err
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func findUser(ctx context.Context, repo domain.Repository, externalID string) (*domain.User, error) {
	if externalID == "" {
		return nil, ErrNotFound
	}
	u, err := repo.FetchUserByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.UserService = (*UserService)(nil)
