package services

import (
	"context"
	"errors"
	"time"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/user"
)

const (
	RoleUser = "user"

	DefaultTokenTTL = time.Hour
)

var ErrFailedToGenerateToken = errors.New("failed to generate token")

// AuthService mints shared-secret tokens for existing users. It backs the
// operator CLI when no identity provider is configured.
type AuthService struct {
	userRepository user.Repository
	issuer         ports.TokenIssuer
}

func NewAuthService(userRepository user.Repository, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		issuer:         issuer,
	}
}

func (as *AuthService) IssueToken(ctx context.Context, externalID string, ttl time.Duration) (string, error) {
	u, err := findUser(ctx, as.userRepository, externalID)
	if err != nil {
		return "", err
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	token, err := as.issuer.GenerateJWT(u.ExternalID, u.Email, RoleUser, ttl)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
