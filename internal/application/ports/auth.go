package ports

import (
	"time"

	"resume-evaluator-api/internal/infrastructure/jwt"
)

type (
	// TokenValidator is satisfied by both the shared-secret service and the JWKS verifier.
	TokenValidator interface {
		ValidateToken(token string) (*jwt.Claims, error)
	}

	TokenIssuer interface {
		GenerateJWT(userID, email, role string, expiresIn time.Duration) (string, error)
	}
)
