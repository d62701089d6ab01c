package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

const defaultLeeway = 30 * time.Second

// Verifier validates RS-signed tokens from an external identity provider
// against its published JWKS.
type Verifier struct {
	keyfunc keyfunc.Keyfunc
	parser  *jwt.Parser
}

func NewVerifier(issuer, audience, jwksURL string) (*Verifier, error) {
	issuer = normalizeIssuer(issuer)
	if issuer == "" {
		return nil, errors.New("issuer must be set")
	}
	if jwksURL == "" {
		jwksURL = issuer + ".well-known/jwks.json"
	}

	kf, err := keyfunc.NewDefault([]string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to init JWKS keyfunc: %w", err)
	}

	opts := []jwt.ParserOption{
		jwt.WithIssuer(issuer),
		jwt.WithLeeway(defaultLeeway),
		jwt.WithValidMethods([]string{
			jwt.SigningMethodRS256.Name,
			jwt.SigningMethodRS384.Name,
			jwt.SigningMethodRS512.Name,
		}),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &Verifier{keyfunc: kf, parser: jwt.NewParser(opts...)}, nil
}

func (v *Verifier) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := v.parser.ParseWithClaims(tokenStr, &Claims{}, v.keyfunc.Keyfunc)
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, errors.New("token missing sub")
	}
	return claims, nil
}

func normalizeIssuer(issuer string) string {
	issuer = strings.TrimSpace(issuer)
	if issuer == "" {
		return ""
	}
	if !strings.HasSuffix(issuer, "/") {
		issuer += "/"
	}
	return issuer
}
