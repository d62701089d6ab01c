package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKID = "test-key"

func jwksServer(t *testing.T, pub *rsa.PublicKey) *httptest.Server {
	t.Helper()

	set := map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": testKID,
			"alg": "RS256",
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}},
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set)
	}))
}

func signRS256(t *testing.T, key *rsa.PrivateKey, claims jwtlib.Claims) string {
	t.Helper()

	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodRS256, claims)
	tok.Header["kid"] = testKID
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestVerifier_ValidateToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := jwksServer(t, &key.PublicKey)
	defer srv.Close()

	const issuer = "https://issuer.example/"
	v, err := NewVerifier("https://issuer.example", "resume-api", srv.URL)
	require.NoError(t, err)

	registered := func(iss, aud string) jwtlib.RegisteredClaims {
		return jwtlib.RegisteredClaims{
			Subject:   "auth0|abc",
			Issuer:    iss,
			Audience:  jwtlib.ClaimStrings{aud},
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		}
	}

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: signRS256(t, key, Claims{Email: "a@b.c", RegisteredClaims: registered(issuer, "resume-api")})},
		{name: "wrong issuer", token: signRS256(t, key, Claims{RegisteredClaims: registered("https://evil/", "resume-api")}), wantErr: true},
		{name: "wrong audience", token: signRS256(t, key, Claims{RegisteredClaims: registered(issuer, "other")}), wantErr: true},
		{name: "unknown signer", token: signRS256(t, other, Claims{RegisteredClaims: registered(issuer, "resume-api")}), wantErr: true},
		{name: "garbage", token: "a.b.c", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.ValidateToken(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "auth0|abc", claims.UserID)
			assert.Equal(t, "a@b.c", claims.Email)
		})
	}
}

func TestNewVerifier_RequiresIssuer(t *testing.T) {
	_, err := NewVerifier(" ", "aud", "")
	require.Error(t, err)
}
