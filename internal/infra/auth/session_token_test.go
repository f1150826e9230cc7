package auth

import (
	"testing"
	"time"

	"countdown/config"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey    = "test_api_key"
	testAPISecret = "test_api_secret_very_long_for_testing"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestVerifier(t *testing.T) *sessionTokenVerifier {
	t.Helper()

	cfg := &config.Config{
		Shopify: &config.ShopifyConfig{
			APIKey:    testAPIKey,
			APISecret: testAPISecret,
			Leeway:    5 * time.Second,
		},
	}

	verifier, err := NewSessionVerifier(cfg)
	require.NoError(t, err)

	v := verifier.(*sessionTokenVerifier)
	v.now = func() time.Time { return testNow }

	return v
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":  "https://demo.myshopify.com/admin",
		"dest": "https://demo.myshopify.com",
		"aud":  testAPIKey,
		"sub":  "42",
		"exp":  testNow.Add(time.Minute).Unix(),
		"nbf":  testNow.Add(-time.Minute).Unix(),
		"iat":  testNow.Add(-time.Minute).Unix(),
	}
}

func TestNewSessionVerifier_RequiresSecret(t *testing.T) {
	_, err := NewSessionVerifier(&config.Config{})
	assert.Error(t, err)

	_, err = NewSessionVerifier(&config.Config{Shopify: &config.ShopifyConfig{APIKey: testAPIKey}})
	assert.Error(t, err)
}

func TestSessionVerifier_ValidToken(t *testing.T) {
	verifier := newTestVerifier(t)

	session, err := verifier.Verify(signToken(t, jwt.SigningMethodHS256, testAPISecret, validClaims()))

	require.NoError(t, err)
	assert.Equal(t, "demo.myshopify.com", session.Shop)
	assert.Equal(t, "42", session.UserID)
}

func TestSessionVerifier_RejectsBadTokens(t *testing.T) {
	verifier := newTestVerifier(t)

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "not a jwt",
			token: func() string { return "clearly-not-a-jwt-token-format" },
		},
		{
			name:  "wrong secret",
			token: func() string { return signToken(t, jwt.SigningMethodHS256, "another_secret", validClaims()) },
		},
		{
			name:  "wrong algorithm",
			token: func() string { return signToken(t, jwt.SigningMethodHS512, testAPISecret, validClaims()) },
		},
		{
			name: "expired",
			token: func() string {
				claims := validClaims()
				claims["exp"] = testNow.Add(-time.Minute).Unix()
				return signToken(t, jwt.SigningMethodHS256, testAPISecret, claims)
			},
		},
		{
			name: "missing expiry",
			token: func() string {
				claims := validClaims()
				delete(claims, "exp")
				return signToken(t, jwt.SigningMethodHS256, testAPISecret, claims)
			},
		},
		{
			name: "other app",
			token: func() string {
				claims := validClaims()
				claims["aud"] = "someone_else"
				return signToken(t, jwt.SigningMethodHS256, testAPISecret, claims)
			},
		},
		{
			name: "missing dest",
			token: func() string {
				claims := validClaims()
				delete(claims, "dest")
				return signToken(t, jwt.SigningMethodHS256, testAPISecret, claims)
			},
		},
		{
			name: "issuer for another shop",
			token: func() string {
				claims := validClaims()
				claims["iss"] = "https://evil.myshopify.com/admin"
				return signToken(t, jwt.SigningMethodHS256, testAPISecret, claims)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := verifier.Verify(tt.token())

			assert.Nil(t, session)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
		})
	}
}

func TestSessionVerifier_LeewayAllowsSmallDrift(t *testing.T) {
	verifier := newTestVerifier(t)

	claims := validClaims()
	claims["exp"] = testNow.Add(-2 * time.Second).Unix()

	_, err := verifier.Verify(signToken(t, jwt.SigningMethodHS256, testAPISecret, claims))
	assert.NoError(t, err)
}
