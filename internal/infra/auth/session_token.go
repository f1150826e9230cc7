// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"countdown/config"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/domain/service"
	"countdown/internal/errors"
)

// sessionClaims are the claims Shopify puts into an embedded-app session token.
type sessionClaims struct {
	jwt.RegisteredClaims
	Dest string `json:"dest"` // Shop URL, e.g. https://example.myshopify.com
	SID  string `json:"sid,omitempty"`
}

// sessionTokenVerifier validates HS256 session tokens signed with the app secret.
type sessionTokenVerifier struct {
	apiKey    string        // Expected audience; empty skips the audience check.
	apiSecret string        // Shared secret used to sign the tokens.
	leeway    time.Duration // Allowed clock drift for exp and nbf.
	now       func() time.Time
}

// NewSessionVerifier is the constructor for sessionTokenVerifier.
func NewSessionVerifier(cfg *config.Config) (service.SessionVerifier, error) {
	if cfg.Shopify == nil || cfg.Shopify.APISecret == "" {
		return nil, errors.New("shopify api secret must be provided")
	}

	return &sessionTokenVerifier{
		apiKey:    cfg.Shopify.APIKey,
		apiSecret: cfg.Shopify.APISecret,
		leeway:    cfg.Shopify.Leeway,
		now:       time.Now,
	}, nil
}

// Verify parses tokenString and returns the shop the token was issued for.
func (v *sessionTokenVerifier) Verify(tokenString string) (*service.ShopSession, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.now),
	}
	if v.apiKey != "" {
		opts = append(opts, jwt.WithAudience(v.apiKey))
	}

	claims := &sessionClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(v.apiSecret), nil
	}, opts...); err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, err.Error())
	}

	shop, err := shopFromURL(claims.Dest)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "invalid dest claim")
	}

	// The issuer is the shop's admin URL and must point at the same shop.
	if claims.Issuer != "" {
		issuerShop, err := shopFromURL(claims.Issuer)
		if err != nil || issuerShop != shop {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "issuer does not match dest")
		}
	}

	return &service.ShopSession{
		Shop:   shop,
		UserID: claims.Subject,
	}, nil
}

func shopFromURL(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("empty shop url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse shop url")
	}
	if u.Host == "" {
		return "", errors.Errorf("shop url %q has no host", raw)
	}

	return strings.ToLower(u.Hostname()), nil
}
