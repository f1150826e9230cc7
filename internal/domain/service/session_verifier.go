// Package service defines interfaces for core, stateless domain logic.
package service

// ShopSession is the identity carried by a verified admin session token.
type ShopSession struct {
	Shop   string // Shop domain, e.g. example.myshopify.com
	UserID string // Staff member that opened the admin, when present
}

// SessionVerifier validates admin session tokens issued to the embedded app.
type SessionVerifier interface {
	// Verify parses and validates tokenString and returns the shop it was issued for.
	Verify(tokenString string) (*ShopSession, error)
}
