package auth

import (
	"fmt"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the token attributes the API cares about: the registered
// claims validated during parsing plus the provider's permission claims.
type Claims struct {
	Permissions []string `json:"permissions"`
	Scope       string   `json:"scope"`
	jwt.RegisteredClaims
}

// HasPermission reports whether the token grants the named permission, either
// as a discrete entry in the permissions claim or as a space-delimited scope
// token.
func (c *Claims) HasPermission(permission string) bool {
	if slices.Contains(c.Permissions, permission) {
		return true
	}
	return slices.Contains(strings.Fields(c.Scope), permission)
}

// Verifier validates bearer tokens issued by the external identity provider.
type Verifier struct {
	provider *Provider
	issuer   string
	audience string
}

// NewVerifier builds a Verifier bound to the given JWKS provider, expected
// issuer, and audience.
func NewVerifier(provider *Provider, issuer, audience string) *Verifier {
	return &Verifier{
		provider: provider,
		issuer:   issuer,
		audience: audience,
	}
}

// Verify parses and validates a raw bearer token and returns its claims.
func (v *Verifier) Verify(rawToken string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, v.provider.KeyFunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
