// Package identity verifies bearer credentials and owns the user profile
// documents. Credential issuance itself lives outside this backend; the
// core only trusts identities this package has verified.
package identity

import (
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/lskolhar/complain-hub/internal/apperr"
)

// Identity is the verified subject extracted from a bearer token.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Verifier validates HS256 bearer tokens. DefaultRole is assigned when the
// token carries no role claim; it is deployment configuration, not a
// compiled-in constant.
type Verifier struct {
	secret      []byte
	DefaultRole string
}

// NewVerifier creates a token verifier.
func NewVerifier(secret, defaultRole string) *Verifier {
	return &Verifier{secret: []byte(secret), DefaultRole: defaultRole}
}

// VerifyToken parses and validates the token and returns the identity it
// asserts. Any parse or signature failure surfaces as AuthenticationError.
func (v *Verifier) VerifyToken(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, apperr.Authentication("invalid or expired token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, apperr.Authentication("invalid token claims", nil)
	}

	id := Identity{
		UID:   claimString(claims, "uid"),
		Email: claimString(claims, "email"),
		Name:  claimString(claims, "name"),
		Role:  claimString(claims, "role"),
	}
	if id.UID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			id.UID = sub
		}
	}
	if id.UID == "" {
		return Identity{}, apperr.Authentication("token carries no subject", nil)
	}
	if id.Name == "" {
		id.Name = id.Email
	}
	if id.Role == "" {
		id.Role = v.DefaultRole
	}
	return id, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
