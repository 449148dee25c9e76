package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/valo-rant/community-api/internal/core/domain"
)

// TokenPolicy authorizes from a signed HS256 token carried on the claim,
// ignoring the self-asserted isAdmin flag entirely. It is the drop-in
// replacement for ClaimPolicy when real authorization is wanted.
type TokenPolicy struct {
	secret []byte
}

func NewTokenPolicy(secret string) *TokenPolicy {
	return &TokenPolicy{secret: []byte(secret)}
}

func (p *TokenPolicy) Authorize(claim domain.Claim) error {
	if claim.Token == "" {
		return domain.ErrForbidden
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(claim.Token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.ErrForbidden
	}

	if isAdmin, _ := claims["isAdmin"].(bool); !isAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// IssueToken signs a session into a bearer token consumable by TokenPolicy.
func IssueToken(secret string, session domain.Session, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": session.Username,
		"isAdmin":  session.IsAdmin,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
