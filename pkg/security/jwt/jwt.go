package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/snipvault/backend/pkg/auth"
)

// Generator issues and verifies HS256 identity tokens. It implements
// auth.TokenIssuer.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Claims carries the standard claims plus the bearer's role. Subject holds
// the user id, so the identity is verifiable without a database lookup.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func (g *Generator) Issue(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Role: string(user.Role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Verify fails closed: any parse, signature, expiry, issuer, or claim-shape
// problem yields auth.ErrInvalidToken and a zero identity.
func (g *Generator) Verify(ctx context.Context, tokenStr string) (auth.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, auth.ErrInvalidToken
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	if g.issuer != "" && claims.Issuer != g.issuer {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	role := auth.Role(claims.Role)
	if !role.Valid() {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	return auth.Identity{UserID: userID, Role: role}, nil
}
