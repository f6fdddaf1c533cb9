package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

// JWTManager validates HS256 access tokens issued by the identity service.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// AccessClaims is the access token payload: subject is the user ID, plus
// the role and home tenant.
type AccessClaims struct {
	jwt.RegisteredClaims
	Role     string `json:"role"`
	TenantID string `json:"tenant_id,omitempty"`
}

// ValidateToken implements the middleware token validator.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (domain.Principal, error) {
	return m.ValidateAccessToken(token)
}

// ValidateAccessToken parses and validates a JWT access token and returns
// the principal it describes.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Principal, error) {
	if tokenString == "" {
		return domain.Principal{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Principal{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return domain.Principal{}, fmt.Errorf("invalid token claims")
	}

	return claims.principal()
}

func (c *AccessClaims) principal() (domain.Principal, error) {
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := domain.UserRole(c.Role)
	if !role.IsValid() {
		return domain.Principal{}, fmt.Errorf("invalid role %q", c.Role)
	}

	p := domain.Principal{UserID: userID, Role: role}
	if c.TenantID != "" {
		tid, err := uuid.Parse(c.TenantID)
		if err != nil {
			return domain.Principal{}, fmt.Errorf("invalid tenant_id: %w", err)
		}
		p.TenantID = &tid
	}

	if p.TenantID == nil && !role.IsSuperAdmin() {
		return domain.Principal{}, fmt.Errorf("role %s requires tenant_id", role)
	}
	return p, nil
}
