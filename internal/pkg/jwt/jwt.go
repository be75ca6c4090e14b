package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess = "access"
	ClaimIsAdmin    = "is_admin"
)

type Service interface {
	// GenerateAdminToken signs an access token that passes the admin middleware.
	GenerateAdminToken(subject string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                string
	adminTokenExpirationTime string
	tokenAuth                *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, adminTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                secretKey,
		adminTokenExpirationTime: adminTokenExpirationTime,
		tokenAuth:                jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAdminToken(subject string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.adminTokenExpirationTime)
	if err != nil {
		return "", 0, fmt.Errorf("parse admin token expiration: %w", err)
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":        subject,
		"type":       TokenTypeAccess,
		ClaimIsAdmin: true,
		"exp":        expiresAt,
	})
	return tokenString, expiresAt, err
}
