package services

import (
	"fmt"
	"time"

	"github.com/blogworks/blogs-backend/config"
	"github.com/blogworks/blogs-backend/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenConfig carries the signing settings for issued bearer tokens.
type TokenConfig struct {
	SecurityKey string
	Issuer      string
	Audience    string
	Validity    time.Duration
}

// NewTokenConfig reads the token settings from the config snapshot.
func NewTokenConfig(c map[string]string) TokenConfig {
	return TokenConfig{
		SecurityKey: config.GetString(c, "SECURITY_KEY", "blogs_backend_security_key_2025="),
		Issuer:      config.GetString(c, "TOKEN_ISSUER", "blogs-backend"),
		Audience:    config.GetString(c, "TOKEN_AUDIENCE", "blogs-clients"),
		Validity:    config.GetDuration(c, "TOKEN_VALIDITY", 24*time.Hour),
	}
}

// Claims is the payload embedded in every issued token: the username as
// subject, a unique token id, the numeric user id and the role name.
type Claims struct {
	UID  int    `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Create signs a token for user with the configured validity window.
func (tc TokenConfig) Create(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:  user.ID,
		Role: user.Role.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserName,
			ID:        uuid.NewString(),
			Issuer:    tc.Issuer,
			Audience:  jwt.ClaimStrings{tc.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.Validity)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tc.SecurityKey))
}

// Parse validates the signature, issuer, audience and lifetime of a token
// string and returns its claims.
func (tc TokenConfig) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(tc.SecurityKey), nil
		},
		jwt.WithIssuer(tc.Issuer),
		jwt.WithAudience(tc.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
