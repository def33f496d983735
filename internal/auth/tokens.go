package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// Claims carries the registered JWT claims plus the authenticated user's
// identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Manager signs and verifies access and refresh tokens. Access and refresh
// tokens use distinct secrets and expiries. Stateless over its configuration.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewManager(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (m *Manager) GenerateAccessToken(userID, email string) (string, error) {
	return generate(userID, email, m.accessSecret, m.accessExpiry)
}

func (m *Manager) GenerateRefreshToken(userID, email string) (string, error) {
	return generate(userID, email, m.refreshSecret, m.refreshExpiry)
}

func (m *Manager) VerifyAccessToken(tokenString string) (*Claims, error) {
	return verify(tokenString, m.accessSecret)
}

func (m *Manager) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return verify(tokenString, m.refreshSecret)
}

func generate(userID, email string, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
