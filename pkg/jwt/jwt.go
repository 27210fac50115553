package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session payload carried by every issued token. TokenVersion is
// compared against the stored value on each authenticated request; a mismatch
// means the token was issued before a forced logout.
type Claims struct {
	UserID         string   `json:"user_id"`
	Roles          []string `json:"roles"`
	TokenVersion   int      `json:"token_version"`
	Impersonated   bool     `json:"impersonated,omitempty"`
	ImpersonatorID string   `json:"impersonator_id,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
}

func NewService(secretKey string, ttl time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// TTL reports the configured token lifetime, used for cookie expiry.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) GenerateToken(userID string, roles []string, tokenVersion int) (string, error) {
	return s.sign(&Claims{
		UserID:       userID,
		Roles:        roles,
		TokenVersion: tokenVersion,
	})
}

// GenerateImpersonationToken issues a token that authenticates as the target
// user while recording who assumed the identity.
func (s *Service) GenerateImpersonationToken(userID string, roles []string, tokenVersion int, impersonatorID string) (string, error) {
	return s.sign(&Claims{
		UserID:         userID,
		Roles:          roles,
		TokenVersion:   tokenVersion,
		Impersonated:   true,
		ImpersonatorID: impersonatorID,
	})
}

func (s *Service) sign(claims *Claims) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
