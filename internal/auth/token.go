// Package auth implements bearer token issuance and verification, and
// decoding of externally issued identity assertions.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/doqhuy/moviechill-backend/internal/config"
	"github.com/doqhuy/moviechill-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "moviechill-api"
	tokenAudience = "moviechill-client"
)

// TokenService issues and verifies signed bearer tokens. A token carries
// only the account ID; role and profile data are re-read on every request
// so permission changes apply immediately.
type TokenService struct {
	secret    []byte
	expiresIn time.Duration
}

// NewTokenService returns a TokenService configured from cfg.
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:    []byte(cfg.JWTSecret),
		expiresIn: cfg.TokenExpiresIn,
	}
}

// Issue creates a signed token for the given user ID.
func (t *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(t.expiresIn).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token and returns the user ID it was
// issued for. It does not check that the account still exists.
func (t *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, models.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid subject claim")
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, models.NewUnauthorizedError("Invalid user ID in token")
	}

	return uint(userID), nil
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
