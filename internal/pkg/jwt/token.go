package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/flashfood/internal/pkg/models"
)

// Roles carried in the role claim
const (
	RoleCustomer   = "customer"
	RoleRestaurant = "restaurant"
	RoleDriver     = "driver"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownRole  = errors.New("unknown role")
)

var parser = jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

// Claims identifies a flashfood user and the role the token was issued for
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ValidRole reports whether role is one of the roles tokens are issued for
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleRestaurant, RoleDriver:
		return true
	}
	return false
}

// GenerateToken signs an HS256 token for userID acting as role and returns
// it with its expiry as a unix timestamp
func GenerateToken(userID, role string, cfg models.JWTConfig) (string, int64, error) {
	if userID == "" {
		return "", 0, fmt.Errorf("%w: empty user id", ErrInvalidToken)
	}
	if !ValidRole(role) {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Expiration) * time.Minute)
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt.Unix(), nil
}

// ValidateToken verifies signature, algorithm and expiry and returns the
// claims. Every failure wraps ErrInvalidToken.
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}
	if !ValidRole(claims.Role) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrUnknownRole)
	}
	return claims, nil
}
