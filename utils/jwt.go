package utils

import (
	"errors"
	"os"
	"time"

	"atelier/config"

	"github.com/golang-jwt/jwt"
)

// AdminTokenTTL is the lifetime of an issued admin token. Tokens are
// stateless; a password rotation does not revoke tokens already issued.
const AdminTokenTTL = 24 * time.Hour

// MemberTokenTTL is the lifetime of a members-area token.
const MemberTokenTTL = 7 * 24 * time.Hour

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	return []byte(secret)
}

// GenerateAdminToken creates a signed JWT carrying the single admin claim.
func GenerateAdminToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin": true,
		"iat":   now.Unix(),
		"exp":   now.Add(AdminTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// GenerateMemberToken creates a signed JWT for a members-area visitor.
func GenerateMemberToken(memberID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"member": true,
		"sub":    memberID,
		"iat":    now.Unix(),
		"exp":    now.Add(MemberTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// IsAdminToken reports whether the token is valid and carries the admin claim.
// Expired, malformed and non-admin tokens are all rejected the same way.
func IsAdminToken(tokenString string) bool {
	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	isAdmin, _ := claims["admin"].(bool)
	return isAdmin
}

// MemberIDFromToken extracts the member ID (subject) from a valid member token.
func MemberIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token")
	}
	if isMember, _ := claims["member"].(bool); !isMember {
		return "", errors.New("not a member token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
