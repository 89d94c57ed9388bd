// Package auth implements the single-operator login gate: HS256 session
// tokens plus argon2id password verification for the admin credential.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/argon2"
)

const issuer = "scrumcmd"

// ExtractToken extracts the JWT from an Authorization header value in
// "Bearer <token>" format.
func ExtractToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("empty authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty token")
	}

	return token, nil
}

// TokenAuth signs and verifies session tokens
type TokenAuth struct {
	SecretKey   []byte
	TokenExpiry time.Duration
}

// NewTokenAuth creates a token authority. Expiry defaults to 12 hours,
// covering a working day without re-login.
func NewTokenAuth(secretKey string, expiry time.Duration) (*TokenAuth, error) {
	if secretKey == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	if expiry == 0 {
		expiry = 12 * time.Hour
	}

	return &TokenAuth{
		SecretKey:   []byte(secretKey),
		TokenExpiry: expiry,
	}, nil
}

// Claims are the session token claims
type Claims struct {
	Username string `json:"username"`
	TokenID  string `json:"jti"` // revocation handle
	jwt.RegisteredClaims
}

// GenerateToken issues a session token for the operator. The returned
// token ID identifies the session for revocation.
func (a *TokenAuth) GenerateToken(username string) (token, tokenID string, err error) {
	tokenID, err = generateTokenID()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token ID: %w", err)
	}

	claims := Claims{
		Username: username,
		TokenID:  tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.SecretKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, tokenID, nil
}

// VerifyToken parses and validates a session token
func (a *TokenAuth) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.SecretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Argon2id parameters (OWASP recommended)
const (
	argon2Time      = 3
	argon2Memory    = 64 * 1024 // 64MB
	argon2Threads   = 4
	argon2KeyLength = 32
	saltLength      = 16
)

// HashPassword hashes a password with argon2id, producing the
// "argon2id$<salt>$<hash>" format expected by ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLength)

	return fmt.Sprintf("argon2id$%s$%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

// VerifyPassword checks a password against an argon2id$salt$hash string
func VerifyPassword(hashedPassword, password string) (bool, error) {
	rest, ok := strings.CutPrefix(hashedPassword, "argon2id$")
	if !ok {
		return false, fmt.Errorf("invalid hash format: missing argon2id prefix")
	}

	parts := strings.Split(rest, "$")
	if len(parts) != 2 {
		return false, fmt.Errorf("invalid hash format: expected 2 parts, got %d", len(parts))
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	actual := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLength)

	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func generateTokenID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
