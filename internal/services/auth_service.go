package services

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"scrumcmd/pkg/auth"
)

// AuthService validates the single operator credential and tracks live
// sessions so a logout actually revokes the token.
type AuthService struct {
	tokens       *auth.TokenAuth
	username     string
	password     string // plaintext fallback, dev only
	passwordHash string // argon2id, preferred when set
	sessions     *cache.Cache
}

// NewAuthService creates the login-gate service. When both a plaintext
// password and a hash are configured, the hash wins.
func NewAuthService(tokens *auth.TokenAuth, username, password, passwordHash string) *AuthService {
	return &AuthService{
		tokens:       tokens,
		username:     username,
		password:     password,
		passwordHash: passwordHash,
		sessions:     cache.New(tokens.TokenExpiry, 10*time.Minute),
	}
}

// Login checks the credential and issues a session token
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", fmt.Errorf("invalid credentials")
	}

	if s.passwordHash != "" {
		ok, err := auth.VerifyPassword(s.passwordHash, password)
		if err != nil {
			return "", fmt.Errorf("failed to verify password: %w", err)
		}
		if !ok {
			return "", fmt.Errorf("invalid credentials")
		}
	} else if password != s.password {
		return "", fmt.Errorf("invalid credentials")
	}

	token, tokenID, err := s.tokens.GenerateToken(username)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	s.sessions.Set(tokenID, username, s.tokens.TokenExpiry)
	return token, nil
}

// Verify checks a token's signature and that its session is still live
func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	claims, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	if _, live := s.sessions.Get(claims.TokenID); !live {
		return nil, fmt.Errorf("session revoked or expired")
	}
	return claims, nil
}

// Logout revokes the session behind a token. Verifying a bad token on
// logout is not an error; the session is gone either way.
func (s *AuthService) Logout(token string) {
	if claims, err := s.tokens.VerifyToken(token); err == nil {
		s.sessions.Delete(claims.TokenID)
	}
}
