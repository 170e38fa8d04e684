package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/security"
)

// AuthService authenticates editors against the configured password hash
// and issues the JWT the editor endpoints require.
type AuthService struct {
	passwordHash  string
	jwtSecret     string
	tokenLifetime time.Duration
	logger        *logging.ChanneledLogger
}

// NewAuthService creates the auth service.
func NewAuthService(passwordHash, jwtSecret string, tokenLifetime time.Duration, logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{
		passwordHash:  passwordHash,
		jwtSecret:     jwtSecret,
		tokenLifetime: tokenLifetime,
		logger:        logger,
	}
}

// Login verifies the password and returns a bearer token carrying the
// author id.
func (s *AuthService) Login(authorID, password string) (string, error) {
	if s.passwordHash == "" {
		s.logger.Auth().Error("Editor password hash is not configured")
		return "", ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.logger.Auth().Warn("Failed login attempt", "authorId", authorID)
		return "", ErrInvalidLogin
	}

	token, err := security.GenerateEditorToken(authorID, s.jwtSecret, s.tokenLifetime)
	if err != nil {
		return "", err
	}

	s.logger.Auth().Info("Editor logged in", "authorId", authorID)
	return token, nil
}

// Validate checks a bearer token and returns the author id it carries.
func (s *AuthService) Validate(token string) (string, error) {
	claims, err := security.ValidateJWT(token, s.jwtSecret)
	if err != nil {
		return "", err
	}
	authorID := security.AuthorFromClaims(claims)
	if authorID == "" {
		return "", ErrInvalidLogin
	}
	return authorID, nil
}
