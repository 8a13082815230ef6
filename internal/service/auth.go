package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"docuforge/internal/domain"
	"docuforge/internal/domain/models"
	"docuforge/internal/domain/repositories"
)

// Auth validation messages, first-failing rule wins. On signup the
// order is fullName, email, password; on login email, password.
const (
	msgAuthFullName = "Full name must be at least 2 characters."
	msgAuthEmail    = "Enter a valid email address."
	msgAuthPassword = "Password must be at least 8 characters."
)

// emailPattern is the local@domain.tld shape check. There is no real
// credential verification beyond it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// sessionTokenBytes sizes the random bearer token (hex-encoded).
const sessionTokenBytes = 24

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the POST /auth/signup payload.
type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService mints sessions and resolves bearer tokens. A fresh
// session is created on every login, even for a repeated email.
type AuthService struct {
	sessionRepo repositories.SessionRepository
	logger      *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(sessionRepo repositories.SessionRepository, logger *slog.Logger) *AuthService {
	return &AuthService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Login validates the payload shape and mints a new session.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.Validate(email,
		validation.Required.Error(msgAuthEmail),
		validation.Match(emailPattern).Error(msgAuthEmail),
	); err != nil {
		return nil, "", domain.Validation(err.Error())
	}

	if err := validation.Validate(req.Password,
		validation.Required.Error(msgAuthPassword),
		validation.RuneLength(8, 0).Error(msgAuthPassword),
	); err != nil {
		return nil, "", domain.Validation(err.Error())
	}

	user := &models.User{
		ID:       uuid.NewString(),
		FullName: "DocuForge User",
		Email:    email,
	}
	token, err := s.mintSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("session created", "user_id", user.ID, "email", email)
	return user, token, nil
}

// Signup validates the payload shape and mints a new session.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*models.User, string, error) {
	fullName := strings.TrimSpace(req.FullName)
	if err := validation.Validate(fullName,
		validation.Required.Error(msgAuthFullName),
		validation.RuneLength(2, 0).Error(msgAuthFullName),
	); err != nil {
		return nil, "", domain.Validation(err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.Validate(email,
		validation.Required.Error(msgAuthEmail),
		validation.Match(emailPattern).Error(msgAuthEmail),
	); err != nil {
		return nil, "", domain.Validation(err.Error())
	}

	if err := validation.Validate(req.Password,
		validation.Required.Error(msgAuthPassword),
		validation.RuneLength(8, 0).Error(msgAuthPassword),
	); err != nil {
		return nil, "", domain.Validation(err.Error())
	}

	user := &models.User{
		ID:       uuid.NewString(),
		FullName: fullName,
		Email:    email,
	}
	token, err := s.mintSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user signed up", "user_id", user.ID, "email", email)
	return user, token, nil
}

// Resolve returns the user for a bearer token, or nil when the token
// is empty or unknown.
func (s *AuthService) Resolve(ctx context.Context, token string) *models.User {
	if token == "" {
		return nil
	}
	user, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		return nil
	}
	return user
}

func (s *AuthService) mintSession(ctx context.Context, user *models.User) (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	if err := s.sessionRepo.Put(ctx, token, user); err != nil {
		return "", err
	}
	return token, nil
}
