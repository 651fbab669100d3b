package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"github.com/ArowuTest/brandhub-admin-backend/pkg/jwt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles admin login and server-side sessions
type AuthService struct {
	admins   repositories.AdminUserRepository
	sessions repositories.SessionRepository
	tokens   *jwt.TokenService
	ttl      time.Duration
	log      *zap.Logger
	now      func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	admins repositories.AdminUserRepository,
	sessions repositories.SessionRepository,
	tokens *jwt.TokenService,
	ttl time.Duration,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		admins:   admins,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

// Login checks the credential and opens a session
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredential
	}
	if err != nil {
		return nil, err
	}
	if !checkPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredential
	}

	now := s.now()
	session := &models.Session{
		ID:        uuid.NewString(),
		AdminID:   admin.ID.Hex(),
		Email:     admin.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(session.AdminID, session.ID, session.Email, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	s.log.Info("admin logged in", zap.String("adminId", session.AdminID))
	return &models.LoginResponse{Token: token, ExpiresAt: session.ExpiresAt, Admin: *admin}, nil
}

// Authenticate resolves a token to its live session
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	session, err := s.sessions.Find(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.AdminID != claims.Subject {
		return nil, apperrors.ErrUnauthorized
	}
	return session, nil
}

// Logout revokes a session
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// HashPassword returns the bcrypt hash stored for new credentials
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword accepts bcrypt hashes and, for records created before
// hashing, plaintext compared in constant time
func checkPassword(stored, submitted string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
	}
	return stored != "" && subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
