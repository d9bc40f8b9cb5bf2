package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/jwt"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
	"github.com/sbilibin2017/glucose-tracker/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByName(ctx context.Context, name string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	Update(ctx context.Context, user models.UserDB) error
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Tokener issues and parses session tokens.
type Tokener interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
}

// SessionRevoker records revoked session tokens.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles signup, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   Tokener
	sessions SessionRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens Tokener, sessions SessionRevoker) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Signup validates and stores a new user and returns it with a session token.
func (svc *AuthService) Signup(ctx context.Context, in models.UserSignup) (*models.UserDB, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if !emailRegex.MatchString(in.Email) {
		return nil, "", ErrInvalidEmail
	}
	if in.Name == "" {
		return nil, "", newValidationError("Name is required")
	}

	existing, err := svc.reader.GetByName(ctx, in.Name)
	if err != nil {
		logger.Log.Errorw("failed to check name", "name", in.Name, "error", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	existing, err = svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "email", in.Email, "error", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	if len(in.Password) < minPasswordLength {
		return nil, "", ErrPasswordTooShort
	}
	if err := validateBody(in.Gender, in.Height, in.Weight, in.Age); err != nil {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, "", err
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		Gender:       in.Gender,
		Height:       in.Height,
		Weight:       in.Weight,
		Age:          in.Age,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same name or email.
		if errors.Is(err, repositories.ErrConflict) {
			return nil, "", ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "error", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return nil, "", err
	}

	return &user, token, nil
}

// Login authenticates a user by name and returns it with a session token.
func (svc *AuthService) Login(ctx context.Context, name, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		logger.Log.Errorw("failed to get user", "error", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown name", "name", name)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "name", name)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return nil, "", err
	}

	return user, token, nil
}

// Logout revokes token until it expires. Missing or invalid tokens are ignored.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Infow("logout with invalid token", "error", err)
		return nil
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	if err := svc.sessions.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		logger.Log.Errorw("failed to revoke session", "token_id", claims.ID, "error", err)
		return err
	}
	return nil
}

func validateBody(gender string, height, weight float64, age int) error {
	if !models.IsValidGender(gender) {
		return ErrInvalidGender
	}
	if height <= 0 || weight <= 0 || age <= 0 {
		return newValidationError("Height, weight and age must be positive")
	}
	return nil
}
