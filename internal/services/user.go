package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
	"github.com/sbilibin2017/glucose-tracker/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages the profile of the session user.
type UserService struct {
	reader UserReader
	writer UserWriter
}

func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// Get returns the user or ErrUserNotFound.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies the provided fields. Nil fields are left unchanged; a
// password change needs both the current and the new password.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) (*models.UserDB, error) {
	user, err := svc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if (upd.CurrentPassword == "") != (upd.NewPassword == "") {
		return nil, ErrPasswordPairRequired
	}
	if upd.CurrentPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(upd.CurrentPassword)); err != nil {
			return nil, ErrCurrentPasswordWrong
		}
		if len(upd.NewPassword) < minPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(upd.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, newValidationError("Name is required")
		}
		if name != user.Name {
			if err := svc.ensureFree(ctx, svc.reader.GetByName, name, ErrUsernameTaken); err != nil {
				return nil, err
			}
			user.Name = name
		}
	}
	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if !emailRegex.MatchString(email) {
			return nil, ErrInvalidEmail
		}
		if email != user.Email {
			if err := svc.ensureFree(ctx, svc.reader.GetByEmail, email, ErrEmailTaken); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if upd.Gender != nil {
		user.Gender = *upd.Gender
	}
	if upd.Height != nil {
		user.Height = *upd.Height
	}
	if upd.Weight != nil {
		user.Weight = *upd.Weight
	}
	if upd.Age != nil {
		user.Age = *upd.Age
	}
	if err := validateBody(user.Gender, user.Height, user.Weight, user.Age); err != nil {
		return nil, err
	}

	if err := svc.writer.Update(ctx, *user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, newValidationError("Name or email is already taken")
		}
		logger.Log.Errorw("failed to update user", "userID", userID, "error", err)
		return nil, err
	}

	return user, nil
}

func (svc *UserService) ensureFree(
	ctx context.Context,
	lookup func(context.Context, string) (*models.UserDB, error),
	value string,
	taken error,
) error {
	other, err := lookup(ctx, value)
	if err != nil {
		logger.Log.Errorw("failed to check uniqueness", "value", value, "error", err)
		return err
	}
	if other != nil {
		return taken
	}
	return nil
}

// Delete removes the user. The glucose record is left in place.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "userID", userID, "error", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
