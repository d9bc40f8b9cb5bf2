package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
)

// UserGetter returns the profile of a user.
type UserGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserUpdater applies a partial profile update.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) (*models.UserDB, error)
}

// UserDeleter removes a user.
type UserDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UpdateUserRequest represents the JSON body for a profile update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// example: alice
	Name *string `json:"name,omitempty"`
	// example: a@example.com
	Email *string `json:"email,omitempty"`
	// example: female
	Gender *string `json:"gender,omitempty"`
	// example: 165
	Height *float64 `json:"height,omitempty"`
	// example: 61.5
	Weight *float64 `json:"weight,omitempty"`
	// example: 30
	Age *int `json:"age,omitempty"`
	// Required together with newPassword
	// example: secret1
	CurrentPassword string `json:"currentPassword,omitempty"`
	// Required together with currentPassword
	// example: secret2
	NewPassword string `json:"newPassword,omitempty"`
}

func (req UpdateUserRequest) toModel() models.UserUpdate {
	return models.UserUpdate{
		Name:            req.Name,
		Email:           req.Email,
		Gender:          req.Gender,
		Height:          req.Height,
		Weight:          req.Weight,
		Age:             req.Age,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}
}

// NewGetUserHandler returns an HTTP handler for the session user's profile.
// @Summary Get current user
// @Description Returns the profile of the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} models.UserProfile "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUser(w, r, userIDGetter)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewUserProfile(user))
	}
}

// NewUpdateUserHandler returns an HTTP handler for profile updates.
// @Summary Update current user
// @Description Updates the provided profile fields. A password change requires currentPassword and newPassword.
// @Tags user
// @Accept json
// @Produce json
// @Param updateUserRequest body handlers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.UserProfile "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserUpdater, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUser(w, r, userIDGetter)
		if !ok {
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Update(r.Context(), userID, req.toModel())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewUserProfile(user))
	}
}

// NewDeleteUserHandler returns an HTTP handler that deletes the session user
// and ends the session.
// @Summary Delete current user
// @Description Deletes the authenticated user, revokes the session and clears the cookie
// @Tags user
// @Produce json
// @Success 200 {object} handlers.MessageResponse "User deleted successfully"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter, sessions Logouter, cookie SessionCookie, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUser(w, r, userIDGetter)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		if token, err := cookie.GetTokenFromRequest(r.Context(), r); err == nil {
			if err := sessions.Logout(r.Context(), token); err != nil {
				logger.Log.Warnw("session revoke failed", "userID", userID, "error", err)
			}
		}

		cookie.ClearCookie(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}
