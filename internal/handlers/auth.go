package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, in models.UserSignup) (*models.UserDB, string, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, name, password string) (*models.UserDB, string, error)
}

// Logouter ends a session.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// SessionCookie reads and writes the session cookie.
type SessionCookie interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Name
	// required: true
	// example: alice
	Name string `json:"name"`

	// Password
	// required: true
	// example: secret1
	Password string `json:"password"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account, sets the session cookie and returns the profile. Name and email must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body models.UserSignup true "User registration request"
// @Success 201 {object} models.UserProfile "Created profile"
// @Failure 400 {object} handlers.ErrorResponse "Validation error or duplicate name/email"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UserSignup
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, token, err := svc.Signup(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		cookie.SetCookie(w, token)
		writeJSON(w, http.StatusCreated, models.NewUserProfile(user))
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by name and password, sets the session cookie and returns the profile
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} models.UserProfile "Profile of the logged in user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid name or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, token, err := svc.Login(r.Context(), req.Name, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		cookie.SetCookie(w, token)
		writeJSON(w, http.StatusOK, models.NewUserProfile(user))
	}
}

// NewLogoutHandler returns an HTTP handler that ends the session.
// @Summary User logout
// @Description Clears the session cookie and revokes the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out successfully"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, err := cookie.GetTokenFromRequest(r.Context(), r); err == nil {
			if err := svc.Logout(r.Context(), token); err != nil {
				// The cookie is cleared regardless; the token just outlives logout.
				logger.Log.Warnw("session revoke failed", "error", err)
			}
		}

		cookie.ClearCookie(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}
