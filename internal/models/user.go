package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported gender values
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Name         string    `json:"name" db:"name"`             // Unique handle used for login
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Gender       string    `json:"gender" db:"gender"`         // male, female or other
	Height       float64   `json:"height" db:"height"`         // Height in centimeters
	Weight       float64   `json:"weight" db:"weight"`         // Weight in kilograms
	Age          int       `json:"age" db:"age"`               // Age in years
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Profile resolves the user's gender into its tagged variant.
func (u *UserDB) Profile() Profile {
	return ProfileFor(u.Gender)
}

// BMI returns weight / (height in meters)^2, or 0 when height is unknown.
func (u *UserDB) BMI() float64 {
	if u.Height <= 0 {
		return 0
	}
	m := u.Height / 100
	return u.Weight / (m * m)
}

// UserProfile is the public view of a user, password excluded
// swagger:model UserProfile
type UserProfile struct {
	// User ID
	// example: 6f1c2b8e-4a5d-4a8e-9d4b-2f1e3c5a7b90
	ID uuid.UUID `json:"_id"`

	// Unique name
	// example: alice
	Name string `json:"name"`

	// Email
	// example: a@example.com
	Email string `json:"email"`

	// Gender
	// example: female
	Gender string `json:"gender"`

	// Height in cm
	// example: 165
	Height float64 `json:"height"`

	// Weight in kg
	// example: 60
	Weight float64 `json:"weight"`

	// Age in years
	// example: 29
	Age int `json:"age"`
}

// NewUserProfile builds the public view of a stored user.
func NewUserProfile(u *UserDB) UserProfile {
	return UserProfile{
		ID:     u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Gender: u.Gender,
		Height: u.Height,
		Weight: u.Weight,
		Age:    u.Age,
	}
}

// UserUpdate carries the optional fields of a profile update.
type UserUpdate struct {
	Name            *string
	Email           *string
	Gender          *string
	Height          *float64
	Weight          *float64
	Age             *int
	CurrentPassword string
	NewPassword     string
}

// UserSignup is the registration input
// swagger:model UserSignup
type UserSignup struct {
	// example: alice
	Name string `json:"name"`
	// example: a@example.com
	Email string `json:"email"`
	// example: secret1
	Password string `json:"password"`
	// example: female
	Gender string `json:"gender"`
	// example: 165
	Height float64 `json:"height"`
	// example: 60
	Weight float64 `json:"weight"`
	// example: 29
	Age int `json:"age"`
}
