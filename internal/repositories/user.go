package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
)

// ErrConflict is returned when a write violates a unique constraint.
var ErrConflict = errors.New("unique constraint violation")

const uniqueViolation = "23505"

// UserReadRepository reads users.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const selectUser = `
		SELECT user_id, name, email, password_hash, gender, height, weight, age, created_at, updated_at
		FROM users
`

// GetByID returns the user or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	return r.getOne(ctx, selectUser+`WHERE user_id = $1`, userID)
}

// GetByName returns the user or nil when absent.
func (r *UserReadRepository) GetByName(ctx context.Context, name string) (*models.UserDB, error) {
	return r.getOne(ctx, selectUser+`WHERE name = $1`, name)
}

// GetByEmail returns the user or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, selectUser+`WHERE email = $1`, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{arg},
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository writes users.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. Duplicate name or email yields ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, gender, height, weight, age, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		user.UserID, user.Name, user.Email, user.PasswordHash, user.Gender, user.Height, user.Weight, user.Age,
	)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{user.UserID, user.Name, user.Email, user.Gender, user.Height, user.Weight, user.Age},
		"error", err,
	)

	return mapConflict(err)
}

// Update overwrites the mutable profile columns of user.
func (r *UserWriteRepository) Update(ctx context.Context, user models.UserDB) error {
	const query = `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, gender = $5,
		    height = $6, weight = $7, age = $8, updated_at = NOW()
		WHERE user_id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		user.UserID, user.Name, user.Email, user.PasswordHash, user.Gender, user.Height, user.Weight, user.Age,
	)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{user.UserID, user.Name, user.Email, user.Gender, user.Height, user.Weight, user.Age},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return mapConflict(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the user and reports whether a row existed.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `DELETE FROM users WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrConflict
	}
	return err
}

func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
