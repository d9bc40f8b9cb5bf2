package db

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// schema is applied on every start; each statement is idempotent.
// glucose_records.user_id deliberately has no foreign key: deleting a user
// leaves the record in place.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		gender VARCHAR(10) NOT NULL,
		height DOUBLE PRECISION NOT NULL,
		weight DOUBLE PRECISION NOT NULL,
		age INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS glucose_records (
		record_id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE,
		pregnancies INTEGER NOT NULL DEFAULT 0,
		blood_pressure DOUBLE PRECISION NOT NULL DEFAULT 72,
		skin_thickness DOUBLE PRECISION NOT NULL DEFAULT 20,
		insulin DOUBLE PRECISION NOT NULL DEFAULT 80,
		diabetes_pedigree_function DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		prediction VARCHAR(20) NOT NULL DEFAULT 'non-diabetic',
		is_diabetic BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS glucose_readings (
		reading_id BIGSERIAL PRIMARY KEY,
		record_id UUID NOT NULL REFERENCES glucose_records(record_id) ON DELETE CASCADE,
		value DOUBLE PRECISION NOT NULL CHECK (value >= 0),
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS glucose_readings_record_idx ON glucose_readings (record_id, reading_id)`,
}

// Connect opens a pgx-backed pool and verifies it with a ping.
func Connect(ctx context.Context, dsn string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the tables used by the repositories.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
