package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
)

// TxGetter returns the request transaction, or nil outside of one.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// GlucoseReadRepository reads glucose records together with their readings.
type GlucoseReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGlucoseReadRepository(db *sqlx.DB, txGetter TxGetter) *GlucoseReadRepository {
	return &GlucoseReadRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the user's record with readings in insertion order,
// or nil when the user has no record.
func (r *GlucoseReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.GlucoseRecord, error) {
	const recordQuery = `
		SELECT record_id, user_id, pregnancies, blood_pressure, skin_thickness, insulin,
		       diabetes_pedigree_function, prediction, is_diabetic, created_at, updated_at
		FROM glucose_records
		WHERE user_id = $1
	`
	const readingsQuery = `
		SELECT value, recorded_at
		FROM glucose_readings
		WHERE record_id = $1
		ORDER BY reading_id
	`

	ex := executor(ctx, r.db, r.txGetter)

	var row models.GlucoseRecordDB
	err := sqlx.GetContext(ctx, ex, &row, recordQuery, userID)

	logger.Log.Infow("query",
		"sql", oneLine(recordQuery),
		"args", []any{userID},
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var readings []models.GlucoseReading
	err = sqlx.SelectContext(ctx, ex, &readings, readingsQuery, row.RecordID)

	logger.Log.Infow("query",
		"sql", oneLine(readingsQuery),
		"args", []any{row.RecordID},
		"result", len(readings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return models.NewGlucoseRecord(&row, readings), nil
}

// GlucoseWriteRepository writes glucose records and readings.
type GlucoseWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGlucoseWriteRepository(db *sqlx.DB, txGetter TxGetter) *GlucoseWriteRepository {
	return &GlucoseWriteRepository{db: db, txGetter: txGetter}
}

// Upsert creates or updates the user's record in one statement. The pregnancy
// column is only written when the profile variant carries a count. When
// upd.ReplaceReadings is set the stored readings are replaced by upd.Readings.
func (r *GlucoseWriteRepository) Upsert(ctx context.Context, userID uuid.UUID, upd models.ClinicalUpdate) error {
	const query = `
		INSERT INTO glucose_records (record_id, user_id, pregnancies, blood_pressure, skin_thickness,
		                             insulin, diabetes_pedigree_function, created_at, updated_at)
		VALUES ($1, $2, COALESCE($3::INTEGER, 0), $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET pregnancies = COALESCE($3::INTEGER, glucose_records.pregnancies),
		    blood_pressure = EXCLUDED.blood_pressure,
		    skin_thickness = EXCLUDED.skin_thickness,
		    insulin = EXCLUDED.insulin,
		    diabetes_pedigree_function = EXCLUDED.diabetes_pedigree_function,
		    updated_at = NOW()
		RETURNING record_id
	`

	var pregnancies *int
	if n, ok := models.PregnanciesOf(upd.Profile); ok {
		pregnancies = &n
	}

	ex := executor(ctx, r.db, r.txGetter)
	args := []any{
		uuid.New(), userID, pregnancies,
		upd.BloodPressure, upd.SkinThickness, upd.Insulin, upd.DiabetesPedigreeFunction,
	}

	var recordID uuid.UUID
	err := sqlx.GetContext(ctx, ex, &recordID, query, args...)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", args,
		"result", recordID,
		"error", err,
	)

	if err != nil {
		return err
	}

	if !upd.ReplaceReadings {
		return nil
	}
	return r.replaceReadings(ctx, ex, recordID, upd.Readings)
}

func (r *GlucoseWriteRepository) replaceReadings(ctx context.Context, ex sqlx.ExtContext, recordID uuid.UUID, readings []models.GlucoseReading) error {
	const deleteQuery = `DELETE FROM glucose_readings WHERE record_id = $1`

	res, err := ex.ExecContext(ctx, deleteQuery, recordID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", deleteQuery,
		"args", []any{recordID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}

	for _, reading := range readings {
		if err := insertReading(ctx, ex, recordID, reading); err != nil {
			return err
		}
	}
	return nil
}

// AppendReading adds reading to the user's record, creating the record with
// column defaults when it does not exist yet.
func (r *GlucoseWriteRepository) AppendReading(ctx context.Context, userID uuid.UUID, reading models.GlucoseReading) error {
	const query = `
		INSERT INTO glucose_records (record_id, user_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		RETURNING record_id
	`

	ex := executor(ctx, r.db, r.txGetter)

	var recordID uuid.UUID
	err := sqlx.GetContext(ctx, ex, &recordID, query, uuid.New(), userID)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{userID},
		"result", recordID,
		"error", err,
	)

	if err != nil {
		return err
	}

	return insertReading(ctx, ex, recordID, reading)
}

// SavePrediction stores the classifier outcome on the user's record.
func (r *GlucoseWriteRepository) SavePrediction(ctx context.Context, userID uuid.UUID, label string, isDiabetic bool) error {
	const query = `
		UPDATE glucose_records
		SET prediction = $2, is_diabetic = $3, updated_at = NOW()
		WHERE user_id = $1
	`

	ex := executor(ctx, r.db, r.txGetter)
	res, err := ex.ExecContext(ctx, query, userID, label, isDiabetic)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{userID, label, isDiabetic},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func insertReading(ctx context.Context, ex sqlx.ExtContext, recordID uuid.UUID, reading models.GlucoseReading) error {
	const query = `
		INSERT INTO glucose_readings (record_id, value, recorded_at)
		VALUES ($1, $2, $3)
	`
	_, err := ex.ExecContext(ctx, query, recordID, reading.Value, reading.Timestamp)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{recordID, reading.Value, reading.Timestamp},
		"error", err,
	)

	return err
}
