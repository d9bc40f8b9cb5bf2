package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Prediction labels
const (
	PredictionNonDiabetic = "non-diabetic"
	PredictionDiabetic    = "diabetic"
)

// Clinical defaults applied when a field is absent or zero.
const (
	DefaultPregnancies              = 0
	DefaultBloodPressure            = 72.0
	DefaultSkinThickness            = 20.0
	DefaultInsulin                  = 80.0
	DefaultDiabetesPedigreeFunction = 0.5
)

// GlucoseReading is a single measurement in mg/dL
// swagger:model GlucoseReading
type GlucoseReading struct {
	// Value in mg/dL
	// example: 98
	Value float64 `json:"value" db:"value"`

	// Time of measurement
	// example: 2025-05-22T07:30:00Z
	Timestamp time.Time `json:"timestamp" db:"recorded_at"`
}

// GlucoseRecordDB represents a glucose_records row
type GlucoseRecordDB struct {
	RecordID                 uuid.UUID `db:"record_id"`                  // Primary key
	UserID                   uuid.UUID `db:"user_id"`                    // Owner, one record per user
	Pregnancies              int       `db:"pregnancies"`                // Written for female users only
	BloodPressure            float64   `db:"blood_pressure"`             // mmHg
	SkinThickness            float64   `db:"skin_thickness"`             // mm
	Insulin                  float64   `db:"insulin"`                    // mu U/ml
	DiabetesPedigreeFunction float64   `db:"diabetes_pedigree_function"` // Family history score
	Prediction               string    `db:"prediction"`                 // diabetic or non-diabetic
	IsDiabetic               bool      `db:"is_diabetic"`                // Derived from Prediction
	CreatedAt                time.Time `db:"created_at"`                 // Creation timestamp
	UpdatedAt                time.Time `db:"updated_at"`                 // Last update timestamp
}

// GlucoseRecord is the per-user aggregate of readings and clinical fields
// swagger:model GlucoseRecord
type GlucoseRecord struct {
	ID                       uuid.UUID        `json:"_id"`
	UserID                   uuid.UUID        `json:"userId"`
	GlucoseReadings          []GlucoseReading `json:"glucoseReadings"`
	Pregnancies              int              `json:"pregnancies"`
	BloodPressure            float64          `json:"bloodPressure"`
	SkinThickness            float64          `json:"skinThickness"`
	Insulin                  float64          `json:"insulin"`
	DiabetesPedigreeFunction float64          `json:"diabetesPedigreeFunction"`
	Prediction               string           `json:"prediction"`
	IsDiabetic               bool             `json:"isDiabetic"`
	LastRecordedGlucose      *float64         `json:"lastRecordedGlucose,omitempty"`
	UpdatedAt                time.Time        `json:"updatedAt"`
}

// NewGlucoseRecord assembles the aggregate from its row and ordered readings.
func NewGlucoseRecord(row *GlucoseRecordDB, readings []GlucoseReading) *GlucoseRecord {
	if readings == nil {
		readings = []GlucoseReading{}
	}
	rec := &GlucoseRecord{
		ID:                       row.RecordID,
		UserID:                   row.UserID,
		GlucoseReadings:          readings,
		Pregnancies:              row.Pregnancies,
		BloodPressure:            row.BloodPressure,
		SkinThickness:            row.SkinThickness,
		Insulin:                  row.Insulin,
		DiabetesPedigreeFunction: row.DiabetesPedigreeFunction,
		Prediction:               row.Prediction,
		IsDiabetic:               row.IsDiabetic,
		UpdatedAt:                row.UpdatedAt,
	}
	if latest, ok := rec.LatestReading(); ok {
		v := latest.Value
		rec.LastRecordedGlucose = &v
	}
	return rec
}

// LatestReading returns the last inserted reading.
func (r *GlucoseRecord) LatestReading() (GlucoseReading, bool) {
	if len(r.GlucoseReadings) == 0 {
		return GlucoseReading{}, false
	}
	return r.GlucoseReadings[len(r.GlucoseReadings)-1], true
}

// ClinicalUpdate is a fully defaulted write for a user's record.
type ClinicalUpdate struct {
	Profile                  Profile
	BloodPressure            float64
	SkinThickness            float64
	Insulin                  float64
	DiabetesPedigreeFunction float64

	// ReplaceReadings is set when the request carried glucoseReadings;
	// Readings then becomes the full stored sequence.
	ReplaceReadings bool
	Readings        []GlucoseReading
}

// ReadingsInput accepts a single number, a single {value,timestamp} object,
// or a list of either.
type ReadingsInput []ReadingInput

// ReadingInput is one submitted reading. Timestamp is optional.
type ReadingInput struct {
	Value     float64    `json:"value"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

var errInvalidReadings = errors.New("glucoseReadings must be a number, an object with a value or a list")

// UnmarshalJSON implements json.Unmarshaler.
func (in *ReadingsInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*in = nil
		return nil
	}

	switch data[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make(ReadingsInput, 0, len(raw))
		for _, item := range raw {
			r, err := parseReadingInput(item)
			if err != nil {
				return err
			}
			out = append(out, r)
		}
		*in = out
		return nil
	default:
		r, err := parseReadingInput(data)
		if err != nil {
			return err
		}
		*in = ReadingsInput{r}
		return nil
	}
}

func parseReadingInput(data json.RawMessage) (ReadingInput, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ReadingInput{}, errInvalidReadings
	}
	if data[0] == '{' {
		var r struct {
			Value     *float64   `json:"value"`
			Timestamp *time.Time `json:"timestamp"`
		}
		if err := json.Unmarshal(data, &r); err != nil {
			return ReadingInput{}, err
		}
		if r.Value == nil {
			return ReadingInput{}, errInvalidReadings
		}
		return ReadingInput{Value: *r.Value, Timestamp: r.Timestamp}, nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return ReadingInput{}, errInvalidReadings
	}
	return ReadingInput{Value: v}, nil
}

// ClinicalFields is the partial input of an update-all request. Nil or zero
// values fall back to the clinical defaults.
type ClinicalFields struct {
	GlucoseReadings          ReadingsInput `json:"glucoseReadings,omitempty"`
	Pregnancies              *int          `json:"pregnancies,omitempty"`
	BloodPressure            *float64      `json:"bloodPressure,omitempty"`
	SkinThickness            *float64      `json:"skinThickness,omitempty"`
	Insulin                  *float64      `json:"insulin,omitempty"`
	DiabetesPedigreeFunction *float64      `json:"diabetesPedigreeFunction,omitempty"`
}
