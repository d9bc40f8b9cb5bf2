package services

//go:generate mockgen -source=glucose.go -destination=glucose_mock.go -package=services

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// GlucoseReader loads a user's glucose record.
type GlucoseReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.GlucoseRecord, error)
}

// GlucoseWriter persists glucose records and readings.
type GlucoseWriter interface {
	Upsert(ctx context.Context, userID uuid.UUID, upd models.ClinicalUpdate) error
	AppendReading(ctx context.Context, userID uuid.UUID, reading models.GlucoseReading) error
	SavePrediction(ctx context.Context, userID uuid.UUID, label string, isDiabetic bool) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AfterCommitFunc schedules fn to run once the surrounding write is durable.
type AfterCommitFunc func(ctx context.Context, fn func(ctx context.Context))

// GlucoseService maintains the single glucose record of each user.
type GlucoseService struct {
	users       UserReader
	reader      GlucoseReader
	writer      GlucoseWriter
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
}

// NewGlucoseService creates a GlucoseService. kafkaWriter may be nil.
func NewGlucoseService(users UserReader, reader GlucoseReader, writer GlucoseWriter, kafkaWriter KafkaWriter) *GlucoseService {
	return &GlucoseService{
		users:       users,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Fetch returns the user's record.
func (s *GlucoseService) Fetch(ctx context.Context, userID uuid.UUID) (*models.GlucoseRecord, error) {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.loadRecord(ctx, userID)
}

// UpsertAll writes every clinical field, falling back to the clinical
// defaults for absent or zero values, and returns the stored record.
// Pregnancies are only written for female users. Supplied readings replace
// the stored ones; absent readings leave them untouched.
func (s *GlucoseService) UpsertAll(ctx context.Context, userID uuid.UUID, fields models.ClinicalFields) (*models.GlucoseRecord, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	upd, err := buildClinicalUpdate(user.Profile(), fields, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.writer.Upsert(ctx, userID, upd); err != nil {
		logger.Log.Errorw("failed to upsert glucose record", "userID", userID, "error", err)
		return nil, err
	}

	rec, err := s.loadRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.GlucoseEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		Type:      models.EventRecordUpdated,
		Timestamp: time.Now().Unix(),
	})

	return rec, nil
}

// AppendReading adds a reading stamped with the current time, creating the
// record when the user has none. Existing readings are never modified.
func (s *GlucoseService) AppendReading(ctx context.Context, userID uuid.UUID, value float64) (*models.GlucoseRecord, error) {
	if !validReading(value) {
		return nil, ErrInvalidGlucoseReading
	}
	if _, err := s.loadUser(ctx, userID); err != nil {
		return nil, err
	}

	reading := models.GlucoseReading{Value: value, Timestamp: time.Now().UTC()}
	if err := s.writer.AppendReading(ctx, userID, reading); err != nil {
		logger.Log.Errorw("failed to append glucose reading", "userID", userID, "value", value, "error", err)
		return nil, err
	}

	rec, err := s.loadRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.GlucoseEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		Type:      models.EventReadingAdded,
		Value:     value,
		Timestamp: reading.Timestamp.Unix(),
	})

	return rec, nil
}

func (s *GlucoseService) loadUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *GlucoseService) loadRecord(ctx context.Context, userID uuid.UUID) (*models.GlucoseRecord, error) {
	rec, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get glucose record", "userID", userID, "error", err)
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecordNotFound
	}
	return rec, nil
}

// WithAfterCommit makes change events wait for the request transaction.
func (s *GlucoseService) WithAfterCommit(fn AfterCommitFunc) *GlucoseService {
	s.afterCommit = fn
	return s
}

func (s *GlucoseService) publish(ctx context.Context, event models.GlucoseEvent) {
	if s.afterCommit == nil {
		publishEvent(ctx, s.kafkaWriter, event)
		return
	}
	s.afterCommit(ctx, func(ctx context.Context) {
		publishEvent(ctx, s.kafkaWriter, event)
	})
}

// publishEvent sends event to Kafka. Failures are logged and never returned.
func publishEvent(ctx context.Context, w KafkaWriter, event models.GlucoseEvent) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal glucose event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish glucose event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Glucose event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

func buildClinicalUpdate(profile models.Profile, fields models.ClinicalFields, now time.Time) (models.ClinicalUpdate, error) {
	var err error
	upd := models.ClinicalUpdate{}

	if upd.BloodPressure, err = orDefault(fields.BloodPressure, models.DefaultBloodPressure, "bloodPressure"); err != nil {
		return upd, err
	}
	if upd.SkinThickness, err = orDefault(fields.SkinThickness, models.DefaultSkinThickness, "skinThickness"); err != nil {
		return upd, err
	}
	if upd.Insulin, err = orDefault(fields.Insulin, models.DefaultInsulin, "insulin"); err != nil {
		return upd, err
	}
	if upd.DiabetesPedigreeFunction, err = orDefault(fields.DiabetesPedigreeFunction, models.DefaultDiabetesPedigreeFunction, "diabetesPedigreeFunction"); err != nil {
		return upd, err
	}

	switch profile.(type) {
	case models.FemaleProfile:
		pregnancies := models.DefaultPregnancies
		if fields.Pregnancies != nil {
			if *fields.Pregnancies < 0 {
				return upd, newValidationError("pregnancies must not be negative")
			}
			pregnancies = *fields.Pregnancies
		}
		upd.Profile = models.FemaleProfile{Pregnancies: pregnancies}
	default:
		upd.Profile = profile
	}

	if fields.GlucoseReadings != nil {
		upd.ReplaceReadings = true
		upd.Readings = make([]models.GlucoseReading, 0, len(fields.GlucoseReadings))
		for _, in := range fields.GlucoseReadings {
			if !validReading(in.Value) {
				return upd, ErrInvalidGlucoseReading
			}
			ts := now
			if in.Timestamp != nil {
				ts = in.Timestamp.UTC()
			}
			upd.Readings = append(upd.Readings, models.GlucoseReading{Value: in.Value, Timestamp: ts})
		}
	}

	return upd, nil
}

func orDefault(v *float64, def float64, name string) (float64, error) {
	if v == nil || *v == 0 {
		return def, nil
	}
	if *v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, newValidationError(name + " must be a non-negative number")
	}
	return *v, nil
}

func validReading(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
