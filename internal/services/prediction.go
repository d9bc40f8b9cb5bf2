package services

//go:generate mockgen -source=prediction.go -destination=prediction_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
)

// Predictor classifies a feature row and returns the raw label.
type Predictor interface {
	Predict(ctx context.Context, features []float64) (string, error)
}

// PredictionService runs the diabetes classifier on a user's latest snapshot
// and stores the outcome on the record.
type PredictionService struct {
	users       UserReader
	reader      GlucoseReader
	writer      GlucoseWriter
	predictor   Predictor
	kafkaWriter KafkaWriter
}

// NewPredictionService creates a PredictionService. predictor may be nil when
// no classifier is configured, kafkaWriter when events are not published.
func NewPredictionService(users UserReader, reader GlucoseReader, writer GlucoseWriter, predictor Predictor, kafkaWriter KafkaWriter) *PredictionService {
	return &PredictionService{
		users:       users,
		reader:      reader,
		writer:      writer,
		predictor:   predictor,
		kafkaWriter: kafkaWriter,
	}
}

// Predict classifies the user and persists prediction and isDiabetic.
func (s *PredictionService) Predict(ctx context.Context, userID uuid.UUID) (*models.PredictionResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	rec, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get glucose record", "userID", userID, "error", err)
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecordNotFound
	}
	latest, ok := rec.LatestReading()
	if !ok {
		return nil, ErrNoReadings
	}

	features := models.PredictionFeatures{
		Pregnancies:              rec.Pregnancies,
		LatestGlucose:            latest.Value,
		BloodPressure:            rec.BloodPressure,
		SkinThickness:            rec.SkinThickness,
		Insulin:                  rec.Insulin,
		BMI:                      user.BMI(),
		DiabetesPedigreeFunction: rec.DiabetesPedigreeFunction,
	}

	if s.predictor == nil {
		return nil, fmt.Errorf("%w: classifier not configured", ErrUpstreamUnavailable)
	}

	raw, err := s.predictor.Predict(ctx, features.Vector())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	label, err := normalizeLabel(raw)
	if err != nil {
		logger.Log.Errorw("unknown classifier label", "userID", userID, "label", raw)
		return nil, err
	}
	isDiabetic := label == models.PredictionDiabetic

	if err := s.writer.SavePrediction(ctx, userID, label, isDiabetic); err != nil {
		logger.Log.Errorw("failed to save prediction", "userID", userID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.GlucoseEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		Type:      models.EventPrediction,
		Label:     label,
		Timestamp: time.Now().Unix(),
	})

	return &models.PredictionResult{
		PredictionFeatures: features,
		Prediction:         label,
		IsDiabetic:         isDiabetic,
	}, nil
}

func normalizeLabel(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "1.0", "true", models.PredictionDiabetic:
		return models.PredictionDiabetic, nil
	case "0", "0.0", "false", models.PredictionNonDiabetic:
		return models.PredictionNonDiabetic, nil
	}
	return "", fmt.Errorf("%w: unknown label %q", ErrMalformedUpstreamResponse, raw)
}
