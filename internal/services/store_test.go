package services_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
)

// memoryGlucoseStore mirrors the Postgres glucose repositories for
// property-style tests over many operations.
type memoryGlucoseStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*models.GlucoseRecord
}

func newMemoryGlucoseStore() *memoryGlucoseStore {
	return &memoryGlucoseStore{records: map[uuid.UUID]*models.GlucoseRecord{}}
}

func (s *memoryGlucoseStore) ensure(userID uuid.UUID) *models.GlucoseRecord {
	rec, ok := s.records[userID]
	if !ok {
		rec = &models.GlucoseRecord{
			ID:                       uuid.New(),
			UserID:                   userID,
			GlucoseReadings:          []models.GlucoseReading{},
			Pregnancies:              models.DefaultPregnancies,
			BloodPressure:            models.DefaultBloodPressure,
			SkinThickness:            models.DefaultSkinThickness,
			Insulin:                  models.DefaultInsulin,
			DiabetesPedigreeFunction: models.DefaultDiabetesPedigreeFunction,
			Prediction:               models.PredictionNonDiabetic,
		}
		s.records[userID] = rec
	}
	return rec
}

func (s *memoryGlucoseStore) GetByUserID(_ context.Context, userID uuid.UUID) (*models.GlucoseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[userID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.GlucoseReadings = append([]models.GlucoseReading{}, rec.GlucoseReadings...)
	if latest, ok := cp.LatestReading(); ok {
		v := latest.Value
		cp.LastRecordedGlucose = &v
	}
	return &cp, nil
}

func (s *memoryGlucoseStore) Upsert(_ context.Context, userID uuid.UUID, upd models.ClinicalUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ensure(userID)
	if n, ok := models.PregnanciesOf(upd.Profile); ok {
		rec.Pregnancies = n
	}
	rec.BloodPressure = upd.BloodPressure
	rec.SkinThickness = upd.SkinThickness
	rec.Insulin = upd.Insulin
	rec.DiabetesPedigreeFunction = upd.DiabetesPedigreeFunction
	if upd.ReplaceReadings {
		rec.GlucoseReadings = append([]models.GlucoseReading{}, upd.Readings...)
	}
	return nil
}

func (s *memoryGlucoseStore) AppendReading(_ context.Context, userID uuid.UUID, reading models.GlucoseReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ensure(userID)
	rec.GlucoseReadings = append(rec.GlucoseReadings, reading)
	return nil
}

func (s *memoryGlucoseStore) SavePrediction(_ context.Context, userID uuid.UUID, label string, isDiabetic bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ensure(userID)
	rec.Prediction = label
	rec.IsDiabetic = isDiabetic
	return nil
}
