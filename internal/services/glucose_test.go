package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
	"github.com/sbilibin2017/glucose-tracker/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWithGender(gender string) *models.UserDB {
	return &models.UserDB{UserID: uuid.New(), Name: "u", Gender: gender, Height: 165, Weight: 60, Age: 29}
}

func usersReturning(ctrl *gomock.Controller, user *models.UserDB) *services.MockUserReader {
	users := services.NewMockUserReader(ctrl)
	users.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil).AnyTimes()
	return users
}

func TestGlucoseService_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := services.NewMockUserReader(ctrl)
	reader := services.NewMockGlucoseReader(ctrl)
	svc := services.NewGlucoseService(users, reader, services.NewMockGlucoseWriter(ctrl), nil)

	t.Run("user not found", func(t *testing.T) {
		id := uuid.New()
		users.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)
		_, err := svc.Fetch(context.Background(), id)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("record not found", func(t *testing.T) {
		user := userWithGender(models.GenderMale)
		users.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
		reader.EXPECT().GetByUserID(gomock.Any(), user.UserID).Return(nil, nil)
		_, err := svc.Fetch(context.Background(), user.UserID)
		assert.ErrorIs(t, err, services.ErrRecordNotFound)
	})

	t.Run("found", func(t *testing.T) {
		user := userWithGender(models.GenderMale)
		rec := &models.GlucoseRecord{UserID: user.UserID, Insulin: 80}
		users.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
		reader.EXPECT().GetByUserID(gomock.Any(), user.UserID).Return(rec, nil)
		got, err := svc.Fetch(context.Background(), user.UserID)
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("store error", func(t *testing.T) {
		id := uuid.New()
		users.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("db down"))
		_, err := svc.Fetch(context.Background(), id)
		assert.EqualError(t, err, "db down")
	})
}

func TestGlucoseService_UpsertAll_Defaults(t *testing.T) {
	ts := time.Date(2025, 5, 22, 7, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		gender string
		fields models.ClinicalFields
		want   models.ClinicalUpdate
	}{
		{
			name:   "all absent for female",
			gender: models.GenderFemale,
			want: models.ClinicalUpdate{
				Profile:                  models.FemaleProfile{Pregnancies: 0},
				BloodPressure:            72,
				SkinThickness:            20,
				Insulin:                  80,
				DiabetesPedigreeFunction: 0.5,
			},
		},
		{
			name:   "zero values fall back",
			gender: models.GenderFemale,
			fields: models.ClinicalFields{
				Pregnancies:              ptr(0),
				BloodPressure:            ptr(0.0),
				SkinThickness:            ptr(0.0),
				Insulin:                  ptr(0.0),
				DiabetesPedigreeFunction: ptr(0.0),
			},
			want: models.ClinicalUpdate{
				Profile:                  models.FemaleProfile{Pregnancies: 0},
				BloodPressure:            72,
				SkinThickness:            20,
				Insulin:                  80,
				DiabetesPedigreeFunction: 0.5,
			},
		},
		{
			name:   "explicit values for female",
			gender: models.GenderFemale,
			fields: models.ClinicalFields{
				Pregnancies:              ptr(2),
				BloodPressure:            ptr(85.0),
				SkinThickness:            ptr(25.0),
				Insulin:                  ptr(100.0),
				DiabetesPedigreeFunction: ptr(0.7),
			},
			want: models.ClinicalUpdate{
				Profile:                  models.FemaleProfile{Pregnancies: 2},
				BloodPressure:            85,
				SkinThickness:            25,
				Insulin:                  100,
				DiabetesPedigreeFunction: 0.7,
			},
		},
		{
			name:   "male never carries pregnancies",
			gender: models.GenderMale,
			fields: models.ClinicalFields{Pregnancies: ptr(3)},
			want: models.ClinicalUpdate{
				Profile:                  models.MaleProfile{},
				BloodPressure:            72,
				SkinThickness:            20,
				Insulin:                  80,
				DiabetesPedigreeFunction: 0.5,
			},
		},
		{
			name:   "other never carries pregnancies",
			gender: models.GenderOther,
			fields: models.ClinicalFields{Pregnancies: ptr(1)},
			want: models.ClinicalUpdate{
				Profile:                  models.OtherProfile{},
				BloodPressure:            72,
				SkinThickness:            20,
				Insulin:                  80,
				DiabetesPedigreeFunction: 0.5,
			},
		},
		{
			name:   "readings replace",
			gender: models.GenderMale,
			fields: models.ClinicalFields{
				GlucoseReadings: models.ReadingsInput{{Value: 98, Timestamp: &ts}, {Value: 140, Timestamp: &ts}},
			},
			want: models.ClinicalUpdate{
				Profile:                  models.MaleProfile{},
				BloodPressure:            72,
				SkinThickness:            20,
				Insulin:                  80,
				DiabetesPedigreeFunction: 0.5,
				ReplaceReadings:          true,
				Readings:                 []models.GlucoseReading{{Value: 98, Timestamp: ts}, {Value: 140, Timestamp: ts}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			user := userWithGender(tt.gender)
			reader := services.NewMockGlucoseReader(ctrl)
			writer := services.NewMockGlucoseWriter(ctrl)
			svc := services.NewGlucoseService(usersReturning(ctrl, user), reader, writer, nil)

			writer.EXPECT().Upsert(gomock.Any(), user.UserID, tt.want).Return(nil)
			reader.EXPECT().GetByUserID(gomock.Any(), user.UserID).Return(&models.GlucoseRecord{UserID: user.UserID}, nil)

			rec, err := svc.UpsertAll(context.Background(), user.UserID, tt.fields)
			require.NoError(t, err)
			assert.Equal(t, user.UserID, rec.UserID)
		})
	}
}

func TestGlucoseService_UpsertAll_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		fields models.ClinicalFields
	}{
		{"negative reading", models.ClinicalFields{GlucoseReadings: models.ReadingsInput{{Value: -1}}}},
		{"infinite reading", models.ClinicalFields{GlucoseReadings: models.ReadingsInput{{Value: math.Inf(1)}}}},
		{"negative blood pressure", models.ClinicalFields{BloodPressure: ptr(-5.0)}},
		{"negative pregnancies", models.ClinicalFields{Pregnancies: ptr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			user := userWithGender(models.GenderFemale)
			svc := services.NewGlucoseService(usersReturning(ctrl, user), services.NewMockGlucoseReader(ctrl), services.NewMockGlucoseWriter(ctrl), nil)

			_, err := svc.UpsertAll(context.Background(), user.UserID, tt.fields)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestGlucoseService_UpsertAll_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := userWithGender(models.GenderFemale)
	store := newMemoryGlucoseStore()
	svc := services.NewGlucoseService(usersReturning(ctrl, user), store, store, nil)

	ts := time.Date(2025, 5, 22, 7, 30, 0, 0, time.UTC)
	fields := models.ClinicalFields{
		GlucoseReadings: models.ReadingsInput{{Value: 101, Timestamp: &ts}},
		Pregnancies:     ptr(1),
		Insulin:         ptr(95.0),
	}

	first, err := svc.UpsertAll(context.Background(), user.UserID, fields)
	require.NoError(t, err)
	second, err := svc.UpsertAll(context.Background(), user.UserID, fields)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGlucoseService_UpsertAll_NonFemaleKeepsPregnancies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := userWithGender(models.GenderFemale)
	users := services.NewMockUserReader(ctrl)
	store := newMemoryGlucoseStore()
	svc := services.NewGlucoseService(users, store, store, nil)

	users.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
	_, err := svc.UpsertAll(context.Background(), user.UserID, models.ClinicalFields{Pregnancies: ptr(2)})
	require.NoError(t, err)

	for _, gender := range []string{models.GenderMale, models.GenderOther} {
		changed := *user
		changed.Gender = gender
		users.EXPECT().GetByID(gomock.Any(), user.UserID).Return(&changed, nil)

		rec, err := svc.UpsertAll(context.Background(), user.UserID, models.ClinicalFields{Pregnancies: ptr(7)})
		require.NoError(t, err)
		assert.Equal(t, 2, rec.Pregnancies)
	}
}

func TestGlucoseService_UpsertAll_AbsentReadingsUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := userWithGender(models.GenderMale)
	store := newMemoryGlucoseStore()
	svc := services.NewGlucoseService(usersReturning(ctrl, user), store, store, nil)

	_, err := svc.AppendReading(context.Background(), user.UserID, 120)
	require.NoError(t, err)

	rec, err := svc.UpsertAll(context.Background(), user.UserID, models.ClinicalFields{BloodPressure: ptr(90.0)})
	require.NoError(t, err)
	require.Len(t, rec.GlucoseReadings, 1)
	assert.Equal(t, 120.0, rec.GlucoseReadings[0].Value)
	assert.Equal(t, 90.0, rec.BloodPressure)
}

func TestGlucoseService_AppendReading(t *testing.T) {
	t.Run("invalid values make no calls", func(t *testing.T) {
		for _, v := range []float64{-0.1, math.NaN(), math.Inf(1), math.Inf(-1)} {
			ctrl := gomock.NewController(t)
			svc := services.NewGlucoseService(services.NewMockUserReader(ctrl), services.NewMockGlucoseReader(ctrl), services.NewMockGlucoseWriter(ctrl), nil)

			_, err := svc.AppendReading(context.Background(), uuid.New(), v)
			assert.ErrorIs(t, err, services.ErrInvalidGlucoseReading)
			assert.ErrorIs(t, err, services.ErrValidation)
			ctrl.Finish()
		}
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := services.NewMockUserReader(ctrl)
		svc := services.NewGlucoseService(users, services.NewMockGlucoseReader(ctrl), services.NewMockGlucoseWriter(ctrl), nil)

		id := uuid.New()
		users.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)
		_, err := svc.AppendReading(context.Background(), id, 100)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("zero is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := userWithGender(models.GenderMale)
		store := newMemoryGlucoseStore()
		svc := services.NewGlucoseService(usersReturning(ctrl, user), store, store, nil)

		rec, err := svc.AppendReading(context.Background(), user.UserID, 0)
		require.NoError(t, err)
		require.Len(t, rec.GlucoseReadings, 1)
		assert.Equal(t, 80.0, rec.Insulin)
	})

	t.Run("monotonic growth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := userWithGender(models.GenderFemale)
		store := newMemoryGlucoseStore()
		svc := services.NewGlucoseService(usersReturning(ctrl, user), store, store, nil)

		values := []float64{98, 140, 140, 75.5, 210}
		for i, v := range values {
			rec, err := svc.AppendReading(context.Background(), user.UserID, v)
			require.NoError(t, err)
			require.Len(t, rec.GlucoseReadings, i+1)
			assert.Equal(t, v, rec.GlucoseReadings[len(rec.GlucoseReadings)-1].Value)
			assert.Equal(t, v, *rec.LastRecordedGlucose)
			for j := 0; j < i; j++ {
				assert.Equal(t, values[j], rec.GlucoseReadings[j].Value)
			}
		}
	})

	t.Run("concurrent appends are all kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := userWithGender(models.GenderMale)
		store := newMemoryGlucoseStore()
		svc := services.NewGlucoseService(usersReturning(ctrl, user), store, store, nil)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(v float64) {
				defer wg.Done()
				_, err := svc.AppendReading(context.Background(), user.UserID, v)
				assert.NoError(t, err)
			}(float64(100 + i))
		}
		wg.Wait()

		rec, err := svc.Fetch(context.Background(), user.UserID)
		require.NoError(t, err)
		assert.Len(t, rec.GlucoseReadings, 20)
	})
}

func TestGlucoseService_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := userWithGender(models.GenderMale)
	store := newMemoryGlucoseStore()
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	svc := services.NewGlucoseService(usersReturning(ctrl, user), store, store, kafkaWriter)

	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, user.UserID.String(), string(msgs[0].Key))
			assert.Contains(t, string(msgs[0].Value), `"type":"reading_added"`)
			return nil
		})
	_, err := svc.AppendReading(context.Background(), user.UserID, 101)
	require.NoError(t, err)

	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	_, err = svc.UpsertAll(context.Background(), user.UserID, models.ClinicalFields{})
	assert.NoError(t, err)
}

func TestGlucoseService_WriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := userWithGender(models.GenderMale)
	writer := services.NewMockGlucoseWriter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	svc := services.NewGlucoseService(usersReturning(ctrl, user), services.NewMockGlucoseReader(ctrl), writer, kafkaWriter)

	writer.EXPECT().AppendReading(gomock.Any(), user.UserID, gomock.Any()).Return(errors.New("db error"))
	_, err := svc.AppendReading(context.Background(), user.UserID, 100)
	assert.EqualError(t, err, "db error")

	writer.EXPECT().Upsert(gomock.Any(), user.UserID, gomock.Any()).Return(errors.New("db error"))
	_, err = svc.UpsertAll(context.Background(), user.UserID, models.ClinicalFields{})
	assert.EqualError(t, err, "db error")
}

func TestGlucoseService_EventsWaitForCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := userWithGender(models.GenderFemale)
	store := newMemoryGlucoseStore()
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	var pending []func(context.Context)
	svc := services.NewGlucoseService(usersReturning(ctrl, user), store, store, kafkaWriter).
		WithAfterCommit(func(_ context.Context, fn func(context.Context)) {
			pending = append(pending, fn)
		})

	_, err := svc.AppendReading(context.Background(), user.UserID, 98)
	require.NoError(t, err)
	_, err = svc.UpsertAll(context.Background(), user.UserID, models.ClinicalFields{})
	require.NoError(t, err)
	require.Len(t, pending, 2)

	var types []string
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			var event models.GlucoseEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			types = append(types, event.Type)
			return nil
		}).Times(2)
	for _, fn := range pending {
		fn(context.Background())
	}
	assert.Equal(t, []string{models.EventReadingAdded, models.EventRecordUpdated}, types)
}
