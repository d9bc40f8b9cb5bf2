package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
	"github.com/sbilibin2017/glucose-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionService_Predict(t *testing.T) {
	user := &models.UserDB{UserID: uuid.New(), Gender: models.GenderFemale, Height: 200, Weight: 80, Age: 29}

	tests := []struct {
		name       string
		user       *models.UserDB
		record     *models.GlucoseRecord
		label      string
		predictErr error
		wantLabel  string
		wantErr    error
	}{
		{name: "numeric positive", user: user, record: recordWith(user.UserID, 98, 160), label: "1", wantLabel: models.PredictionDiabetic},
		{name: "numeric negative", user: user, record: recordWith(user.UserID, 98), label: "0", wantLabel: models.PredictionNonDiabetic},
		{name: "string label", user: user, record: recordWith(user.UserID, 98), label: "Diabetic", wantLabel: models.PredictionDiabetic},
		{name: "unknown label", user: user, record: recordWith(user.UserID, 98), label: "maybe", wantErr: services.ErrMalformedUpstreamResponse},
		{name: "classifier down", user: user, record: recordWith(user.UserID, 98), predictErr: errors.New("refused"), wantErr: services.ErrUpstreamUnavailable},
		{name: "no readings", user: user, record: recordWith(user.UserID), wantErr: services.ErrNoReadings},
		{name: "no record", user: user, wantErr: services.ErrRecordNotFound},
		{name: "no user", wantErr: services.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := services.NewMockUserReader(ctrl)
			reader := services.NewMockGlucoseReader(ctrl)
			writer := services.NewMockGlucoseWriter(ctrl)
			predictor := services.NewMockPredictor(ctrl)
			svc := services.NewPredictionService(users, reader, writer, predictor, nil)

			users.EXPECT().GetByID(gomock.Any(), user.UserID).Return(tt.user, nil)
			if tt.user != nil {
				reader.EXPECT().GetByUserID(gomock.Any(), user.UserID).Return(tt.record, nil)
			}
			if tt.record != nil && len(tt.record.GlucoseReadings) > 0 {
				latest := tt.record.GlucoseReadings[len(tt.record.GlucoseReadings)-1].Value
				predictor.EXPECT().Predict(gomock.Any(), []float64{1, latest, 72, 20, 80, 20, 0.5}).Return(tt.label, tt.predictErr)
			}
			if tt.wantLabel != "" {
				writer.EXPECT().SavePrediction(gomock.Any(), user.UserID, tt.wantLabel, tt.wantLabel == models.PredictionDiabetic).Return(nil)
			}

			res, err := svc.Predict(context.Background(), user.UserID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, res.Prediction)
			assert.Equal(t, tt.wantLabel == models.PredictionDiabetic, res.IsDiabetic)
			assert.Equal(t, 20.0, res.BMI)
		})
	}
}

func TestPredictionService_Unconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Height: 170, Weight: 70}
	users := services.NewMockUserReader(ctrl)
	reader := services.NewMockGlucoseReader(ctrl)
	svc := services.NewPredictionService(users, reader, services.NewMockGlucoseWriter(ctrl), nil, nil)

	users.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
	reader.EXPECT().GetByUserID(gomock.Any(), user.UserID).Return(recordWith(user.UserID, 100), nil)

	_, err := svc.Predict(context.Background(), user.UserID)
	assert.ErrorIs(t, err, services.ErrUpstreamUnavailable)
}

func TestPredictionService_PublishesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Gender: models.GenderMale, Height: 180, Weight: 81}
	store := newMemoryGlucoseStore()
	require.NoError(t, store.AppendReading(context.Background(), user.UserID, models.GlucoseReading{Value: 180}))

	users := services.NewMockUserReader(ctrl)
	predictor := services.NewMockPredictor(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	svc := services.NewPredictionService(users, store, store, predictor, kafkaWriter)

	users.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
	predictor.EXPECT().Predict(gomock.Any(), gomock.Any()).Return("diabetic", nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Predict(context.Background(), user.UserID)
	require.NoError(t, err)

	rec, err := store.GetByUserID(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.PredictionDiabetic, rec.Prediction)
	assert.True(t, rec.IsDiabetic)
}
