package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
	"github.com/sbilibin2017/glucose-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPredictionRequester(ctrl)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().Predict(gomock.Any(), userID).Return(&models.PredictionResult{
			PredictionFeatures: models.PredictionFeatures{LatestGlucose: 140, BMI: 22.04},
			Prediction:         models.PredictionDiabetic,
			IsDiabetic:         true,
		}, nil)

		rec := httptest.NewRecorder()
		NewPredictHandler(mockSvc, fixedUser(userID)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/diabetesOpr/predict", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp PredictionResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.NotNil(t, resp.Data)
		assert.Equal(t, models.PredictionDiabetic, resp.Data.Prediction)
		assert.True(t, resp.Data.IsDiabetic)
	})

	t.Run("no readings", func(t *testing.T) {
		mockSvc.EXPECT().Predict(gomock.Any(), userID).Return(nil, services.ErrNoReadings)

		rec := httptest.NewRecorder()
		NewPredictHandler(mockSvc, fixedUser(userID)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/diabetesOpr/predict", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no session user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewPredictHandler(mockSvc, noUser).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/diabetesOpr/predict", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
