package handlers

//go:generate mockgen -source=prediction.go -destination=prediction_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
)

// PredictionRequester classifies a user and stores the result.
type PredictionRequester interface {
	Predict(ctx context.Context, userID uuid.UUID) (*models.PredictionResult, error)
}

// PredictionResponse wraps a prediction result
// swagger:model PredictionResponse
type PredictionResponse struct {
	// example: Prediction generated successfully
	Message string                   `json:"message"`
	Data    *models.PredictionResult `json:"data"`
}

// NewPredictHandler returns an HTTP handler that runs the diabetes classifier.
// @Summary Diabetes prediction
// @Description Sends the user's features to the classifier and stores prediction and isDiabetic on the record
// @Tags diabetes
// @Produce json
// @Success 200 {object} handlers.PredictionResponse "Prediction"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User, record or readings not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /diabetesOpr/predict [get]
// @Security BearerAuth
func NewPredictHandler(svc PredictionRequester, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUser(w, r, userIDGetter)
		if !ok {
			return
		}

		result, err := svc.Predict(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PredictionResponse{
			Message: "Prediction generated successfully",
			Data:    result,
		})
	}
}
