package handlers

//go:generate mockgen -source=glucose.go -destination=glucose_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
)

// GlucoseFetcher returns a user's glucose record.
type GlucoseFetcher interface {
	Fetch(ctx context.Context, userID uuid.UUID) (*models.GlucoseRecord, error)
}

// GlucoseUpdater writes all clinical fields of a user's record.
type GlucoseUpdater interface {
	UpsertAll(ctx context.Context, userID uuid.UUID, fields models.ClinicalFields) (*models.GlucoseRecord, error)
}

// ReadingAppender adds one reading to a user's record.
type ReadingAppender interface {
	AppendReading(ctx context.Context, userID uuid.UUID, value float64) (*models.GlucoseRecord, error)
}

// GlucoseRecordResponse wraps a glucose record
// swagger:model GlucoseRecordResponse
type GlucoseRecordResponse struct {
	// example: Diabetes data retrieved successfully
	Message string                `json:"message"`
	Data    *models.GlucoseRecord `json:"data"`
}

// AddReadingRequest represents the JSON body for a new reading
// swagger:model AddReadingRequest
type AddReadingRequest struct {
	// Glucose value in mg/dL
	// required: true
	// example: 104
	Value *float64 `json:"value"`
}

// NewGetDiabetesDetailsHandler returns an HTTP handler for the session user's glucose record.
// @Summary Get diabetes details
// @Description Returns the glucose record of the authenticated user
// @Tags diabetes
// @Produce json
// @Success 200 {object} handlers.GlucoseRecordResponse "Glucose record"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User or record not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /diabetesOpr/getDiabetesDetails [get]
// @Security BearerAuth
func NewGetDiabetesDetailsHandler(svc GlucoseFetcher, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUser(w, r, userIDGetter)
		if !ok {
			return
		}

		rec, err := svc.Fetch(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, GlucoseRecordResponse{
			Message: "Diabetes data retrieved successfully",
			Data:    rec,
		})
	}
}

// NewUpdateDiabetesDetailsHandler returns an HTTP handler that creates or
// replaces the clinical fields of the session user's record.
// @Summary Update diabetes details
// @Description Upserts the clinical fields. Absent or zero fields take their defaults; glucoseReadings, when present, replace the stored readings.
// @Tags diabetes
// @Accept json
// @Produce json
// @Param clinicalFields body models.ClinicalFields true "Clinical fields"
// @Success 200 {object} handlers.GlucoseRecordResponse "Updated record"
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /diabetesOpr/updateDiabetesDetails [put]
// @Security BearerAuth
func NewUpdateDiabetesDetailsHandler(svc GlucoseUpdater, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUser(w, r, userIDGetter)
		if !ok {
			return
		}

		var fields models.ClinicalFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		rec, err := svc.UpsertAll(r.Context(), userID, fields)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, GlucoseRecordResponse{
			Message: "Diabetes data updated successfully",
			Data:    rec,
		})
	}
}

// NewAddGlucoseReadingHandler returns an HTTP handler that appends a reading
// stamped with the current time.
// @Summary Add glucose reading
// @Description Appends one reading to the authenticated user's record, creating the record with defaults if needed
// @Tags diabetes
// @Accept json
// @Produce json
// @Param addReadingRequest body handlers.AddReadingRequest true "Reading"
// @Success 200 {object} handlers.GlucoseRecordResponse "Updated record"
// @Failure 400 {object} handlers.ErrorResponse "Invalid glucose reading"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /diabetesOpr/addGlucoseReading [post]
// @Security BearerAuth
func NewAddGlucoseReadingHandler(svc ReadingAppender, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUser(w, r, userIDGetter)
		if !ok {
			return
		}

		var req AddReadingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if req.Value == nil {
			writeError(w, http.StatusBadRequest, "Glucose value is required")
			return
		}

		rec, err := svc.AppendReading(r.Context(), userID, *req.Value)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, GlucoseRecordResponse{
			Message: "Glucose reading added successfully",
			Data:    rec,
		})
	}
}
