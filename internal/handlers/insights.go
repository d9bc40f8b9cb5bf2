package handlers

//go:generate mockgen -source=insights.go -destination=insights_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
)

// Analyzer produces an analytics report over a user's readings.
type Analyzer interface {
	Analytics(ctx context.Context, userID uuid.UUID) (*models.GlucoseInsights, error)
}

// Recommender produces free-text health advice for a user.
type Recommender interface {
	Recommendations(ctx context.Context, userID uuid.UUID) (string, error)
}

// AnalyticsResponse wraps an analytics report
// swagger:model AnalyticsResponse
type AnalyticsResponse struct {
	// example: Analytics insights generated successfully
	Message  string                  `json:"message"`
	Insights *models.GlucoseInsights `json:"insights"`
}

// RecommendationsResponse wraps generated advice
// swagger:model RecommendationsResponse
type RecommendationsResponse struct {
	// example: Recommendations generated successfully
	Message string `json:"message"`
	// example: Keep your fasting glucose under 100 mg/dL...
	Recommendations string `json:"recommendations"`
}

// NewAnalyticsChartHandler returns an HTTP handler for glucose analytics.
// @Summary Glucose analytics
// @Description Generates statistics, patterns and concerns over the user's readings
// @Tags insights
// @Produce json
// @Success 200 {object} handlers.AnalyticsResponse "Analytics report"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No diabetes data or readings"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /diabetesOpr/analyticsChart [get]
// @Security BearerAuth
func NewAnalyticsChartHandler(svc Analyzer, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUser(w, r, userIDGetter)
		if !ok {
			return
		}

		insights, err := svc.Analytics(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, AnalyticsResponse{
			Message:  "Analytics insights generated successfully",
			Insights: insights,
		})
	}
}

// NewRecommendationsHandler returns an HTTP handler for health recommendations.
// @Summary Health recommendations
// @Description Generates advice from the user's profile, BMI and clinical fields
// @Tags insights
// @Produce json
// @Success 200 {object} handlers.RecommendationsResponse "Recommendations"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User or record not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recommendations/getRecommendations [get]
// @Security BearerAuth
func NewRecommendationsHandler(svc Recommender, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUser(w, r, userIDGetter)
		if !ok {
			return
		}

		text, err := svc.Recommendations(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, RecommendationsResponse{
			Message:         "Recommendations generated successfully",
			Recommendations: text,
		})
	}
}
