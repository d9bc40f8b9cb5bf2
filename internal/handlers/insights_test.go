package handlers

import (
	"encoding/json"
	"fmt"
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

func TestAnalyticsChartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAnalyzer(ctrl)
	userID := uuid.New()

	tests := []struct {
		name          string
		mockSetup     func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			mockSetup: func() {
				mockSvc.EXPECT().Analytics(gomock.Any(), userID).Return(&models.GlucoseInsights{
					Statistics:   models.GlucoseStatistics{Mean: 119, Min: 98, Max: 140},
					Patterns:     []string{"post-meal rise"},
					Concerns:     []string{},
					FinalSummary: "Mostly in range.",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "no readings",
			mockSetup: func() {
				mockSvc.EXPECT().Analytics(gomock.Any(), userID).Return(nil, services.ErrNoReadings)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "No glucose readings found",
		},
		{
			name: "malformed generator output",
			mockSetup: func() {
				mockSvc.EXPECT().Analytics(gomock.Any(), userID).
					Return(nil, fmt.Errorf("%w: missing statistics", services.ErrMalformedUpstreamResponse))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rec := httptest.NewRecorder()
			NewAnalyticsChartHandler(mockSvc, fixedUser(userID)).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/diabetesOpr/analyticsChart", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rec))
				return
			}

			var resp AnalyticsResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "Analytics insights generated successfully", resp.Message)
			require.NotNil(t, resp.Insights)
			assert.Equal(t, 119.0, resp.Insights.Statistics.Mean)
			assert.Equal(t, []string{"post-meal rise"}, resp.Insights.Patterns)
			assert.Equal(t, "Mostly in range.", resp.Insights.FinalSummary)
		})
	}
}

func TestRecommendationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRecommender(ctrl)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().Recommendations(gomock.Any(), userID).Return("Walk after meals.", nil)

		rec := httptest.NewRecorder()
		NewRecommendationsHandler(mockSvc, fixedUser(userID)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations/getRecommendations", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp RecommendationsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Recommendations generated successfully", resp.Message)
		assert.Equal(t, "Walk after meals.", resp.Recommendations)
	})

	t.Run("generator unavailable", func(t *testing.T) {
		mockSvc.EXPECT().Recommendations(gomock.Any(), userID).Return("", services.ErrUpstreamUnavailable)

		rec := httptest.NewRecorder()
		NewRecommendationsHandler(mockSvc, fixedUser(userID)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations/getRecommendations", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
