package services

//go:generate mockgen -source=insights.go -destination=insights_mock.go -package=services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/models"
	"github.com/xeipuuv/gojsonschema"
)

// NoRecommendation is returned when the generator produced no text.
const NoRecommendation = "No recommendation generated."

// TextGenerator turns a prompt into text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const insightsSchema = `{
	"type": "object",
	"required": ["statistics", "patterns", "concerns", "final_summary"],
	"properties": {
		"statistics": {
			"type": "object",
			"required": [
				"mean", "median", "std_deviation", "min", "max", "variability_index",
				"average_time_gap_minutes", "percent_in_target_range",
				"percent_hyperglycemia", "percent_hypoglycemia"
			],
			"properties": {
				"mean": {"type": "number"},
				"median": {"type": "number"},
				"std_deviation": {"type": "number"},
				"min": {"type": "number"},
				"max": {"type": "number"},
				"variability_index": {"type": "number"},
				"average_time_gap_minutes": {"type": "number"},
				"percent_in_target_range": {"type": "number"},
				"percent_hyperglycemia": {"type": "number"},
				"percent_hypoglycemia": {"type": "number"}
			}
		},
		"patterns": {"type": "array", "items": {"type": "string"}},
		"concerns": {"type": "array", "items": {"type": "string"}},
		"final_summary": {"type": "string"}
	}
}`

const analyticsPromptTemplate = `You are a clinical data analyst. Analyze the following glucose readings (mg/dL) of one patient.
Respond with strict JSON only, no prose and no markdown, using exactly this structure:
{
  "statistics": {
    "mean": number,
    "median": number,
    "std_deviation": number,
    "min": number,
    "max": number,
    "variability_index": number,
    "average_time_gap_minutes": number,
    "percent_in_target_range": number,
    "percent_hyperglycemia": number,
    "percent_hypoglycemia": number
  },
  "patterns": [string],
  "concerns": [string],
  "final_summary": string
}
The target range is 80-140 mg/dL, hyperglycemia is above 140 mg/dL and hypoglycemia is below 70 mg/dL.

Readings:
%s
`

const recommendationPromptTemplate = `
You are a health assistant specializing in gestational diabetes.
Patient profile:
- Age: %d
- Gender: %s
- BMI: %.2f
- Pregnancies: %d
- Latest glucose: %s mg/dL
- Blood pressure: %g mmHg
- Insulin: %g
- Diabetes pedigree function: %g

Provide a detailed, personalized daily diet and exercise recommendation.
`

var fenceRegex = regexp.MustCompile("(?s)^```[A-Za-z0-9_-]*\\s*(.*?)\\s*```$")

// InsightsService asks the text generator for analytics and recommendations.
type InsightsService struct {
	users     UserReader
	records   GlucoseReader
	generator TextGenerator
	schema    *gojsonschema.Schema
}

// NewInsightsService creates an InsightsService. It fails only if the
// embedded analytics schema does not compile.
func NewInsightsService(users UserReader, records GlucoseReader, generator TextGenerator) (*InsightsService, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(insightsSchema))
	if err != nil {
		return nil, err
	}
	return &InsightsService{
		users:     users,
		records:   records,
		generator: generator,
		schema:    schema,
	}, nil
}

// Analytics returns the generated analysis of the user's reading history.
// No generator call is made when the user has no readings.
func (s *InsightsService) Analytics(ctx context.Context, userID uuid.UUID) (*models.GlucoseInsights, error) {
	rec, err := s.records.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get glucose record", "userID", userID, "error", err)
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecordNotFound
	}
	if len(rec.GlucoseReadings) == 0 {
		return nil, ErrNoReadings
	}

	prompt, err := analyticsPrompt(rec.GlucoseReadings)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Log.Errorw("analytics generation failed", "userID", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	insights, err := s.parseInsights(text)
	if err != nil {
		logger.Log.Errorw("analytics response rejected", "userID", userID, "error", err, "response", text)
		return nil, err
	}
	return insights, nil
}

// Recommendations returns free-text advice built from the user's profile and
// latest clinical snapshot.
func (s *InsightsService) Recommendations(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	rec, err := s.records.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get glucose record", "userID", userID, "error", err)
		return "", err
	}
	if rec == nil {
		return "", ErrRecordNotFound
	}

	text, err := s.generator.Generate(ctx, recommendationPrompt(user, rec))
	if err != nil {
		logger.Log.Errorw("recommendation generation failed", "userID", userID, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if strings.TrimSpace(text) == "" {
		return NoRecommendation, nil
	}
	return text, nil
}

func (s *InsightsService) parseInsights(text string) (*models.GlucoseInsights, error) {
	body := []byte(stripFences(text))

	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUpstreamResponse, err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedUpstreamResponse, strings.Join(details, "; "))
	}

	var insights models.GlucoseInsights
	if err := json.Unmarshal(body, &insights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUpstreamResponse, err)
	}
	return &insights, nil
}

// stripFences removes a surrounding ``` block, with or without a language tag.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if m := fenceRegex.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

type promptReading struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

func analyticsPrompt(readings []models.GlucoseReading) (string, error) {
	pairs := make([]promptReading, 0, len(readings))
	for _, r := range readings {
		pairs = append(pairs, promptReading{Value: r.Value, Timestamp: r.Timestamp})
	}
	data, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(analyticsPromptTemplate, data), nil
}

func recommendationPrompt(user *models.UserDB, rec *models.GlucoseRecord) string {
	latest := "unknown"
	if r, ok := rec.LatestReading(); ok {
		latest = fmt.Sprintf("%g", r.Value)
	}
	return fmt.Sprintf(recommendationPromptTemplate,
		user.Age,
		user.Gender,
		user.BMI(),
		rec.Pregnancies,
		latest,
		rec.BloodPressure,
		rec.Insulin,
		rec.DiabetesPedigreeFunction,
	)
}
