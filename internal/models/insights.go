package models

// GlucoseStatistics is the statistics block of an analytics report.
type GlucoseStatistics struct {
	Mean                  float64 `json:"mean"`
	Median                float64 `json:"median"`
	StdDeviation          float64 `json:"std_deviation"`
	Min                   float64 `json:"min"`
	Max                   float64 `json:"max"`
	VariabilityIndex      float64 `json:"variability_index"`
	AverageTimeGapMinutes float64 `json:"average_time_gap_minutes"`
	PercentInTargetRange  float64 `json:"percent_in_target_range"`
	PercentHyperglycemia  float64 `json:"percent_hyperglycemia"`
	PercentHypoglycemia   float64 `json:"percent_hypoglycemia"`
}

// GlucoseInsights is the analytics report returned by the text generator
// swagger:model GlucoseInsights
type GlucoseInsights struct {
	Statistics   GlucoseStatistics `json:"statistics"`
	Patterns     []string          `json:"patterns"`
	Concerns     []string          `json:"concerns"`
	FinalSummary string            `json:"final_summary"`
}

// PredictionFeatures is the classifier input, in the order the model was trained on.
type PredictionFeatures struct {
	Pregnancies              int     `json:"pregnancies"`
	LatestGlucose            float64 `json:"latest_glucose"`
	BloodPressure            float64 `json:"blood_pressure"`
	SkinThickness            float64 `json:"skin_thickness"`
	Insulin                  float64 `json:"insulin"`
	BMI                      float64 `json:"bmi"`
	DiabetesPedigreeFunction float64 `json:"diabetes_pedigree_function"`
}

// Vector returns the features as the classifier's row vector.
func (f PredictionFeatures) Vector() []float64 {
	return []float64{
		float64(f.Pregnancies),
		f.LatestGlucose,
		f.BloodPressure,
		f.SkinThickness,
		f.Insulin,
		f.BMI,
		f.DiabetesPedigreeFunction,
	}
}

// PredictionResult is the outcome of a prediction request
// swagger:model PredictionResult
type PredictionResult struct {
	PredictionFeatures
	Prediction string `json:"prediction"`
	IsDiabetic bool   `json:"isDiabetic"`
}
