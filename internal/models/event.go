package models

// Glucose event types
const (
	EventReadingAdded  = "reading_added"
	EventRecordUpdated = "record_updated"
	EventPrediction    = "prediction_updated"
)

// GlucoseEvent is published whenever a user's glucose record changes.
type GlucoseEvent struct {
	EventID   string  `json:"event_id"`  // Unique event identifier
	UserID    string  `json:"user_id"`   // Owner of the record
	Type      string  `json:"type"`      // One of the Event* constants
	Value     float64 `json:"value"`     // Reading value for reading_added, 0 otherwise
	Label     string  `json:"label"`     // Prediction label for prediction_updated
	Timestamp int64   `json:"timestamp"` // Unix seconds
}
