package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/glucose-tracker/internal/logger"
)

// PredictorHTTPFacade calls the diabetes classifier over HTTP.
type PredictorHTTPFacade struct {
	url    string
	client *http.Client
}

// NewPredictorHTTPFacade posts to url with the given request timeout.
func NewPredictorHTTPFacade(url string, timeout time.Duration) *PredictorHTTPFacade {
	return &PredictorHTTPFacade{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Features [][]float64 `json:"features"`
}

type predictResponse struct {
	Prediction json.RawMessage `json:"prediction"`
}

// Predict sends a single feature row and returns the raw label the
// classifier answered with: a string label or the class number as text.
func (f *PredictorHTTPFacade) Predict(ctx context.Context, features []float64) (string, error) {
	body, err := json.Marshal(predictRequest{Features: [][]float64{features}})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("predictor request failed", "url", f.url, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Log.Errorw("predictor returned error status",
			"url", f.url,
			"status", resp.StatusCode,
			"body", string(msg),
		)
		return "", fmt.Errorf("predictor status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode predictor response: %w", err)
	}

	label := strings.Trim(strings.TrimSpace(string(out.Prediction)), `"`)
	logger.Log.Infow("predictor response", "features", features, "label", label)
	return label, nil
}
