package facades

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// ContentGenerator is the part of *genai.GenerativeModel the facade calls.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiFacade turns a prompt into generated text.
type GeminiFacade struct {
	model   ContentGenerator
	timeout time.Duration
}

// NewGeminiClient opens a Gemini client and returns the named model.
// The caller owns the client and must Close it.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*genai.Client, *genai.GenerativeModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, nil, err
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return client, client.GenerativeModel(modelName), nil
}

// NewGeminiFacade wraps model. A zero timeout leaves the request context as is.
func NewGeminiFacade(model ContentGenerator, timeout time.Duration) *GeminiFacade {
	return &GeminiFacade{model: model, timeout: timeout}
}

// Generate sends prompt and returns the text parts of the first candidate.
// An empty string means the model produced no text.
func (f *GeminiFacade) Generate(ctx context.Context, prompt string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Log.Errorw("gemini generate content failed", "error", err)
		return "", err
	}

	text := responseText(resp)
	logger.Log.Infow("gemini generate content",
		"prompt_length", len(prompt),
		"response_length", len(text),
	)
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
