package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// Generator performs one request/response cycle with a generative model.
type Generator interface {
	GenerateContent(ctx context.Context, parts []*genai.Part) (string, error)
}

var _ Generator = (*GeminiClient)(nil)

type GeminiClientConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the public endpoint; tests point it at httptest.
	BaseURL string
	Timeout time.Duration
}

// GeminiClient sends a single user turn to models/<model>:generateContent.
// It never retries.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewGeminiClient(ctx context.Context, cfg GeminiClientConfig, logger *zap.Logger) (*GeminiClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewGeminiClient")
	defer span.End()

	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.APIKey == "" {
		err := fmt.Errorf("%w: GEMINI_API_KEY is not set", models.ErrValidation)
		span.RecordError(err)
		span.SetStatus(codes.Error, "API key not set")
		return nil, err
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash-exp"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &GeminiClient{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

func (g *GeminiClient) Model() string { return g.model }

func (g *GeminiClient) GenerateContent(ctx context.Context, parts []*genai.Part) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.String("model", g.model),
		attribute.Int("parts.count", len(parts)),
	))
	defer span.End()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", upstreamError(err)
	}

	text, err := firstText(resp)
	if err != nil {
		span.SetStatus(codes.Error, "Empty response")
		return "", err
	}

	span.SetAttributes(attribute.Int("response.length", len(text)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return text, nil
}

// firstText extracts candidates[0].content.parts[0].text.
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", models.ErrEmptyResponse
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil || content.Parts[0].Text == "" {
		return "", models.ErrEmptyResponse
	}
	return content.Parts[0].Text, nil
}

// upstreamError surfaces the API-reported message when there is one.
func upstreamError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Errorf("%w: %s", models.ErrUpstream, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && apiErrPtr.Message != "" {
		return fmt.Errorf("%w: %s", models.ErrUpstream, apiErrPtr.Message)
	}
	return fmt.Errorf("%w: %v", models.ErrUpstream, err)
}
