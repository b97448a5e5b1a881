package client

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	appConfig "app-submission-api/internal/config"
	"app-submission-api/internal/metrics"
)

const (
	rejectionSystemMessage = `You are an expert in app store submission guidelines for both iOS App Store and Google Play Store.
Analyze rejection reasons and provide detailed, actionable insights.`

	assistantSystemMessage = `You are a helpful assistant specializing in iOS App Store and Google Play Store submission processes.
Provide clear, accurate, and actionable advice based on the latest guidelines and best practices.
If asked about specific requirements, cite relevant guidelines when possible.`
)

// AIClientInterface defines the LLM operations the services depend on
type AIClientInterface interface {
	AnalyzeRejection(ctx context.Context, platform, reason string) (analysis string, actionPlan string, err error)
	Chat(ctx context.Context, message string) (string, error)
}

// AIClient talks to the Gemini API
type AIClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewAIClient creates a Gemini-backed AI client
func NewAIClient(cfg *appConfig.AIConfig, m *metrics.Metrics, logger *zap.Logger) (*AIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &AIClient{
		client:  client,
		model:   model,
		timeout: timeout,
		metrics: m,
		logger:  logger,
	}, nil
}

// AnalyzeRejection asks the model for a root-cause analysis and a numbered
// action plan for a store rejection.
func (c *AIClient) AnalyzeRejection(ctx context.Context, platform, reason string) (string, string, error) {
	analysisPrompt := fmt.Sprintf(`Platform: %s
Rejection Reason: %s

Please provide:
1. Root cause analysis
2. Specific guideline violations
3. Similar common issues
4. Detailed action plan to resolve this rejection

Be specific and actionable.`, platform, reason)

	analysis, err := c.generate(ctx, analysisPrompt, rejectionSystemMessage)
	if err != nil {
		return "", "", err
	}

	actionPlanPrompt := fmt.Sprintf(`Based on this rejection: %s
Create a step-by-step action plan to resolve it. Format as a numbered list.`, reason)

	actionPlan, err := c.generate(ctx, actionPlanPrompt, rejectionSystemMessage)
	if err != nil {
		return "", "", err
	}

	if c.metrics != nil {
		c.metrics.IncrementRejectionAnalyzed()
	}
	return analysis, actionPlan, nil
}

// Chat answers a free-form submission question
func (c *AIClient) Chat(ctx context.Context, message string) (string, error) {
	return c.generate(ctx, message, assistantSystemMessage)
}

func (c *AIClient) generate(ctx context.Context, prompt, systemMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	result, err := c.client.Models.GenerateContent(ctx,
		c.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemMessage, genai.RoleUser),
		},
	)
	duration := time.Since(start)

	if c.metrics != nil {
		statusCode := 200
		if err != nil {
			statusCode = 0
		}
		c.metrics.RecordExternalAPICall("gemini/generate_content", "POST", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Warn("Gemini request failed",
			zap.String("model", c.model),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
