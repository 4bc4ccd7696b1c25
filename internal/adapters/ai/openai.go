package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/team-pulse/internal/adapters/config"
	"github.com/selivandex/team-pulse/pkg/logger"
	"github.com/selivandex/team-pulse/pkg/models"
)

// OpenAIProvider implements Classifier and Generator against an
// OpenAI-compatible chat completions endpoint
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewOpenAIProvider creates new OpenAI provider
func NewOpenAIProvider(cfg *config.AIConfig) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chat runs one completion round-trip and returns the raw assistant content
func (p *OpenAIProvider) chat(ctx context.Context, messages []chatMessage, temperature float64, maxTokens int) (string, error) {
	reqBody := map[string]interface{}{
		"model":       p.model,
		"messages":    messages,
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	startTime := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	logger.Debug("model response",
		zap.Duration("latency", time.Since(startTime)),
		zap.String("model", p.model),
	)

	return result.Choices[0].Message.Content, nil
}

const classifySystemPrompt = `You are an AI that analyzes the emotional sentiment of text messages.
Return a JSON object with the following structure:
{
  "sentiment": "positive" | "negative" | "neutral",
  "emotion": string (specific emotion like "excited", "frustrated", "calm", etc.),
  "confidence": number (0-1),
  "reasoning": string (brief explanation)
}

Focus on workplace-appropriate emotional analysis for team communication.`

// Classify classifies one message's emotional tone
func (p *OpenAIProvider) Classify(ctx context.Context, text string) (models.SentimentResult, error) {
	messages := []chatMessage{
		{Role: "system", Content: classifySystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Analyze the sentiment of this message: %q", text)},
	}

	content, err := p.chat(ctx, messages, 0.3, 200)
	if err != nil {
		return models.SentimentResult{}, err
	}

	result, err := parseSentimentResult(content)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("failed to parse classifier response: %w", err)
	}

	return result, nil
}

// WellnessNudge generates a short wellness suggestion for the team state
func (p *OpenAIProvider) WellnessNudge(ctx context.Context, emotions []string, teamMood string) (string, error) {
	messages := []chatMessage{
		{
			Role: "system",
			Content: "You are a workplace wellness AI assistant. Generate supportive, actionable wellness " +
				"suggestions for teams based on their emotional state. Keep responses professional, empathetic, " +
				"and under 100 words.",
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("The team is showing emotions: %s. Overall mood: %s. Provide a wellness nudge.", joinEmotions(emotions), teamMood),
		},
	}

	return p.chat(ctx, messages, 0.7, 150)
}

// MotivationalContent generates short motivational content for the team mood
func (p *OpenAIProvider) MotivationalContent(ctx context.Context, teamMood string) (string, error) {
	messages := []chatMessage{
		{
			Role: "system",
			Content: "Generate short, motivational content for teams. Include inspirational quotes, team " +
				"building activities, or positive affirmations. Keep it professional and uplifting.",
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("Create motivational content for a team with %s sentiment.", teamMood),
		},
	}

	return p.chat(ctx, messages, 0.8, 200)
}
