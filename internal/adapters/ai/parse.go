package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/selivandex/team-pulse/pkg/models"
)

var codeBlockRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// extractJSON pulls the JSON object out of a model response that may wrap it
// in markdown fences or surrounding prose
func extractJSON(text string) string {
	if matches := codeBlockRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(text[start : end+1])
	}

	return strings.TrimSpace(text)
}

// parseSentimentResult parses a classifier response into a normalized result
func parseSentimentResult(content string) (models.SentimentResult, error) {
	jsonStr := extractJSON(content)

	var response struct {
		Sentiment  string  `json:"sentiment"`
		Emotion    string  `json:"emotion"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	}

	if err := json.Unmarshal([]byte(jsonStr), &response); err != nil {
		return models.SentimentResult{}, fmt.Errorf("failed to unmarshal JSON: %w (content: %s)", err, jsonStr)
	}

	result := models.SentimentResult{
		Sentiment:  models.Sentiment(response.Sentiment),
		Emotion:    response.Emotion,
		Confidence: response.Confidence,
		Reasoning:  response.Reasoning,
	}

	return result.Normalize(), nil
}

func joinEmotions(emotions []string) string {
	if len(emotions) == 0 {
		return "none reported"
	}
	return strings.Join(emotions, ", ")
}
