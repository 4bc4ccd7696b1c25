// Package ai adapts the external language model behind two narrow contracts:
// per-message emotion classification and wellness/motivational text
// generation. A canned implementation of each serves demo deployments.
package ai

import (
	"context"

	"github.com/selivandex/team-pulse/pkg/models"
)

// Classifier classifies the emotional tone of one message
type Classifier interface {
	// Classify returns the sentiment result for a text. Callers substitute
	// models.FailedResult() on error and keep going; one bad message never
	// blocks a batch.
	Classify(ctx context.Context, text string) (models.SentimentResult, error)
}

// Generator produces wellness and motivational content for a team mood
type Generator interface {
	WellnessNudge(ctx context.Context, emotions []string, teamMood string) (string, error)
	MotivationalContent(ctx context.Context, teamMood string) (string, error)
}
