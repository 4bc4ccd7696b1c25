package ai

import (
	"context"
	"testing"

	"github.com/selivandex/team-pulse/pkg/models"
)

func TestCannedClassifier(t *testing.T) {
	classifier := NewCannedClassifier()
	ctx := context.Background()

	tests := []struct {
		name          string
		text          string
		wantSentiment models.Sentiment
		wantEmotion   string
	}{
		{
			name:          "upbeat message",
			text:          "Great job on the presentation team! Really excited about this project.",
			wantSentiment: models.SentimentPositive,
			wantEmotion:   "excited",
		},
		{
			name:          "stressed message",
			text:          "I think we need to reconsider the timeline, feeling a bit stressed about the deadline.",
			wantSentiment: models.SentimentNegative,
			wantEmotion:   "stressed",
		},
		{
			name:          "neutral message",
			text:          "The meeting moved to 3pm in the usual room.",
			wantSentiment: models.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := classifier.Classify(ctx, tt.text)
			if err != nil {
				t.Fatalf("canned classifier must not error: %v", err)
			}

			if result.Sentiment != tt.wantSentiment {
				t.Errorf("sentiment = %q, want %q", result.Sentiment, tt.wantSentiment)
			}
			if tt.wantEmotion != "" && result.Emotion != tt.wantEmotion {
				t.Errorf("emotion = %q, want %q", result.Emotion, tt.wantEmotion)
			}
			if result.Confidence < 0 || result.Confidence > 1 {
				t.Errorf("confidence %v outside [0,1]", result.Confidence)
			}
		})
	}
}

func TestCannedClassifier_Deterministic(t *testing.T) {
	classifier := NewCannedClassifier()
	ctx := context.Background()
	text := "Thanks for the help with the bug fix. Feeling much more confident now."

	first, _ := classifier.Classify(ctx, text)
	for i := 0; i < 20; i++ {
		got, _ := classifier.Classify(ctx, text)
		if got != first {
			t.Fatalf("canned classifier not deterministic: %+v then %+v", first, got)
		}
	}
}
