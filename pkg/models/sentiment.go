package models

import (
	"strings"
	"time"
)

// Sentiment is the coarse 3-way category produced by the classifier
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// EmotionUnknown is substituted when the classifier fails or returns no emotion
const EmotionUnknown = "unknown"

// TeamUnassigned is the sentinel team for messages submitted without a team ID
const TeamUnassigned = "unassigned"

// NormalizeSentiment collapses arbitrary classifier output to the fixed set.
// Anything unrecognized becomes neutral.
func NormalizeSentiment(s string) Sentiment {
	switch Sentiment(strings.ToLower(strings.TrimSpace(s))) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// SentimentRecord is one classified team message, the system of record row
type SentimentRecord struct {
	ID         int64     `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Message    string    `json:"message" db:"message"`
	Sentiment  Sentiment `json:"sentiment" db:"sentiment"`
	Emotion    string    `json:"emotion" db:"emotion"`
	Confidence float64   `json:"confidence" db:"confidence"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	TeamID     string    `json:"team_id" db:"team_id"`
}

// SentimentResult is the classifier output for a single message
type SentimentResult struct {
	Sentiment  Sentiment `json:"sentiment"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning,omitempty"`
}

// FailedResult is the substitute used when classification fails for a message
func FailedResult() SentimentResult {
	return SentimentResult{
		Sentiment:  SentimentNeutral,
		Emotion:    EmotionUnknown,
		Confidence: 0,
		Reasoning:  "analysis failed",
	}
}

// Normalize clamps a classifier result into its documented ranges:
// sentiment within the fixed set, confidence within [0,1], emotion non-empty.
func (r SentimentResult) Normalize() SentimentResult {
	r.Sentiment = NormalizeSentiment(string(r.Sentiment))

	r.Emotion = strings.ToLower(strings.TrimSpace(r.Emotion))
	if r.Emotion == "" {
		r.Emotion = EmotionUnknown
	}

	if r.Confidence < 0 {
		r.Confidence = 0
	} else if r.Confidence > 1 {
		r.Confidence = 1
	}

	return r
}
