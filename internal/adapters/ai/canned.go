package ai

import (
	"context"
	"strings"

	"github.com/selivandex/team-pulse/pkg/models"
)

// CannedClassifier is the demo-mode classifier: a deterministic keyword
// scorer that satisfies the Classifier contract without any external call.
type CannedClassifier struct {
	positiveWords map[string]float64
	negativeWords map[string]float64
	emotionWords  map[string]string
}

// NewCannedClassifier creates new canned classifier
func NewCannedClassifier() *CannedClassifier {
	return &CannedClassifier{
		positiveWords: buildPositiveWords(),
		negativeWords: buildNegativeWords(),
		emotionWords:  buildEmotionWords(),
	}
}

// Classify scores a message against workplace keyword lists. It never errors.
func (c *CannedClassifier) Classify(_ context.Context, text string) (models.SentimentResult, error) {
	words := strings.Fields(strings.ToLower(text))

	var score float64
	matchCount := 0
	emotionCounts := make(map[string]int)
	var emotionOrder []string

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:'\"")

		if weight, ok := c.positiveWords[word]; ok {
			score += weight
			matchCount++
		}
		if weight, ok := c.negativeWords[word]; ok {
			score -= weight
			matchCount++
		}
		if emotion, ok := c.emotionWords[word]; ok {
			if emotionCounts[emotion] == 0 {
				emotionOrder = append(emotionOrder, emotion)
			}
			emotionCounts[emotion]++
		}
	}

	sentiment := models.SentimentNeutral
	if score > 0.2 {
		sentiment = models.SentimentPositive
	} else if score < -0.2 {
		sentiment = models.SentimentNegative
	}

	emotion := defaultEmotion(sentiment)
	best := 0
	for _, e := range emotionOrder {
		if emotionCounts[e] > best {
			emotion = e
			best = emotionCounts[e]
		}
	}

	confidence := 0.5
	if matchCount > 0 {
		confidence = 0.6 + 0.08*float64(matchCount)
	}

	result := models.SentimentResult{
		Sentiment:  sentiment,
		Emotion:    emotion,
		Confidence: confidence,
		Reasoning:  "keyword analysis",
	}

	return result.Normalize(), nil
}

func defaultEmotion(s models.Sentiment) string {
	switch s {
	case models.SentimentPositive:
		return "happy"
	case models.SentimentNegative:
		return "frustrated"
	default:
		return "calm"
	}
}

// buildPositiveWords returns positive keywords for team communication
func buildPositiveWords() map[string]float64 {
	return map[string]float64{
		"great":      0.8,
		"awesome":    0.9,
		"amazing":    0.9,
		"excellent":  0.8,
		"good":       0.5,
		"thanks":     0.6,
		"thank":      0.6,
		"love":       0.7,
		"excited":    0.9,
		"happy":      0.8,
		"confident":  0.7,
		"ready":      0.5,
		"win":        0.6,
		"shipped":    0.7,
		"done":       0.4,
		"progress":   0.5,
		"helpful":    0.6,
		"perfect":    0.8,
		"celebrate":  0.8,
		"motivated":  0.8,
		"energized":  0.8,
		"proud":      0.7,
		"fun":        0.6,
		"works":      0.4,
		"fixed":      0.5,
		"solved":     0.6,
		"nice":       0.5,
		"productive": 0.6,
	}
}

// buildNegativeWords returns negative keywords for team communication
func buildNegativeWords() map[string]float64 {
	return map[string]float64{
		"stressed":    0.9,
		"stress":      0.8,
		"deadline":    0.5,
		"pressure":    0.6,
		"overwhelmed": 0.9,
		"worried":     0.7,
		"frustrated":  0.9,
		"frustrating": 0.9,
		"annoying":    0.7,
		"blocked":     0.6,
		"stuck":       0.6,
		"broken":      0.6,
		"bug":         0.4,
		"failed":      0.7,
		"failing":     0.7,
		"tired":       0.7,
		"exhausted":   0.9,
		"burnout":     1.0,
		"burned":      0.7,
		"behind":      0.5,
		"slipping":    0.6,
		"confused":    0.5,
		"angry":       0.9,
		"unhappy":     0.8,
		"problem":     0.4,
		"issues":      0.4,
		"late":        0.4,
	}
}

// buildEmotionWords maps keywords to the fine-grained emotion they signal
func buildEmotionWords() map[string]string {
	return map[string]string{
		"excited":     "excited",
		"thrilled":    "excited",
		"awesome":     "excited",
		"amazing":     "excited",
		"happy":       "happy",
		"glad":        "happy",
		"celebrate":   "happy",
		"love":        "happy",
		"calm":        "calm",
		"steady":      "calm",
		"focus":       "focused",
		"focused":     "focused",
		"concentrate": "focused",
		"motivated":   "motivated",
		"ready":       "motivated",
		"confident":   "motivated",
		"determined":  "motivated",
		"stressed":    "stressed",
		"stress":      "stressed",
		"pressure":    "stressed",
		"overwhelmed": "stressed",
		"deadline":    "stressed",
		"worried":     "stressed",
		"tired":       "tired",
		"exhausted":   "tired",
		"burnout":     "tired",
		"drained":     "tired",
		"frustrated":  "frustrated",
		"frustrating": "frustrated",
		"annoying":    "frustrated",
		"blocked":     "frustrated",
		"stuck":       "frustrated",
	}
}

// CannedGenerator serves fixed wellness and motivational text in demo mode
type CannedGenerator struct{}

// NewCannedGenerator creates new canned generator
func NewCannedGenerator() *CannedGenerator {
	return &CannedGenerator{}
}

// WellnessNudge returns a fixed demo nudge; pool selection in the composer
// still varies the surrounding bundle
func (g *CannedGenerator) WellnessNudge(_ context.Context, _ []string, teamMood string) (string, error) {
	switch teamMood {
	case "focused", "relaxed":
		return "Things feel intense right now. A 15-minute team break with no screens can reset the whole afternoon.", nil
	case "energetic":
		return "Energy is running low. Step outside, stretch, and come back when you're ready - the backlog will wait.", nil
	default:
		return "Your team is showing great energy today! Consider a 15-minute team session to maintain this positive momentum.", nil
	}
}

// MotivationalContent returns a fixed demo motivational message
func (g *CannedGenerator) MotivationalContent(_ context.Context, _ string) (string, error) {
	return "Today's team collaboration is inspiring! Keep building on this strong foundation of trust and communication.", nil
}
