package analytics

import "github.com/selivandex/team-pulse/pkg/models"

// BatchSummary is the roll-up returned alongside a classified message batch
type BatchSummary struct {
	DominantEmotion   string  `json:"dominantEmotion"`
	AverageConfidence float64 `json:"averageConfidence"`
	TeamMorale        string  `json:"teamMorale"`
}

// Summarize rolls up one classified batch. The dominant emotion is the most
// frequent label, ties broken by first appearance in the batch.
func Summarize(results []models.SentimentResult) BatchSummary {
	if len(results) == 0 {
		return BatchSummary{
			DominantEmotion: models.EmotionUnknown,
			TeamMorale:      "moderate",
		}
	}

	counts := make(map[string]int)
	var order []string
	var confidence float64
	positive := 0

	for _, res := range results {
		emotion := res.Emotion
		if emotion == "" {
			emotion = models.EmotionUnknown
		}
		if counts[emotion] == 0 {
			order = append(order, emotion)
		}
		counts[emotion]++

		confidence += res.Confidence
		if res.Sentiment == models.SentimentPositive {
			positive++
		}
	}

	dominant := order[0]
	for _, emotion := range order {
		if counts[emotion] > counts[dominant] {
			dominant = emotion
		}
	}

	ratio := float64(positive) / float64(len(results))
	morale := "moderate"
	if ratio >= 0.6 {
		morale = "high"
	} else if ratio <= 0.25 {
		morale = "low"
	}

	return BatchSummary{
		DominantEmotion:   dominant,
		AverageConfidence: confidence / float64(len(results)),
		TeamMorale:        morale,
	}
}
