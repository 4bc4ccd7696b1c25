package analytics

import (
	"testing"
	"time"

	"github.com/selivandex/team-pulse/pkg/models"
)

func rec(sentiment models.Sentiment, emotion string, ts time.Time) models.SentimentRecord {
	return models.SentimentRecord{
		UserID:     "u1",
		Message:    "msg",
		Sentiment:  sentiment,
		Emotion:    emotion,
		Confidence: 0.9,
		Timestamp:  ts,
		TeamID:     "team-a",
	}
}

func TestCompute_Empty(t *testing.T) {
	agg := Compute(nil)

	if len(agg.DailyTrends) != 0 {
		t.Errorf("expected no daily trends, got %d", len(agg.DailyTrends))
	}
	if len(agg.EmotionDistribution) != 0 {
		t.Errorf("expected empty distribution, got %v", agg.EmotionDistribution)
	}
	if agg.OverallSentiment.Sum() != 0 {
		t.Errorf("expected zeroed totals, got %+v", agg.OverallSentiment)
	}
}

func TestCompute_Scenario(t *testing.T) {
	d1 := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	records := []models.SentimentRecord{
		rec(models.SentimentPositive, "excited", d1),
		rec(models.SentimentNegative, "stressed", d1),
		rec(models.SentimentPositive, "excited", d2),
	}

	agg := Compute(records)

	if agg.OverallSentiment.Positive != 2 || agg.OverallSentiment.Negative != 1 || agg.OverallSentiment.Neutral != 0 {
		t.Errorf("unexpected totals: %+v", agg.OverallSentiment)
	}

	if agg.EmotionDistribution["excited"] != 2 || agg.EmotionDistribution["stressed"] != 1 {
		t.Errorf("unexpected distribution: %v", agg.EmotionDistribution)
	}

	if len(agg.DailyTrends) != 2 {
		t.Fatalf("expected 2 daily trends, got %d", len(agg.DailyTrends))
	}
	if agg.DailyTrends[0].Date != "2026-03-10" || agg.DailyTrends[1].Date != "2026-03-11" {
		t.Errorf("trends not ordered by date: %+v", agg.DailyTrends)
	}
	if agg.DailyTrends[0].Positive != 1 || agg.DailyTrends[0].Negative != 1 {
		t.Errorf("unexpected counts for first day: %+v", agg.DailyTrends[0])
	}
}

func TestCompute_Invariants(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		records []models.SentimentRecord
	}{
		{
			name: "single day mixed",
			records: []models.SentimentRecord{
				rec(models.SentimentPositive, "happy", base),
				rec(models.SentimentNegative, "frustrated", base.Add(time.Hour)),
				rec(models.SentimentNeutral, "calm", base.Add(2*time.Hour)),
			},
		},
		{
			name: "spread across week",
			records: []models.SentimentRecord{
				rec(models.SentimentPositive, "excited", base),
				rec(models.SentimentPositive, "excited", base.AddDate(0, 0, 2)),
				rec(models.SentimentNegative, "tired", base.AddDate(0, 0, 4)),
				rec(models.SentimentNeutral, "focused", base.AddDate(0, 0, 6)),
				rec(models.SentimentNegative, "stressed", base.AddDate(0, 0, 6)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Compute(tt.records)

			if got := agg.OverallSentiment.Sum(); got != len(tt.records) {
				t.Errorf("sum of totals = %d, want %d", got, len(tt.records))
			}

			trendSum := 0
			for _, trend := range agg.DailyTrends {
				trendSum += trend.Positive + trend.Negative + trend.Neutral
			}
			if trendSum != agg.OverallSentiment.Sum() {
				t.Errorf("trend sum %d != totals sum %d", trendSum, agg.OverallSentiment.Sum())
			}

			distSum := 0
			for _, count := range agg.EmotionDistribution {
				distSum += count
			}
			if distSum != len(tt.records) {
				t.Errorf("distribution sum %d, want %d", distSum, len(tt.records))
			}
		})
	}
}

func TestCompute_AbsentFields(t *testing.T) {
	ts := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	agg := Compute([]models.SentimentRecord{
		{Timestamp: ts}, // neither sentiment nor emotion set
	})

	if agg.OverallSentiment.Neutral != 1 {
		t.Errorf("absent sentiment should count as neutral, got %+v", agg.OverallSentiment)
	}
	if agg.EmotionDistribution[models.EmotionUnknown] != 1 {
		t.Errorf("absent emotion should count as unknown, got %v", agg.EmotionDistribution)
	}
}

func TestCompute_UTCDateGrouping(t *testing.T) {
	// 23:30 UTC and 00:30 UTC next day must land on different dates even
	// though they are an hour apart
	late := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	early := late.Add(time.Hour)

	agg := Compute([]models.SentimentRecord{
		rec(models.SentimentPositive, "happy", late),
		rec(models.SentimentPositive, "happy", early),
	})

	if len(agg.DailyTrends) != 2 {
		t.Fatalf("expected 2 dates, got %+v", agg.DailyTrends)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		results      []models.SentimentResult
		wantDominant string
		wantMorale   string
	}{
		{
			name:         "empty batch",
			results:      nil,
			wantDominant: models.EmotionUnknown,
			wantMorale:   "moderate",
		},
		{
			name: "positive team",
			results: []models.SentimentResult{
				{Sentiment: models.SentimentPositive, Emotion: "excited", Confidence: 0.9},
				{Sentiment: models.SentimentPositive, Emotion: "excited", Confidence: 0.8},
				{Sentiment: models.SentimentNeutral, Emotion: "calm", Confidence: 0.7},
			},
			wantDominant: "excited",
			wantMorale:   "high",
		},
		{
			name: "struggling team",
			results: []models.SentimentResult{
				{Sentiment: models.SentimentNegative, Emotion: "stressed", Confidence: 0.9},
				{Sentiment: models.SentimentNegative, Emotion: "stressed", Confidence: 0.8},
				{Sentiment: models.SentimentNeutral, Emotion: "tired", Confidence: 0.6},
				{Sentiment: models.SentimentNegative, Emotion: "frustrated", Confidence: 0.7},
			},
			wantDominant: "stressed",
			wantMorale:   "low",
		},
		{
			name: "tie broken by first appearance",
			results: []models.SentimentResult{
				{Sentiment: models.SentimentNeutral, Emotion: "calm", Confidence: 0.5},
				{Sentiment: models.SentimentPositive, Emotion: "happy", Confidence: 0.5},
			},
			wantDominant: "calm",
			wantMorale:   "moderate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.results)

			if summary.DominantEmotion != tt.wantDominant {
				t.Errorf("dominant emotion = %q, want %q", summary.DominantEmotion, tt.wantDominant)
			}
			if summary.TeamMorale != tt.wantMorale {
				t.Errorf("team morale = %q, want %q", summary.TeamMorale, tt.wantMorale)
			}
		})
	}
}
