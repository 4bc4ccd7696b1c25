// Package analytics turns raw sentiment records into team-level statistics.
// Everything here is a pure function over already-fetched data; persistence
// and classification live behind adapters.
package analytics

import (
	"sort"

	"github.com/selivandex/team-pulse/pkg/models"
)

const dateLayout = "2006-01-02"

// DailyTrend is one calendar date's sentiment counts. Dates with no records
// are omitted rather than zero-filled; charting continuity is the client's
// concern.
type DailyTrend struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
}

// SentimentTotals holds grand totals per sentiment category
type SentimentTotals struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Sum returns the total number of counted records
func (t SentimentTotals) Sum() int {
	return t.Positive + t.Negative + t.Neutral
}

// Aggregate is the derived, per-request analytics view of a record set
type Aggregate struct {
	DailyTrends         []DailyTrend    `json:"dailyTrends"`
	EmotionDistribution map[string]int  `json:"emotionDistribution"`
	OverallSentiment    SentimentTotals `json:"overallSentiment"`
}

// Compute groups records by UTC calendar date, counts emotions across the
// whole set and accumulates overall sentiment totals. It is total over
// well-formed input: a missing sentiment counts as neutral, a missing
// emotion as "unknown".
func Compute(records []models.SentimentRecord) Aggregate {
	byDate := make(map[string]*DailyTrend)
	distribution := make(map[string]int)
	var totals SentimentTotals

	for _, rec := range records {
		date := rec.Timestamp.UTC().Format(dateLayout)

		trend, ok := byDate[date]
		if !ok {
			trend = &DailyTrend{Date: date}
			byDate[date] = trend
		}

		switch models.NormalizeSentiment(string(rec.Sentiment)) {
		case models.SentimentPositive:
			trend.Positive++
			totals.Positive++
		case models.SentimentNegative:
			trend.Negative++
			totals.Negative++
		default:
			trend.Neutral++
			totals.Neutral++
		}

		emotion := rec.Emotion
		if emotion == "" {
			emotion = models.EmotionUnknown
		}
		distribution[emotion]++
	}

	trends := make([]DailyTrend, 0, len(byDate))
	for _, trend := range byDate {
		trends = append(trends, *trend)
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Date < trends[j].Date
	})

	return Aggregate{
		DailyTrends:         trends,
		EmotionDistribution: distribution,
		OverallSentiment:    totals,
	}
}
