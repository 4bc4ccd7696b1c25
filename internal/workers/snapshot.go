// Package workers holds the background jobs: currently the team sentiment
// snapshot, which keeps a warm per-team aggregate in the cache so dashboards
// do not pay the store query on every load.
package workers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/team-pulse/internal/analytics"
	"github.com/selivandex/team-pulse/internal/mood"
	"github.com/selivandex/team-pulse/internal/recommend"
	"github.com/selivandex/team-pulse/internal/records"
	"github.com/selivandex/team-pulse/pkg/logger"
)

// correctiveEmotions are the raw labels whose dominance means the team needs
// a nudge, not a mirror
var correctiveEmotions = map[string]bool{
	"stressed":   true,
	"tired":      true,
	"frustrated": true,
}

// Notifier pushes a wellness nudge out-of-band (Telegram when configured)
type Notifier interface {
	NotifyNudge(teamID, nudge string) error
}

// TeamSnapshot is the cached per-team view
type TeamSnapshot struct {
	TeamID     string              `json:"teamId"`
	Aggregate  analytics.Aggregate `json:"aggregate"`
	TargetMood mood.Target         `json:"targetMood"`
	ComputedAt time.Time           `json:"computedAt"`
}

// SnapshotWorker aggregates each active team's last 24 hours into the cache
type SnapshotWorker struct {
	store    records.Store
	cache    recommend.Cache
	composer *recommend.Composer
	notifier Notifier
	cacheTTL time.Duration
	eventTTL time.Duration
	now      func() time.Time

	// Teams already nudged this cycle window, so a struggling team gets one
	// nudge per snapshot TTL rather than one per run.
	nudged map[string]time.Time
}

// NewSnapshotWorker creates new team snapshot worker. notifier may be nil.
func NewSnapshotWorker(
	store records.Store,
	cache recommend.Cache,
	composer *recommend.Composer,
	notifier Notifier,
	cacheTTL time.Duration,
	eventTTL time.Duration,
) *SnapshotWorker {
	return &SnapshotWorker{
		store:    store,
		cache:    cache,
		composer: composer,
		notifier: notifier,
		cacheTTL: cacheTTL,
		eventTTL: eventTTL,
		now:      time.Now,
		nudged:   make(map[string]time.Time),
	}
}

// Name returns worker name for logging
func (w *SnapshotWorker) Name() string {
	return "team-snapshot"
}

// Run computes and caches one snapshot per active team
func (w *SnapshotWorker) Run(ctx context.Context) error {
	now := w.now().UTC()
	since := now.Add(-24 * time.Hour)

	teams, err := w.store.ActiveTeams(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to list active teams: %w", err)
	}

	for _, teamID := range teams {
		if err := w.snapshotTeam(ctx, teamID, since, now); err != nil {
			// One bad team must not starve the rest
			logger.Error("team snapshot failed",
				zap.String("team_id", teamID),
				zap.Error(err),
			)
		}
	}

	return nil
}

func (w *SnapshotWorker) snapshotTeam(ctx context.Context, teamID string, since, now time.Time) error {
	recs, err := w.store.Query(ctx, since, now, teamID)
	if err != nil {
		return fmt.Errorf("failed to query team records: %w", err)
	}

	agg := analytics.Compute(recs)
	target := mood.ClassifyDistribution(agg.EmotionDistribution)

	snapshot := TeamSnapshot{
		TeamID:     teamID,
		Aggregate:  agg,
		TargetMood: target,
		ComputedAt: now,
	}

	key := fmt.Sprintf("team:%s:sentiment", teamID)
	if err := w.cache.SetJSON(ctx, key, snapshot, w.cacheTTL); err != nil {
		logger.Warn("team snapshot cache write failed",
			zap.String("team_id", teamID),
			zap.Error(err),
		)
	}

	w.recordEvent(ctx, teamID, agg)
	w.maybeNudge(ctx, teamID, agg, target, now)

	return nil
}

// recordEvent leaves a short-lived activity trail entry for the snapshot.
// Strictly best-effort.
func (w *SnapshotWorker) recordEvent(ctx context.Context, teamID string, agg analytics.Aggregate) {
	if w.eventTTL <= 0 {
		return
	}

	key := fmt.Sprintf("events:%d", w.now().UnixNano())
	payload := map[string]interface{}{
		"eventType": "team_snapshot",
		"data": map[string]interface{}{
			"team_id": teamID,
			"records": agg.OverallSentiment.Sum(),
		},
		"timestamp": w.now().UTC().Format(time.RFC3339),
	}

	if err := w.cache.SetJSON(ctx, key, payload, w.eventTTL); err != nil {
		logger.Warn("event trail write failed", zap.String("team_id", teamID), zap.Error(err))
	}
}

// maybeNudge notifies the team chat when a corrective emotion dominates
func (w *SnapshotWorker) maybeNudge(ctx context.Context, teamID string, agg analytics.Aggregate, target mood.Target, now time.Time) {
	if w.notifier == nil {
		return
	}

	labels := make([]string, 0, len(agg.EmotionDistribution))
	for label := range agg.EmotionDistribution {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	dominant, best := "", 0
	for _, label := range labels {
		if count := agg.EmotionDistribution[label]; count > best {
			dominant = label
			best = count
		}
	}

	if !correctiveEmotions[dominant] {
		return
	}

	if last, ok := w.nudged[teamID]; ok && now.Sub(last) < w.cacheTTL {
		return
	}

	bundle, err := w.composer.Compose(ctx, target, []string{dominant}, "team:"+teamID)
	if err != nil {
		logger.Warn("nudge compose failed", zap.String("team_id", teamID), zap.Error(err))
		return
	}

	if err := w.notifier.NotifyNudge(teamID, bundle.WellnessNudge); err != nil {
		logger.Warn("nudge delivery failed", zap.String("team_id", teamID), zap.Error(err))
		return
	}

	w.nudged[teamID] = now
	logger.Info("wellness nudge sent",
		zap.String("team_id", teamID),
		zap.String("dominant_emotion", dominant),
		zap.String("target_mood", string(target)),
	)
}
