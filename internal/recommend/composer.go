// Package recommend composes per-user recommendation bundles: one wellness
// nudge, one motivational message and a short track list for a target mood,
// served cache-aside with a bounded validity window.
package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/team-pulse/internal/mood"
	"github.com/selivandex/team-pulse/pkg/logger"
	"github.com/selivandex/team-pulse/pkg/models"
)

// Cache is the narrow key-value contract the composer needs
type Cache interface {
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

// Generator produces wellness and motivational text from the live content
// model. May be nil, in which case the fixed pools are used directly.
type Generator interface {
	WellnessNudge(ctx context.Context, emotions []string, teamMood string) (string, error)
	MotivationalContent(ctx context.Context, teamMood string) (string, error)
}

// Composer builds recommendation bundles. Selection randomness and the clock
// are injected so tests can pin both.
type Composer struct {
	cache     Cache
	generator Generator
	cacheTTL  time.Duration
	maxTracks int
	now       func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Composer
type Option func(*Composer)

// WithClock replaces the time source
func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

// WithSeed pins the selection randomness
func WithSeed(seed int64) Option {
	return func(c *Composer) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithGenerator attaches a live content generator
func WithGenerator(g Generator) Option {
	return func(c *Composer) { c.generator = g }
}

// NewComposer creates new recommendation composer
func NewComposer(cache Cache, cacheTTL time.Duration, maxTracks int, opts ...Option) *Composer {
	c := &Composer{
		cache:     cache,
		cacheTTL:  cacheTTL,
		maxTracks: maxTracks,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func cacheKey(userID string) string {
	return fmt.Sprintf("user:%s:recommendations", userID)
}

// Compose returns the user's cached bundle when one is still valid, otherwise
// builds a fresh one and caches it. Concurrent first requests for the same
// user may each compute a bundle; the cache is last-write-wins and that race
// is accepted rather than papered over with locking.
func (c *Composer) Compose(ctx context.Context, target mood.Target, emotions []string, userID string) (*models.RecommendationBundle, error) {
	key := cacheKey(userID)

	var cached models.RecommendationBundle
	hit, err := c.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		// Cache trouble degrades to a miss, never to a failed request
		logger.Warn("recommendation cache read failed", zap.String("user_id", userID), zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	now := c.now().UTC()
	bundle := &models.RecommendationBundle{
		WellnessNudge:        c.wellnessText(ctx, target, emotions, now),
		MotivationalContent:  c.motivationalText(ctx, target),
		MusicRecommendations: c.pickTracks(target),
		GeneratedAt:          now,
	}

	if err := c.cache.SetJSON(ctx, key, bundle, c.cacheTTL); err != nil {
		logger.Warn("recommendation cache write failed", zap.String("user_id", userID), zap.Error(err))
	}

	return bundle, nil
}

func (c *Composer) wellnessText(ctx context.Context, target mood.Target, emotions []string, now time.Time) string {
	if c.generator != nil {
		text, err := c.generator.WellnessNudge(ctx, emotions, string(target))
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			logger.Warn("wellness nudge generation failed, using pool", zap.Error(err))
		}
	}

	return c.pick(wellnessFallback(target, SlotFor(now)))
}

func (c *Composer) motivationalText(ctx context.Context, target mood.Target) string {
	if c.generator != nil {
		text, err := c.generator.MotivationalContent(ctx, string(target))
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			logger.Warn("motivational content generation failed, using pool", zap.Error(err))
		}
	}

	return c.pick(motivationalFallback(target))
}

func (c *Composer) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return pool[c.rng.Intn(len(pool))]
}

func (c *Composer) pickTracks(target mood.Target) []models.Track {
	source := Tracks(target)

	shuffled := make([]models.Track, len(source))
	copy(shuffled, source)

	c.mu.Lock()
	c.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	c.mu.Unlock()

	if len(shuffled) > c.maxTracks {
		shuffled = shuffled[:c.maxTracks]
	}

	return shuffled
}
