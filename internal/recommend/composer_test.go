package recommend

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/selivandex/team-pulse/internal/mood"
	"github.com/selivandex/team-pulse/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeClock is a settable time source shared by composer and cache
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestComposer(clock *fakeClock, ttl time.Duration, opts ...Option) *Composer {
	cache := NewMemoryCacheWithClock(clock.Now)
	opts = append([]Option{WithClock(clock.Now), WithSeed(42)}, opts...)
	return NewComposer(cache, ttl, 5, opts...)
}

func TestCompose_CacheValidityWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	composer := newTestComposer(clock, 30*time.Minute)
	ctx := context.Background()

	first, err := composer.Compose(ctx, mood.TargetRelaxed, []string{"frustrated"}, "user-1")
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	// Within the validity window the cached bundle comes back unchanged,
	// GeneratedAt included
	clock.Advance(10 * time.Minute)
	second, err := composer.Compose(ctx, mood.TargetRelaxed, []string{"frustrated"}, "user-1")
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached bundle differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if !second.GeneratedAt.Equal(first.GeneratedAt) {
		t.Errorf("GeneratedAt refreshed on cache hit: %v vs %v", second.GeneratedAt, first.GeneratedAt)
	}

	// Past expiry a fresh bundle is generated
	clock.Advance(25 * time.Minute)
	third, err := composer.Compose(ctx, mood.TargetRelaxed, []string{"frustrated"}, "user-1")
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if third.GeneratedAt.Equal(first.GeneratedAt) {
		t.Errorf("expected new GeneratedAt after expiry, got %v again", third.GeneratedAt)
	}
}

func TestCompose_PerUserCaching(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	composer := newTestComposer(clock, 30*time.Minute)
	ctx := context.Background()

	a, _ := composer.Compose(ctx, mood.TargetFocused, nil, "user-a")

	clock.Advance(time.Minute)
	b, _ := composer.Compose(ctx, mood.TargetFocused, nil, "user-b")

	if a.GeneratedAt.Equal(b.GeneratedAt) {
		t.Errorf("distinct users should not share a cache slot")
	}
}

func TestCompose_SeededDeterminism(t *testing.T) {
	base := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)

	one, _ := newTestComposer(&fakeClock{t: base}, time.Hour).Compose(context.Background(), mood.TargetEnergetic, nil, "u")
	two, _ := newTestComposer(&fakeClock{t: base}, time.Hour).Compose(context.Background(), mood.TargetEnergetic, nil, "u")

	if !reflect.DeepEqual(one, two) {
		t.Errorf("same seed and clock should yield identical bundles:\n%+v\n%+v", one, two)
	}
}

func TestCompose_TrackSelection(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	cache := NewMemoryCacheWithClock(clock.Now)
	composer := NewComposer(cache, time.Hour, 3, WithClock(clock.Now), WithSeed(7))

	bundle, err := composer.Compose(context.Background(), mood.TargetMotivated, nil, "u")
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	if len(bundle.MusicRecommendations) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(bundle.MusicRecommendations))
	}

	for _, track := range bundle.MusicRecommendations {
		if track.Mood != "motivated" {
			t.Errorf("track %q has mood %q, want motivated", track.Name, track.Mood)
		}
	}
}

func TestCompose_PoolTextNonEmpty(t *testing.T) {
	for _, target := range TargetAll() {
		clock := &fakeClock{t: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
		composer := newTestComposer(clock, time.Hour)

		bundle, err := composer.Compose(context.Background(), target, nil, "u-"+string(target))
		if err != nil {
			t.Fatalf("compose failed for %s: %v", target, err)
		}
		if bundle.WellnessNudge == "" || bundle.MotivationalContent == "" {
			t.Errorf("empty text for target %s: %+v", target, bundle)
		}
	}
}

// fixedGenerator returns constant text or a constant error
type fixedGenerator struct {
	nudge string
	motiv string
	err   error
}

func (g *fixedGenerator) WellnessNudge(context.Context, []string, string) (string, error) {
	return g.nudge, g.err
}

func (g *fixedGenerator) MotivationalContent(context.Context, string) (string, error) {
	return g.motiv, g.err
}

func TestCompose_GeneratorPreferred(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	gen := &fixedGenerator{nudge: "breathe", motiv: "go team"}
	composer := newTestComposer(clock, time.Hour, WithGenerator(gen))

	bundle, _ := composer.Compose(context.Background(), mood.TargetPositive, []string{"happy"}, "u")

	if bundle.WellnessNudge != "breathe" || bundle.MotivationalContent != "go team" {
		t.Errorf("generator output not used: %+v", bundle)
	}
}

func TestCompose_GeneratorFailureFallsBackToPool(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	gen := &fixedGenerator{err: errors.New("model down")}
	composer := newTestComposer(clock, time.Hour, WithGenerator(gen))

	bundle, err := composer.Compose(context.Background(), mood.TargetFocused, []string{"stressed"}, "u")
	if err != nil {
		t.Fatalf("generator failure must not fail compose: %v", err)
	}
	if bundle.WellnessNudge == "" || bundle.MotivationalContent == "" {
		t.Errorf("expected pool fallback text, got %+v", bundle)
	}
}

func TestSlotFor(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		hour int
		want DaySlot
	}{
		{0, SlotMorning},
		{11, SlotMorning},
		{12, SlotMidday},
		{16, SlotMidday},
		{17, SlotEvening},
		{23, SlotEvening},
	}

	for _, tt := range tests {
		got := SlotFor(day.Add(time.Duration(tt.hour) * time.Hour))
		if got != tt.want {
			t.Errorf("SlotFor(hour %d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

// TargetAll enumerates the closed target set for table tests
func TargetAll() []mood.Target {
	return []mood.Target{
		mood.TargetPositive,
		mood.TargetFocused,
		mood.TargetMotivated,
		mood.TargetRelaxed,
		mood.TargetEnergetic,
	}
}
