package analytics

import (
	"testing"
	"time"
)

func TestResolveWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		label string
		span  time.Duration
	}{
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"30d", 30 * 24 * time.Hour},
		{"bogus", 7 * 24 * time.Hour},
		{"", 7 * 24 * time.Hour},
		{"90d", 7 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			window := ResolveWindow(tt.label, now)

			if !window.End.Equal(now) {
				t.Errorf("end = %v, want %v", window.End, now)
			}
			if window.Duration() != tt.span {
				t.Errorf("span = %v, want %v", window.Duration(), tt.span)
			}
		})
	}
}

func TestResolveWindow_UnrecognizedMatchesDefault(t *testing.T) {
	now := time.Now().UTC()

	def := ResolveWindow("7d", now)
	bogus := ResolveWindow("bogus", now)

	if !def.Start.Equal(bogus.Start) || !def.End.Equal(bogus.End) {
		t.Errorf("unrecognized label should behave exactly like 7d: %+v vs %+v", bogus, def)
	}
}
