package recommend

import (
	"github.com/selivandex/team-pulse/internal/mood"
	"github.com/selivandex/team-pulse/pkg/models"
)

// catalog is the curated per-mood track list recommendations are drawn from
var catalog = map[mood.Target][]models.Track{
	mood.TargetPositive: {
		{Name: "Good as Hell", Genre: "Pop", Mood: "positive"},
		{Name: "Happy", Genre: "Pop", Mood: "positive"},
		{Name: "Uptown Funk", Genre: "Funk", Mood: "positive"},
		{Name: "Can't Stop the Feeling!", Genre: "Pop", Mood: "positive"},
		{Name: "Walking on Sunshine", Genre: "Rock", Mood: "positive"},
	},
	mood.TargetFocused: {
		{Name: "Weightless", Genre: "Ambient", Mood: "focused"},
		{Name: "Deep Focus", Genre: "Classical", Mood: "focused"},
		{Name: "Rain on Leaves", Genre: "Nature", Mood: "focused"},
		{Name: "Study Music Alpha Waves", Genre: "Instrumental", Mood: "focused"},
		{Name: "Divenire", Genre: "Classical", Mood: "focused"},
	},
	mood.TargetMotivated: {
		{Name: "Eye of the Tiger", Genre: "Rock", Mood: "motivated"},
		{Name: "Stronger", Genre: "Pop Rock", Mood: "motivated"},
		{Name: "Thunder", Genre: "Rock", Mood: "motivated"},
		{Name: "Believer", Genre: "Rock", Mood: "motivated"},
		{Name: "Lose Yourself", Genre: "Hip-Hop", Mood: "motivated"},
	},
	mood.TargetRelaxed: {
		{Name: "Clair de Lune", Genre: "Classical", Mood: "relaxed"},
		{Name: "Breathe Me", Genre: "Indie", Mood: "relaxed"},
		{Name: "River Flows in You", Genre: "Piano", Mood: "relaxed"},
		{Name: "Mad World", Genre: "Alternative", Mood: "relaxed"},
		{Name: "Holocene", Genre: "Indie Folk", Mood: "relaxed"},
	},
	mood.TargetEnergetic: {
		{Name: "Pumped Up Kicks", Genre: "Indie Pop", Mood: "energetic"},
		{Name: "Electricity", Genre: "Electronic", Mood: "energetic"},
		{Name: "Levitating", Genre: "Dance Pop", Mood: "energetic"},
		{Name: "Blinding Lights", Genre: "Synthpop", Mood: "energetic"},
		{Name: "Titanium", Genre: "Electronic", Mood: "energetic"},
	},
}

// Tracks returns the curated list for a target mood. Unknown targets fall
// back to the positive catalog, mirroring the classifier's default.
func Tracks(target mood.Target) []models.Track {
	if tracks, ok := catalog[target]; ok {
		return tracks
	}
	return catalog[mood.TargetPositive]
}
