package models

import "time"

// Track is one curated music recommendation
type Track struct {
	Name  string `json:"name"`
	Genre string `json:"genre"`
	Mood  string `json:"mood"`
}

// RecommendationBundle is the composed wellness payload served per user.
// Bundles are transient: the cache holds a copy with an expiry, the next
// successful generation supersedes it wholesale.
type RecommendationBundle struct {
	WellnessNudge        string    `json:"wellnessNudge"`
	MotivationalContent  string    `json:"motivationalContent"`
	MusicRecommendations []Track   `json:"musicRecommendations"`
	GeneratedAt          time.Time `json:"generatedAt"`
}
