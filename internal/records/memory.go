package records

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/selivandex/team-pulse/pkg/models"
)

// MemoryStore is the canned Store used in demo deployments and tests. Same
// contract as the postgres repository, nothing persisted.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	recs   []models.SentimentRecord
}

// NewMemoryStore creates new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Insert stores one record in memory
func (s *MemoryStore) Insert(_ context.Context, rec *models.SentimentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.TeamID == "" {
		rec.TeamID = models.TeamUnassigned
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	rec.ID = s.nextID
	s.nextID++
	s.recs = append(s.recs, *rec)

	return nil
}

// Query returns records in [start, end], optionally filtered by team,
// ordered by timestamp ascending
func (s *MemoryStore) Query(_ context.Context, start, end time.Time, teamID string) ([]models.SentimentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.SentimentRecord
	for _, rec := range s.recs {
		if rec.Timestamp.Before(start) || rec.Timestamp.After(end) {
			continue
		}
		if teamID != "" && rec.TeamID != teamID {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out, nil
}

// ActiveTeams returns distinct teams with records since the given time
func (s *MemoryStore) ActiveTeams(_ context.Context, since time.Time) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var teams []string
	for _, rec := range s.recs {
		if rec.Timestamp.Before(since) || seen[rec.TeamID] {
			continue
		}
		seen[rec.TeamID] = true
		teams = append(teams, rec.TeamID)
	}

	sort.Strings(teams)
	return teams, nil
}
