// Package records is the store adapter for sentiment records: the external
// relational store is the system of record, everything derived from it is
// recomputed per request.
package records

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/selivandex/team-pulse/pkg/models"
)

// Store is the narrow persistence contract the handlers and workers need
type Store interface {
	Insert(ctx context.Context, rec *models.SentimentRecord) error
	Query(ctx context.Context, start, end time.Time, teamID string) ([]models.SentimentRecord, error)
	ActiveTeams(ctx context.Context, since time.Time) ([]string, error)
}

// Repository implements Store over postgres
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates new sentiment record repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists one record. Records without a team land in the sentinel
// unassigned team. Client retries may insert duplicates; no dedup is done.
func (r *Repository) Insert(ctx context.Context, rec *models.SentimentRecord) error {
	if rec.TeamID == "" {
		rec.TeamID = models.TeamUnassigned
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sentiment_records (user_id, message, sentiment, emotion, confidence, timestamp, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, rec.UserID, rec.Message, rec.Sentiment, rec.Emotion, rec.Confidence, rec.Timestamp, rec.TeamID).Scan(&rec.ID)

	if err != nil {
		return fmt.Errorf("failed to insert sentiment record: %w", err)
	}

	return nil
}

// Query returns records in [start, end], optionally filtered by team,
// ordered by timestamp ascending
func (r *Repository) Query(ctx context.Context, start, end time.Time, teamID string) ([]models.SentimentRecord, error) {
	query := `
		SELECT id, user_id, message, sentiment, emotion, confidence, timestamp, team_id
		FROM sentiment_records
		WHERE timestamp >= $1 AND timestamp <= $2`
	args := []interface{}{start, end}

	if teamID != "" {
		query += ` AND team_id = $3`
		args = append(args, teamID)
	}
	query += ` ORDER BY timestamp ASC`

	var recs []models.SentimentRecord
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query sentiment records: %w", err)
	}

	return recs, nil
}

// ActiveTeams returns the distinct teams with records since the given time
func (r *Repository) ActiveTeams(ctx context.Context, since time.Time) ([]string, error) {
	var teams []string
	err := r.db.SelectContext(ctx, &teams, `
		SELECT DISTINCT team_id
		FROM sentiment_records
		WHERE timestamp >= $1
		ORDER BY team_id
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query active teams: %w", err)
	}

	return teams, nil
}
