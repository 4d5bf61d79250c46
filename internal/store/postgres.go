package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/readtrace/readtrace-backend/internal/models"
)

// PostgresGraphStore implements the graph and count query surfaces over the
// relational tables (profiles, follow_edges, engagements, contents).
type PostgresGraphStore struct {
	db *sql.DB
}

func NewPostgresGraphStore(db *sql.DB) *PostgresGraphStore {
	return &PostgresGraphStore{db: db}
}

// uuidArray renders ids for an `= ANY($n::uuid[])` predicate.
func uuidArray(ids []uuid.UUID) interface{} {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	return pq.Array(strs)
}

// FollowingIDs returns the ids userID follows.
func (s *PostgresGraphStore) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT following_id FROM follow_edges WHERE follower_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUUIDs(rows)
}

// FollowerIDsIn returns the subset of candidates that follow userID.
func (s *PostgresGraphStore) FollowerIDsIn(ctx context.Context, userID uuid.UUID, candidates []uuid.UUID) ([]uuid.UUID, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT follower_id FROM follow_edges
		WHERE following_id = $1 AND follower_id = ANY($2::uuid[])
	`, userID, uuidArray(candidates))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUUIDs(rows)
}

// ProfilesByIDs returns profile projections for the given ids.
func (s *PostgresGraphStore) ProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, profile_type, status, created_at
		FROM profiles WHERE id = ANY($1::uuid[])
	`, uuidArray(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Username, &p.ProfileType, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// FinishedEngagementsByUserIDs returns FINISHED engagement rows for the users.
func (s *PostgresGraphStore) FinishedEngagementsByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.EngagementRecord, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, content_id, status FROM engagements
		WHERE status = 'FINISHED' AND user_id = ANY($1::uuid[])
	`, uuidArray(userIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEngagements(rows)
}

// FinishedEngagementsByContentIDs returns FINISHED engagement rows for the
// content items.
func (s *PostgresGraphStore) FinishedEngagementsByContentIDs(ctx context.Context, contentIDs []string) ([]models.EngagementRecord, error) {
	if len(contentIDs) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, content_id, status FROM engagements
		WHERE status = 'FINISHED' AND content_id = ANY($1)
	`, pq.Array(contentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEngagements(rows)
}

// ActiveCelebIDs returns the subset of ids that are active CELEB profiles.
func (s *PostgresGraphStore) ActiveCelebIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM profiles
		WHERE id = ANY($1::uuid[]) AND profile_type = 'CELEB' AND status = 'active'
	`, uuidArray(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUUIDs(rows)
}

func scanUUIDs(rows *sql.Rows) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanEngagements(rows *sql.Rows) ([]models.EngagementRecord, error) {
	var records []models.EngagementRecord
	for rows.Next() {
		var e models.EngagementRecord
		if err := rows.Scan(&e.UserID, &e.ContentID, &e.Status); err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}
