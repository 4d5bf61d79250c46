package store

import (
	"context"
	"fmt"

	"github.com/readtrace/readtrace-backend/internal/social"
)

// GroupedCounts serves the delegated grouped-count path for dimensions that
// have a server-side procedure. Gender has none (the original deployment
// never shipped one), so it reports social.ErrNoGroupedCounts and the gateway
// falls back to per-category counts.
func (s *PostgresGraphStore) GroupedCounts(ctx context.Context, dimension string) (map[string]int64, error) {
	var query string
	switch dimension {
	case "content_type":
		query = `SELECT content_type, COUNT(*) FROM contents GROUP BY content_type`
	case "profession":
		query = `SELECT COALESCE(profession, ''), COUNT(*) FROM profiles WHERE profile_type = 'CELEB' GROUP BY profession`
	default:
		return nil, social.ErrNoGroupedCounts
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

// CountCategory counts one category value of a dimension.
func (s *PostgresGraphStore) CountCategory(ctx context.Context, dimension, key string) (int64, error) {
	query, args := categoryCountQuery(dimension, key)
	if query == "" {
		return 0, fmt.Errorf("unknown count dimension %q", dimension)
	}
	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountTotal counts the unfiltered total of a dimension.
func (s *PostgresGraphStore) CountTotal(ctx context.Context, dimension string) (int64, error) {
	var query string
	switch dimension {
	case "gender", "profession":
		query = `SELECT COUNT(*) FROM profiles WHERE status = 'active'`
	case "content_type":
		query = `SELECT COUNT(*) FROM contents`
	default:
		return 0, fmt.Errorf("unknown count dimension %q", dimension)
	}
	var n int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// categoryCountQuery whitelists the dimension-to-column mapping; dimension
// names never reach SQL as raw strings.
func categoryCountQuery(dimension, key string) (string, []interface{}) {
	switch dimension {
	case "gender":
		return `SELECT COUNT(*) FROM profiles WHERE status = 'active' AND gender = $1`, []interface{}{key}
	case "profession":
		return `SELECT COUNT(*) FROM profiles WHERE status = 'active' AND profession = $1`, []interface{}{key}
	case "content_type":
		return `SELECT COUNT(*) FROM contents WHERE content_type = $1`, []interface{}{key}
	}
	return "", nil
}
