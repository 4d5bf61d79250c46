package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// ConnectPostgres opens a PostgreSQL connection pool and initializes tables.
func ConnectPostgres(postgresURI string) (*sql.DB, error) {
	db, err := sql.Open("postgres", postgresURI)
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err = InitPostgresTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// InitPostgresTables creates all necessary tables if they don't exist
func InitPostgresTables(db *sql.DB) error {
	queries := []string{
		// Profiles table. CELEB rows are created by the admin back office with
		// synthetic ids and never correspond to a login.
		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(50) NOT NULL UNIQUE,
			profile_type VARCHAR(10) NOT NULL DEFAULT 'USER',
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			gender VARCHAR(20),
			profession VARCHAR(50),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Directed follow edges, unique per ordered pair, no self-loops
		`CREATE TABLE IF NOT EXISTS follow_edges (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			follower_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			following_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE(follower_id, following_id),
			CHECK (follower_id <> following_id)
		)`,

		// Content items (books, articles, videos)
		`CREATE TABLE IF NOT EXISTS contents (
			id VARCHAR(64) PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			content_type VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Engagements table (many-to-many between profiles and contents)
		`CREATE TABLE IF NOT EXISTS engagements (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			content_id VARCHAR(64) NOT NULL REFERENCES contents(id) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL DEFAULT 'SAVED',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE(user_id, content_id)
		)`,

		// Admins table
		`CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,

		// Create indexes for better performance
		`CREATE INDEX IF NOT EXISTS idx_profiles_username ON profiles(username)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_profile_type ON profiles(profile_type)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_status ON profiles(status)`,
		`CREATE INDEX IF NOT EXISTS idx_follow_edges_follower_id ON follow_edges(follower_id)`,
		`CREATE INDEX IF NOT EXISTS idx_follow_edges_following_id ON follow_edges(following_id)`,
		`CREATE INDEX IF NOT EXISTS idx_engagements_user_id ON engagements(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_engagements_content_id ON engagements(content_id)`,
		`CREATE INDEX IF NOT EXISTS idx_engagements_status ON engagements(status)`,
		`CREATE INDEX IF NOT EXISTS idx_contents_content_type ON contents(content_type)`,
		`CREATE INDEX IF NOT EXISTS idx_admins_username ON admins(username)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
