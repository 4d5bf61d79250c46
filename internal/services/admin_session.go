package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// AdminSessionDuration is 7 days
	AdminSessionDuration = 7 * 24 * time.Hour
	// AdminSessionKeyPrefix is the Redis key prefix for admin sessions
	AdminSessionKeyPrefix = "admin_session:"
	// AdminToSessionKeyPrefix is the Redis key prefix for admin->session mapping
	AdminToSessionKeyPrefix = "admin_to_session:"
)

// AdminSessionService manages back-office sessions in their own Redis
// keyspace, separate from user sessions.
type AdminSessionService struct {
	rdb *redis.Client
}

func NewAdminSessionService(rdb *redis.Client) *AdminSessionService {
	return &AdminSessionService{rdb: rdb}
}

// Create creates a new session for an admin and stores it in Redis. An
// existing session for the admin is invalidated first. Returns the token.
func (s *AdminSessionService) Create(ctx context.Context, adminID uuid.UUID) (string, error) {
	_ = s.InvalidateAdminSessions(ctx, adminID)

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	sessionToken := base64.URLEncoding.EncodeToString(tokenBytes)

	sessionKey := AdminSessionKeyPrefix + sessionToken
	adminToSessionKey := AdminToSessionKeyPrefix + adminID.String()

	if err := s.rdb.Set(ctx, sessionKey, adminID.String(), AdminSessionDuration).Err(); err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, adminToSessionKey, sessionToken, AdminSessionDuration).Err(); err != nil {
		return "", err
	}

	return sessionToken, nil
}

// Validate checks if a session token is valid and returns the admin ID.
func (s *AdminSessionService) Validate(ctx context.Context, sessionToken string) (uuid.UUID, bool, error) {
	if sessionToken == "" {
		return uuid.Nil, false, nil
	}

	adminIDStr, err := s.rdb.Get(ctx, AdminSessionKeyPrefix+sessionToken).Result()
	if err != nil {
		return uuid.Nil, false, nil
	}

	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return uuid.Nil, false, err
	}

	return adminID, true, nil
}

// Invalidate removes an admin session from Redis.
func (s *AdminSessionService) Invalidate(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}

	sessionKey := AdminSessionKeyPrefix + sessionToken

	adminIDStr, err := s.rdb.Get(ctx, sessionKey).Result()
	if err == nil && adminIDStr != "" {
		_ = s.rdb.Del(ctx, AdminToSessionKeyPrefix+adminIDStr).Err()
	}

	return s.rdb.Del(ctx, sessionKey).Err()
}

// InvalidateAdminSessions invalidates all sessions for an admin.
func (s *AdminSessionService) InvalidateAdminSessions(ctx context.Context, adminID uuid.UUID) error {
	adminToSessionKey := AdminToSessionKeyPrefix + adminID.String()

	sessionToken, err := s.rdb.Get(ctx, adminToSessionKey).Result()
	if err == nil && sessionToken != "" {
		_ = s.rdb.Del(ctx, AdminSessionKeyPrefix+sessionToken).Err()
	}

	return s.rdb.Del(ctx, adminToSessionKey).Err()
}
