package social

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readtrace/readtrace-backend/internal/models"
)

func feedEntries(userID uuid.UUID, times ...time.Time) []models.ActivityLogEntry {
	entries := make([]models.ActivityLogEntry, len(times))
	for i, ts := range times {
		entries[i] = models.ActivityLogEntry{
			UserIDString: userID.String(),
			ActionType:   "content_finished",
			CreatedAt:    ts,
		}
	}
	return entries
}

func TestActivityPageAndCursor(t *testing.T) {
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	t1, t2, t3, t4, t5 := base, base.Add(time.Minute), base.Add(2*time.Minute), base.Add(3*time.Minute), base.Add(4*time.Minute)

	store := &fakeActivityStore{entries: feedEntries(userID, t1, t2, t3, t4, t5)}
	paginator := NewActivityFeedPaginator(store, zap.NewNop(), 20, 100)

	page, err := paginator.Logs(context.Background(), userID, 2, nil)
	require.NoError(t, err)
	require.Len(t, page.Logs, 2)
	assert.Equal(t, t5, page.Logs[0].CreatedAt)
	assert.Equal(t, t4, page.Logs[1].CreatedAt)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, t4, *page.NextCursor)

	page, err = paginator.Logs(context.Background(), userID, 2, page.NextCursor)
	require.NoError(t, err)
	require.Len(t, page.Logs, 2)
	assert.Equal(t, t3, page.Logs[0].CreatedAt)
	assert.Equal(t, t2, page.Logs[1].CreatedAt)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, t2, *page.NextCursor)
}

func TestActivityWalkCoversEveryEntryOnce(t *testing.T) {
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var times []time.Time
	for i := 0; i < 17; i++ {
		times = append(times, base.Add(time.Duration(i)*time.Second))
	}
	store := &fakeActivityStore{entries: feedEntries(userID, times...)}
	paginator := NewActivityFeedPaginator(store, zap.NewNop(), 20, 100)

	var collected []time.Time
	var cursor *time.Time
	for {
		page, err := paginator.Logs(context.Background(), userID, 5, cursor)
		require.NoError(t, err)
		for _, e := range page.Logs {
			collected = append(collected, e.CreatedAt)
		}
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	require.Len(t, collected, len(times))
	seen := make(map[time.Time]bool)
	for i, ts := range collected {
		assert.False(t, seen[ts], "entry repeated across pages")
		seen[ts] = true
		if i > 0 {
			assert.True(t, collected[i-1].After(ts), "pages not in descending order")
		}
	}
}

func TestActivityLastPageHasNoCursor(t *testing.T) {
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeActivityStore{entries: feedEntries(userID, base, base.Add(time.Second), base.Add(2*time.Second))}
	paginator := NewActivityFeedPaginator(store, zap.NewNop(), 20, 100)

	page, err := paginator.Logs(context.Background(), userID, 3, nil)
	require.NoError(t, err)
	assert.Len(t, page.Logs, 3)
	assert.Nil(t, page.NextCursor)
}

func TestActivityDefaultAndMaxLimit(t *testing.T) {
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var times []time.Time
	for i := 0; i < 8; i++ {
		times = append(times, base.Add(time.Duration(i)*time.Second))
	}
	store := &fakeActivityStore{entries: feedEntries(userID, times...)}
	paginator := NewActivityFeedPaginator(store, zap.NewNop(), 4, 6)

	page, err := paginator.Logs(context.Background(), userID, 0, nil)
	require.NoError(t, err)
	assert.Len(t, page.Logs, 4, "limit <= 0 selects the default page size")

	page, err = paginator.Logs(context.Background(), userID, 50, nil)
	require.NoError(t, err)
	assert.Len(t, page.Logs, 6, "limit clamps to the maximum")
}

func TestActivityStoreFailure(t *testing.T) {
	store := &fakeActivityStore{err: assert.AnError}
	paginator := NewActivityFeedPaginator(store, zap.NewNop(), 20, 100)

	page, err := paginator.Logs(context.Background(), uuid.New(), 2, nil)
	assert.Equal(t, KindStoreRead, KindOf(err))
	assert.Empty(t, page.Logs)
	assert.Nil(t, page.NextCursor)
}
