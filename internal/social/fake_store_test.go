package social

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/readtrace/readtrace-backend/internal/models"
)

// fakeGraphStore serves queries from in-memory data and records every call so
// tests can assert query counts and chunk shapes.
type fakeGraphStore struct {
	mu           sync.Mutex
	following    map[uuid.UUID][]uuid.UUID
	profiles     map[uuid.UUID]models.Profile
	engagements  []models.EngagementRecord
	failOn       map[string]error
	calls        map[string]int
	celebQueries [][]uuid.UUID
}

func newFakeGraphStore() *fakeGraphStore {
	return &fakeGraphStore{
		following: make(map[uuid.UUID][]uuid.UUID),
		profiles:  make(map[uuid.UUID]models.Profile),
		failOn:    make(map[string]error),
		calls:     make(map[string]int),
	}
}

func (f *fakeGraphStore) record(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	return f.failOn[method]
}

func (f *fakeGraphStore) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeGraphStore) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeGraphStore) addProfile(profileType, status string) uuid.UUID {
	id := uuid.New()
	f.profiles[id] = models.Profile{ID: id, Username: "u-" + id.String()[:8], ProfileType: profileType, Status: status}
	return id
}

func (f *fakeGraphStore) follow(follower, following uuid.UUID) {
	f.following[follower] = append(f.following[follower], following)
}

func (f *fakeGraphStore) engage(userID uuid.UUID, contentID, status string) {
	f.engagements = append(f.engagements, models.EngagementRecord{UserID: userID, ContentID: contentID, Status: status})
}

func (f *fakeGraphStore) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if err := f.record("FollowingIDs"); err != nil {
		return nil, err
	}
	return f.following[userID], nil
}

func (f *fakeGraphStore) FollowerIDsIn(ctx context.Context, userID uuid.UUID, candidates []uuid.UUID) ([]uuid.UUID, error) {
	if err := f.record("FollowerIDsIn"); err != nil {
		return nil, err
	}
	var out []uuid.UUID
	for _, cand := range candidates {
		for _, followed := range f.following[cand] {
			if followed == userID {
				out = append(out, cand)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeGraphStore) ProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error) {
	if err := f.record("ProfilesByIDs"); err != nil {
		return nil, err
	}
	var out []models.Profile
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGraphStore) FinishedEngagementsByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.EngagementRecord, error) {
	if err := f.record("FinishedEngagementsByUserIDs"); err != nil {
		return nil, err
	}
	want := make(map[uuid.UUID]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	var out []models.EngagementRecord
	for _, e := range f.engagements {
		if e.Status == models.EngagementStatusFinished && want[e.UserID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeGraphStore) FinishedEngagementsByContentIDs(ctx context.Context, contentIDs []string) ([]models.EngagementRecord, error) {
	if err := f.record("FinishedEngagementsByContentIDs"); err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(contentIDs))
	for _, id := range contentIDs {
		want[id] = true
	}
	var out []models.EngagementRecord
	for _, e := range f.engagements {
		if e.Status == models.EngagementStatusFinished && want[e.ContentID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeGraphStore) ActiveCelebIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if err := f.record("ActiveCelebIDs"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.celebQueries = append(f.celebQueries, append([]uuid.UUID(nil), ids...))
	f.mu.Unlock()
	var out []uuid.UUID
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok && p.ProfileType == models.ProfileTypeCeleb && p.Status == models.ProfileStatusActive {
			out = append(out, id)
		}
	}
	return out, nil
}

// fakeActivityStore keeps entries in memory and serves keyset queries.
type fakeActivityStore struct {
	entries []models.ActivityLogEntry
	err     error
}

func (f *fakeActivityStore) LogsBefore(ctx context.Context, userID uuid.UUID, before *time.Time, limit int) ([]models.ActivityLogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ActivityLogEntry
	for _, e := range f.entries {
		if e.UserIDString != userID.String() {
			continue
		}
		if before != nil && !e.CreatedAt.Before(*before) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeCountStore serves grouped and per-category counts from fixed maps.
type fakeCountStore struct {
	mu          sync.Mutex
	grouped     map[string]map[string]int64 // dimensions with a grouped procedure
	groupedErr  error
	category    map[string]map[string]int64
	categoryErr map[string]error // keyed by dimension+":"+key
	totals      map[string]int64
	totalErr    error
	calls       map[string]int
}

func newFakeCountStore() *fakeCountStore {
	return &fakeCountStore{
		grouped:     make(map[string]map[string]int64),
		category:    make(map[string]map[string]int64),
		categoryErr: make(map[string]error),
		totals:      make(map[string]int64),
		calls:       make(map[string]int),
	}
}

func (f *fakeCountStore) record(method string) {
	f.mu.Lock()
	f.calls[method]++
	f.mu.Unlock()
}

func (f *fakeCountStore) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeCountStore) GroupedCounts(ctx context.Context, dimension string) (map[string]int64, error) {
	f.record("GroupedCounts")
	if f.groupedErr != nil {
		return nil, f.groupedErr
	}
	counts, ok := f.grouped[dimension]
	if !ok {
		return nil, ErrNoGroupedCounts
	}
	return counts, nil
}

func (f *fakeCountStore) CountCategory(ctx context.Context, dimension, key string) (int64, error) {
	f.record("CountCategory")
	if err := f.categoryErr[dimension+":"+key]; err != nil {
		return 0, err
	}
	return f.category[dimension][key], nil
}

func (f *fakeCountStore) CountTotal(ctx context.Context, dimension string) (int64, error) {
	f.record("CountTotal")
	if f.totalErr != nil {
		return 0, f.totalErr
	}
	return f.totals[dimension], nil
}
