package social

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readtrace/readtrace-backend/internal/models"
)

func friendIDs(friends []FriendInfo) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool, len(friends))
	for _, f := range friends {
		out[f.ID] = true
	}
	return out
}

func TestFriendsMutualOnly(t *testing.T) {
	store := newFakeGraphStore()
	a := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)
	b := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)
	c := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)

	// A follows B and C; B follows A; C does not follow A.
	store.follow(a, b)
	store.follow(a, c)
	store.follow(b, a)

	resolver := NewFriendshipResolver(store, zap.NewNop())
	friends, err := resolver.Friends(context.Background(), a)
	require.NoError(t, err)

	assert.Equal(t, map[uuid.UUID]bool{b: true}, friendIDs(friends))
}

func TestFriendsIndependentOfEdgeOrder(t *testing.T) {
	// Same graph built reverse-direction-first must give the same set.
	store := newFakeGraphStore()
	a := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)
	b := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)
	c := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)

	store.follow(b, a)
	store.follow(c, a)
	store.follow(a, c)
	store.follow(a, b)

	resolver := NewFriendshipResolver(store, zap.NewNop())
	friends, err := resolver.Friends(context.Background(), a)
	require.NoError(t, err)

	assert.Equal(t, map[uuid.UUID]bool{b: true, c: true}, friendIDs(friends))
}

func TestFriendsEmptyFollowingShortCircuits(t *testing.T) {
	store := newFakeGraphStore()
	a := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)

	resolver := NewFriendshipResolver(store, zap.NewNop())
	friends, err := resolver.Friends(context.Background(), a)
	require.NoError(t, err)

	assert.Empty(t, friends)
	assert.Equal(t, 1, store.callCount("FollowingIDs"))
	assert.Equal(t, 1, store.totalCalls(), "no queries beyond the following lookup")
}

func TestFriendsEngagementCounts(t *testing.T) {
	store := newFakeGraphStore()
	a := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)
	b := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)
	c := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)

	store.follow(a, b)
	store.follow(b, a)
	store.follow(a, c)
	store.follow(c, a)

	// B finished two items and saved a third; C has nothing.
	store.engage(b, "c1", models.EngagementStatusFinished)
	store.engage(b, "c2", models.EngagementStatusFinished)
	store.engage(b, "c3", models.EngagementStatusSaved)

	resolver := NewFriendshipResolver(store, zap.NewNop())
	friends, err := resolver.Friends(context.Background(), a)
	require.NoError(t, err)
	require.Len(t, friends, 2)

	counts := make(map[uuid.UUID]int)
	for _, f := range friends {
		counts[f.ID] = f.FinishedCount
	}
	assert.Equal(t, 2, counts[b])
	assert.Equal(t, 0, counts[c], "zero-engagement friends still appear with count 0")
}

func TestFriendsStoreFailure(t *testing.T) {
	store := newFakeGraphStore()
	a := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)
	b := store.addProfile(models.ProfileTypeUser, models.ProfileStatusActive)
	store.follow(a, b)
	store.follow(b, a)
	store.failOn["ProfilesByIDs"] = assert.AnError

	resolver := NewFriendshipResolver(store, zap.NewNop())
	friends, err := resolver.Friends(context.Background(), a)

	assert.Nil(t, friends)
	assert.Equal(t, KindStoreRead, KindOf(err))
}
