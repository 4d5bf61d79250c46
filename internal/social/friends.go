package social

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FriendInfo is one mutual follow with a lightweight engagement stat.
type FriendInfo struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	ProfileType   string    `json:"profile_type"`
	FinishedCount int       `json:"finished_count"`
}

// FriendshipResolver derives the mutual-follow set of a caller. Friends are
// profiles where both follow directions exist; each carries the number of
// content items that friend has finished.
type FriendshipResolver struct {
	store GraphStore
	log   *zap.Logger
}

func NewFriendshipResolver(store GraphStore, log *zap.Logger) *FriendshipResolver {
	return &FriendshipResolver{store: store, log: log}
}

// Friends returns the caller's mutual follows. Order is unspecified. A caller
// following nobody gets an empty slice without further store calls.
func (r *FriendshipResolver) Friends(ctx context.Context, callerID uuid.UUID) ([]FriendInfo, error) {
	const op = "friends.resolve"

	following, err := r.store.FollowingIDs(ctx, callerID)
	if err != nil {
		return nil, &Error{Kind: KindStoreRead, Op: op, Err: err}
	}
	if len(following) == 0 {
		return []FriendInfo{}, nil
	}

	// Reverse direction, restricted to the forward set.
	mutuals, err := r.store.FollowerIDsIn(ctx, callerID, following)
	if err != nil {
		return nil, &Error{Kind: KindStoreRead, Op: op, Err: err}
	}
	if len(mutuals) == 0 {
		return []FriendInfo{}, nil
	}

	profiles, err := r.store.ProfilesByIDs(ctx, mutuals)
	if err != nil {
		return nil, &Error{Kind: KindStoreRead, Op: op, Err: err}
	}

	engagements, err := r.store.FinishedEngagementsByUserIDs(ctx, mutuals)
	if err != nil {
		return nil, &Error{Kind: KindStoreRead, Op: op, Err: err}
	}

	// One counting pass; friends with no engagements keep count 0.
	counts := make(map[uuid.UUID]int, len(mutuals))
	for _, id := range mutuals {
		counts[id] = 0
	}
	for _, e := range engagements {
		counts[e.UserID]++
	}

	friends := make([]FriendInfo, 0, len(profiles))
	for _, p := range profiles {
		friends = append(friends, FriendInfo{
			ID:            p.ID,
			Username:      p.Username,
			ProfileType:   p.ProfileType,
			FinishedCount: counts[p.ID],
		})
	}

	r.log.Debug("resolved friends",
		zap.String("caller_id", callerID.String()),
		zap.Int("following", len(following)),
		zap.Int("mutuals", len(mutuals)))

	return friends, nil
}
