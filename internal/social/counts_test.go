package social

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCountsDelegatedPath(t *testing.T) {
	store := newFakeCountStore()
	store.grouped["content_type"] = map[string]int64{"book": 12, "article": 5, "video": 3}

	gateway := NewCountGateway(store, zap.NewNop())
	counts := gateway.Counts(context.Background(), DimensionContentType)

	assert.Equal(t, map[string]int64{"all": 20, "book": 12, "article": 5, "video": 3}, counts)
	assert.Equal(t, 1, store.callCount("GroupedCounts"), "one round trip, no per-category fan-out")
	assert.Equal(t, 0, store.callCount("CountCategory"))
}

func TestCountsDelegatedZeroFillsMissingKeys(t *testing.T) {
	store := newFakeCountStore()
	// Store knows about an extra group and is missing "video" entirely.
	store.grouped["content_type"] = map[string]int64{"book": 4, "podcast": 2}

	gateway := NewCountGateway(store, zap.NewNop())
	counts := gateway.Counts(context.Background(), DimensionContentType)

	assert.Equal(t, int64(0), counts["video"], "absent category is zero-filled")
	assert.Equal(t, int64(6), counts["all"], "unexpected groups still count toward the total")
	_, hasExtra := counts["podcast"]
	assert.False(t, hasExtra, "output is the closed expected key set")
}

func TestCountsFallbackEnumeration(t *testing.T) {
	store := newFakeCountStore()
	store.category["gender"] = map[string]int64{"male": 7, "female": 9}
	store.totals["gender"] = 20 // includes profiles with no gender set

	gateway := NewCountGateway(store, zap.NewNop())
	counts := gateway.Counts(context.Background(), DimensionGender)

	assert.Len(t, counts, 3)
	assert.Equal(t, int64(20), counts[AllKey])
	assert.Equal(t, int64(7), counts["male"])
	assert.Equal(t, int64(9), counts["female"])
	assert.LessOrEqual(t, counts["male"]+counts["female"], counts[AllKey])
	assert.Equal(t, 2, store.callCount("CountCategory"))
	assert.Equal(t, 1, store.callCount("CountTotal"))
}

func TestCountsFallbackBranchFailureDefaultsToZero(t *testing.T) {
	store := newFakeCountStore()
	store.category["gender"] = map[string]int64{"male": 7, "female": 9}
	store.totals["gender"] = 20
	store.categoryErr["gender:female"] = assert.AnError

	gateway := NewCountGateway(store, zap.NewNop())
	counts := gateway.Counts(context.Background(), DimensionGender)

	assert.Equal(t, int64(7), counts["male"], "completed branches keep their results")
	assert.Equal(t, int64(0), counts["female"], "failed branch defaults to zero")
	assert.Equal(t, int64(20), counts[AllKey])
}

func TestCountsDelegatedFailureServesZeroMap(t *testing.T) {
	store := newFakeCountStore()
	store.groupedErr = assert.AnError

	gateway := NewCountGateway(store, zap.NewNop())
	counts := gateway.Counts(context.Background(), DimensionContentType)

	assert.Equal(t, map[string]int64{"all": 0, "book": 0, "article": 0, "video": 0}, counts)
	assert.Equal(t, 0, store.callCount("CountCategory"), "no fallback on hard failure")
}
