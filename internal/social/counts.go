package social

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// AllKey is the synthetic category holding the unfiltered total.
const AllKey = "all"

// Dimension is a closed, caller-known category set to count over.
type Dimension struct {
	Name string   // store dimension name, e.g. "gender", "profession", "content_type"
	Keys []string // expected categories, without the synthetic "all"
}

// Count dimensions served by the admin back office.
var (
	DimensionGender      = Dimension{Name: "gender", Keys: []string{"male", "female"}}
	DimensionProfession  = Dimension{Name: "profession", Keys: []string{"actor", "musician", "athlete", "writer", "other"}}
	DimensionContentType = Dimension{Name: "content_type", Keys: []string{"book", "article", "video"}}
)

// CountGateway produces zero-filled category-count maps. It prefers one
// delegated grouped-count call; for dimensions the store has no procedure
// for, it fans out one count query per category plus the unfiltered total.
//
// These counts are advisory widgets; failures degrade to the all-zero map and
// are logged, never propagated.
type CountGateway struct {
	store CountStore
	log   *zap.Logger
}

func NewCountGateway(store CountStore, log *zap.Logger) *CountGateway {
	return &CountGateway{store: store, log: log}
}

// Counts returns a map that always contains every key of dim plus AllKey.
func (g *CountGateway) Counts(ctx context.Context, dim Dimension) map[string]int64 {
	grouped, err := g.store.GroupedCounts(ctx, dim.Name)
	if err == nil {
		return g.mergeGrouped(dim, grouped)
	}
	if errors.Is(err, ErrNoGroupedCounts) {
		return g.fanOut(ctx, dim)
	}

	g.log.Warn("grouped count failed, serving zeros",
		zap.String("dimension", dim.Name), zap.Error(err))
	return zeroMap(dim)
}

// mergeGrouped folds a delegated grouped-count result into the expected key
// set. Groups outside the expected keys still contribute to the total.
func (g *CountGateway) mergeGrouped(dim Dimension, grouped map[string]int64) map[string]int64 {
	out := zeroMap(dim)
	var total int64
	for key, n := range grouped {
		total += n
		if _, ok := out[key]; ok {
			out[key] = n
		}
	}
	out[AllKey] = total
	return out
}

// fanOut issues the per-category counts and the total concurrently. A failed
// branch keeps its zero default and never blocks branches that completed.
func (g *CountGateway) fanOut(ctx context.Context, dim Dimension) map[string]int64 {
	out := zeroMap(dim)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, key := range dim.Keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			n, err := g.store.CountCategory(ctx, dim.Name, key)
			if err != nil {
				g.log.Warn("category count failed, defaulting to zero",
					zap.String("dimension", dim.Name), zap.String("category", key), zap.Error(err))
				return
			}
			mu.Lock()
			out[key] = n
			mu.Unlock()
		}(key)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		n, err := g.store.CountTotal(ctx, dim.Name)
		if err != nil {
			g.log.Warn("total count failed, defaulting to zero",
				zap.String("dimension", dim.Name), zap.Error(err))
			return
		}
		mu.Lock()
		out[AllKey] = n
		mu.Unlock()
	}()

	wg.Wait()
	return out
}

func zeroMap(dim Dimension) map[string]int64 {
	out := make(map[string]int64, len(dim.Keys)+1)
	for _, key := range dim.Keys {
		out[key] = 0
	}
	out[AllKey] = 0
	return out
}
