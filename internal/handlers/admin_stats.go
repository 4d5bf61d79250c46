package handlers

import (
	"net/http"

	"github.com/readtrace/readtrace-backend/internal/services"
	"github.com/readtrace/readtrace-backend/internal/social"
)

// AdminStatsResponse represents a zero-filled category-count map
type AdminStatsResponse struct {
	Success bool             `json:"success"`
	Counts  map[string]int64 `json:"counts"`
}

// GetGenderStats returns active profile counts by gender plus the total.
func (a *API) GetGenderStats(w http.ResponseWriter, r *http.Request) {
	a.serveStats(w, r, social.DimensionGender)
}

// GetProfessionStats returns celebrity profile counts by profession plus the total.
func (a *API) GetProfessionStats(w http.ResponseWriter, r *http.Request) {
	a.serveStats(w, r, social.DimensionProfession)
}

// GetContentTypeStats returns content item counts by type plus the total.
func (a *API) GetContentTypeStats(w http.ResponseWriter, r *http.Request) {
	a.serveStats(w, r, social.DimensionContentType)
}

// serveStats answers one count dimension for the admin dashboard. Results are
// cached briefly; the gateway already degrades failures to all-zero maps, so
// this always responds 200 with every expected key present.
func (a *API) serveStats(w http.ResponseWriter, r *http.Request, dim social.Dimension) {
	if _, ok := a.requireAdminAuth(w, r); !ok {
		return
	}

	cacheKey := services.CacheKey("stats", dim.Name)

	var cached map[string]int64
	if hit, _ := a.Cache.Get(r.Context(), cacheKey, &cached); hit {
		writeJSON(w, http.StatusOK, AdminStatsResponse{Success: true, Counts: cached})
		return
	}

	counts := a.Counts.Counts(r.Context(), dim)
	a.Cache.Set(r.Context(), cacheKey, counts)

	writeJSON(w, http.StatusOK, AdminStatsResponse{Success: true, Counts: counts})
}
