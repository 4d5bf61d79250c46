package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/readtrace/readtrace-backend/internal/social"
)

// CelebCountsRequest represents the request for per-content engagement splits
type CelebCountsRequest struct {
	ContentIDs []string `json:"content_ids"`
}

// CelebCountsResponse represents the response with per-content splits.
// Content ids with no finished engagements are absent from the map; clients
// default missing keys to zero.
type CelebCountsResponse struct {
	Success bool                              `json:"success"`
	Message string                            `json:"message,omitempty"`
	Code    string                            `json:"code,omitempty"`
	Counts  map[string]social.EngagementSplit `json:"counts,omitempty"`
}

// GetCelebCounts returns the celebrity/general split of finished engagements
// for each requested content item. Unlike the feed endpoints this one
// surfaces aggregation failures: a partial split would be misleading.
func (a *API) GetCelebCounts(w http.ResponseWriter, r *http.Request) {
	var req CelebCountsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CelebCountsResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	counts, err := a.CelebCounts.CelebCounts(r.Context(), req.ContentIDs)
	if err != nil {
		a.Log.Error("celeb count aggregation failed",
			zap.Int("content_ids", len(req.ContentIDs)), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, CelebCountsResponse{
			Success: false,
			Message: "Failed to aggregate engagement counts",
			Code:    string(social.KindOf(err)),
		})
		return
	}

	writeJSON(w, http.StatusOK, CelebCountsResponse{
		Success: true,
		Counts:  counts,
	})
}
