package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/readtrace/readtrace-backend/internal/models"
)

// GetActivityResponse represents one page of the caller's activity feed
type GetActivityResponse struct {
	Success    bool                      `json:"success"`
	Message    string                    `json:"message,omitempty"`
	Logs       []models.ActivityLogEntry `json:"logs"`
	NextCursor *time.Time                `json:"next_cursor"`
}

// GetActivity streams the caller's activity log page by page. Cursor is the
// created_at of the last entry of the previous page, RFC3339Nano. Anonymous
// callers get an empty page, not an error.
func (a *API) GetActivity(w http.ResponseWriter, r *http.Request) {
	callerID, ok := a.callerID(r)
	if !ok {
		writeJSON(w, http.StatusOK, GetActivityResponse{
			Success: true,
			Logs:    []models.ActivityLogEntry{},
		})
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var cursor *time.Time
	if cursorStr := r.URL.Query().Get("cursor"); cursorStr != "" {
		t, err := time.Parse(time.RFC3339Nano, cursorStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, GetActivityResponse{
				Success: false,
				Message: "Invalid cursor",
				Logs:    []models.ActivityLogEntry{},
			})
			return
		}
		cursor = &t
	}

	page, err := a.Feed.Logs(r.Context(), callerID, limit, cursor)
	if err != nil {
		// Feed reads degrade silently; the widget shows an empty state.
		a.Log.Error("activity page fetch failed",
			zap.String("caller_id", callerID.String()), zap.Error(err))
		writeJSON(w, http.StatusOK, GetActivityResponse{
			Success: true,
			Logs:    []models.ActivityLogEntry{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetActivityResponse{
		Success:    true,
		Logs:       page.Logs,
		NextCursor: page.NextCursor,
	})
}
