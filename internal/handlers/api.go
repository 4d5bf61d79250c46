package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readtrace/readtrace-backend/internal/services"
	"github.com/readtrace/readtrace-backend/internal/social"
)

// API bundles the read-side components behind the HTTP handlers. Everything
// is injected at construction; handlers hold no global state.
type API struct {
	Log           *zap.Logger
	DB            *sql.DB
	Sessions      *services.SessionService
	AdminSessions *services.AdminSessionService
	Cache         *services.CacheService
	Friends       *social.FriendshipResolver
	Feed          *social.ActivityFeedPaginator
	CelebCounts   *social.CelebCountAggregator
	Counts        *social.CountGateway
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// extractBearerToken returns the token from an "Authorization: Bearer <token>"
// header, or "" when absent or malformed.
func extractBearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// callerID resolves the caller identity from the session token. Returns
// (uuid.Nil, false) for anonymous callers; the read endpoints then serve
// their documented empty defaults instead of an error.
func (a *API) callerID(r *http.Request) (uuid.UUID, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return uuid.Nil, false
	}
	userID, ok, err := a.Sessions.Validate(r.Context(), token)
	if err != nil || !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// requireAdminAuth validates the admin session and writes 401 when it is
// missing or invalid. Returns the admin ID and whether the caller may proceed.
func (a *API) requireAdminAuth(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	adminID, ok, err := a.AdminSessions.Validate(r.Context(), token)
	if err != nil || !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"message": "Admin authentication required",
		})
		return uuid.Nil, false
	}
	return adminID, true
}
