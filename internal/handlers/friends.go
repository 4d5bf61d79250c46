package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/readtrace/readtrace-backend/internal/social"
)

// GetFriendsResponse represents the response for getting friends
type GetFriendsResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Friends []social.FriendInfo `json:"friends"`
}

// GetFriends returns the caller's mutual follows with engagement stats.
// Anonymous callers get an empty list, not an error.
func (a *API) GetFriends(w http.ResponseWriter, r *http.Request) {
	callerID, ok := a.callerID(r)
	if !ok {
		writeJSON(w, http.StatusOK, GetFriendsResponse{
			Success: true,
			Friends: []social.FriendInfo{},
		})
		return
	}

	friends, err := a.Friends.Friends(r.Context(), callerID)
	if err != nil {
		// Friends are a cosmetic read path; degrade to empty and log.
		a.Log.Error("friends resolution failed",
			zap.String("caller_id", callerID.String()), zap.Error(err))
		writeJSON(w, http.StatusOK, GetFriendsResponse{
			Success: true,
			Friends: []social.FriendInfo{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetFriendsResponse{
		Success: true,
		Friends: friends,
	})
}
