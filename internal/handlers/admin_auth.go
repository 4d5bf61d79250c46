package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readtrace/readtrace-backend/pkg/utils"
)

// AdminSigninRequest represents the request to sign in as admin
type AdminSigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminSigninResponse represents the response after admin signin
type AdminSigninResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Admin   map[string]interface{} `json:"admin,omitempty"`
	Token   string                 `json:"token,omitempty"`
}

// AdminSignin verifies back-office credentials and mints an admin session.
// Admin accounts are created directly in the database; there is no signup.
func (a *API) AdminSignin(w http.ResponseWriter, r *http.Request) {
	var req AdminSigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AdminSigninResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, AdminSigninResponse{
			Success: false,
			Message: "Username and password are required",
		})
		return
	}

	var adminID uuid.UUID
	var passwordHash string
	err := a.DB.QueryRowContext(r.Context(), `
		SELECT id, password_hash FROM admins WHERE username = $1 AND is_active = TRUE
	`, req.Username).Scan(&adminID, &passwordHash)
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusUnauthorized, AdminSigninResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	} else if err != nil {
		writeJSON(w, http.StatusInternalServerError, AdminSigninResponse{
			Success: false,
			Message: "Database error",
		})
		return
	}

	valid, err := utils.VerifyPassword(req.Password, passwordHash)
	if err != nil || !valid {
		writeJSON(w, http.StatusUnauthorized, AdminSigninResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	token, err := a.AdminSessions.Create(r.Context(), adminID)
	if err != nil {
		a.Log.Error("admin session create failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, AdminSigninResponse{
			Success: false,
			Message: "Failed to create session",
		})
		return
	}

	writeJSON(w, http.StatusOK, AdminSigninResponse{
		Success: true,
		Message: "Signed in",
		Admin:   map[string]interface{}{"id": adminID.String(), "username": req.Username},
		Token:   token,
	})
}
