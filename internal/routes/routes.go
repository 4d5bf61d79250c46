package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/readtrace/readtrace-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, api *handlers.API) {
	// Social graph read routes
	r.Get("/api/friends", api.GetFriends)
	r.Get("/api/activity", api.GetActivity)
	r.Post("/api/contents/celeb-counts", api.GetCelebCounts)

	// Admin auth routes (accounts are created directly in the database)
	r.Post("/api/admin/signin", api.AdminSignin)

	// Admin dashboard stats
	r.Get("/api/admin/stats/genders", api.GetGenderStats)
	r.Get("/api/admin/stats/professions", api.GetProfessionStats)
	r.Get("/api/admin/stats/content-types", api.GetContentTypeStats)
}
