package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/readtrace/readtrace-backend/internal/config"
	"github.com/readtrace/readtrace-backend/internal/database"
	"github.com/readtrace/readtrace-backend/internal/handlers"
	"github.com/readtrace/readtrace-backend/internal/middleware"
	"github.com/readtrace/readtrace-backend/internal/routes"
	"github.com/readtrace/readtrace-backend/internal/services"
	"github.com/readtrace/readtrace-backend/internal/social"
	"github.com/readtrace/readtrace-backend/internal/store"
)

func main() {
	// Load env
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	// Connect to PostgreSQL
	logger.Info("connecting to PostgreSQL")
	db, err := database.ConnectPostgres(cfg.PostgresURI)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	// Connect to Redis
	logger.Info("connecting to Redis")
	rdb, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer rdb.Close()

	// Connect to MongoDB
	logger.Info("connecting to MongoDB")
	mongoClient, mongoDB, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer database.DisconnectMongo(mongoClient)

	// Stores
	graphStore := store.NewPostgresGraphStore(db)
	activityStore := store.NewMongoActivityStore(mongoDB)

	// Ensure MongoDB indexes for the activity log
	if err := activityStore.EnsureActivityIndexes(context.Background()); err != nil {
		logger.Warn("failed to ensure MongoDB activity indexes", zap.Error(err))
	}

	// Services and aggregation components
	api := &handlers.API{
		Log:           logger,
		DB:            db,
		Sessions:      services.NewSessionService(rdb),
		AdminSessions: services.NewAdminSessionService(rdb),
		Cache:         services.NewCacheService(rdb),
		Friends:       social.NewFriendshipResolver(graphStore, logger),
		Feed:          social.NewActivityFeedPaginator(activityStore, logger, cfg.FeedPageSize, cfg.FeedPageSizeMax),
		CelebCounts:   social.NewCelebCountAggregator(graphStore, logger, cfg.INListCeiling, cfg.ClassifyConcurrency),
		Counts:        social.NewCountGateway(graphStore, logger),
	}

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Production: SecurityHeaders -> GlobalRateLimit -> LoginRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		logger.Info("production security enabled (security headers, per-IP + login rate limiting)")
	} else {
		r.Use(middleware.RateLimit(rdb))
	}

	// Health check (no rate limit)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r, api)

	logger.Info("readtrace backend running", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.IsProduction() {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
