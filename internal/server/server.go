// Package server boots the application: config, database, cache, storage,
// log sink, middleware chain and routes.
package server

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/routes"
	"github.com/shashiranjanraj/vyapari/config"
	"github.com/shashiranjanraj/vyapari/pkg/cache"
	"github.com/shashiranjanraj/vyapari/pkg/database"
	"github.com/shashiranjanraj/vyapari/pkg/logger"
	"github.com/shashiranjanraj/vyapari/pkg/metrics"
	"github.com/shashiranjanraj/vyapari/pkg/middleware"
	"github.com/shashiranjanraj/vyapari/pkg/reqid"
	"github.com/shashiranjanraj/vyapari/pkg/router"
	"github.com/shashiranjanraj/vyapari/pkg/storage"
)

// Start boots every subsystem and blocks serving HTTP. The cache and the
// Mongo log sink are optional tiers: failing to reach them logs a warning
// and the server keeps going.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if config.MongoLogURI() != "" {
		if _, err := logger.EnableMongoSink(); err != nil {
			logger.Warn("server: mongo log sink disabled", "error", err)
		}
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("server: running without cache", "error", err)
	}

	storage.Connect()

	handler := NewHandler(database.DB)

	addr := ":" + config.AppPort()
	logger.Info("server: listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, handler)
}

// NewHandler builds the full HTTP handler: middleware chain, API routes,
// the metrics endpoint and locally stored media files. Extracted from Start
// so tests can serve the whole stack via httptest.
func NewHandler(db *gorm.DB) http.Handler {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	routes.RegisterAPI(r, db)

	r.HandleFunc("/metrics", metrics.Handler())

	// Local media is served straight off the storage root; with the S3 disk
	// the URLs point at the bucket instead and this mount goes unused.
	fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(config.StorageLocalRoot())))
	r.HandleFunc("/storage/*", fs.ServeHTTP)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	return r.Handler()
}
