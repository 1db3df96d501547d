package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-venue-manager/internal/auth"       // External auth service client
	"github.com/iliyamo/hotel-venue-manager/internal/config"     // Internal config loader
	"github.com/iliyamo/hotel-venue-manager/internal/database"   // MySQL pool constructor
	"github.com/iliyamo/hotel-venue-manager/internal/handler"    // HTTP handlers
	"github.com/iliyamo/hotel-venue-manager/internal/queue"      // Record-change consumer
	"github.com/iliyamo/hotel-venue-manager/internal/repository" // Tenant-scoped repositories
	"github.com/iliyamo/hotel-venue-manager/internal/router"     // Route registration
	queue_publisher "github.com/iliyamo/hotel-venue-manager/internal/service"
	"github.com/iliyamo/hotel-venue-manager/internal/storage" // Object store client
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load() // Load environment config; exits on missing hard dependencies

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	authClient := auth.NewClient(cfg.AuthURL, cfg.AuthKey)          // resolves session tokens remotely
	storeClient := storage.NewClient(cfg.StorageURL, cfg.StorageKey) // mirrors uploads best-effort
	rdb := config.NewRedisClient()                                   // nil disables cache + rate limiting

	api := handler.NewAPIHandler(
		repository.NewRoomRepo(db),
		repository.NewMenuPhotoRepo(db),
		repository.NewMenuListRepo(db),
		repository.NewEventRepo(db),
		queue_publisher.Publisher{},
	)
	pages := handler.NewPageHandler(cfg.WebDir,
		repository.NewRoomRepo(db),
		repository.NewMenuPhotoRepo(db),
		repository.NewMenuListRepo(db),
		repository.NewEventRepo(db),
	)
	uploads := handler.NewUploadHandler(storeClient, cfg.StorageBucket, cfg.UploadDir)
	sessions := handler.NewAuthHandler(authClient)

	// Drain record-change events into the activity log in the background.
	go func() {
		if err := queue.StartRecordConsumer(); err != nil {
			log.Printf("record consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e, cfg.UploadDir)
	router.RegisterAuth(e, sessions)
	router.RegisterPages(e, pages, authClient)
	router.RegisterAPI(e, api, uploads, authClient, rdb)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
