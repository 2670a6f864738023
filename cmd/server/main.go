package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"userdir-backend/internal/config"
	"userdir-backend/internal/database"
	"userdir-backend/internal/handlers"
	"userdir-backend/internal/repository"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	cfg := config.Load()

	var repo repository.UserRepository
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		if cfg.DatabaseURL == "" {
			log.Fatal("❌ DATABASE_URL is required for the postgres backend")
		}
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to connect to Postgres: %v", err)
		}
		repo = repository.NewGormUserRepository(db)
	case config.BackendFile:
		repo = repository.NewFileUserRepository(cfg.UsersFile)
		log.Printf("📁 Using file storage at %s", cfg.UsersFile)
	default:
		log.Fatalf("❌ Unknown STORAGE_BACKEND %q (want %q or %q)",
			cfg.StorageBackend, config.BackendPostgres, config.BackendFile)
	}

	userHandler := handlers.NewUserHandler(repo, cfg.DefaultPageSize, cfg.MaxPageSize)
	r := handlers.NewRouter(userHandler)

	log.Printf("🚀 User directory backend starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
