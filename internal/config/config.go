package config

import (
	"os"
	"strconv"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

// Config holds everything the server reads from the environment. Callers
// load .env (if any) before calling Load.
type Config struct {
	Port           string
	StorageBackend string
	DatabaseURL    string
	UsersFile      string

	// Pagination guards for GET /api/users. MaxPageSize is a guard against
	// oversized requests, not a product rule, hence configurable.
	DefaultPageSize int
	MaxPageSize     int
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		StorageBackend:  getEnv("STORAGE_BACKEND", BackendPostgres),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		UsersFile:       getEnv("USERS_FILE", "data/users.json"),
		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
