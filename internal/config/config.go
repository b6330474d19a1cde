// Package config holds the tunables of the complaint backend.
// Values that differ between deployments are read from the environment in
// cmd/main.go; everything here is a process-wide default.
package config

import "os"

const (
	// Document collection names.
	ComplaintsCollection = "complaints"
	UsersCollection      = "users"

	// Write-time defaults for a new complaint.
	DefaultStatus   = "pending"
	DefaultCategory = "general"

	// Read-time defaults used when a stored document lacks a field.
	// The category default deliberately differs between write ("general")
	// and read ("others"): old documents without a category read back as
	// "others" while new writes get "general".
	ReadDefaultCategory = "others"
	ReadDefaultPriority = "low"

	// Actor recorded on audit entries and comments when none is supplied.
	DefaultActor      = "admin"
	DefaultActorName  = "Admin"
	DefaultUserStatus = "active"
	BlockedUserStatus = "blocked"

	// Redis channel the event feed publishes on.
	EventsChannel = "complaints:events"
)

// Config carries the per-deployment settings wired in at startup.
type Config struct {
	// DatabaseDSN is the PostgreSQL connection string.
	DatabaseDSN string
	// RedisAddr is the Redis host:port.
	RedisAddr string
	// ListenAddr is the HTTP bind address.
	ListenAddr string
	// ClassifierBaseURL is the base URL of the priority model service.
	ClassifierBaseURL string
	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	// DefaultRole is assigned to freshly backfilled user profiles.
	DefaultRole string
	// TelegramToken enables the admin notifier when non-empty.
	TelegramToken string
}

// FromEnv builds a Config from environment variables, falling back to
// development defaults.
func FromEnv() Config {
	return Config{
		DatabaseDSN:       getenv("DATABASE_DSN", "host=localhost user=user password=password dbname=complainhub port=5432 sslmode=disable"),
		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		ListenAddr:        getenv("LISTEN_ADDR", ":8080"),
		ClassifierBaseURL: getenv("CLASSIFIER_URL", "http://localhost:8000"),
		JWTSecret:         getenv("JWT_SECRET", ""),
		DefaultRole:       getenv("IDENTITY_DEFAULT_ROLE", "student"),
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
