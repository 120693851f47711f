package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleet_console/internal/session"
)

// Config holds the console's runtime settings, all environment-driven.
type Config struct {
	ListenAddr string
	// APIBaseURL is the fleet backend's REST base path, e.g. http://api:5000/api
	APIBaseURL string
}

// Load reads .env (if present) and assembles the console configuration.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		ListenAddr: getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:5000/api"),
	}
}

// InitSessionDB opens the Postgres database that backs the session store and
// migrates its schema. Sessions must survive console restarts, so this is the
// one piece of state the console persists itself.
func InitSessionDB() *gorm.DB {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "fleet_console")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to session database: %v", err)
	}

	if err := db.AutoMigrate(&session.Record{}); err != nil {
		log.Fatalf("session auto-migration failed: %v", err)
	}

	return db
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
