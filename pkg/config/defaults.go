// Package config provides centralized default values for the composer engine
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Editor Sessions
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration

	// Autosave
	AutosaveInterval time.Duration

	// Draft Database
	DraftDBPath              string
	TursoEnabled             bool
	TursoDatabase            string
	TursoToken               string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int
	DBConnMaxIdleMinutes     int

	// Publish
	PublishEndpoint string
	PublishTimeout  time.Duration

	// Media
	MediaBasePath string

	// Auth
	JWTSecret          string
	EditorPasswordHash string
	TokenLifetime      time.Duration

	// Style bounds
	BlockWidthMinPercent int
	BlockWidthMaxPercent int

	// Logging
	LogDirectory string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Editor Sessions
	SessionTTL = time.Duration(getEnvInt("SESSION_TTL_HOURS", 4)) * time.Hour
	SessionCleanupInterval = time.Duration(getEnvInt("SESSION_CLEANUP_INTERVAL_MINUTES", 15)) * time.Minute

	// Autosave
	AutosaveInterval = getEnvDuration("AUTOSAVE_INTERVAL", 30*time.Second)

	// Draft Database
	DraftDBPath = getEnvString("DRAFT_DB_PATH", "data/composer.db")
	TursoEnabled = getEnvString("TURSO_ENABLED", "false") == "true"
	TursoDatabase = getEnvString("TURSO_DATABASE_URL", "")
	TursoToken = getEnvString("TURSO_AUTH_TOKEN", "")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)
	DBConnMaxIdleMinutes = getEnvInt("DB_CONN_MAX_IDLE_MINUTES", 3)

	// Publish
	PublishEndpoint = getEnvString("PUBLISH_ENDPOINT", "http://localhost:3000/api/blogs/create")
	PublishTimeout = getEnvDuration("PUBLISH_TIMEOUT", 15*time.Second)

	// Media
	MediaBasePath = getEnvString("MEDIA_BASE_PATH", "media")

	// Auth
	JWTSecret = getEnvString("JWT_SECRET", "")
	EditorPasswordHash = getEnvString("EDITOR_PASSWORD_HASH", "")
	TokenLifetime = time.Duration(getEnvInt("TOKEN_LIFETIME_HOURS", 24)) * time.Hour

	// Style bounds
	BlockWidthMinPercent = getEnvInt("BLOCK_WIDTH_MIN_PERCENT", 20)
	BlockWidthMaxPercent = getEnvInt("BLOCK_WIDTH_MAX_PERCENT", 100)

	// Logging
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
}
