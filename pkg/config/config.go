package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries process-wide settings. Page size is injected into handlers
// from here rather than read from a global.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	PageSize    int
	MediaDir    string
	TemplateDir string
}

func Load() *Config {
	// Load .env into the environment before any value is read, so a
	// .env-only deployment configures the process like exported vars do.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		PageSize:    getEnvInt("PAGE_SIZE", 10),
		MediaDir:    getEnv("MEDIA_DIR", "media"),
		TemplateDir: getEnv("TEMPLATE_DIR", "web/templates"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
