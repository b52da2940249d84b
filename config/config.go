package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDriver       string // "postgres" or "sqlite"
	DatabaseURL    string
	UploadDir      string
	AssetsDir      string
	AdminToken     string // empty leaves the admin surface ungated
	AllowedOrigins []string
}

// Load reads configuration from the environment, picking up a local
// .env file first if one exists.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		AssetsDir:      getEnv("ASSETS_DIR", "public/assets"),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}

	if cfg.DatabaseURL == "" {
		switch cfg.DBDriver {
		case "sqlite":
			cfg.DatabaseURL = "./portfolio.db"
		default:
			cfg.DatabaseURL = postgresDSN()
		}
	}
	return cfg
}

// postgresDSN assembles a connection string from the individual DB_*
// variables when DATABASE_URL is not set.
func postgresDSN() string {
	return "host=" + getEnv("DB_HOST", "localhost") +
		" port=" + getEnv("DB_PORT", "5432") +
		" user=" + getEnv("DB_USER", "postgres") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + getEnv("DB_NAME", "portfolio") +
		" sslmode=disable"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
