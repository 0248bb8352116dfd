package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	FrontendURL string
	AuthScheme  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string
}

// Load lee .env si existe y arma la configuración desde el entorno.
func Load() AppConfig {
	_ = godotenv.Load()

	return AppConfig{
		Port:        getEnv("PORT", "4000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		AuthScheme:  getEnv("AUTH_SCHEME", "plaintext"),
		DBHost:      getEnv("DB_HOST", "127.0.0.1"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "biomedica"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		DBTimezone:  getEnv("DB_TIMEZONE", "UTC"),
	}
}

func (c AppConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode, c.DBTimezone,
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
