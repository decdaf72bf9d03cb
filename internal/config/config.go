package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	DBHost   string
	DBPort   string
	DBUser   string
	DBPass   string
	DBName   string
}

// Load reads configuration from the environment, consulting .env when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		DBHost:   getEnv("DB_HOST", "127.0.0.1"),
		DBPort:   getEnv("DB_PORT", "3306"),
		DBUser:   getEnv("DB_USER", "root"),
		DBPass:   getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "ecommerce_api"),
	}
}

// DSN builds the MySQL connection string. parseTime is required so
// DATETIME columns scan into time.Time.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
