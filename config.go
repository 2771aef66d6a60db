package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string // Postgres DSN; empty means local sqlite
	SQLitePath    string
	UploadDir     string
	SeedPath      string
	AllowedOrigin string
	SecureCookies bool
}

// LoadConfig reads settings from the environment, after loading a local
// .env file if one exists.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "learnhub.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "public/uploads"),
		SeedPath:      getEnv("SEED_PATH", "data/quizzes.json"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
