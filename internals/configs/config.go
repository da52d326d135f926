package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	UploadDir string
)

// LoadEnv reads .env when present and hydrates the package-level config.
// On managed platforms the variables already live in the environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set")
	}

	UploadDir = GetEnvOr("UPLOAD_DIR", "./uploads")
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
