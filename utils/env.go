package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by tsmodel.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvAnnotations = "TSMODEL_ANNOTATIONS"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
}

// DatabaseURL returns DATABASE_URL or an error when it is unset.
func DatabaseURL() (string, error) {
	url := os.Getenv(EnvDatabaseURL)
	if url == "" {
		return "", fmt.Errorf("%s not set (in .env or environment)", EnvDatabaseURL)
	}
	return url, nil
}

// Getenv returns the value of key, or fallback when it is unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
