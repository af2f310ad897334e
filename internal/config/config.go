package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string
	SessionFile  string
	CaptchaToken string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:   getEnv("API_BASE_URL", ""),
		SessionFile:  getEnv("SESSION_FILE", defaultSessionFile()),
		CaptchaToken: getEnv("RECAPTCHA_TOKEN", ""),
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL is required")
	}

	return cfg
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".selecao-session.json"
	}
	return filepath.Join(home, ".selecao-session.json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
