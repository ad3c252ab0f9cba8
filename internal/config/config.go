package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL        string
	RequestTimeout    time.Duration
	SessionFile       string
	ThreadsInterval   time.Duration
	MessagesInterval  time.Duration
	AnalyticsInterval time.Duration
}

func Load() Config {
	// a missing .env is the normal case
	_ = godotenv.Load()

	backend := os.Getenv("LIMPIAR_BACKEND_URL")
	if backend == "" {
		backend = "https://limpiar-backend.onrender.com/api"
	}

	sessionFile := os.Getenv("LIMPIAR_SESSION_FILE")
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		sessionFile = filepath.Join(home, ".limpiar", "session.json")
	}

	return Config{
		BackendURL:        backend,
		RequestTimeout:    readDurationSeconds("LIMPIAR_REQUEST_TIMEOUT_SECONDS", 15),
		SessionFile:       sessionFile,
		ThreadsInterval:   readDurationSeconds("LIMPIAR_THREADS_INTERVAL_SECONDS", 5),
		MessagesInterval:  readDurationSeconds("LIMPIAR_MESSAGES_INTERVAL_SECONDS", 5),
		AnalyticsInterval: readDurationSeconds("LIMPIAR_ANALYTICS_INTERVAL_SECONDS", 30),
	}
}

func readDurationSeconds(key string, fallback int) time.Duration {
	value := readInt(key, fallback)
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
