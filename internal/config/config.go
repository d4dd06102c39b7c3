package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the runtime configuration, read from the environment.
// cmd/main loads .env first, so local runs only need that file.
type Config struct {
	HTTPAddr    string
	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GroqAPIKey      string
	GroqModel       string
	GroqURL         string
	ClassifyTimeout time.Duration

	SweepInterval time.Duration

	TelegramBotToken string
	AuthorityChatID  int64

	// EmailDomain builds addresses for auto-created identities
	// (roll_number@domain, like the campus mail scheme).
	EmailDomain string
}

func Load() *Config {
	return &Config{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=localhost user=user password=password dbname=campusvoice port=5432 sslmode=disable"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		GroqAPIKey:       getEnv("GROQ_API_KEY", ""),
		GroqModel:        getEnv("LLM_MODEL", "mixtral-8x7b-32768"),
		GroqURL:          getEnv("GROQ_URL", "https://api.groq.com/openai/v1/chat/completions"),
		ClassifyTimeout:  getEnvDuration("CLASSIFY_TIMEOUT", 15*time.Second),
		SweepInterval:    getEnvDuration("WS_SWEEP_INTERVAL", 5*time.Minute),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		AuthorityChatID:  getEnvInt64("AUTHORITY_CHAT_ID", 0),
		EmailDomain:      getEnv("EMAIL_DOMAIN", "srec.ac.in"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
