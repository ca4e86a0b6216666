package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultCareerAPIURL is the remote endpoint receiving career applications.
const DefaultCareerAPIURL = "https://hrprojecbackend.onrender.com/career"

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Career application flow
	CareerAPIURL        string
	NotificationTimeout time.Duration
	SessionTTL          time.Duration
	ResumeMaxBytes      int64
	ClamAVAddress       string // empty = no malware scan
	// SMTP Configuration (contact page)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	ContactEmailTo string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds     int
	RateLimitUploadsPerWindow  int
	RateLimitContactsPerWindow int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; production injects the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		// Trailing slash would change the endpoint path, keep it exact
		CareerAPIURL:        strings.TrimSpace(getEnv("CAREER_API_URL", DefaultCareerAPIURL)),
		NotificationTimeout: time.Duration(getEnvInt("NOTIFICATION_TIMEOUT_MS", 6000)) * time.Millisecond,
		SessionTTL:          time.Duration(getEnvInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
		ResumeMaxBytes:      int64(getEnvInt("RESUME_MAX_BYTES", 10<<20)),
		ClamAVAddress:       getEnv("CLAMAV_ADDRESS", ""),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:     getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitUploadsPerWindow:  getEnvInt("RATE_LIMIT_UPLOADS_PER_WINDOW", 5),
		RateLimitContactsPerWindow: getEnvInt("RATE_LIMIT_CONTACTS_PER_WINDOW", 5),
	}

	if cfg.NotificationTimeout <= 0 {
		cfg.NotificationTimeout = 6 * time.Second
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.ResumeMaxBytes <= 0 {
		cfg.ResumeMaxBytes = 10 << 20
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
