package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	AI       AIConfig
	Reminder ReminderConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

type RedisConfig struct {
	URL string
}

type SMTPConfig struct {
	Host     string
	Port     string
	From     string
	Password string
}

type AIConfig struct {
	APIKey  string
	BaseURL string
}

type ReminderConfig struct {
	DaysInAdvance int
}

type JWTConfig struct {
	Secret string
}

// Load reads configuration from the environment, falling back to a local
// .env file when present.
func Load() *Config {
	_ = godotenv.Load()

	reminderDays, err := strconv.Atoi(getEnv("BOOKING_REMINDER_DAYS", "7"))
	if err != nil || reminderDays <= 0 {
		reminderDays = 7
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "aurora_events"),
			Port:     getEnv("DB_PORT", "5432"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			From:     getEnv("EMAIL_FROM", "noreply@auroraevents.com"),
			Password: getEnv("EMAIL_PASSWORD", ""),
		},
		AI: AIConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			BaseURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"),
		},
		Reminder: ReminderConfig{
			DaysInAdvance: reminderDays,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
