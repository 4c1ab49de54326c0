package config

import (
	"os"
)

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// Config holds every recognized environment option. Each integration is
// independently optional: a missing key disables only the dependent
// feature (image parsing, archival, mail), never the whole process.
type Config struct {
	DatabaseURL      string
	Port             string
	JWTSecret        string
	GeminiAPIKey     string
	NasaAPIKey       string
	CORSAllowOrigins string
	Email            EmailConfig
	R2               R2Config
}

func Load() *Config {
	return &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		NasaAPIKey:       os.Getenv("NASA_API_KEY"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		Email: EmailConfig{
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			FromAddress:  os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:     os.Getenv("EMAIL_FROM_NAME"),
		},
		R2: R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			Bucket:          os.Getenv("R2_BUCKET"),
		},
	}
}

// MailEnabled reports whether the daily digest can send.
func (c *Config) MailEnabled() bool {
	return c.Email.ResendAPIKey != "" && c.Email.FromAddress != ""
}

// ArchiveEnabled reports whether uploaded note images get archived to R2.
func (c *Config) ArchiveEnabled() bool {
	return c.R2.AccountID != "" && c.R2.AccessKeyID != "" &&
		c.R2.SecretAccessKey != "" && c.R2.Bucket != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
