package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Admin credential (single shared secret). If AdminPasswordHash is set it
	// takes precedence and is compared with bcrypt; otherwise AdminPassword is
	// compared in constant time.
	AdminPassword     string
	AdminPasswordHash string

	// Sessions
	SessionTTL    time.Duration
	SessionCookie string

	// Server
	Port        string
	CORSOrigins string

	// Seed three starter projects on boot when the projects table is empty.
	SeedProjects bool
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "team_signup"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		SessionTTL:    parseDuration(getEnv("SESSION_TTL", "720h")),
		SessionCookie: getEnv("SESSION_COOKIE", "signup_session"),

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SeedProjects: parseBool(getEnv("SEED_PROJECTS", "false")),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
