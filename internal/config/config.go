package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	UploadDir     string
	MaxUploadSize int64    // bytes
	AllowedTypes  []string // MIME types accepted for photo uploads

	MinPasswordLen int
	SessionMaxAge  int // seconds
	// SecureCookies marks the session cookie Secure; enable when serving
	// over TLS.
	SecureCookies bool

	AdminUsername string
	AdminPassword string
	// SeedLegacyAdmin stores the seeded admin password as the legacy md5
	// digest instead of bcrypt, to exercise the lazy upgrade path.
	SeedLegacyAdmin bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:           os.Getenv("DB_DSN"),
		ServerPort:      os.Getenv("SERVER_PORT"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		UploadDir:       os.Getenv("UPLOAD_DIR"),
		MaxUploadSize:   envInt64("MAX_UPLOAD_SIZE", 5*1024*1024),
		AllowedTypes:    []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
		MinPasswordLen:  int(envInt64("MIN_PASSWORD_LENGTH", 8)),
		SessionMaxAge:   int(envInt64("SESSION_MAX_AGE", 1800)),
		SecureCookies:   os.Getenv("SECURE_COOKIES") == "1",
		AdminUsername:   os.Getenv("ADMIN_USERNAME"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		SeedLegacyAdmin: os.Getenv("ADMIN_SEED_LEGACY") == "1",
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "web/uploads"
	}

	return cfg
}

func envInt64(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		log.Printf("invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return v
}
