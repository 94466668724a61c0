package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   int

	// Mongo
	MongoURI string
	MongoDB  string

	// Identity provider token verification
	JWTSecret string
	JWTIssuer string

	// Static role assignment (exact email match at first sight)
	AdminEmail     string
	ModeratorEmail string

	// S3-compatible image hosting
	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Bucket          string
	S3UsePathStyle    bool
	PublicBaseURL     string

	// Browser origins allowed by CORS
	CORSOrigins []string

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Port = getInt("PORT", 5000)

	cfg.MongoURI = getEnv("MONGO_URI", "")
	cfg.MongoDB = getEnv("MONGO_DB", "scholarshipDB")

	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "")

	cfg.AdminEmail = strings.ToLower(getEnv("ADMIN_EMAIL", ""))
	cfg.ModeratorEmail = strings.ToLower(getEnv("MODERATOR_EMAIL", ""))

	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3AccessKeyID = getEnv("S3_ACCESS_KEY_ID", "")
	cfg.S3SecretAccessKey = getEnv("S3_SECRET_ACCESS_KEY", "")
	cfg.S3Bucket = getEnv("S3_BUCKET", "opportunest-images")
	cfg.S3UsePathStyle = getBool("S3_USE_PATH_STYLE", true)
	cfg.PublicBaseURL = getEnv("PUBLIC_BASE_URL", "")

	cfg.CORSOrigins = splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174"))

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// fail fast
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("missing MONGO_URI")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing JWT_SECRET")
	}

	return cfg, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		panic(fmt.Errorf("invalid boolean env %s=%q", k, v))
	}
}
