package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// S3Config carries the object-store credentials and bucket settings. It is
// built once at startup and passed explicitly to the storage gateway — no
// ambient lookups.
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// Endpoint overrides the default AWS endpoint, e.g. for MinIO in tests.
	Endpoint string
	// UploadExpiry bounds how long a presigned PUT URL stays valid.
	UploadExpiry time.Duration
}

type Config struct {
	Port        string
	GinMode     string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	LogLevel    string
	LogPath     string
	S3          S3Config
}

// Load reads .env (if present) and the environment. DATABASE_URL and
// JWT_SECRET are required; S3 credentials are validated lazily by the
// gateway so local runs without object storage still start.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", ""),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPath:     os.Getenv("LOG_PATH"),
		S3: S3Config{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			Region:          getEnv("AWS_REGION", "ap-northeast-2"),
			Bucket:          os.Getenv("AWS_S3_BUCKET"),
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			UploadExpiry:    time.Duration(getEnvInt("S3_UPLOAD_EXPIRES_IN", 1800)) * time.Second,
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
