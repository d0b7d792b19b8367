package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// defaultMaxBodyBytes caps ingest request bodies at 16 KiB.
const defaultMaxBodyBytes = 16 << 10

type Config struct {
	DatabaseURL  string // TRAILMARK_DATABASE_URL (required)
	HTTPAddr     string // TRAILMARK_HTTP_ADDR (default ":8000")
	CORSOrigin   string // TRAILMARK_CORS_ORIGIN (default "*")
	MaxBodyBytes int64  // TRAILMARK_MAX_BODY_BYTES (default 16384)

	// Export settings
	ExportInterval   time.Duration // TRAILMARK_EXPORT_INTERVAL (default 0 = disabled)
	ExportS3Bucket   string        // TRAILMARK_EXPORT_S3_BUCKET (enables S3 when set)
	ExportS3Endpoint string        // TRAILMARK_EXPORT_S3_ENDPOINT (custom endpoint for MinIO)
	ExportS3Region   string        // TRAILMARK_EXPORT_S3_REGION (default "us-east-1")
	ExportS3Key      string        // TRAILMARK_EXPORT_S3_KEY (default "trailmark/events.jsonl")
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:      os.Getenv("TRAILMARK_DATABASE_URL"),
		HTTPAddr:         envOrDefault("TRAILMARK_HTTP_ADDR", ":8000"),
		CORSOrigin:       envOrDefault("TRAILMARK_CORS_ORIGIN", "*"),
		MaxBodyBytes:     defaultMaxBodyBytes,
		ExportS3Bucket:   os.Getenv("TRAILMARK_EXPORT_S3_BUCKET"),
		ExportS3Endpoint: os.Getenv("TRAILMARK_EXPORT_S3_ENDPOINT"),
		ExportS3Region:   envOrDefault("TRAILMARK_EXPORT_S3_REGION", "us-east-1"),
		ExportS3Key:      envOrDefault("TRAILMARK_EXPORT_S3_KEY", "trailmark/events.jsonl"),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("TRAILMARK_DATABASE_URL is required")
	}

	if v := os.Getenv("TRAILMARK_MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("TRAILMARK_MAX_BODY_BYTES: invalid value %q", v)
		}
		c.MaxBodyBytes = n
	}

	if v := os.Getenv("TRAILMARK_EXPORT_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TRAILMARK_EXPORT_INTERVAL: %w", err)
		}
		c.ExportInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
