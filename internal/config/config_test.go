package config

import (
	"testing"
	"time"
)

// allEnvVars lists every config env var that must be cleared between tests.
var allEnvVars = []string{
	"TRAILMARK_DATABASE_URL", "TRAILMARK_HTTP_ADDR", "TRAILMARK_CORS_ORIGIN",
	"TRAILMARK_MAX_BODY_BYTES", "TRAILMARK_EXPORT_INTERVAL",
	"TRAILMARK_EXPORT_S3_BUCKET", "TRAILMARK_EXPORT_S3_ENDPOINT",
	"TRAILMARK_EXPORT_S3_REGION", "TRAILMARK_EXPORT_S3_KEY",
}

func clearAllEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name           string
		env            map[string]string
		wantErr        bool
		wantHTTPAddr   string
		wantCORSOrigin string
	}{
		{
			name:    "MissingDatabaseURL",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name:           "Defaults",
			env:            map[string]string{"TRAILMARK_DATABASE_URL": "postgres://localhost/trailmark"},
			wantHTTPAddr:   ":8000",
			wantCORSOrigin: "*",
		},
		{
			name: "Custom",
			env: map[string]string{
				"TRAILMARK_DATABASE_URL": "postgres://db:5432/trailmark",
				"TRAILMARK_HTTP_ADDR":    ":3000",
				"TRAILMARK_CORS_ORIGIN":  "https://dashboard.example.com",
			},
			wantHTTPAddr:   ":3000",
			wantCORSOrigin: "https://dashboard.example.com",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clearAllEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.DatabaseURL != tc.env["TRAILMARK_DATABASE_URL"] {
				t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, tc.env["TRAILMARK_DATABASE_URL"])
			}
			if cfg.HTTPAddr != tc.wantHTTPAddr {
				t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, tc.wantHTTPAddr)
			}
			if cfg.CORSOrigin != tc.wantCORSOrigin {
				t.Errorf("CORSOrigin = %q, want %q", cfg.CORSOrigin, tc.wantCORSOrigin)
			}
		})
	}
}

func TestLoadBodyLimit(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("TRAILMARK_DATABASE_URL", "postgres://localhost/trailmark")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxBodyBytes != 16384 {
		t.Errorf("MaxBodyBytes = %d, want 16384", cfg.MaxBodyBytes)
	}

	t.Setenv("TRAILMARK_MAX_BODY_BYTES", "1024")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxBodyBytes != 1024 {
		t.Errorf("MaxBodyBytes = %d, want 1024", cfg.MaxBodyBytes)
	}

	for _, bad := range []string{"not-a-number", "0", "-5"} {
		t.Setenv("TRAILMARK_MAX_BODY_BYTES", bad)
		if _, err := Load(); err == nil {
			t.Errorf("expected error for TRAILMARK_MAX_BODY_BYTES=%q", bad)
		}
	}
}

func TestLoadExportSettings(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("TRAILMARK_DATABASE_URL", "postgres://localhost/trailmark")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ExportInterval != 0 {
		t.Errorf("ExportInterval = %v, want 0 (disabled)", cfg.ExportInterval)
	}
	if cfg.ExportS3Region != "us-east-1" {
		t.Errorf("ExportS3Region = %q, want %q", cfg.ExportS3Region, "us-east-1")
	}
	if cfg.ExportS3Key != "trailmark/events.jsonl" {
		t.Errorf("ExportS3Key = %q, want %q", cfg.ExportS3Key, "trailmark/events.jsonl")
	}

	t.Setenv("TRAILMARK_EXPORT_INTERVAL", "10m")
	t.Setenv("TRAILMARK_EXPORT_S3_BUCKET", "analytics-backup")
	t.Setenv("TRAILMARK_EXPORT_S3_ENDPOINT", "http://minio:9000")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ExportInterval != 10*time.Minute {
		t.Errorf("ExportInterval = %v, want 10m", cfg.ExportInterval)
	}
	if cfg.ExportS3Bucket != "analytics-backup" {
		t.Errorf("ExportS3Bucket = %q", cfg.ExportS3Bucket)
	}
	if cfg.ExportS3Endpoint != "http://minio:9000" {
		t.Errorf("ExportS3Endpoint = %q", cfg.ExportS3Endpoint)
	}

	t.Setenv("TRAILMARK_EXPORT_INTERVAL", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid TRAILMARK_EXPORT_INTERVAL")
	}
}
