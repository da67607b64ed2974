package config

import (
	"testing"
	"time"
)

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("CLEANER_INTERVAL", "30m")

	opts := &Options{
		Port:            "localhost:8080",
		DatabaseDSN:     "postgres://file",
		JWTSecret:       "file-secret",
		CleanerInterval: time.Hour,
	}
	applyEnv(opts)

	if opts.Port != "0.0.0.0:9090" {
		t.Errorf("Port = %q; want env override", opts.Port)
	}
	if opts.DatabaseDSN != "postgres://env" {
		t.Errorf("DatabaseDSN = %q; want env override", opts.DatabaseDSN)
	}
	if opts.JWTSecret != "env-secret" {
		t.Errorf("JWTSecret = %q; want env override", opts.JWTSecret)
	}
	if opts.CleanerInterval != 30*time.Minute {
		t.Errorf("CleanerInterval = %v; want 30m", opts.CleanerInterval)
	}
}

func TestApplyEnv_UnsetKeepsExisting(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CLEANER_INTERVAL", "")

	opts := &Options{
		Port:            "localhost:8080",
		DatabaseDSN:     "postgres://file",
		JWTSecret:       "file-secret",
		CleanerInterval: time.Hour,
	}
	applyEnv(opts)

	if opts.Port != "localhost:8080" || opts.DatabaseDSN != "postgres://file" ||
		opts.JWTSecret != "file-secret" || opts.CleanerInterval != time.Hour {
		t.Errorf("unset env vars must leave options unchanged, got %+v", opts)
	}
}
