package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("EDUVAULT_LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("EDUVAULT_SEED", "false")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logLevel: "info"
redisAddr: "localhost:6379"
sessionKey: "eduvault:currentUser"
sessionTTL: "24h"
seed: true
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("logLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.RedisAddr != "redis.internal:6380" {
		t.Fatalf("redisAddr = %q", cfg.RedisAddr)
	}
	if cfg.Seed {
		t.Fatalf("seed = true, want env override to false")
	}
	if cfg.SessionKey != "eduvault:currentUser" {
		t.Fatalf("sessionKey = %q", cfg.SessionKey)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("seed: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default logLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("default redisAddr = %q", cfg.RedisAddr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestParseSessionTTL(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"24h", 24 * time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{"-1h", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSessionTTL(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseSessionTTL(%q) = %v, want error", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSessionTTL(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("ParseSessionTTL(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
