package config

import (
	"errors"
	"testing"
	"time"

	"github.com/securevault/securevault-go/internal/crypto"
)

var configKeys = []string{
	"PORT", "ENV", "HISTORY_DRIVER", "DATABASE_DSN", "SESSION_SECRET",
	"SESSION_EXPIRY", "HISTORY_LIMIT", "GENERATOR_REPAIR",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" || cfg.HistoryDriver != DriverMemory {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	if cfg.SessionExpiry != 12*time.Hour {
		t.Errorf("SessionExpiry = %v, want 12h", cfg.SessionExpiry)
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.HistoryLimit)
	}
	if cfg.Repair != crypto.RepairOverwrite {
		t.Errorf("Repair = %v, want overwrite", cfg.Repair)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("HISTORY_DRIVER", "sqlite")
	t.Setenv("SESSION_EXPIRY", "30m")
	t.Setenv("HISTORY_LIMIT", "10")
	t.Setenv("GENERATOR_REPAIR", "distinct")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.SessionExpiry != 30*time.Minute || cfg.HistoryLimit != 10 {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Repair != crypto.RepairDistinct {
		t.Errorf("Repair = %v, want distinct", cfg.Repair)
	}
	if cfg.DatabaseDSN != "data/securevault.db" {
		t.Errorf("DatabaseDSN = %q, want sqlite default path", cfg.DatabaseDSN)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SESSION_EXPIRY", "forever"},
		{"SESSION_EXPIRY", "-1h"},
		{"HISTORY_LIMIT", "zero"},
		{"HISTORY_LIMIT", "0"},
		{"GENERATOR_REPAIR", "sometimes"},
		{"HISTORY_DRIVER", "redis"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoadProductionSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	if _, err := Load(); !errors.Is(err, ErrSecretRequired) {
		t.Errorf("Load() error = %v, want %v", err, ErrSecretRequired)
	}

	t.Setenv("SESSION_SECRET", "a-real-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !cfg.Production() {
		t.Error("Production() = false, want true")
	}
}
