package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/securevault/securevault-go/internal/crypto"
)

const devSessionSecret = "dev-secret-change-in-production"

// History store drivers.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

var ErrSecretRequired = errors.New("SESSION_SECRET must be set in production environment")

type Config struct {
	Port          string
	Env           string
	HistoryDriver string
	DatabaseDSN   string
	SessionSecret string
	SessionExpiry time.Duration
	HistoryLimit  int
	Repair        crypto.RepairMode
}

// Production reports whether the service runs with ENV=production.
func (c Config) Production() bool {
	return c.Env == "production"
}

func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		HistoryDriver: getEnv("HISTORY_DRIVER", DriverMemory),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),
	}

	expiry, err := time.ParseDuration(getEnv("SESSION_EXPIRY", "12h"))
	if err != nil || expiry <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_EXPIRY %q", os.Getenv("SESSION_EXPIRY"))
	}
	cfg.SessionExpiry = expiry

	limit, err := strconv.Atoi(getEnv("HISTORY_LIMIT", "50"))
	if err != nil || limit <= 0 {
		return Config{}, fmt.Errorf("invalid HISTORY_LIMIT %q", os.Getenv("HISTORY_LIMIT"))
	}
	cfg.HistoryLimit = limit

	repair, ok := crypto.ParseRepairMode(os.Getenv("GENERATOR_REPAIR"))
	if !ok {
		return Config{}, fmt.Errorf("invalid GENERATOR_REPAIR %q", os.Getenv("GENERATOR_REPAIR"))
	}
	cfg.Repair = repair

	switch cfg.HistoryDriver {
	case DriverMemory, DriverMySQL, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unknown HISTORY_DRIVER %q", cfg.HistoryDriver)
	}
	if cfg.DatabaseDSN == "" && cfg.HistoryDriver == DriverSQLite {
		cfg.DatabaseDSN = "data/securevault.db"
	}

	if cfg.Production() && cfg.SessionSecret == devSessionSecret {
		return Config{}, ErrSecretRequired
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
