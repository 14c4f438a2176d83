package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewHistoryRepository(t *testing.T) {
	repo := NewHistoryRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil HistoryRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestTrimQueryUsesDerivedTable(t *testing.T) {
	if strings.Count(trimQuery, "?") != 3 {
		t.Fatalf("trimQuery expects 3 placeholders, got %d", strings.Count(trimQuery, "?"))
	}
	if !strings.Contains(trimQuery, "AS keep_rows") {
		t.Error("trimQuery must wrap the LIMIT subquery in a derived table")
	}
}

func TestMySQLConfig(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{name: "plain", dsn: "user:pw@tcp(db:3306)/securevault"},
		{name: "parseTime disabled", dsn: "user:pw@tcp(db:3306)/securevault?parseTime=false&loc=Local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := mysqlConfig(tt.dsn)
			if err != nil {
				t.Fatalf("mysqlConfig() unexpected error: %v", err)
			}
			if !cfg.ParseTime {
				t.Error("mysqlConfig() ParseTime = false, want true")
			}
			if cfg.Loc != time.UTC {
				t.Errorf("mysqlConfig() Loc = %v, want UTC", cfg.Loc)
			}
			if cfg.Addr != "db:3306" || cfg.DBName != "securevault" || cfg.User != "user" {
				t.Errorf("mysqlConfig() = %s@%s/%s", cfg.User, cfg.Addr, cfg.DBName)
			}
		})
	}

	if _, err := mysqlConfig("not a dsn"); err == nil {
		t.Error("mysqlConfig() expected error for malformed DSN")
	}
}

// TestHistoryRepository runs against a real server when SECUREVAULT_TEST_MYSQL_DSN is set.
func TestHistoryRepository(t *testing.T) {
	dsn := os.Getenv("SECUREVAULT_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("SECUREVAULT_TEST_MYSQL_DSN not set")
	}

	ctx := context.Background()
	db, err := NewDB(ctx, dsn)
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewHistoryRepository(db)
	for _, session := range []string{"a", "b"} {
		if err := repo.Clear(ctx, session); err != nil {
			t.Fatalf("Clear() unexpected error: %v", err)
		}
	}
	t.Cleanup(func() {
		repo.Clear(ctx, "a")
		repo.Clear(ctx, "b")
	})

	exerciseHistoryStore(t, repo)
}
