package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

const historySchema = `
	CREATE TABLE IF NOT EXISTS history_items (
		seq        BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		id         CHAR(36)        NOT NULL UNIQUE,
		session_id CHAR(36)        NOT NULL,
		content    TEXT            NOT NULL,
		type       VARCHAR(16)     NOT NULL,
		created_at DATETIME(6)     NOT NULL,
		INDEX idx_history_session (session_id, seq)
	)`

// mysqlConfig parses dsn and forces DATETIME columns to scan into time.Time
// in UTC, whatever parseTime and loc the DSN carries.
func mysqlConfig(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database DSN: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg, nil
}

// NewDB creates a new MySQL connection pool with the given DSN and makes sure
// the history table exists.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := mysqlConfig(dsn)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.ExecContext(ctx, historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history table: %w", err)
	}

	return db, nil
}
