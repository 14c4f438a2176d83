package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/securevault/securevault-go/internal/model"
	"gorm.io/gorm"
)

type historyRecord struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	ItemID    string    `gorm:"size:36;uniqueIndex"`
	SessionID string    `gorm:"size:36;index:idx_history_session"`
	Content   string    `gorm:"not null"`
	Type      string    `gorm:"size:16;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (historyRecord) TableName() string { return "history_items" }

// SQLiteHistory stores history items in a SQLite file through gorm.
type SQLiteHistory struct {
	db *gorm.DB
}

// OpenSQLiteHistory opens (creating if needed) the SQLite database at path and
// migrates the history table.
func OpenSQLiteHistory(path string) (*SQLiteHistory, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating db directory %s: %w", dir, err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: NewGormLogger(200 * time.Millisecond)})
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", path, err)
	}

	if err := db.AutoMigrate(&historyRecord{}); err != nil {
		return nil, fmt.Errorf("migrating history table: %w", err)
	}

	return &SQLiteHistory{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *SQLiteHistory) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLiteHistory) Add(ctx context.Context, item model.HistoryItem) error {
	rec := historyRecord{
		ItemID:    item.ID,
		SessionID: item.SessionID,
		Content:   item.Content,
		Type:      string(item.Type),
		CreatedAt: item.Timestamp,
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

func (s *SQLiteHistory) List(ctx context.Context, sessionID string, limit int) ([]model.HistoryItem, error) {
	var recs []historyRecord
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("seq DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	items := make([]model.HistoryItem, len(recs))
	for i, r := range recs {
		items[i] = model.HistoryItem{
			ID:        r.ItemID,
			SessionID: r.SessionID,
			Content:   r.Content,
			Type:      model.HistoryType(r.Type),
			Timestamp: r.CreatedAt,
		}
	}
	return items, nil
}

func (s *SQLiteHistory) Trim(ctx context.Context, sessionID string, keep int) error {
	var seqs []uint64
	err := s.db.WithContext(ctx).
		Model(&historyRecord{}).
		Where("session_id = ?", sessionID).
		Order("seq DESC").
		Pluck("seq", &seqs).Error
	if err != nil {
		return err
	}
	if len(seqs) <= keep {
		return nil
	}
	return s.db.WithContext(ctx).Where("seq IN ?", seqs[keep:]).Delete(&historyRecord{}).Error
}

func (s *SQLiteHistory) Clear(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&historyRecord{}).Error
}
