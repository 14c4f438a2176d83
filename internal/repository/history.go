package repository

import (
	"context"
	"database/sql"

	"github.com/securevault/securevault-go/internal/model"
)

// HistoryRepository stores history items in MySQL.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Add inserts a history item.
func (r *HistoryRepository) Add(ctx context.Context, item model.HistoryItem) error {
	query := `INSERT INTO history_items (id, session_id, content, type, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, item.ID, item.SessionID, item.Content, string(item.Type), item.Timestamp)
	return err
}

// List returns up to limit items of a session, newest first.
func (r *HistoryRepository) List(ctx context.Context, sessionID string, limit int) ([]model.HistoryItem, error) {
	query := `SELECT id, session_id, content, type, created_at
		FROM history_items WHERE session_id = ? ORDER BY seq DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.HistoryItem{}
	for rows.Next() {
		var item model.HistoryItem
		var typ string
		if err := rows.Scan(&item.ID, &item.SessionID, &item.Content, &typ, &item.Timestamp); err != nil {
			return nil, err
		}
		item.Type = model.HistoryType(typ)
		items = append(items, item)
	}

	return items, rows.Err()
}

// trimQuery keeps the newest items of a session. MySQL rejects LIMIT inside
// IN subqueries, hence the derived table.
const trimQuery = `
	DELETE FROM history_items
	WHERE session_id = ? AND seq NOT IN (
		SELECT seq FROM (
			SELECT seq FROM history_items WHERE session_id = ? ORDER BY seq DESC LIMIT ?
		) AS keep_rows
	)`

// Trim deletes all but the newest keep items of a session.
func (r *HistoryRepository) Trim(ctx context.Context, sessionID string, keep int) error {
	_, err := r.db.ExecContext(ctx, trimQuery, sessionID, sessionID, keep)
	return err
}

// Clear deletes every item of a session.
func (r *HistoryRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM history_items WHERE session_id = ?`, sessionID)
	return err
}
