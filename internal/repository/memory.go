package repository

import (
	"context"
	"sync"

	"github.com/securevault/securevault-go/internal/model"
)

// MemoryHistory keeps history items in process memory, newest first.
// Items are gone when the process exits.
type MemoryHistory struct {
	mu       sync.Mutex
	sessions map[string][]model.HistoryItem
}

// NewMemoryHistory creates an empty MemoryHistory.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{sessions: make(map[string][]model.HistoryItem)}
}

func (m *MemoryHistory) Add(_ context.Context, item model.HistoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.sessions[item.SessionID]
	m.sessions[item.SessionID] = append([]model.HistoryItem{item}, items...)
	return nil
}

func (m *MemoryHistory) List(_ context.Context, sessionID string, limit int) ([]model.HistoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.sessions[sessionID]
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}

	out := make([]model.HistoryItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *MemoryHistory) Trim(_ context.Context, sessionID string, keep int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	if items := m.sessions[sessionID]; len(items) > keep {
		m.sessions[sessionID] = items[:keep:keep]
	}
	return nil
}

func (m *MemoryHistory) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}
