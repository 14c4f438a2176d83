package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/securevault/securevault-go/internal/model"
)

// DefaultHistoryLimit is the number of items kept per session.
const DefaultHistoryLimit = 50

var (
	ErrSessionRequired = errors.New("session is required")
	ErrContentRequired = errors.New("content is required")
	ErrInvalidType     = errors.New("invalid history type")
)

// HistoryStore persists history items per session.
type HistoryStore interface {
	Add(ctx context.Context, item model.HistoryItem) error
	List(ctx context.Context, sessionID string, limit int) ([]model.HistoryItem, error)
	Trim(ctx context.Context, sessionID string, keep int) error
	Clear(ctx context.Context, sessionID string) error
}

// HistoryService handles the session history log.
type HistoryService struct {
	store HistoryStore
	limit int
	now   func() time.Time
}

// NewHistoryService creates a new HistoryService keeping at most limit items
// per session. A non-positive limit selects DefaultHistoryLimit.
func NewHistoryService(store HistoryStore, limit int) *HistoryService {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryService{store: store, limit: limit, now: time.Now}
}

// Add records content at the head of the session's history and drops items
// beyond the limit.
func (s *HistoryService) Add(ctx context.Context, sessionID, content string, typ model.HistoryType) (model.HistoryItem, error) {
	if sessionID == "" {
		return model.HistoryItem{}, ErrSessionRequired
	}
	if content == "" {
		return model.HistoryItem{}, ErrContentRequired
	}
	if !typ.Valid() {
		return model.HistoryItem{}, ErrInvalidType
	}

	item := model.HistoryItem{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Content:   content,
		Type:      typ,
		Timestamp: s.now().UTC(),
	}

	if err := s.store.Add(ctx, item); err != nil {
		return model.HistoryItem{}, err
	}
	if err := s.store.Trim(ctx, sessionID, s.limit); err != nil {
		return model.HistoryItem{}, err
	}

	return item, nil
}

// List returns the session's history, newest first.
func (s *HistoryService) List(ctx context.Context, sessionID string) ([]model.HistoryItem, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	return s.store.List(ctx, sessionID, s.limit)
}

// Clear removes the session's history.
func (s *HistoryService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	return s.store.Clear(ctx, sessionID)
}
