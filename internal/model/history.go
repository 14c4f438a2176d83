package model

import "time"

// HistoryType tells what a history item holds.
type HistoryType string

const (
	HistoryTypePassword  HistoryType = "password"
	HistoryTypeEncrypted HistoryType = "encrypted"
)

// Valid reports whether t is a known history type.
func (t HistoryType) Valid() bool {
	return t == HistoryTypePassword || t == HistoryTypeEncrypted
}

// HistoryItem is a single generated password or encryption output of a session.
type HistoryItem struct {
	ID        string      `json:"id"`
	SessionID string      `json:"-"`
	Content   string      `json:"content"`
	Type      HistoryType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
}
