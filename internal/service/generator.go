package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/securevault/securevault-go/internal/crypto"
	"github.com/securevault/securevault-go/internal/model"
	"github.com/securevault/securevault-go/internal/strength"
)

const (
	MinLength     = 8
	MaxLength     = 64
	DefaultLength = 20
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 8")
	ErrLengthTooLong  = errors.New("password length must be at most 64")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	source  crypto.Source
	repair  crypto.RepairMode
	history *HistoryService
}

// NewGeneratorService creates a new GeneratorService. history may be nil, in
// which case nothing is recorded.
func NewGeneratorService(source crypto.Source, repair crypto.RepairMode, history *HistoryService) *GeneratorService {
	if source == nil {
		source = crypto.CryptoSource()
	}
	return &GeneratorService{source: source, repair: repair, history: history}
}

// Generate produces a password based on the given request. When sessionID is
// set and the request asks for it, the password is added to the session history.
func (s *GeneratorService) Generate(ctx context.Context, sessionID string, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:         intOrDefault(req.Length, DefaultLength),
		Uppercase:      boolOrDefault(req.Uppercase, true),
		Lowercase:      boolOrDefault(req.Lowercase, true),
		Numbers:        boolOrDefault(req.Numbers, true),
		Symbols:        boolOrDefault(req.Symbols, true),
		ExcludeSimilar: boolOrDefault(req.ExcludeSimilar, false),
		Repair:         s.repair,
	}

	if opts.Length < MinLength {
		return model.GenerateResponse{}, ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password := crypto.Generate(opts, s.source)

	if sessionID != "" && s.history != nil && boolOrDefault(req.SaveToHistory, true) {
		if _, err := s.history.Add(ctx, sessionID, password, model.HistoryTypePassword); err != nil {
			slog.Warn("saving password to history failed", "error", err)
		}
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: strength.Evaluate(password),
	}, nil
}

// Strength rates an arbitrary password.
func (s *GeneratorService) Strength(req model.StrengthRequest) strength.Result {
	return strength.Evaluate(req.Password)
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
