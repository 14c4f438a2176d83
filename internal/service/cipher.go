package service

import (
	"context"
	"log/slog"

	"github.com/securevault/securevault-go/internal/crypto"
	"github.com/securevault/securevault-go/internal/model"
)

// CipherService handles text encryption and decryption.
type CipherService struct {
	history *HistoryService
}

// NewCipherService creates a new CipherService. history may be nil.
func NewCipherService(history *HistoryService) *CipherService {
	return &CipherService{history: history}
}

// Encrypt encrypts the request text. The output is added to the session
// history when sessionID is set.
func (s *CipherService) Encrypt(ctx context.Context, sessionID string, req model.CipherRequest) (model.CipherResponse, error) {
	method, format := normalize(req)

	out, err := crypto.EncryptText(req.Text, req.Password, method, format)
	if err != nil {
		return model.CipherResponse{}, err
	}

	if sessionID != "" && s.history != nil {
		if _, err := s.history.Add(ctx, sessionID, out, model.HistoryTypeEncrypted); err != nil {
			slog.Warn("saving encryption output to history failed", "error", err)
		}
	}

	return model.CipherResponse{Output: out, Method: string(method), Format: string(format)}, nil
}

// Decrypt decrypts the request text. Decrypted text is never recorded.
func (s *CipherService) Decrypt(_ context.Context, req model.CipherRequest) (model.CipherResponse, error) {
	method, format := normalize(req)

	out, err := crypto.DecryptText(req.Text, req.Password, method, format)
	if err != nil {
		return model.CipherResponse{}, err
	}

	return model.CipherResponse{Output: out, Method: string(method), Format: string(format)}, nil
}

func normalize(req model.CipherRequest) (crypto.Method, crypto.Format) {
	method := crypto.Method(req.Method)
	if method == "" {
		method = crypto.MethodAES256
	}
	format := crypto.Format(req.Format)
	if format == "" {
		format = crypto.FormatBase64
	}
	return method, format
}
