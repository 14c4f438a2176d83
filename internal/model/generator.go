package model

import "github.com/securevault/securevault-go/internal/strength"

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> default) and an
// explicit zero value.
type GenerateRequest struct {
	Length         *int  `json:"length"`
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar *bool `json:"exclude_similar"`
	SaveToHistory  *bool `json:"save_to_history"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string          `json:"password"`
	Length   int             `json:"length"`
	Strength strength.Result `json:"strength"`
}

// StrengthRequest represents a password strength check request.
type StrengthRequest struct {
	Password string `json:"password"`
}
