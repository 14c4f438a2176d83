package model

// CipherRequest represents an encrypt or decrypt request.
// Method defaults to AES-256 and Format to Base64 when empty.
type CipherRequest struct {
	Text     string `json:"text"`
	Password string `json:"password"`
	Method   string `json:"method"`
	Format   string `json:"format"`
}

// CipherResponse carries the encrypted or decrypted text.
type CipherResponse struct {
	Output string `json:"output"`
	Method string `json:"method"`
	Format string `json:"format"`
}
