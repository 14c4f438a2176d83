package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	texts := []string{
		"hello",
		"exactly 16 bytes",
		"unicode: żółw 🐢 and symbols !@#$%^&*()",
		strings.Repeat("long text ", 200),
	}

	for _, method := range Methods() {
		for _, format := range []Format{FormatBase64, FormatHex} {
			t.Run(string(method)+"/"+string(format), func(t *testing.T) {
				for _, text := range texts {
					enc, err := EncryptText(text, "s3cret passphrase", method, format)
					if err != nil {
						t.Fatalf("EncryptText() unexpected error: %v", err)
					}
					if strings.Contains(enc, text) {
						t.Fatalf("EncryptText() output contains the plaintext")
					}

					dec, err := DecryptText(enc, "s3cret passphrase", method, format)
					if err != nil {
						t.Fatalf("DecryptText() unexpected error: %v", err)
					}
					if dec != text {
						t.Errorf("DecryptText() = %q, want %q", dec, text)
					}
				}
			})
		}
	}
}

func TestEncryptTextDefaults(t *testing.T) {
	enc, err := EncryptText("hello", "pw", "", "")
	if err != nil {
		t.Fatalf("EncryptText() unexpected error: %v", err)
	}

	dec, err := DecryptText(enc, "pw", MethodAES256, FormatBase64)
	if err != nil {
		t.Fatalf("DecryptText() unexpected error: %v", err)
	}
	if dec != "hello" {
		t.Errorf("DecryptText() = %q, want %q", dec, "hello")
	}
}

func TestEncryptTextSaltedContainer(t *testing.T) {
	enc, err := EncryptText("hello", "pw", MethodAES256, FormatBase64)
	if err != nil {
		t.Fatalf("EncryptText() unexpected error: %v", err)
	}
	if !strings.HasPrefix(enc, "U2FsdGVkX1") {
		t.Errorf("EncryptText() = %q, want OpenSSL salted prefix", enc)
	}

	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		t.Fatalf("output is not base64: %v", err)
	}
	// header + salt + one AES block
	if len(raw) != 32 {
		t.Errorf("payload length = %d, want 32", len(raw))
	}

	hexEnc, err := EncryptText("hello", "pw", MethodTripleDES, FormatHex)
	if err != nil {
		t.Fatalf("EncryptText() unexpected error: %v", err)
	}
	if !strings.HasPrefix(hexEnc, hex.EncodeToString([]byte("Salted__"))) {
		t.Errorf("EncryptText() hex = %q, want salted prefix", hexEnc)
	}
}

func TestEncryptTextUsesFreshSalt(t *testing.T) {
	a, err := EncryptText("same", "pw", MethodAES256, FormatBase64)
	if err != nil {
		t.Fatalf("EncryptText() unexpected error: %v", err)
	}
	b, err := EncryptText("same", "pw", MethodAES256, FormatBase64)
	if err != nil {
		t.Fatalf("EncryptText() unexpected error: %v", err)
	}
	if a == b {
		t.Error("EncryptText() produced identical output for the same input")
	}
}

func TestEncryptTextErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pass    string
		method  Method
		format  Format
		wantErr error
	}{
		{name: "empty text", text: "", pass: "pw", wantErr: ErrTextRequired},
		{name: "empty password", text: "hi", pass: "", wantErr: ErrTextRequired},
		{name: "unknown method", text: "hi", pass: "pw", method: "ROT13", wantErr: ErrUnsupportedMethod},
		{name: "utf-8 output", text: "hi", pass: "pw", format: "UTF-8", wantErr: ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := EncryptText(tt.text, tt.pass, tt.method, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("EncryptText() error = %v, want %v", err, tt.wantErr)
			}
			if out != "" {
				t.Error("EncryptText() should return empty string on error")
			}
		})
	}
}

func TestDecryptTextFailures(t *testing.T) {
	enc, err := EncryptText("attack at dawn", "right", MethodAES256, FormatBase64)
	if err != nil {
		t.Fatalf("EncryptText() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		input   string
		pass    string
		method  Method
		format  Format
		wantErr error
	}{
		{name: "wrong password", input: enc, pass: "wrong", wantErr: ErrDecryptFailed},
		{name: "not base64", input: "%%%not-base64%%%", pass: "right", wantErr: ErrDecryptFailed},
		{name: "missing header", input: base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef")), pass: "right", wantErr: ErrDecryptFailed},
		{name: "truncated", input: enc[:len(enc)-8], pass: "right", wantErr: ErrDecryptFailed},
		{name: "wrong format", input: enc, pass: "right", format: FormatHex, wantErr: ErrDecryptFailed},
		{name: "empty input", input: "", pass: "right", wantErr: ErrTextRequired},
		{name: "unknown method", input: enc, pass: "right", method: "ROT13", wantErr: ErrUnsupportedMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecryptText(tt.input, tt.pass, tt.method, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecryptText() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// Produced by: printf 'attack at dawn' | openssl enc -<cipher> -md md5 -pass pass:correct-horse -a
func TestDecryptTextOpenSSLVectors(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		input  string
	}{
		{name: "aes-256-cbc", method: MethodAES256, input: "U2FsdGVkX19D/F3NKzahUkNN/T/jTtb4b/zZGifgRjE="},
		{name: "des-ede3-cbc", method: MethodTripleDES, input: "U2FsdGVkX1+qotc/EELNXym2LyhM4WkUNJe2Zci5iE4="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecryptText(tt.input, "correct-horse", tt.method, FormatBase64)
			if err != nil {
				t.Fatalf("DecryptText() unexpected error: %v", err)
			}
			if got != "attack at dawn" {
				t.Errorf("DecryptText() = %q, want %q", got, "attack at dawn")
			}

			raw, _ := base64.StdEncoding.DecodeString(tt.input)
			hexInput := hex.EncodeToString(raw)
			if got, err := DecryptText(hexInput, "correct-horse", tt.method, FormatHex); err != nil || got != "attack at dawn" {
				t.Errorf("DecryptText(hex) = %q, %v", got, err)
			}
		})
	}
}

func TestDeriveKeyIV(t *testing.T) {
	key, iv := deriveKeyIV([]byte("password"), []byte{0, 1, 2, 3, 4, 5, 6, 7}, 32, 16)
	if len(key) != 32 || len(iv) != 16 {
		t.Fatalf("deriveKeyIV() lengths = %d/%d, want 32/16", len(key), len(iv))
	}

	// The first MD5 block is MD5(passphrase || salt) and seeds the key.
	again, _ := deriveKeyIV([]byte("password"), []byte{0, 1, 2, 3, 4, 5, 6, 7}, 16, 0)
	if hex.EncodeToString(again) != hex.EncodeToString(key[:16]) {
		t.Errorf("deriveKeyIV() is not prefix-stable: %x vs %x", again, key[:16])
	}
}

func TestPKCS7(t *testing.T) {
	padded := pkcs7Pad([]byte("abc"), 8)
	if len(padded) != 8 || padded[7] != 5 {
		t.Fatalf("pkcs7Pad() = %v", padded)
	}
	out, ok := pkcs7Unpad(padded, 8)
	if !ok || string(out) != "abc" {
		t.Errorf("pkcs7Unpad() = %q, %v", out, ok)
	}

	full := pkcs7Pad([]byte("12345678"), 8)
	if len(full) != 16 {
		t.Errorf("pkcs7Pad() of a full block length = %d, want 16", len(full))
	}

	if _, ok := pkcs7Unpad([]byte{1, 2, 3, 4, 5, 6, 7, 9}, 8); ok {
		t.Error("pkcs7Unpad() accepted padding larger than the block")
	}
	if _, ok := pkcs7Unpad([]byte{1, 2, 3, 4, 5, 6, 3, 2}, 8); ok {
		t.Error("pkcs7Unpad() accepted inconsistent padding")
	}
}
