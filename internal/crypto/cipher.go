package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/blowfish"
)

// Method names a supported text cipher.
type Method string

const (
	MethodAES256    Method = "AES-256"
	MethodTripleDES Method = "Triple DES"
	// MethodBlowfish is real Blowfish-CBC. The SecureVault web app encrypted
	// its "Blowfish" option with AES-256, so that output does not decrypt with
	// this method; decrypt it with MethodAES256 instead.
	MethodBlowfish Method = "Blowfish"
)

// Format names the text encoding of an encrypted payload.
type Format string

const (
	FormatBase64 Format = "Base64"
	FormatHex    Format = "Hex"
)

var (
	ErrTextRequired      = errors.New("text and password are required")
	ErrUnsupportedMethod = errors.New("unsupported encryption method")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrDecryptFailed     = errors.New("decryption failed: incorrect password or corrupted data")
)

// OpenSSL "enc" container header, also produced by CryptoJS passphrase mode.
const saltedHeader = "Salted__"

const saltLength = 8

type cipherSpec struct {
	keyLen   int
	ivLen    int
	newBlock func(key []byte) (cipher.Block, error)
}

func specFor(m Method) (cipherSpec, error) {
	switch m {
	case "", MethodAES256:
		return cipherSpec{keyLen: 32, ivLen: aes.BlockSize, newBlock: aes.NewCipher}, nil
	case MethodTripleDES:
		return cipherSpec{keyLen: 24, ivLen: des.BlockSize, newBlock: des.NewTripleDESCipher}, nil
	case MethodBlowfish:
		return cipherSpec{keyLen: 16, ivLen: blowfish.BlockSize, newBlock: func(key []byte) (cipher.Block, error) {
			return blowfish.NewCipher(key)
		}}, nil
	}
	return cipherSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedMethod, m)
}

// Methods lists the supported cipher methods.
func Methods() []Method {
	return []Method{MethodAES256, MethodTripleDES, MethodBlowfish}
}

// EncryptText encrypts text with a key and IV derived from passphrase and a
// random salt, and encodes the salted container in the requested format.
func EncryptText(text, passphrase string, method Method, format Format) (string, error) {
	if text == "" || passphrase == "" {
		return "", ErrTextRequired
	}

	spec, err := specFor(method)
	if err != nil {
		return "", err
	}
	if err := checkFormat(format); err != nil {
		return "", err
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key, iv := deriveKeyIV([]byte(passphrase), salt, spec.keyLen, spec.ivLen)
	block, err := spec.newBlock(key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	plaintext := pkcs7Pad([]byte(text), block.BlockSize())
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)

	payload := make([]byte, 0, len(saltedHeader)+saltLength+len(ciphertext))
	payload = append(payload, saltedHeader...)
	payload = append(payload, salt...)
	payload = append(payload, ciphertext...)

	return encode(payload, format), nil
}

// DecryptText reverses EncryptText.
func DecryptText(encoded, passphrase string, method Method, format Format) (string, error) {
	if encoded == "" || passphrase == "" {
		return "", ErrTextRequired
	}

	spec, err := specFor(method)
	if err != nil {
		return "", err
	}
	if err := checkFormat(format); err != nil {
		return "", err
	}

	payload, err := decode(strings.TrimSpace(encoded), format)
	if err != nil {
		return "", ErrDecryptFailed
	}

	headerLen := len(saltedHeader) + saltLength
	if len(payload) <= headerLen || !bytes.HasPrefix(payload, []byte(saltedHeader)) {
		return "", ErrDecryptFailed
	}
	salt := payload[len(saltedHeader):headerLen]
	ciphertext := payload[headerLen:]

	key, iv := deriveKeyIV([]byte(passphrase), salt, spec.keyLen, spec.ivLen)
	block, err := spec.newBlock(key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}
	if len(ciphertext)%block.BlockSize() != 0 {
		return "", ErrDecryptFailed
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, ok := pkcs7Unpad(plaintext, block.BlockSize())
	if !ok || len(plaintext) == 0 || !utf8.Valid(plaintext) {
		return "", ErrDecryptFailed
	}

	return string(plaintext), nil
}

// deriveKeyIV implements OpenSSL's EVP_BytesToKey with MD5 and one iteration.
func deriveKeyIV(passphrase, salt []byte, keyLen, ivLen int) ([]byte, []byte) {
	var derived, block []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New()
		h.Write(block)
		h.Write(passphrase)
		h.Write(salt)
		block = h.Sum(nil)
		derived = append(derived, block...)
	}
	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}

func checkFormat(f Format) error {
	switch f {
	case "", FormatBase64, FormatHex:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func encode(payload []byte, f Format) string {
	if f == FormatHex {
		return hex.EncodeToString(payload)
	}
	return base64.StdEncoding.EncodeToString(payload)
}

func decode(s string, f Format) ([]byte, error) {
	if f == FormatHex {
		return hex.DecodeString(s)
	}
	return base64.StdEncoding.DecodeString(s)
}
