package lnd

import (
	"encoding/base64"
	"encoding/hex"
)

// Base64String carries a proto bytes field exactly as the gateway encodes it.
type Base64String string

// NewBase64String encodes b with the standard padded alphabet.
func NewBase64String(b []byte) Base64String {
	return Base64String(base64.StdEncoding.EncodeToString(b))
}

// Bytes decodes s, accepting both the standard and the URL-safe alphabet.
func (s Base64String) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(string(s))
	if err == nil {
		return b, nil
	}
	if b, urlErr := base64.URLEncoding.DecodeString(string(s)); urlErr == nil {
		return b, nil
	}
	return nil, err
}

// Hex returns the hex form used in URL paths such as invoice lookup.
func (s Base64String) Hex() (string, error) {
	b, err := s.Bytes()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
