package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "user_id"

// Signer produces and verifies tamper-evident cookie values of the form
// "value|hex-hmac".
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer with the given secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the value followed by its keyed digest.
func (s *Signer) Sign(value string) string {
	return value + "|" + s.digest(value)
}

// Verify extracts the value from a signed string and reports whether its
// signature matches. Malformed or empty input yields ("", false).
func (s *Signer) Verify(signed string) (string, bool) {
	value, sig, ok := strings.Cut(signed, "|")
	if !ok {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.digest(value))) {
		return "", false
	}
	return value, true
}

func (s *Signer) digest(value string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
