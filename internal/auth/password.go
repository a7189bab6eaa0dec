// Package auth implements the credential codec and the session cookie signer.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength  = 8
	saltLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	pbkdf2Iterations = 10000
	pbkdf2KeyLength  = 32
)

// MakeSalt returns a random fixed-length alphanumeric salt.
func MakeSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	for i, b := range buf {
		buf[i] = saltLetters[int(b)%len(saltLetters)]
	}
	return string(buf), nil
}

// HashPassword salts and hashes a password, returning the stored credential
// in "salt,digest" form.
func HashPassword(username, password string) (string, error) {
	salt, err := MakeSalt()
	if err != nil {
		return "", err
	}
	return HashPasswordWithSalt(username, password, salt), nil
}

// HashPasswordWithSalt derives the digest for the given salt. Deterministic,
// so a stored credential can be recomputed during verification.
func HashPasswordWithSalt(username, password, salt string) string {
	key := pbkdf2.Key([]byte(username+password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return salt + "," + hex.EncodeToString(key)
}

// VerifyPassword reports whether the password matches the stored "salt,digest"
// credential. Comparison is constant-time. A malformed stored value never
// verifies.
func VerifyPassword(username, password, stored string) bool {
	salt, _, ok := strings.Cut(stored, ",")
	if !ok || salt == "" {
		return false
	}
	computed := HashPasswordWithSalt(username, password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}
