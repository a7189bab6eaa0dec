package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "Alice", false},
		{"ValidWithSpace", "Alice Smith", false},
		{"MinLength", "abc", false},
		{"MaxLength", strings.Repeat("a", 20), false},
		{"TooShort", "ab", true},
		{"TooLong", strings.Repeat("a", 21), true},
		{"Empty", "", true},
		{"Digits", "alice99", true},
		{"Underscore", "alice_b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "secret123", false},
		{"MinLength", "abc", false},
		{"MaxLength", strings.Repeat("x", 20), false},
		{"AnyCharacters", "p@$$ w0rd!", false},
		{"TooShort", "ab", true},
		{"TooLong", strings.Repeat("x", 21), true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "alice@example.com", false},
		{"Subdomain", "alice@mail.example.co.uk", false},
		{"Empty", "", true},
		{"NoAt", "alice.example.com", true},
		{"NoDot", "alice@example", true},
		{"Spaces", "alice smith@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
