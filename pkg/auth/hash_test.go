package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "Valid Password",
			password:    "securepassword",
			expectError: false,
		},
		{
			name:        "Empty Password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hashService.HashPassword(tt.password)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hash)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hash)
				assert.NotEqual(t, tt.password, hash)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name     string
		setup    func() (string, string)
		expected bool
	}{
		{
			name: "Matching Password",
			setup: func() (string, string) {
				hash, _ := hashService.HashPassword("securepassword")
				return hash, "securepassword"
			},
			expected: true,
		},
		{
			name: "Non-Matching Password",
			setup: func() (string, string) {
				hash, _ := hashService.HashPassword("securepassword")
				return hash, "wrongpassword"
			},
			expected: false,
		},
		{
			name: "Invalid Hash",
			setup: func() (string, string) {
				return "not-a-bcrypt-hash", "securepassword"
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, password := tt.setup()
			assert.Equal(t, tt.expected, hashService.ComparePassword(hash, password))
		})
	}
}
