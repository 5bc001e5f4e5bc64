package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		problems int
	}{
		{"valid", "Secret123!", 0},
		{"too short but otherwise valid", "Se1!", 1},
		{"missing uppercase", "secret123!", 1},
		{"missing lowercase", "SECRET123!", 1},
		{"missing digit", "Secretabc!", 1},
		{"missing special", "Secret1234", 1},
		{"special outside the allowed set", "Secret1234^", 1},
		{"everything wrong", "", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, ValidatePassword(tt.password), tt.problems)
		})
	}
}
