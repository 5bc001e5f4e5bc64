package utils

import (
	"strings"
	"unicode"

	"github.com/timetrackhq/timesheet-api/internal/constants"
)

// ValidatePassword checks the password policy: minimum length plus at least
// one uppercase letter, one lowercase letter, one digit, and one symbol from
// the fixed special-character set. It returns one message per violated rule.
func ValidatePassword(password string) []string {
	var problems []string

	if len(password) < constants.MinPasswordLength {
		problems = append(problems, "password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(constants.PasswordSpecialChars, r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		problems = append(problems, "password must contain an uppercase letter")
	}
	if !hasLower {
		problems = append(problems, "password must contain a lowercase letter")
	}
	if !hasDigit {
		problems = append(problems, "password must contain a digit")
	}
	if !hasSpecial {
		problems = append(problems, "password must contain a special character (@$!%*#?&)")
	}

	return problems
}
