package services

import (
	"fmt"
	"strings"
	"unicode"
)

// MinPasswordLength is the shortest password an account may have
const MinPasswordLength = 8

// ValidatePassword checks an account password:
// at least MinPasswordLength characters, one letter, one digit, and not containing the username.
func ValidatePassword(password, username string) error {
	if len([]rune(password)) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}

	var hasLetter, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}
	if username != "" && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		return fmt.Errorf("password must not contain the username")
	}
	return nil
}
