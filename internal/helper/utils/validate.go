package utils

import (
	"regexp"
	"strings"

	"github.com/tyforge/launchpad-backend/internal/apperr"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`) // E.164
	nameBadChars = regexp.MustCompile(`[<>"'%;()&+]`)
	phoneSepChrs = regexp.MustCompile(`[\s\-()]`)
)

const (
	passwordMinLength = 6
	passwordMaxLength = 128
	nameMinLength     = 2
	nameMaxLength     = 100
)

func ValidateEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperr.ValidationField("email", "email is required")
	}
	if len(email) > 255 {
		return "", apperr.ValidationField("email", "email is too long")
	}
	if !emailPattern.MatchString(email) {
		return "", apperr.ValidationField("email", "invalid email format")
	}
	return email, nil
}

func ValidatePassword(password string) (string, error) {
	if password == "" {
		return "", apperr.ValidationField("password", "password is required")
	}
	if len(password) < passwordMinLength {
		return "", apperr.ValidationField("password", "password must be at least 6 characters")
	}
	if len(password) > passwordMaxLength {
		return "", apperr.ValidationField("password", "password is too long")
	}
	return password, nil
}

func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.ValidationField("name", "name is required")
	}
	if len(name) < nameMinLength {
		return "", apperr.ValidationField("name", "name must be at least 2 characters")
	}
	if len(name) > nameMaxLength {
		return "", apperr.ValidationField("name", "name must not exceed 100 characters")
	}
	if nameBadChars.MatchString(name) {
		return "", apperr.ValidationField("name", "name contains invalid characters")
	}
	return name, nil
}

// ValidatePhone accepts E.164 (common separators tolerated); empty is fine,
// the field is optional.
func ValidatePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", nil
	}
	cleaned := phoneSepChrs.ReplaceAllString(phone, "")
	if !phonePattern.MatchString(cleaned) {
		return "", apperr.ValidationField("phone", "invalid phone number format, use international format")
	}
	return phone, nil
}
