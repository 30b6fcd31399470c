package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	got, err := ValidateEmail("  Student@Example.COM ")
	assert.NoError(t, err)
	assert.Equal(t, "student@example.com", got)

	for _, bad := range []string{"", "no-at-sign", "a@b", "@example.com", "a b@example.com"} {
		_, err := ValidateEmail(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidatePassword(t *testing.T) {
	_, err := ValidatePassword("secret")
	assert.NoError(t, err)

	for _, bad := range []string{"", "12345", strings.Repeat("x", 129)} {
		_, err := ValidatePassword(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateName(t *testing.T) {
	got, err := ValidateName("  Priya Sharma ")
	assert.NoError(t, err)
	assert.Equal(t, "Priya Sharma", got)

	for _, bad := range []string{"", "X", "<b>bold</b>", "Rob'); DROP", strings.Repeat("n", 101)} {
		_, err := ValidateName(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidatePhone(t *testing.T) {
	// optional: empty passes through
	got, err := ValidatePhone("")
	assert.NoError(t, err)
	assert.Empty(t, got)

	for _, ok := range []string{"+919812345678", "+1 (555) 010-9999", "919812345678"} {
		_, err := ValidatePhone(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"abc", "+0123", "++91123"} {
		_, err := ValidatePhone(bad)
		assert.Error(t, err, bad)
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, ClampLimit(0, 50, 200))
	assert.Equal(t, 50, ClampLimit(-1, 50, 200))
	assert.Equal(t, 30, ClampLimit(30, 50, 200))
	assert.Equal(t, 200, ClampLimit(1000, 50, 200))
}
