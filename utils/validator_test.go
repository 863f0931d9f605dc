package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("recruiter@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.io"))

	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("longenough")
	assert.True(t, ok)

	ok, msg := ValidatePassword("short")
	assert.False(t, ok)
	assert.NotEmpty(t, msg)
}

func TestValidateHourlyRate(t *testing.T) {
	assert.True(t, ValidateHourlyRate(60))
	assert.True(t, ValidateHourlyRate(0.5))

	assert.False(t, ValidateHourlyRate(0))
	assert.False(t, ValidateHourlyRate(-10))
	assert.False(t, ValidateHourlyRate(10000))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "java developer", SanitizeInput("  java developer  "))
	assert.Equal(t, "abc", SanitizeInput("a\x00b\x00c"))
}
