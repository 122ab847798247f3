package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidNationalID(t *testing.T) {
	assert.True(t, IsValidNationalID("12345678"))
	assert.True(t, IsValidNationalID("00000001"))

	assert.False(t, IsValidNationalID("1234567"), "too short")
	assert.False(t, IsValidNationalID("123456789"), "too long")
	assert.False(t, IsValidNationalID("1234567a"))
	assert.False(t, IsValidNationalID(""))
}

func TestIsValidPassport(t *testing.T) {
	assert.True(t, IsValidPassport("A123456"))
	assert.True(t, IsValidPassport("AB12CD"))
	assert.True(t, IsValidPassport("123456789"))

	assert.False(t, IsValidPassport("A1234"), "too short")
	assert.False(t, IsValidPassport("A123456789"), "too long")
	assert.False(t, IsValidPassport("A12-456"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("0712345678"))
	assert.True(t, IsValidPhone("0112345678"))
	assert.True(t, IsValidPhone("+254712345678"))

	assert.False(t, IsValidPhone("0812345678"), "unsupported local prefix")
	assert.False(t, IsValidPhone("071234567"), "too short")
	assert.False(t, IsValidPhone("07123456789"), "too long")
	assert.False(t, IsValidPhone("712345678"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane@example.com"))
	assert.True(t, IsValidEmail("jane.doe+tag@sub.example.co.ke"))

	assert.False(t, IsValidEmail("jane@example"))
	assert.False(t, IsValidEmail("jane.example.com"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestAgeAt(t *testing.T) {
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Birthday today counts as a full year
	assert.Equal(t, 16, AgeAt(time.Date(2010, 9, 1, 0, 0, 0, 0, time.UTC), at))
	// Birthday tomorrow does not
	assert.Equal(t, 15, AgeAt(time.Date(2010, 9, 2, 0, 0, 0, 0, time.UTC), at))
	assert.Equal(t, 16, AgeAt(time.Date(2010, 8, 31, 0, 0, 0, 0, time.UTC), at))
	assert.Equal(t, 36, AgeAt(time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC), at))
}
