package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseID_Valid(t *testing.T) {
	raw := uuid.New().String()
	id, err := parseID(raw, "user_id")
	assert.NoError(t, err)
	assert.Equal(t, raw, id.String())
}

func TestParseID_Empty(t *testing.T) {
	_, err := parseID("", "user_id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user_id is required")
}

func TestParseID_Malformed(t *testing.T) {
	_, err := parseID("not-a-uuid", "task_id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "task_id is not a valid id")
}

func TestValidateEmail_Valid(t *testing.T) {
	assert.NoError(t, validateEmail("sarah.chen@example.com"))
}

func TestValidateEmail_Empty(t *testing.T) {
	assert.Error(t, validateEmail(""))
}

func TestValidateEmail_Malformed(t *testing.T) {
	for _, email := range []string{"no-at-sign", "missing@tld", "@example.com", "user@.com"} {
		assert.Error(t, validateEmail(email), email)
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	assert.NoError(t, validatePassword("Sup3rSecret", "Sup3rSecret"))
}

func TestValidatePassword_TooShort(t *testing.T) {
	err := validatePassword("Ab1", "Ab1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestValidatePassword_MissingClasses(t *testing.T) {
	assert.Error(t, validatePassword("alllowercase1", "alllowercase1"))
	assert.Error(t, validatePassword("ALLUPPERCASE1", "ALLUPPERCASE1"))
	assert.Error(t, validatePassword("NoDigitsHere", "NoDigitsHere"))
}

func TestValidatePassword_Mismatch(t *testing.T) {
	err := validatePassword("Sup3rSecret", "Sup3rSecret2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
}

func TestParseDueDate_Empty(t *testing.T) {
	d, err := parseDueDate("")
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestParseDueDate_Valid(t *testing.T) {
	d, err := parseDueDate("2026-01-15T10:00:00Z")
	assert.NoError(t, err)
	assert.NotNil(t, d)
	assert.Equal(t, 2026, d.Year())
}

func TestParseDueDate_Malformed(t *testing.T) {
	_, err := parseDueDate("15/01/2026")
	assert.Error(t, err)
}
