package e2e

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Register_Success(t *testing.T) {
	reqBody := map[string]interface{}{
		"first_name":       "Sarah",
		"last_name":        "Chen",
		"email":            "e2e-register@example.com",
		"password":         "Sup3rSecret",
		"confirm_password": "Sup3rSecret",
	}

	resp := makeRequest(t, http.MethodPost, baseURL+"/users/register", reqBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	result := parseBody(t, resp)
	require.Contains(t, result, "user")

	user, ok := result["user"].(map[string]interface{})
	require.True(t, ok)
	validateUser(t, user)

	assert.Equal(t, "Sarah", user["first_name"])
	assert.Equal(t, "e2e-register@example.com", user["email"])
	assert.Equal(t, "member", user["role"])
}

func TestUser_Register_DuplicateEmail(t *testing.T) {
	registerUser(t, "e2e-dup@example.com")

	reqBody := map[string]interface{}{
		"first_name":       "Another",
		"last_name":        "User",
		"email":            "e2e-dup@example.com",
		"password":         "Sup3rSecret",
		"confirm_password": "Sup3rSecret",
	}

	resp := makeRequest(t, http.MethodPost, baseURL+"/users/register", reqBody)
	defer resp.Body.Close()

	validateErrorResponse(t, resp, "EMAIL_EXISTS", http.StatusConflict)
}

func TestUser_Register_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			"missing first name",
			map[string]interface{}{
				"last_name": "Chen", "email": "e2e-v1@example.com",
				"password": "Sup3rSecret", "confirm_password": "Sup3rSecret",
			},
		},
		{
			"bad email",
			map[string]interface{}{
				"first_name": "Sarah", "last_name": "Chen", "email": "not-an-email",
				"password": "Sup3rSecret", "confirm_password": "Sup3rSecret",
			},
		},
		{
			"weak password",
			map[string]interface{}{
				"first_name": "Sarah", "last_name": "Chen", "email": "e2e-v2@example.com",
				"password": "weak", "confirm_password": "weak",
			},
		},
		{
			"password mismatch",
			map[string]interface{}{
				"first_name": "Sarah", "last_name": "Chen", "email": "e2e-v3@example.com",
				"password": "Sup3rSecret", "confirm_password": "Sup3rSecret2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := makeRequest(t, http.MethodPost, baseURL+"/users/register", tt.body)
			defer resp.Body.Close()

			validateErrorResponse(t, resp, "VALIDATION_FAILED", http.StatusBadRequest)
		})
	}
}

func TestUser_Get_Success(t *testing.T) {
	userId := registerUser(t, "e2e-get@example.com")

	resp := makeRequest(t, http.MethodGet, baseURL+"/users/get?user_id="+userId, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	result := parseBody(t, resp)
	user, ok := result["user"].(map[string]interface{})
	require.True(t, ok)
	validateUser(t, user)
	assert.Equal(t, userId, user["id"])
}

func TestUser_Get_NotFound(t *testing.T) {
	resp := makeRequest(t, http.MethodGet, baseURL+"/users/get?user_id="+uuid.New().String(), nil)
	defer resp.Body.Close()

	validateErrorResponse(t, resp, "NOT_FOUND", http.StatusNotFound)
}

func TestUser_SetRole_Success(t *testing.T) {
	userId := registerUser(t, "e2e-setrole@example.com")

	reqBody := map[string]interface{}{
		"user_id": userId,
		"role":    "admin",
	}

	resp := makeRequest(t, http.MethodPost, baseURL+"/users/setRole", reqBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	result := parseBody(t, resp)
	user, ok := result["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "admin", user["role"])
}

func TestUser_SetRole_InvalidRole(t *testing.T) {
	userId := registerUser(t, "e2e-badrole@example.com")

	reqBody := map[string]interface{}{
		"user_id": userId,
		"role":    "superuser",
	}

	resp := makeRequest(t, http.MethodPost, baseURL+"/users/setRole", reqBody)
	defer resp.Body.Close()

	validateErrorResponse(t, resp, "VALIDATION_FAILED", http.StatusBadRequest)
}

func TestUser_Touch_UpdatesLastActive(t *testing.T) {
	userId := registerUser(t, "e2e-touch@example.com")

	reqBody := map[string]interface{}{
		"user_id": userId,
	}

	resp := makeRequest(t, http.MethodPost, baseURL+"/users/touch", reqBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	result := parseBody(t, resp)
	user, ok := result["user"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, user, "last_active_at")
}
