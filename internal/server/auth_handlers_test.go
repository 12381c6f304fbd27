package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	env := setupTestEnv(t)

	signup := map[string]string{
		"username": "newuser",
		"email":    "newuser@example.com",
		"password": "StrongTestPass1!",
	}
	resp := env.request(http.MethodPost, "/api/auth/signup", "", signup)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Token string `json:"token"`
		User  struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeJSON(t, resp, &created)
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "newuser", created.User.Username)

	// Duplicate email conflicts.
	resp = env.request(http.MethodPost, "/api/auth/signup", "", signup)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	login := map[string]string{
		"email":    "newuser@example.com",
		"password": "StrongTestPass1!",
	}
	resp = env.request(http.MethodPost, "/api/auth/login", "", login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loggedIn struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &loggedIn)
	assert.NotEmpty(t, loggedIn.Token)

	login["password"] = "WrongPass123!"
	resp = env.request(http.MethodPost, "/api/auth/login", "", login)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignup_Validation(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing fields", map[string]string{"username": "x"}},
		{"bad email", map[string]string{"username": "someone", "email": "not-an-email", "password": "StrongTestPass1!"}},
		{"weak password", map[string]string{"username": "someone", "email": "a@b.co", "password": "short"}},
		{"bad username", map[string]string{"username": "-lead", "email": "a@b.co", "password": "StrongTestPass1!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.request(http.MethodPost, "/api/auth/signup", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestProtectedRoute_RejectsBadTokens(t *testing.T) {
	env := setupTestEnv(t)

	resp := env.request(http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(http.MethodGet, "/api/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
