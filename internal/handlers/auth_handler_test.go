package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]interface{}{
		"email": "new@example.com", "password": "correct-horse",
		"firstName": "Nina", "lastName": "New", "role": "jobseeker",
	}

	rec := doRequest(env.auth.RegisterHandler, "POST", "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	require.Equal(t, "new@example.com", user["email"])
	// The password hash never leaves the server
	require.NotContains(t, user, "passwordHash")

	rec = doRequest(env.auth.RegisterHandler, "POST", "/api/auth/register", "", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "EMAIL_IN_USE", decodeBody(t, rec)["error"])

	rec = doRequest(env.auth.RegisterHandler, "GET", "/api/auth/register", "", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(env.auth.LoginHandler, "POST", "/api/auth/login", "", map[string]string{
		"email": "recruiter@example.com", "password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, decodeBody(t, rec)["token"])

	rec = doRequest(env.auth.LoginHandler, "POST", "/api/auth/login", "", map[string]string{
		"email": "recruiter@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "INVALID_CREDENTIALS", decodeBody(t, rec)["error"])
}
