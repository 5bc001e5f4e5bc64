package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

func registerPayload(email string) map[string]string {
	return map[string]string{
		"first_name":            "John",
		"last_name":             "Doe",
		"date_of_birth":         "1990-01-01",
		"gender":                "male",
		"email":                 email,
		"password":              "Secret123!",
		"password_confirmation": "Secret123!",
	}
}

func TestRegister(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/register", registerPayload("john.doe@example.com"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	require.Equal(t, "User registered successfully.", resp.Message)

	var user struct {
		ID    uint64 `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(resp.Body["user"], &user))
	require.NotZero(t, user.ID)
	require.Equal(t, "john.doe@example.com", user.Email)

	// The password hash must never appear in a response.
	require.NotContains(t, w.Body.String(), "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/register", registerPayload("dup@example.com"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/api/register", registerPayload("dup@example.com"), "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	env.db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestRegister_PasswordPolicy(t *testing.T) {
	env := setupTestEnv(t)

	cases := map[string]string{
		"too short":  "S1!a",
		"no upper":   "secret123!",
		"no lower":   "SECRET123!",
		"no digit":   "Secretabc!",
		"no special": "Secret1234",
	}

	for name, password := range cases {
		t.Run(name, func(t *testing.T) {
			payload := registerPayload("weak@example.com")
			payload["password"] = password
			payload["password_confirmation"] = password

			w := env.request(t, http.MethodPost, "/api/register", payload, "")
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegister_ConfirmationMismatch(t *testing.T) {
	env := setupTestEnv(t)

	payload := registerPayload("mismatch@example.com")
	payload["password_confirmation"] = "Other123!"

	w := env.request(t, http.MethodPost, "/api/register", payload, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "login@example.com", "John", "male")

	w := env.request(t, http.MethodPost, "/api/login", map[string]string{
		"email":    "login@example.com",
		"password": "Secret123!",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	require.Equal(t, "Login successful.", resp.Message)

	var token string
	require.NoError(t, json.Unmarshal(resp.Body["token"], &token))
	// 32 random bytes, hex encoded.
	require.Len(t, token, 64)

	// Only the hash is persisted, never the raw token.
	var count int64
	env.db.Model(&models.AccessToken{}).Where("token_hash = ?", token).Count(&count)
	require.Zero(t, count)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "exists@example.com", "John", "male")

	wrongPassword := env.request(t, http.MethodPost, "/api/login", map[string]string{
		"email":    "exists@example.com",
		"password": "Wrong123!",
	}, "")
	noSuchUser := env.request(t, http.MethodPost, "/api/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "Secret123!",
	}, "")

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, noSuchUser.Code)

	// Identical responses: no account-existence leak.
	require.JSONEq(t, wrongPassword.Body.String(), noSuchUser.Body.String())
}

func TestLogout_RevokesAllTokens(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "logout@example.com", "John", "male")
	token := env.issueToken(t, user.ID)
	otherToken := env.issueToken(t, user.ID)

	w := env.request(t, http.MethodGet, "/api/users", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodPost, "/api/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Both tokens are gone, including the one not used for the call.
	w = env.request(t, http.MethodGet, "/api/users", nil, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	w = env.request(t, http.MethodGet, "/api/users", nil, otherToken)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/users", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/api/users", nil, "not-a-real-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
