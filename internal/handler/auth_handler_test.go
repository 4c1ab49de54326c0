package handler

import (
	"net/http"
	"testing"

	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/register", "", fiberBody{
		"email": "new@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/auth/login", "", fiberBody{
		"email": "new@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
}

func TestRegisterMalformedEmail(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/register", "", fiberBody{
		"email": "not-an-email", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid email", decodeResponse(t, resp).Error)

	// No user row may exist after a rejected registration.
	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterShortPassword(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/register", "", fiberBody{
		"email": "new@example.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Password must be at least 8 characters", decodeResponse(t, resp).Error)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "taken@example.com")

	resp := env.request(t, http.MethodPost, "/api/auth/register", "", fiberBody{
		"email": "taken@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "user@example.com")

	resp := env.request(t, http.MethodPost, "/api/auth/login", "", fiberBody{
		"email": "user@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/auth/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/auth/user", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfileRequiresAllFields(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "user@example.com")

	resp := env.request(t, http.MethodPut, "/api/auth/user", token, fiberBody{
		"email": "user@example.com", "city": "Munich",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "All fields are required", decodeResponse(t, resp).Error)
}

func TestUpdateProfileStoresLocation(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser(t, "user@example.com")

	resp := env.request(t, http.MethodPut, "/api/auth/user", token, fiberBody{
		"email":     "user@example.com",
		"city":      "Munich",
		"region":    "Bavaria",
		"country":   "DE",
		"latitude":  48.1351,
		"longitude": 11.582,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.Country)
	assert.Equal(t, "DE", *stored.Country)
	require.NotNil(t, stored.Latitude)
	assert.InDelta(t, 48.1351, *stored.Latitude, 0.0001)
}

type fiberBody map[string]interface{}
