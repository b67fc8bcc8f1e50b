package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"cinemotion-be/internal/bootstrap"
	"cinemotion-be/internal/config"
	"cinemotion-be/internal/server"
	"cinemotion-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

// Exercises register -> login -> profile against a real database.
// Needs DB_CONNECTION_STRING; skipped otherwise.
func TestAuthFlow(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set")
	}
	os.Setenv("JWT_SECRET", "integration-test-secret")

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	email := fmt.Sprintf("itest-%d@example.com", time.Now().UnixNano())
	defer db.Exec("DELETE FROM users WHERE email = ?", email)

	// 1. Register
	registerBody, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": "secret123",
		"name":     "Integration Test",
	})
	req := httptest.NewRequest("POST", "/api/make-server/auth/register", bytes.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var registerEnvelope struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				Id    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
			Token string `json:"token"`
		} `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&registerEnvelope)
	resp.Body.Close()
	assert.True(t, registerEnvelope.Success)
	assert.Equal(t, email, registerEnvelope.Data.User.Email)
	assert.NotEmpty(t, registerEnvelope.Data.Token)

	// 2. Duplicate register rejected
	req = httptest.NewRequest("POST", "/api/make-server/auth/register", bytes.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 10000)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	resp.Body.Close()

	// 3. Login
	loginBody, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": "secret123",
	})
	req = httptest.NewRequest("POST", "/api/make-server/auth/login", bytes.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 10000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var loginEnvelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&loginEnvelope)
	resp.Body.Close()
	assert.NotEmpty(t, loginEnvelope.Data.Token)

	// 4. Wrong password
	badBody, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": "wrong-password",
	})
	req = httptest.NewRequest("POST", "/api/make-server/auth/login", bytes.NewReader(badBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 10000)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	resp.Body.Close()

	// 5. Profile with the login token
	req = httptest.NewRequest("GET", "/api/make-server/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loginEnvelope.Data.Token)
	resp, err = app.Test(req, 10000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var profileEnvelope struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&profileEnvelope)
	resp.Body.Close()
	assert.Equal(t, email, profileEnvelope.Data.Email)

	// 6. Profile without a token
	req = httptest.NewRequest("GET", "/api/make-server/user/profile", nil)
	resp, err = app.Test(req, 10000)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	resp.Body.Close()
}
