package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/doqhuy/moviechill-backend/internal/auth"
	"github.com/doqhuy/moviechill-backend/internal/config"
	"github.com/doqhuy/moviechill-backend/internal/database"
	"github.com/doqhuy/moviechill-backend/internal/models"
	"github.com/doqhuy/moviechill-backend/internal/repository"
	"github.com/doqhuy/moviechill-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

// setupTestServer builds a Server on a fresh in-memory database with the
// full route table mounted. Prometheus middleware stays off so repeated
// setups do not fight over collector registration.
func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := database.ConnectSQLite("file::memory:")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:      "handler-test-secret-key-32-chars!",
		TokenExpiresIn: time.Hour,
		Env:            "test",
	}

	s := &Server{
		config:     cfg,
		db:         db,
		userRepo:   repository.NewUserRepository(db),
		followRepo: repository.NewFollowRepository(db),
		surveyRepo: repository.NewSurveyRepository(db),
		tokens:     auth.NewTokenService(cfg),
	}
	s.authService = service.NewAuthService(s.userRepo, s.tokens)
	s.profileService = service.NewProfileService(s.userRepo, s.followRepo)
	s.followService = service.NewFollowService(s.userRepo, s.followRepo)
	s.directoryService = service.NewDirectoryService(s.userRepo, s.followRepo, s.tokens)
	s.surveyService = service.NewSurveyService(s.surveyRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

func jsonRequest(t *testing.T, method, target string, body any, token string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// signupUser registers an account through the API and returns its auth
// payload.
func signupUser(t *testing.T, app *fiber.App, fullName, email, username string) map[string]any {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"full_name": fullName,
		"email":     email,
		"username":  username,
		"password":  "test-password",
	}, "")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body["token"])
	return body
}

// promote flips an account to the admin role directly in the store.
func promote(t *testing.T, s *Server, userID uint) {
	t.Helper()
	require.NoError(t, s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", models.RoleAdmin).Error)
}
