package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileHandler(t *testing.T) {
	_, app := setupTestServer(t)
	alice := signupUser(t, app, "Alice Wonder", "alice@example.com", "alicew")
	bob := signupUser(t, app, "Bob Builder", "bob@example.com", "bobthe")

	t.Run("own profile includes email", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/profile/alicew", nil, alice["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, true, body["own_profile"])
		assert.Equal(t, "alice@example.com", body["email"])
	})

	t.Run("another user's profile hides email", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/profile/alicew", nil, bob["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, false, body["own_profile"])
		assert.NotContains(t, body, "email")
	})

	t.Run("unknown username", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/profile/ghost", nil, alice["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("requires authentication", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/profile/alicew", nil, "")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestEditProfileHandler(t *testing.T) {
	_, app := setupTestServer(t)
	alice := signupUser(t, app, "Alice Wonder", "alice@example.com", "alicew")
	signupUser(t, app, "Bob Builder", "bob@example.com", "bobthe")

	t.Run("partial update", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/users/profile", map[string]any{
			"bio":   "updated bio",
			"genre": []map[string]string{{"label": "Horror", "value": "horror"}},
		}, alice["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		req = jsonRequest(t, http.MethodGet, "/api/users/profile/alicew", nil, alice["token"].(string))
		resp, err = app.Test(req)
		require.NoError(t, err)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "updated bio", body["bio"])
		assert.Equal(t, []any{"Horror"}, body["genre"])
		assert.Equal(t, "Alice Wonder", body["full_name"], "absent fields untouched")
	})

	t.Run("username collision", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/users/profile", map[string]any{
			"username": "bobthe",
		}, alice["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("username is lowercased", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/users/profile", map[string]any{
			"username": "AliceInChains",
		}, alice["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		req = jsonRequest(t, http.MethodGet, "/api/users/profile/aliceinchains", nil, alice["token"].(string))
		resp, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestListUsersHandler(t *testing.T) {
	_, app := setupTestServer(t)
	viewer := signupUser(t, app, "Viewer", "viewer@example.com", "viewer0")
	token := viewer["token"].(string)

	for i := 0; i < 24; i++ {
		signupUser(t, app, fmt.Sprintf("User %02d", i),
			fmt.Sprintf("user%02d@example.com", i), fmt.Sprintf("user%02d", i))
	}

	t.Run("page 1 has ten entries", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/?page=1", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Page    int              `json:"page"`
			Results int              `json:"results"`
			Data    []map[string]any `json:"data"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, 1, body.Page)
		assert.Equal(t, 10, body.Results)
		assert.Len(t, body.Data, 10)
	})

	t.Run("last page is short", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/?page=3", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Results int `json:"results"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, 5, body.Results)
	})

	t.Run("page past the end is not found", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/?page=4", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("listings never leak credentials", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/?page=1", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		var body struct {
			Data []map[string]any `json:"data"`
		}
		decodeBody(t, resp, &body)
		for _, entry := range body.Data {
			assert.NotContains(t, entry, "password")
			assert.NotContains(t, entry, "email")
		}
	})
}

func TestSearchUsersHandler(t *testing.T) {
	s, app := setupTestServer(t)
	alice := signupUser(t, app, "Alice Wonder", "alice@example.com", "alicew")
	admin := signupUser(t, app, "Root", "root@example.com", "rooter")
	promote(t, s, uint(admin["id"].(float64)))

	t.Run("non-admin is forbidden", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/search?q=alice", nil, alice["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin matches by substring", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/search?q=WONDER", nil, admin["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var results []map[string]any
		decodeBody(t, resp, &results)
		require.Len(t, results, 1)
		assert.Equal(t, "alicew", results[0]["username"])
	})

	t.Run("empty term", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/search", nil, admin["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("no matches", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/users/search?q=zzz", nil, admin["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestImpersonateHandler(t *testing.T) {
	s, app := setupTestServer(t)
	alice := signupUser(t, app, "Alice Wonder", "alice@example.com", "alicew")
	admin := signupUser(t, app, "Root", "root@example.com", "rooter")
	promote(t, s, uint(admin["id"].(float64)))

	aliceID := uint(alice["id"].(float64))

	t.Run("non-admin is forbidden", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost,
			fmt.Sprintf("/api/users/%d/impersonate", uint(admin["id"].(float64))), nil, alice["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("unknown target", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/users/9999/impersonate", nil, admin["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("issued token authenticates as the target", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost,
			fmt.Sprintf("/api/users/%d/impersonate", aliceID), nil, admin["token"].(string))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		require.NotEmpty(t, body["token"])

		req = jsonRequest(t, http.MethodGet, "/api/auth/autologin", nil, body["token"])
		resp, err = app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var who map[string]any
		decodeBody(t, resp, &who)
		assert.Equal(t, "alicew", who["username"])
	})
}
