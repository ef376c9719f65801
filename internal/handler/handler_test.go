package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retrorank/internal/config"
	"retrorank/internal/models"
	"retrorank/internal/repository"
	"retrorank/internal/service"
	"retrorank/internal/session"
	"retrorank/internal/storage"
)

// The handler tests run against the real façade on an in-memory store with
// latency simulation off.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		TokenTTL:      time.Hour,
		LatencyFactor: 0,
		SeedData:      false,
	}

	store := storage.NewMemoryStore()
	repo := repository.NewRepository(store)
	sess := session.NewManager(store, cfg.JWTSecretKey, cfg.TokenTTL)
	svc := service.NewService(repo, sess, cfg)

	return NewHandlers(svc, cfg).Routes()
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func signupRequest(t *testing.T, router *mux.Router, name, email string) service.AuthResult {
	t.Helper()

	rr := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": name, "email": email, "password": "123456",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var result service.AuthResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	return result
}

func TestSignupAndSession(t *testing.T) {
	router := newTestRouter(t)

	result := signupRequest(t, router, "Ana", "ana@x.com")
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Ana", result.User.Name)

	rr := doJSON(t, router, http.MethodGet, "/api/auth/session", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var sessionResp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sessionResp))
	assert.Equal(t, true, sessionResp["valid"])
	assert.Equal(t, result.User.ID, sessionResp["userId"])
}

func TestSignupValidation(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": "Ana", "email": "not-an-email", "password": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code, "password below minimum length")
}

func TestSignupDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	signupRequest(t, router, "First", "dup@x.com")

	rr := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": "Second", "email": "dup@x.com", "password": "123456",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)
	signupRequest(t, router, "Ana", "ana@x.com")

	t.Run("wrong password", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ana@x.com", "password": "nope99",
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("correct credentials", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ana@x.com", "password": "123456",
		})
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestPostLifecycle(t *testing.T) {
	router := newTestRouter(t)
	signupRequest(t, router, "Ana", "ana@x.com")

	rr := doJSON(t, router, http.MethodPost, "/api/posts", map[string]string{
		"title": "Top 5 SNES games", "content": "The list.",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var post models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.Equal(t, "Ana", post.CreatorName)

	t.Run("appears in the listing", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/posts", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var posts []models.Post
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, post.ID, posts[0].ID)
	})

	t.Run("like and dislike", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/posts/"+post.ID+"/like", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSON(t, router, http.MethodPost, "/api/posts/"+post.ID+"/dislike", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var updated models.Post
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		assert.Equal(t, 0, updated.Likes)
		assert.Equal(t, 1, updated.Dislikes)
	})

	t.Run("comments", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/posts/"+post.ID+"/comments", map[string]string{
			"content": "Great list!",
		})
		require.Equal(t, http.StatusCreated, rr.Code)

		var comment models.Comment
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comment))

		rr = doJSON(t, router, http.MethodGet, "/api/posts/"+post.ID+"/comments", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var comments []models.Comment
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comments))
		assert.Len(t, comments, 1)

		rr = doJSON(t, router, http.MethodDelete, "/api/comments/"+comment.ID, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, "/api/posts/"+post.ID, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSON(t, router, http.MethodGet, "/api/posts/"+post.ID, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUnauthenticatedMutations(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/posts", map[string]string{
		"title": "T", "content": "C",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/posts/some-id/like", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogoutEndsSession(t *testing.T) {
	router := newTestRouter(t)
	signupRequest(t, router, "Ana", "ana@x.com")

	rr := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/auth/session", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var sessionResp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sessionResp))
	assert.Equal(t, false, sessionResp["valid"])

	rr = doJSON(t, router, http.MethodPost, "/api/posts", map[string]string{
		"title": "T", "content": "C",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetMissingPost(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/posts/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}
