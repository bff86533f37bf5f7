package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-management-api/internal/httpserver"
	"inventory-management-api/internal/item/repository"
	"inventory-management-api/internal/item/repository/memory"
	"inventory-management-api/pkg/log"
)

type unreachableRepo struct {
	repository.Repository
}

func (unreachableRepo) Ping(ctx context.Context) error {
	return errors.New("connection refused")
}

func newServer(t *testing.T, repo repository.Repository, basePath string) http.Handler {
	t.Helper()
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:           5000,
		Mode:           "test",
		Environment:    "development",
		BasePath:       basePath,
		ItemRepository: repo,
	})
	require.NoError(t, err)
	return srv.Handler()
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func TestNew(t *testing.T) {
	t.Run("Requires Repository", func(t *testing.T) {
		_, err := httpserver.New(log.NewNop(), httpserver.Config{Port: 5000, Mode: "test"})
		assert.Error(t, err)
	})

	t.Run("Requires Port", func(t *testing.T) {
		_, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: "test", ItemRepository: memory.New(log.NewNop())})
		assert.Error(t, err)
	})
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t, memory.New(log.NewNop()), "")

	for _, path := range []string{"/health", "/live", "/ready"} {
		t.Run(path, func(t *testing.T) {
			w := serve(h, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, true, decode(t, w)["success"])
		})
	}

	t.Run("Root Redirects To Docs", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/", "")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))
	})

	t.Run("Ready Fails When Store Is Down", func(t *testing.T) {
		down := newServer(t, unreachableRepo{Repository: memory.New(log.NewNop())}, "")

		w := serve(down, http.MethodGet, "/ready", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Item store is unreachable", body["message"])

		w = serve(down, http.MethodGet, "/live", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestFallbacks(t *testing.T) {
	h := newServer(t, memory.New(log.NewNop()), "")

	t.Run("Unknown Route", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, map[string]any{"success": false, "message": "Route not found"}, decode(t, w))
	})

	t.Run("Wrong Method", func(t *testing.T) {
		w := serve(h, http.MethodPut, "/items", "{}")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, map[string]any{"success": false, "message": "Method Not Allowed"}, decode(t, w))
	})

	t.Run("Security Headers On Every Response", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/health", "")
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestBasePath(t *testing.T) {
	h := newServer(t, memory.New(log.NewNop()), "/api")

	w := serve(h, http.MethodPost, "/api/items", `{"name":"Bolt","qty":3,"price":0.5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Item created successfully", decode(t, w)["message"])

	w = serve(h, http.MethodGet, "/api/items", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = serve(h, http.MethodGet, "/items", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwaggerBasePath(t *testing.T) {
	h := newServer(t, memory.New(log.NewNop()), "/api")

	w := serve(h, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "/api", body["basePath"])
	assert.Contains(t, body["paths"], "/items")
}
