package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/config"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/database"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeStore implements storage.ObjectStore in memory for handler tests.
type fakeStore struct {
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.objects[key] = data
	return "http://store.local/" + key, nil
}

var _ storage.ObjectStore = (*fakeStore)(nil)

// newTestServer builds a Server over an in-memory sqlite database with
// routes registered on a bare Fiber app.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:          "8080",
		Env:           "test",
		JWTSecret:     "test-secret-key-that-is-long-enough-123",
		AdminPassword: "hunter2-admin",
	}

	s, err := NewServerWithDeps(cfg, db, nil, newFakeStore())
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// authHeader returns a valid bearer token header for the test server.
func authHeader(t *testing.T, s *Server) string {
	t.Helper()
	token, err := s.generateToken()
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(t *testing.T, method, path string, body any, header string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// decodeData unwraps the data envelope resource responses are wrapped in.
func decodeData(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	decodeBody(t, resp, &envelope)
	require.NotNil(t, envelope.Data)
	require.NoError(t, json.Unmarshal(envelope.Data, dest))
}
