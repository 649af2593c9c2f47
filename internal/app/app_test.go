package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daniilsolovey/editions/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, frontendDir string) *App {
	t.Helper()

	var cfg config.Config
	cfg.Store.Path = filepath.Join(t.TempDir(), "db.json")
	cfg.App.FrontendDir = frontendDir
	cfg.SetDefaults()

	store, err := NewStore(context.Background(), cfg, noOpLogger())
	require.NoError(t, err)

	a := New(cfg, store, noOpLogger())
	t.Cleanup(func() { _ = a.DB.Close() })
	return a
}

func TestNewStore_UnknownBackend(t *testing.T) {
	var cfg config.Config
	cfg.Store.Backend = "redis"

	_, err := NewStore(context.Background(), cfg, noOpLogger())
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestApp_Routes(t *testing.T) {
	frontend := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(frontend, "index.html"), []byte("<h1>Editions</h1>"), 0o644))

	a := newTestApp(t, frontend)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
		contains string
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK, `"ok"`},
		{"rest list", http.MethodGet, "/api/editions", "", http.StatusOK, `"success":true`},
		{"rpc", http.MethodPost, "/rpc/", `{"jsonrpc":"2.0","id":1,"method":"editions.categories"}`, http.StatusOK, "Monthly"},
		{"frontend", http.MethodGet, "/index.html", "", http.StatusOK, "Editions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			a.Echo.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}
