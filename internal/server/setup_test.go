package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/sportselect/internal/database"
	"github.com/playperu/sportselect/internal/migrations"
	"github.com/playperu/sportselect/internal/provider"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupStore returns a migrated in-memory store loaded with the demo data.
func setupStore(t *testing.T) *provider.SQLStore {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store := provider.NewSQLStore(db, discardLogger())
	if err := provider.Seed(ctx, store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()
	store := setupStore(t)
	return newRouter(discardLogger(), store, map[string]Checker{"sqlite": CheckFunc(store.Ping)})
}

// do sends a request through r and decodes a JSON response into out when
// out is non-nil.
func do(t *testing.T, r http.Handler, method, path, body string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, path, err)
		}
	}
	return w
}
