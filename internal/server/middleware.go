package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/playperu/sportselect/internal/provider"
	"github.com/playperu/sportselect/internal/sportselect"
)

type ctxKey int

const (
	ctxKeySnapshot ctxKey = iota
	ctxKeyStudent
)

func newStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// snapshotMiddleware loads students, activities, sessions and selections
// for the request. A failed load is a 500; nothing is served stale.
func snapshotMiddleware(logger *slog.Logger, p provider.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snap, err := provider.LoadSnapshot(r.Context(), p)
			if err != nil {
				logger.Error("loading snapshot", "error", err, "request_id", middleware.GetReqID(r.Context()))
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySnapshot, snap)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// studentMiddleware resolves {studentID} against the snapshot.
func studentMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st, err := snapshotFrom(r).Student(chi.URLParam(r, "studentID"))
			if errors.Is(err, provider.ErrNotFound) {
				writeError(w, http.StatusNotFound, "student not found")
				return
			}
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyStudent, st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func snapshotFrom(r *http.Request) *provider.Snapshot {
	return r.Context().Value(ctxKeySnapshot).(*provider.Snapshot)
}

func studentFrom(r *http.Request) *sportselect.Student {
	return r.Context().Value(ctxKeyStudent).(*sportselect.Student)
}
