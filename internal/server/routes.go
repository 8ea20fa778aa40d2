package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playperu/sportselect/internal/provider"
)

func addRoutes(r chi.Router, logger *slog.Logger, p provider.Provider, checks map[string]Checker) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("SportSelect API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, checks))

	// Every route below reads a fresh snapshot of all four collections.
	r.Route("/api", func(r chi.Router) {
		r.Use(snapshotMiddleware(logger, p))

		r.Get("/students", handleListStudents())
		r.Get("/activities", handleListActivities())
		r.Get("/sessions", handleListSessions())
		r.Get("/rules", handleListRules())

		r.Route("/students/{studentID}", func(r chi.Router) {
			r.Use(studentMiddleware())
			r.Get("/selections", handleGetSelections())
			r.Put("/selections", handlePutSelections(logger, p))
			r.Post("/selections/{sportID}/toggle", handleToggleSelection(logger, p))
			r.Get("/compliance", handleStudentCompliance())
		})

		r.Get("/admin/compliance", handleAdminCompliance())
		r.Get("/admin/rosters/{sportID}", handleAdminRoster())
	})
}
