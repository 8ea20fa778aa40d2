package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/sportselect/internal/compliance"
	"github.com/playperu/sportselect/internal/provider"
	"github.com/playperu/sportselect/internal/sportselect"
	"github.com/playperu/sportselect/internal/validate"
)

type SelectionsResponse struct {
	StudentID string   `json:"studentId"`
	SportIDs  []string `json:"sportIds"`
}

// SelectionsRequest replaces a student's whole selection. An empty list
// clears it; a missing list is rejected.
type SelectionsRequest struct {
	SportIDs []string `json:"sportIds" validate:"required,dive,notblank"`
}

type SelectionUpdateResponse struct {
	Selections SelectionsResponse `json:"selections"`
	Compliance ComplianceResponse `json:"compliance"`
}

func handleGetSelections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := studentFrom(r)
		sel := snapshotFrom(r).Selections.For(st.ID)

		writeJSON(w, http.StatusOK, SelectionsResponse{StudentID: st.ID, SportIDs: sel.IDs()})
	}
}

func handlePutSelections(logger *slog.Logger, p provider.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := snapshotFrom(r)
		st := studentFrom(r)

		var req SelectionsRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		unknown := validate.FieldErrors{}
		for i, id := range req.SportIDs {
			if _, err := snap.Sport(id); err != nil {
				unknown[fmt.Sprintf("sportIds[%d]", i)] = "unknown sport " + id
			}
		}
		if len(unknown) > 0 {
			writeValidationError(w, unknown)
			return
		}

		sel := sportselect.NewSelection(req.SportIDs...)
		if err := p.WriteSelections(r.Context(), st.ID, sel); err != nil {
			logger.Error("writing selections", "student_id", st.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, evaluateUpdate(snap, st, sel))
	}
}

// handleToggleSelection flips one sport in or out of the student's set and
// persists the result.
func handleToggleSelection(logger *slog.Logger, p provider.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := snapshotFrom(r)
		st := studentFrom(r)

		sportID := chi.URLParam(r, "sportID")
		if _, err := snap.Sport(sportID); errors.Is(err, provider.ErrNotFound) {
			writeError(w, http.StatusNotFound, "sport not found")
			return
		}

		sel := snap.Selections.For(st.ID).Toggle(sportID)
		if err := p.WriteSelections(r.Context(), st.ID, sel); err != nil {
			logger.Error("writing selections", "student_id", st.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, evaluateUpdate(snap, st, sel))
	}
}

func handleStudentCompliance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := snapshotFrom(r)
		st := studentFrom(r)

		res := compliance.Evaluate(st, snap.Selections.For(st.ID), snap.Sports, snap.Sessions)
		writeJSON(w, http.StatusOK, newComplianceResponse(st, res))
	}
}

func evaluateUpdate(snap *provider.Snapshot, st *sportselect.Student, sel sportselect.StudentSelection) SelectionUpdateResponse {
	res := compliance.Evaluate(st, sel, snap.Sports, snap.Sessions)
	return SelectionUpdateResponse{
		Selections: SelectionsResponse{StudentID: st.ID, SportIDs: sel.IDs()},
		Compliance: newComplianceResponse(st, res),
	}
}
