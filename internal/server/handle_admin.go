package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/sportselect/internal/compliance"
	"github.com/playperu/sportselect/internal/provider"
)

// AdminComplianceItem is one row of the admin overview.
type AdminComplianceItem struct {
	StudentID     string `json:"studentId"`
	Name          string `json:"name"`
	AgeGroup      string `json:"ageGroup"`
	RuleSetID     string `json:"ruleSetId"`
	Verdict       string `json:"verdict"`
	TotalSessions int    `json:"totalSessions"`
	SelectedCount int    `json:"selectedCount"`
	Summary       string `json:"summary"`
}

type RosterResponse struct {
	Sport    ActivityItem  `json:"sport"`
	Students []StudentItem `json:"students"`
}

func handleAdminCompliance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := snapshotFrom(r)

		out := make([]AdminComplianceItem, 0, len(snap.Students))
		for i := range snap.Students {
			st := &snap.Students[i]
			res := compliance.Evaluate(st, snap.Selections.For(st.ID), snap.Sports, snap.Sessions)

			item := AdminComplianceItem{
				StudentID:     st.ID,
				Name:          st.Name,
				AgeGroup:      st.AgeGroup,
				Verdict:       string(res.Verdict),
				TotalSessions: res.TotalSessions,
				SelectedCount: len(res.SelectedSports),
				Summary:       res.Summary(),
			}
			if res.Rules != nil {
				item.RuleSetID = res.Rules.ID
			}
			out = append(out, item)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleAdminRoster() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := snapshotFrom(r)

		sp, err := snap.Sport(chi.URLParam(r, "sportID"))
		if errors.Is(err, provider.ErrNotFound) {
			writeError(w, http.StatusNotFound, "sport not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := RosterResponse{Sport: newActivityItem(*sp), Students: []StudentItem{}}
		for _, st := range compliance.Roster(sp.ID, snap.Students, snap.Selections) {
			resp.Students = append(resp.Students, newStudentItem(st))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
