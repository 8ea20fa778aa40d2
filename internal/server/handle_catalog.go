package server

import (
	"net/http"

	"github.com/playperu/sportselect/internal/compliance"
	"github.com/playperu/sportselect/internal/sportselect"
)

// ActivityGroup is one category heading of the catalog page.
type ActivityGroup struct {
	Category    string         `json:"category"`
	DisplayName string         `json:"displayName"`
	Activities  []ActivityItem `json:"activities"`
}

type CategoryRuleItem struct {
	Category       string   `json:"category"`
	MinSports      int      `json:"minSports"`
	Optional       bool     `json:"optional"`
	MaxSports      int      `json:"maxSports,omitempty"`
	SpecificSports []string `json:"specificSports,omitempty"`
}

type RuleSetItem struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Description      []string           `json:"description"`
	MinTotalSessions int                `json:"minTotalSessions"`
	MaxTotalSessions int                `json:"maxTotalSessions,omitempty"`
	Categories       []CategoryRuleItem `json:"categories"`
	HasCustomRule    bool               `json:"hasCustomRule"`
}

func handleListStudents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := snapshotFrom(r)

		out := make([]StudentItem, 0, len(snap.Students))
		for _, st := range snap.Students {
			out = append(out, newStudentItem(st))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// handleListActivities groups the catalog by category in display order.
// Categories with no activities are still listed.
func handleListActivities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := snapshotFrom(r)

		groups := make([]ActivityGroup, 0, len(sportselect.Categories))
		for _, cat := range sportselect.Categories {
			g := ActivityGroup{
				Category:    string(cat),
				DisplayName: compliance.DisplayName(cat),
				Activities:  []ActivityItem{},
			}
			for _, sp := range snap.Sports {
				if sp.Category == cat {
					g.Activities = append(g.Activities, newActivityItem(sp))
				}
			}
			groups = append(groups, g)
		}
		writeJSON(w, http.StatusOK, groups)
	}
}

func handleListSessions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := snapshotFrom(r)

		out := make([]SessionItem, 0, len(snap.Sessions))
		for _, s := range snap.Sessions {
			out = append(out, newSessionItem(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleListRules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rules := compliance.All()

		out := make([]RuleSetItem, 0, len(rules))
		for _, rs := range rules {
			item := RuleSetItem{
				ID:               rs.ID,
				Name:             rs.Name,
				Description:      rs.Description,
				MinTotalSessions: rs.MinTotalSessions,
				MaxTotalSessions: rs.MaxTotalSessions,
				Categories:       []CategoryRuleItem{},
				HasCustomRule:    rs.Custom != nil,
			}
			for _, cat := range sportselect.Categories {
				cr, ok := rs.Categories[cat]
				if !ok {
					continue
				}
				item.Categories = append(item.Categories, CategoryRuleItem{
					Category:       string(cat),
					MinSports:      cr.MinSports,
					Optional:       cr.Optional,
					MaxSports:      cr.MaxSports,
					SpecificSports: cr.SpecificSports,
				})
			}
			out = append(out, item)
		}
		writeJSON(w, http.StatusOK, out)
	}
}
