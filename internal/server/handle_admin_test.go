package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/playperu/sportselect/internal/provider"
	"github.com/playperu/sportselect/internal/sportselect"
)

func TestAdminCompliance(t *testing.T) {
	r := testRouter(t)

	var rows []AdminComplianceItem
	w := do(t, r, http.MethodGet, "/api/admin/compliance", "", &rows)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}

	byID := map[string]AdminComplianceItem{}
	for _, row := range rows {
		byID[row.StudentID] = row
	}

	if got := byID["stu-001"]; got.Verdict != "compliant" || got.Summary != "" || got.SelectedCount != 4 {
		t.Errorf("stu-001 = %+v", got)
	}
	stu2 := byID["stu-002"]
	if stu2.Verdict != "non_compliant" {
		t.Errorf("stu-002 verdict = %s", stu2.Verdict)
	}
	if !strings.HasPrefix(stu2.Summary, "Sessions: 4/6; ") || !strings.Contains(stu2.Summary, "Custom: ") {
		t.Errorf("stu-002 summary = %q", stu2.Summary)
	}
	if got := byID["stu-005"]; got.Verdict != "indeterminate" || got.Summary != "no rules defined for age group" {
		t.Errorf("stu-005 = %+v", got)
	}
}

func TestAdminRoster(t *testing.T) {
	r := testRouter(t)

	var resp RosterResponse
	w := do(t, r, http.MethodGet, "/api/admin/rosters/chess", "", &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp.Sport.ID != "chess" || resp.Sport.Name != "Chess Club" {
		t.Errorf("sport = %+v", resp.Sport)
	}

	var names []string
	for _, s := range resp.Students {
		names = append(names, s.Name)
	}
	if got := strings.Join(names, ","); got != "Ama Mensah,Kofi Boateng,Lucia Quispe" {
		t.Errorf("roster = %s", got)
	}

	// An activity nobody picked has an empty roster, not null.
	w = do(t, r, http.MethodGet, "/api/admin/rosters/hockey", "", nil)
	if !strings.Contains(w.Body.String(), `"students":[]`) {
		t.Errorf("hockey body = %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/admin/rosters/quidditch", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown sport: expected 404, got %d", w.Code)
	}
}

type brokenProvider struct{ provider.Provider }

func (brokenProvider) FetchStudents(context.Context) ([]sportselect.Student, error) {
	return nil, errors.New("disk on fire")
}

func TestSnapshotFailureIs500(t *testing.T) {
	r := newRouter(discardLogger(), brokenProvider{setupStore(t)}, nil)

	for _, path := range []string{"/api/students", "/api/admin/compliance", "/api/students/stu-001/compliance"} {
		w := do(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s: expected 500, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"error":"internal error"`) {
			t.Errorf("%s: body = %s", path, w.Body.String())
		}
	}
}
