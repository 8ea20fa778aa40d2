package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

type studentPath struct {
	StudentID string `path:"studentID" description:"Student record id."`
}

type sportPath struct {
	SportID string `path:"sportID" description:"Activity record id."`
}

type togglePath struct {
	StudentID string `path:"studentID"`
	SportID   string `path:"sportID"`
}

type putSelectionsInput struct {
	StudentID string   `path:"studentID"`
	SportIDs  []string `json:"sportIds" required:"true"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "SportSelect API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Weekly activity selection and compliance checking.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/students
	listStudents, _ := r.NewOperationContext(http.MethodGet, "/api/students")
	listStudents.SetSummary("List students")
	listStudents.SetDescription("Returns every student with the id of the rule set their age group resolves to (empty if none).")
	listStudents.AddRespStructure([]StudentItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listStudents)

	// GET /api/activities
	listActivities, _ := r.NewOperationContext(http.MethodGet, "/api/activities")
	listActivities.SetSummary("List activities")
	listActivities.SetDescription("Returns the catalog grouped by category in display order, with icon names.")
	listActivities.AddRespStructure([]ActivityGroup{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listActivities)

	// GET /api/sessions
	listSessions, _ := r.NewOperationContext(http.MethodGet, "/api/sessions")
	listSessions.SetSummary("List sessions")
	listSessions.SetDescription("Returns every scheduled weekly session.")
	listSessions.AddRespStructure([]SessionItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listSessions)

	// GET /api/rules
	listRules, _ := r.NewOperationContext(http.MethodGet, "/api/rules")
	listRules.SetSummary("List rule sets")
	listRules.SetDescription("Returns the built-in rule sets in bracket order.")
	listRules.AddRespStructure([]RuleSetItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listRules)

	// GET /api/students/{studentID}/selections
	getSelections, _ := r.NewOperationContext(http.MethodGet, "/api/students/{studentID}/selections")
	getSelections.SetSummary("Get selections")
	getSelections.SetDescription("Returns the student's current selection, sorted by sport id.")
	getSelections.AddReqStructure(studentPath{})
	getSelections.AddRespStructure(SelectionsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSelections.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSelections)

	// PUT /api/students/{studentID}/selections
	putSelections, _ := r.NewOperationContext(http.MethodPut, "/api/students/{studentID}/selections")
	putSelections.SetSummary("Replace selections")
	putSelections.SetDescription("Replaces the student's whole selection and returns the new evaluation. An empty list clears it.")
	putSelections.AddReqStructure(putSelectionsInput{})
	putSelections.AddRespStructure(SelectionUpdateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putSelections.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putSelections.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putSelections)

	// POST /api/students/{studentID}/selections/{sportID}/toggle
	toggle, _ := r.NewOperationContext(http.MethodPost, "/api/students/{studentID}/selections/{sportID}/toggle")
	toggle.SetSummary("Toggle a sport")
	toggle.SetDescription("Adds the sport if absent, removes it if present, persists, and returns the new evaluation.")
	toggle.AddReqStructure(togglePath{})
	toggle.AddRespStructure(SelectionUpdateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	toggle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(toggle)

	// GET /api/students/{studentID}/compliance
	getCompliance, _ := r.NewOperationContext(http.MethodGet, "/api/students/{studentID}/compliance")
	getCompliance.SetSummary("Student compliance")
	getCompliance.SetDescription("Full breakdown: verdict, session total, per-category tallies, custom rule outcome, notes and toolbar chips.")
	getCompliance.AddReqStructure(studentPath{})
	getCompliance.AddRespStructure(ComplianceResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getCompliance.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getCompliance)

	// GET /api/admin/compliance
	adminCompliance, _ := r.NewOperationContext(http.MethodGet, "/api/admin/compliance")
	adminCompliance.SetSummary("Compliance overview")
	adminCompliance.SetDescription("Evaluates every student and returns verdicts with notes joined into one summary.")
	adminCompliance.AddRespStructure([]AdminComplianceItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(adminCompliance)

	// GET /api/admin/rosters/{sportID}
	roster, _ := r.NewOperationContext(http.MethodGet, "/api/admin/rosters/{sportID}")
	roster.SetSummary("Activity roster")
	roster.SetDescription("Lists students who selected the activity, ordered by name.")
	roster.AddReqStructure(sportPath{})
	roster.AddRespStructure(RosterResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	roster.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(roster)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
