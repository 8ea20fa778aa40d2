package server

import (
	"github.com/playperu/sportselect/internal/compliance"
	"github.com/playperu/sportselect/internal/icons"
	"github.com/playperu/sportselect/internal/sportselect"
)

type StudentItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FirstName  string `json:"firstName"`
	Surname    string `json:"surname"`
	AgeGroup   string `json:"ageGroup"`
	RuleSetID  string `json:"ruleSetId"`
	House      string `json:"house,omitempty"`
	TutorGroup string `json:"tutorGroup,omitempty"`
	YearGroup  string `json:"yearGroup,omitempty"`
}

type ActivityItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	CategoryID  string `json:"categoryId,omitempty"`
	Location    string `json:"location,omitempty"`
	MaxCapacity int    `json:"maxCapacity,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon"`
}

type SessionItem struct {
	ID           string `json:"id"`
	SportID      string `json:"sportId"`
	ActivityName string `json:"activityName"`
	DayOfWeek    string `json:"dayOfWeek"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Category     string `json:"category"`
	Type         string `json:"type,omitempty"`
	AgeGroup     string `json:"ageGroup,omitempty"`
	Group        string `json:"group,omitempty"`
	Location     string `json:"location,omitempty"`
}

type SportRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ChipItem struct {
	Label string `json:"label"`
	State string `json:"state"`
}

type CategoryStatusItem struct {
	Category    string     `json:"category"`
	DisplayName string     `json:"displayName"`
	Selected    int        `json:"selected"`
	Required    int        `json:"required"`
	Optional    bool       `json:"optional"`
	Met         bool       `json:"met"`
	Passed      bool       `json:"passed"`
	Sports      []SportRef `json:"sports"`
}

type CustomRuleItem struct {
	Compliant bool   `json:"compliant"`
	Message   string `json:"message"`
}

// ComplianceResponse is the full breakdown for one student.
type ComplianceResponse struct {
	StudentID        string               `json:"studentId"`
	StudentName      string               `json:"studentName"`
	AgeGroup         string               `json:"ageGroup"`
	Verdict          string               `json:"verdict"`
	RuleSetID        string               `json:"ruleSetId,omitempty"`
	RuleSetName      string               `json:"ruleSetName,omitempty"`
	TotalSessions    int                  `json:"totalSessions"`
	RequiredSessions int                  `json:"requiredSessions"`
	SessionsMet      bool                 `json:"sessionsMet"`
	Categories       []CategoryStatusItem `json:"categories"`
	Custom           *CustomRuleItem      `json:"custom,omitempty"`
	SelectedSports   []SportRef           `json:"selectedSports"`
	Notes            []string             `json:"notes"`
	Toolbar          []ChipItem           `json:"toolbar"`
}

func newStudentItem(st sportselect.Student) StudentItem {
	item := StudentItem{
		ID:         st.ID,
		Name:       st.Name,
		FirstName:  st.FirstName,
		Surname:    st.Surname,
		AgeGroup:   st.AgeGroup,
		House:      st.House,
		TutorGroup: st.TutorGroup,
		YearGroup:  st.YearGroup,
	}
	if rs := compliance.Resolve(st.AgeGroup); rs != nil {
		item.RuleSetID = rs.ID
	}
	return item
}

func newActivityItem(sp sportselect.Sport) ActivityItem {
	return ActivityItem{
		ID:          sp.ID,
		Name:        sp.Name,
		Category:    string(sp.Category),
		CategoryID:  sp.CategoryID,
		Location:    sp.Location,
		MaxCapacity: sp.MaxCapacity,
		Description: sp.Description,
		Icon:        icons.For(sp.DataAIHint, sp.Name),
	}
}

func newSessionItem(s sportselect.Session) SessionItem {
	return SessionItem{
		ID:           s.ID,
		SportID:      s.SportID,
		ActivityName: s.ActivityName,
		DayOfWeek:    string(s.DayOfWeek),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Category:     string(s.Category),
		Type:         s.Type,
		AgeGroup:     s.AgeGroup,
		Group:        s.Group,
		Location:     s.Location,
	}
}

func sportRefs(sports []sportselect.Sport) []SportRef {
	out := make([]SportRef, len(sports))
	for i, sp := range sports {
		out[i] = SportRef{ID: sp.ID, Name: sp.Name}
	}
	return out
}

func newComplianceResponse(st *sportselect.Student, res compliance.Result) ComplianceResponse {
	resp := ComplianceResponse{
		StudentID:        st.ID,
		StudentName:      st.Name,
		AgeGroup:         st.AgeGroup,
		Verdict:          string(res.Verdict),
		TotalSessions:    res.TotalSessions,
		RequiredSessions: res.RequiredSessions,
		SessionsMet:      res.SessionsMet,
		Categories:       []CategoryStatusItem{},
		SelectedSports:   sportRefs(res.SelectedSports),
		Notes:            res.Notes,
		Toolbar:          []ChipItem{},
	}
	if res.Rules != nil {
		resp.RuleSetID = res.Rules.ID
		resp.RuleSetName = res.Rules.Name
	}
	for _, c := range res.Categories {
		resp.Categories = append(resp.Categories, CategoryStatusItem{
			Category:    string(c.Category),
			DisplayName: compliance.DisplayName(c.Category),
			Selected:    c.Selected,
			Required:    c.Required,
			Optional:    c.Optional,
			Met:         c.Met,
			Passed:      c.Passed,
			Sports:      sportRefs(c.Sports),
		})
	}
	if res.Custom != nil {
		resp.Custom = &CustomRuleItem{Compliant: res.Custom.Compliant, Message: res.Custom.Message}
	}
	for _, chip := range res.Toolbar() {
		resp.Toolbar = append(resp.Toolbar, ChipItem{Label: chip.Label, State: string(chip.State)})
	}
	if resp.Notes == nil {
		resp.Notes = []string{}
	}
	return resp
}
