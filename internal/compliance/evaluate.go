package compliance

import (
	"fmt"
	"strings"

	"github.com/playperu/sportselect/internal/sportselect"
)

type Verdict string

const (
	VerdictCompliant     Verdict = "compliant"
	VerdictNonCompliant  Verdict = "non_compliant"
	VerdictIndeterminate Verdict = "indeterminate"
)

const (
	NoteNoStudent = "no student selected"
	NoteNoRules   = "no rules defined for age group"
)

// CategoryStatus is the per-category tally of one evaluation.
type CategoryStatus struct {
	Category sportselect.Category
	Selected int
	Required int
	Optional bool
	// Met reports selected >= required. Optional categories report it for
	// display only; they never affect the verdict.
	Met bool
	// Passed is false only for a mandatory category that fails its rule.
	Passed bool
	// Sports are the selected sports in this category.
	Sports []sportselect.Sport
}

// Result is the full outcome of Evaluate. Both the compact toolbar and the
// detailed breakdown are derived from it.
type Result struct {
	Verdict Verdict
	// Rules is nil when the verdict is indeterminate.
	Rules            *RuleSet
	TotalSessions    int
	RequiredSessions int
	SessionsMet      bool
	// Categories always lists every category in display order.
	Categories []CategoryStatus
	// Custom is nil when the rule set has no validator.
	Custom         *ValidationResult
	SelectedSports []sportselect.Sport
	Notes          []string
}

func (r Result) Compliant() bool { return r.Verdict == VerdictCompliant }

// Evaluate checks a student's selection against the rules for their age
// group. It never fails: missing references are skipped and an unmatched age
// group yields VerdictIndeterminate.
func Evaluate(student *sportselect.Student, sel sportselect.StudentSelection, sports []sportselect.Sport, sessions []sportselect.Session) Result {
	var rules *RuleSet
	if student != nil {
		rules = Resolve(student.AgeGroup)
	}
	return EvaluateRules(rules, student, sel, sports, sessions)
}

// EvaluateRules is Evaluate with an explicit rule set. A nil rule set yields
// VerdictIndeterminate.
func EvaluateRules(rules *RuleSet, student *sportselect.Student, sel sportselect.StudentSelection, sports []sportselect.Sport, sessions []sportselect.Session) Result {
	if student == nil {
		return Result{Verdict: VerdictIndeterminate, Notes: []string{NoteNoStudent}}
	}

	selected := selectedSports(sel, sports)
	if rules == nil {
		return Result{
			Verdict:        VerdictIndeterminate,
			SelectedSports: selected,
			Notes:          []string{NoteNoRules},
		}
	}

	res := Result{
		Rules:            rules,
		TotalSessions:    CountWeeklySessions(student, sel, sports, sessions),
		RequiredSessions: rules.MinTotalSessions,
		SelectedSports:   selected,
	}

	res.SessionsMet = res.TotalSessions >= rules.MinTotalSessions
	if !res.SessionsMet {
		res.Notes = append(res.Notes, fmt.Sprintf("Sessions: %d/%d", res.TotalSessions, rules.MinTotalSessions))
	}
	if rules.MaxTotalSessions > 0 && res.TotalSessions > rules.MaxTotalSessions {
		res.SessionsMet = false
		res.Notes = append(res.Notes, fmt.Sprintf("Sessions: %d (max %d)", res.TotalSessions, rules.MaxTotalSessions))
	}

	categoriesMet := true
	for _, cat := range sportselect.Categories {
		st, notes := categoryStatus(cat, rules, sel, selected)
		if !st.Passed {
			categoriesMet = false
		}
		res.Notes = append(res.Notes, notes...)
		res.Categories = append(res.Categories, st)
	}

	customMet := true
	if rules.Custom != nil {
		cr := rules.Custom(selected, sessions)
		res.Custom = &cr
		customMet = cr.Compliant
		if !cr.Compliant && cr.Message != "" {
			res.Notes = append(res.Notes, "Custom: "+cr.Message)
		}
	}

	res.Verdict = VerdictNonCompliant
	if res.SessionsMet && categoriesMet && customMet {
		res.Verdict = VerdictCompliant
	}
	return res
}

func categoryStatus(cat sportselect.Category, rules *RuleSet, sel sportselect.StudentSelection, selected []sportselect.Sport) (CategoryStatus, []string) {
	st := CategoryStatus{Category: cat, Passed: true, Optional: true}
	for _, sp := range selected {
		if sp.Category == cat {
			st.Sports = append(st.Sports, sp)
		}
	}
	st.Selected = len(st.Sports)

	rule, ok := rules.Categories[cat]
	if ok {
		st.Required = rule.MinSports
		st.Optional = rule.Optional
	}
	st.Met = st.Selected >= st.Required
	if !ok || rule.Optional {
		return st, nil
	}

	var notes []string
	if !st.Met {
		notes = append(notes, fmt.Sprintf("%s: %d/%d", cat, st.Selected, st.Required))
	}
	if rule.MaxSports > 0 && st.Selected > rule.MaxSports {
		notes = append(notes, fmt.Sprintf("%s: %d/%d (max %d)", cat, st.Selected, st.Required, rule.MaxSports))
	}
	for _, id := range rule.SpecificSports {
		if !sel.Has(id) {
			notes = append(notes, fmt.Sprintf("%s: missing %s", cat, id))
		}
	}
	st.Passed = len(notes) == 0
	return st, notes
}

// Summary joins the notes into one line for list views.
func (r Result) Summary() string {
	return strings.Join(r.Notes, "; ")
}

// ChipState classifies a toolbar chip for display.
type ChipState string

const (
	ChipMet      ChipState = "met"
	ChipUnmet    ChipState = "unmet"
	ChipOptional ChipState = "optional"
	ChipIdle     ChipState = "idle"
	ChipAlert    ChipState = "alert"
)

// Chip is one compact toolbar badge, e.g. "Red: 1/2".
type Chip struct {
	Label string
	State ChipState
}

// Toolbar derives the compact badge row: one chip per ruled category, the
// session total, and a rule alert when the custom validator failed. It
// returns nil for indeterminate results.
func (r Result) Toolbar() []Chip {
	if r.Rules == nil {
		return nil
	}

	var chips []Chip
	for _, st := range r.Categories {
		if _, ok := r.Rules.Categories[st.Category]; !ok {
			continue
		}
		state := ChipUnmet
		switch {
		case st.Optional && st.Selected == 0 && st.Required == 0:
			state = ChipIdle
		case st.Optional && st.Met:
			state = ChipOptional
		case st.Met:
			state = ChipMet
		}
		label := fmt.Sprintf("%s: %d/%d", st.Category, st.Selected, st.Required)
		if st.Optional && !st.Met && st.Required > 0 {
			label += " (Optional)"
		}
		chips = append(chips, Chip{Label: label, State: state})
	}

	sessions := Chip{Label: fmt.Sprintf("Sessions: %d/%d", r.TotalSessions, r.RequiredSessions), State: ChipUnmet}
	if r.SessionsMet {
		sessions.State = ChipMet
	}
	chips = append(chips, sessions)

	if r.Custom != nil && !r.Custom.Compliant && r.Custom.Message != "" {
		chips = append(chips, Chip{Label: "Rule Alert: " + r.Custom.Message, State: ChipAlert})
	}
	return chips
}

// DisplayName returns the portal heading for a category.
func DisplayName(c sportselect.Category) string {
	switch c {
	case sportselect.CategoryRed:
		return "Category 1 Sport (Major Sports)"
	case sportselect.CategoryGreen:
		return "Club/Skill (Cultural Clubs)"
	case sportselect.CategoryBlue:
		return "Category 2 Sport (Minor Sports)"
	case sportselect.CategoryYellow:
		return "Service (Optional)"
	}
	return string(c)
}
