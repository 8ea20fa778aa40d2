package compliance

import (
	"testing"

	"github.com/playperu/sportselect/internal/sportselect"
)

func TestCountWeeklySessions(t *testing.T) {
	u15 := under16()
	u15.AgeGroup = "Under 15"

	tests := []struct {
		name     string
		student  *sportselect.Student
		sel      sportselect.StudentSelection
		sports   []sportselect.Sport
		sessions []sportselect.Session
		want     int
	}{
		{
			name:     "no student",
			student:  nil,
			sel:      sportselect.NewSelection("sport1"),
			sports:   scheduleSports,
			sessions: schedule,
			want:     0,
		},
		{
			name:     "empty selection",
			student:  under16(),
			sel:      sportselect.NewSelection(),
			sports:   scheduleSports,
			sessions: schedule,
			want:     0,
		},
		{
			name:     "only unknown sport ids",
			student:  under16(),
			sel:      sportselect.NewSelection("nope", "ghost"),
			sports:   scheduleSports,
			sessions: schedule,
			want:     0,
		},
		{
			name:     "red sport counts only the matching team session",
			student:  under16(),
			sel:      sportselect.NewSelection("sport1"),
			sports:   scheduleSports,
			sessions: schedule,
			want:     1,
		},
		{
			name:     "red sport with no team session for the age group",
			student:  u15,
			sel:      sportselect.NewSelection("sport1"),
			sports:   scheduleSports,
			sessions: schedule,
			want:     0,
		},
		{
			name:     "red social session alone is dropped",
			student:  under16(),
			sel:      sportselect.NewSelection("sport1"),
			sports:   scheduleSports,
			sessions: schedule[1:2],
			want:     0,
		},
		{
			name:     "green sport generic session counts",
			student:  under16(),
			sel:      sportselect.NewSelection("sport2"),
			sports:   scheduleSports,
			sessions: schedule,
			want:     1,
		},
		{
			name:     "red plus green adds the unrestricted session",
			student:  under16(),
			sel:      sportselect.NewSelection("sport1", "sport2"),
			sports:   scheduleSports,
			sessions: schedule,
			want:     2,
		},
		{
			name:    "non-red session with age group follows the team rule",
			student: under16(),
			sel:     sportselect.NewSelection("sportBlueTeam"),
			sports: []sportselect.Sport{
				{ID: "sportBlueTeam", Name: "Blue Team Sport", Category: sportselect.CategoryBlue, CategoryID: "catB"},
			},
			sessions: []sportselect.Session{
				{ID: "sessBlueTeam", SportID: "sportBlueTeam", DayOfWeek: sportselect.Friday, Category: sportselect.CategoryBlue, Type: "Team", AgeGroup: "Under 16"},
				{ID: "sessBlueOther", SportID: "sportBlueTeam", DayOfWeek: sportselect.Monday, Category: sportselect.CategoryBlue, Type: "Social", AgeGroup: "Under 16"},
			},
			want: 1,
		},
		{
			name:     "age group match is exact",
			student:  &sportselect.Student{ID: "s", AgeGroup: "under 16"},
			sel:      sportselect.NewSelection("sport1", "sport4"),
			sports:   scheduleSports,
			sessions: schedule,
			want:     0,
		},
		{
			name:     "multiple sports sum",
			student:  under16(),
			sel:      sportselect.NewSelection("sport1", "sport2", "sport4"),
			sports:   scheduleSports,
			sessions: schedule,
			want:     3,
		},
		{
			name:    "every unrestricted row counts including same-day duplicates",
			student: under16(),
			sel:     sportselect.NewSelection("sport2"),
			sports:  scheduleSports,
			sessions: []sportselect.Session{
				{ID: "a", SportID: "sport2", DayOfWeek: sportselect.Tuesday, Category: sportselect.CategoryGreen},
				{ID: "b", SportID: "sport2", DayOfWeek: sportselect.Tuesday, Category: sportselect.CategoryGreen},
				{ID: "c", SportID: "sport2", DayOfWeek: sportselect.Tuesday, Category: sportselect.CategoryGreen, Type: "Social"},
			},
			want: 3,
		},
		{
			name:    "session for a sport missing from the catalog is skipped",
			student: under16(),
			sel:     sportselect.NewSelection("sport2", "dangling"),
			sports:  scheduleSports,
			sessions: append([]sportselect.Session{
				{ID: "x", SportID: "dangling", DayOfWeek: sportselect.Monday},
			}, schedule...),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountWeeklySessions(tt.student, tt.sel, tt.sports, tt.sessions)
			if got != tt.want {
				t.Errorf("CountWeeklySessions = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountWeeklySessionsDoesNotMutateInputs(t *testing.T) {
	sel := sportselect.NewSelection("sport1", "sport2")
	sessions := append([]sportselect.Session(nil), schedule...)

	CountWeeklySessions(under16(), sel, scheduleSports, sessions)

	if len(sel) != 2 || !sel.Has("sport1") || !sel.Has("sport2") {
		t.Errorf("selection changed: %v", sel.IDs())
	}
	for i := range schedule {
		if sessions[i] != schedule[i] {
			t.Errorf("session %d changed", i)
		}
	}
}
