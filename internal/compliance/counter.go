// Package compliance decides whether a student's weekly activity selections
// satisfy the rules for their age bracket. Every function here is pure: no
// I/O, no logging, no shared state.
package compliance

import "github.com/playperu/sportselect/internal/sportselect"

// CountWeeklySessions returns how many weekly sessions the student's
// selection yields.
//
// A session is restricted when its sport is Red or the session declares an
// age group. Restricted sessions count only when they are Team sessions for
// exactly the student's age group. All other sessions of a selected sport
// count unconditionally, including duplicates on the same day.
//
// Selected IDs missing from sports, and sessions whose sport is not
// selected, are skipped.
func CountWeeklySessions(student *sportselect.Student, sel sportselect.StudentSelection, sports []sportselect.Sport, sessions []sportselect.Session) int {
	if student == nil || len(sel) == 0 {
		return 0
	}

	byID := indexSports(sports)
	total := 0
	for _, s := range sessions {
		if !sel.Has(s.SportID) {
			continue
		}
		sport, ok := byID[s.SportID]
		if !ok {
			continue
		}
		if countsFor(student, sport, s) {
			total++
		}
	}
	return total
}

func countsFor(student *sportselect.Student, sport sportselect.Sport, s sportselect.Session) bool {
	restricted := sport.Category == sportselect.CategoryRed || s.AgeGroup != ""
	if !restricted {
		return true
	}
	return s.Type == sportselect.SessionTypeTeam && s.AgeGroup == student.AgeGroup
}

func indexSports(sports []sportselect.Sport) map[string]sportselect.Sport {
	m := make(map[string]sportselect.Sport, len(sports))
	for _, sp := range sports {
		m[sp.ID] = sp
	}
	return m
}

// selectedSports resolves the selection into sport values ordered by ID,
// skipping IDs that are not in the catalog.
func selectedSports(sel sportselect.StudentSelection, sports []sportselect.Sport) []sportselect.Sport {
	byID := indexSports(sports)
	out := make([]sportselect.Sport, 0, len(sel))
	for _, id := range sel.IDs() {
		if sp, ok := byID[id]; ok {
			out = append(out, sp)
		}
	}
	return out
}

func countByCategory(sports []sportselect.Sport) map[sportselect.Category]int {
	counts := make(map[sportselect.Category]int, len(sportselect.Categories))
	for _, sp := range sports {
		counts[sp.Category]++
	}
	return counts
}
