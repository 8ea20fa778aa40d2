package compliance

import "github.com/playperu/sportselect/internal/sportselect"

func sport(id string, cat sportselect.Category) sportselect.Sport {
	return sportselect.Sport{ID: id, Name: "Sport " + id, Category: cat, CategoryID: "cat-" + string(cat)}
}

var (
	red1    = sport("red1", sportselect.CategoryRed)
	red2    = sport("red2", sportselect.CategoryRed)
	green1  = sport("green1", sportselect.CategoryGreen)
	green2  = sport("green2", sportselect.CategoryGreen)
	blue1   = sport("blue1", sportselect.CategoryBlue)
	blue2   = sport("blue2", sportselect.CategoryBlue)
	yellow1 = sport("yellow1", sportselect.CategoryYellow)
)

func under16() *sportselect.Student {
	return &sportselect.Student{ID: "student1", Name: "John Doe", FirstName: "John", Surname: "Doe", AgeGroup: "Under 16"}
}

// Catalog used by the session counting scenarios.
var (
	basketball = sportselect.Sport{ID: "sport1", Name: "Basketball", Category: sportselect.CategoryRed, CategoryID: "cat1"}
	chess      = sportselect.Sport{ID: "sport2", Name: "Chess Club", Category: sportselect.CategoryGreen, CategoryID: "cat2"}
	swimming   = sportselect.Sport{ID: "sport3", Name: "Swimming", Category: sportselect.CategoryBlue, CategoryID: "cat3"}
	archery    = sportselect.Sport{ID: "sport4", Name: "Archery", Category: sportselect.CategoryRed, CategoryID: "cat1", DataAIHint: "Archery"}

	scheduleSports = []sportselect.Sport{basketball, chess, swimming, archery}

	schedule = []sportselect.Session{
		{ID: "sess1", SportID: "sport1", ActivityName: "Basketball Team U16", DayOfWeek: sportselect.Monday, Category: sportselect.CategoryRed, StartTime: "15:00", EndTime: "16:00", Type: "Team", AgeGroup: "Under 16"},
		{ID: "sess2", SportID: "sport1", ActivityName: "Basketball Social", DayOfWeek: sportselect.Wednesday, Category: sportselect.CategoryRed, StartTime: "15:00", EndTime: "16:00", Type: "Social"},
		{ID: "sess3", SportID: "sport1", ActivityName: "Basketball Team U17", DayOfWeek: sportselect.Friday, Category: sportselect.CategoryRed, StartTime: "15:00", EndTime: "16:00", Type: "Team", AgeGroup: "Under 17"},
		{ID: "sess4", SportID: "sport2", ActivityName: "Chess Club Meet", DayOfWeek: sportselect.Tuesday, Category: sportselect.CategoryGreen, StartTime: "16:00", EndTime: "17:00"},
		{ID: "sess5", SportID: "sport3", ActivityName: "Swimming Practice", DayOfWeek: sportselect.Thursday, Category: sportselect.CategoryBlue, StartTime: "17:00", EndTime: "18:00"},
		{ID: "sess6", SportID: "sport4", ActivityName: "Archery Team U16", DayOfWeek: sportselect.Monday, Category: sportselect.CategoryRed, StartTime: "17:00", EndTime: "18:00", Type: "Team", AgeGroup: "Under 16"},
	}
)

// teamSessions returns n Team sessions of sp restricted to ageGroup. With an
// empty ageGroup the sessions carry no type or age group at all.
func teamSessions(sp sportselect.Sport, ageGroup string, n int) []sportselect.Session {
	out := make([]sportselect.Session, 0, n)
	for i := range n {
		s := sportselect.Session{
			ID:        sp.ID + "-" + string(rune('a'+i)),
			SportID:   sp.ID,
			DayOfWeek: sportselect.Weekdays[i%len(sportselect.Weekdays)],
			Category:  sp.Category,
		}
		if ageGroup != "" {
			s.Type = sportselect.SessionTypeTeam
			s.AgeGroup = ageGroup
		}
		out = append(out, s)
	}
	return out
}
