// Package sportselect defines the core domain types for weekly activity
// selection. It has no external dependencies.
package sportselect

type Category string

const (
	CategoryRed    Category = "Red"
	CategoryGreen  Category = "Green"
	CategoryBlue   Category = "Blue"
	CategoryYellow Category = "Yellow"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryRed, CategoryGreen, CategoryBlue, CategoryYellow}

type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

var Weekdays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Sport is a catalog entry a student can select.
type Sport struct {
	ID          string
	Name        string
	Category    Category
	CategoryID  string
	Location    string
	MaxCapacity int
	Description string
	// DataAIHint is a short free-text label used for icon lookup.
	DataAIHint string
}

// Session is one scheduled weekly occurrence of a Sport.
type Session struct {
	ID           string
	SportID      string
	ActivityName string
	DayOfWeek    DayOfWeek
	StartTime    string
	EndTime      string
	Category     Category
	// Type is a free-text tag such as "Team" or "Social".
	Type string
	// AgeGroup, when set, restricts the session to one student age bracket.
	AgeGroup    string
	Group       string
	Location    string
	MaxCapacity int
	Description string
}

const SessionTypeTeam = "Team"

type Student struct {
	ID         string
	FirstName  string
	Surname    string
	Name       string
	AgeGroup   string
	Block      string
	DOB        string
	Email      string
	House      string
	TutorGroup string
	Gender     string
	YearGroup  string
}

// FullName joins first name and surname the way Student.Name is derived.
func FullName(first, surname string) string {
	return first + " " + surname
}

// Selections maps a student ID to that student's selection set. A missing
// entry is equivalent to an empty selection.
type Selections map[string]StudentSelection

// For returns the selection for studentID, never nil.
func (s Selections) For(studentID string) StudentSelection {
	if sel, ok := s[studentID]; ok && sel != nil {
		return sel
	}
	return StudentSelection{}
}
