package provider

import (
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/playperu/sportselect/internal/sportselect"
)

// ParseCategory maps a raw category string case-insensitively. Anything
// unrecognised becomes Yellow and is logged.
func ParseCategory(logger *slog.Logger, raw string) sportselect.Category {
	for _, c := range sportselect.Categories {
		if strings.EqualFold(strings.TrimSpace(raw), string(c)) {
			return c
		}
	}
	logger.Warn("unknown category, defaulting", "raw", raw, "default", sportselect.CategoryYellow)
	return sportselect.CategoryYellow
}

// ParseDay capitalises a raw day string and checks it against the seven
// weekday names. Missing or unknown values become Monday and are logged.
func ParseDay(logger *slog.Logger, raw string) sportselect.DayOfWeek {
	// A Caser is stateful, so one is built per call.
	day := sportselect.DayOfWeek(cases.Title(language.English).String(strings.TrimSpace(raw)))
	if slices.Contains(sportselect.Weekdays, day) {
		return day
	}
	logger.Warn("unknown day, defaulting", "raw", raw, "default", sportselect.Monday)
	return sportselect.Monday
}

type studentRow struct {
	ID         string
	FName      string
	Surname    string
	AgeGroup   string
	Block      string
	DOB        string
	Email      string
	House      string
	TutorGroup string
	Gender     string
	YearGroup  string
}

func (r studentRow) toDomain() sportselect.Student {
	return sportselect.Student{
		ID:         r.ID,
		FirstName:  r.FName,
		Surname:    r.Surname,
		Name:       sportselect.FullName(r.FName, r.Surname),
		AgeGroup:   r.AgeGroup,
		Block:      r.Block,
		DOB:        r.DOB,
		Email:      r.Email,
		House:      r.House,
		TutorGroup: r.TutorGroup,
		Gender:     r.Gender,
		YearGroup:  r.YearGroup,
	}
}

type activityRow struct {
	ID          string
	Name        string
	Category    string
	CategoryID  string
	Location    string
	MaxCapacity int
	Description string
	DataAIHint  string
}

func (r activityRow) toDomain(logger *slog.Logger) sportselect.Sport {
	return sportselect.Sport{
		ID:          r.ID,
		Name:        r.Name,
		Category:    ParseCategory(logger.With("activity_id", r.ID), r.Category),
		CategoryID:  r.CategoryID,
		Location:    r.Location,
		MaxCapacity: r.MaxCapacity,
		Description: r.Description,
		DataAIHint:  r.DataAIHint,
	}
}

// sessionRow keeps the raw field names of the source data: activityId,
// activity, day, start and End are renamed on the way to the domain.
type sessionRow struct {
	ID          string
	ActivityID  string
	Activity    string
	Day         string
	Start       string
	End         string
	Category    string
	Type        string
	AgeGroup    string
	Group       string
	Location    string
	MaxCapacity int
	Description string
}

func (r sessionRow) toDomain(logger *slog.Logger) sportselect.Session {
	logger = logger.With("session_id", r.ID)
	return sportselect.Session{
		ID:           r.ID,
		SportID:      r.ActivityID,
		ActivityName: r.Activity,
		DayOfWeek:    ParseDay(logger, r.Day),
		StartTime:    r.Start,
		EndTime:      r.End,
		Category:     ParseCategory(logger, r.Category),
		Type:         r.Type,
		AgeGroup:     r.AgeGroup,
		Group:        r.Group,
		Location:     r.Location,
		MaxCapacity:  r.MaxCapacity,
		Description:  r.Description,
	}
}
