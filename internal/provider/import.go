package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/playperu/sportselect/internal/sportselect"
	"github.com/playperu/sportselect/internal/validate"
)

// Export is the realtime-database export layout: every collection is keyed by
// record id, and selections map student id to a {sportId: true} object.
type Export struct {
	Students   map[string]ExportStudent                `json:"students" validate:"dive,keys,notblank,endkeys"`
	Activities map[string]ExportActivity               `json:"activities" validate:"dive,keys,notblank,endkeys"`
	Sessions   map[string]ExportSession                `json:"sessions" validate:"dive,keys,notblank,endkeys"`
	Selections map[string]sportselect.StudentSelection `json:"selections" validate:"dive,keys,notblank,endkeys"`
}

type ExportStudent struct {
	FName      string `json:"fname" validate:"notblank"`
	Surname    string `json:"surname"`
	AgeGroup   string `json:"ageGroup"`
	Block      string `json:"block"`
	DOB        string `json:"dob"`
	Email      string `json:"email" validate:"omitempty,email"`
	House      string `json:"house"`
	TutorGroup string `json:"tutorGroup"`
	Gender     string `json:"gender"`
	YearGroup  string `json:"yearGroup"`
}

type ExportActivity struct {
	Name        string `json:"name" validate:"notblank"`
	Category    string `json:"category"`
	CategoryID  string `json:"categoryId"`
	Location    string `json:"location"`
	MaxCapacity int    `json:"maxCapacity" validate:"gte=0"`
	Description string `json:"description"`
	DataAIHint  string `json:"dataAiHint"`
}

// ExportSession keeps the source spelling, including the capitalised End.
type ExportSession struct {
	ActivityID  string `json:"activityId" validate:"notblank"`
	Activity    string `json:"activity"`
	Day         string `json:"day"`
	Start       string `json:"start"`
	End         string `json:"End"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	AgeGroup    string `json:"ageGroup"`
	Group       string `json:"group"`
	Location    string `json:"location"`
	MaxCapacity int    `json:"maxCapacity" validate:"gte=0"`
	Description string `json:"description"`
}

// ImportStats counts the records written by Import.
type ImportStats struct {
	Students   int
	Activities int
	Sessions   int
	Selections int
}

// Import reads an export document and upserts everything in one transaction.
// Raw category and day strings are stored untouched. A student present in
// the selections object has their stored selection replaced.
func Import(ctx context.Context, store *SQLStore, r io.Reader) (ImportStats, error) {
	var doc Export
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ImportStats{}, fmt.Errorf("decoding export: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return ImportStats{}, fmt.Errorf("invalid export: %w", err)
	}
	return importExport(ctx, store, doc)
}

func importExport(ctx context.Context, store *SQLStore, doc Export) (ImportStats, error) {
	var stats ImportStats

	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	for id, st := range doc.Students {
		row := studentRow{
			ID: id, FName: st.FName, Surname: st.Surname, AgeGroup: st.AgeGroup,
			Block: st.Block, DOB: st.DOB, Email: st.Email, House: st.House,
			TutorGroup: st.TutorGroup, Gender: st.Gender, YearGroup: st.YearGroup,
		}
		if err := store.putStudent(ctx, tx, row); err != nil {
			return stats, fmt.Errorf("student %s: %w", id, err)
		}
		stats.Students++
	}

	for id, a := range doc.Activities {
		row := activityRow{
			ID: id, Name: a.Name, Category: a.Category, CategoryID: a.CategoryID,
			Location: a.Location, MaxCapacity: a.MaxCapacity, Description: a.Description,
			DataAIHint: a.DataAIHint,
		}
		if err := store.putActivity(ctx, tx, row); err != nil {
			return stats, fmt.Errorf("activity %s: %w", id, err)
		}
		stats.Activities++
	}

	for id, s := range doc.Sessions {
		if _, ok := doc.Activities[s.ActivityID]; !ok && len(doc.Activities) > 0 {
			store.logger.Warn("session references unknown activity", "session_id", id, "activity_id", s.ActivityID)
		}
		row := sessionRow{
			ID: id, ActivityID: s.ActivityID, Activity: s.Activity, Day: s.Day,
			Start: s.Start, End: s.End, Category: s.Category, Type: s.Type,
			AgeGroup: s.AgeGroup, Group: s.Group, Location: s.Location,
			MaxCapacity: s.MaxCapacity, Description: s.Description,
		}
		if err := store.putSession(ctx, tx, row); err != nil {
			return stats, fmt.Errorf("session %s: %w", id, err)
		}
		stats.Sessions++
	}

	for studentID, sel := range doc.Selections {
		if err := replaceSelections(ctx, tx, studentID, sel); err != nil {
			return stats, fmt.Errorf("student %s: %w", studentID, err)
		}
		stats.Selections += len(sel)
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("committing import: %w", err)
	}

	store.logger.Info("import complete",
		"students", stats.Students,
		"activities", stats.Activities,
		"sessions", stats.Sessions,
		"selections", stats.Selections,
	)
	return stats, nil
}
