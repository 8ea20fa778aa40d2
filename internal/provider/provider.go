// Package provider supplies the four entity collections the compliance engine
// consumes and persists per-student selections.
package provider

import (
	"context"
	"errors"

	"github.com/playperu/sportselect/internal/sportselect"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrStudentIDRequired = errors.New("student id is required")
)

// Provider is the data backend. Implementations map raw stored values into
// domain values before returning them, so callers never see an unknown
// category or day.
type Provider interface {
	FetchStudents(ctx context.Context) ([]sportselect.Student, error)
	FetchActivities(ctx context.Context) ([]sportselect.Sport, error)
	FetchSessions(ctx context.Context) ([]sportselect.Session, error)
	FetchSelections(ctx context.Context) (sportselect.Selections, error)
	// WriteSelections replaces the student's whole selection. Concurrent
	// writers are last-write-wins.
	WriteSelections(ctx context.Context, studentID string, sel sportselect.StudentSelection) error
}
