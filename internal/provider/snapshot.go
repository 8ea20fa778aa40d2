package provider

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/playperu/sportselect/internal/sportselect"
)

// Snapshot is one consistent-enough read of all four collections. Nothing is
// cached between snapshots.
type Snapshot struct {
	Students   []sportselect.Student
	Sports     []sportselect.Sport
	Sessions   []sportselect.Session
	Selections sportselect.Selections
}

// LoadSnapshot fetches the four collections concurrently.
func LoadSnapshot(ctx context.Context, p Provider) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		snap.Students, err = p.FetchStudents(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Sports, err = p.FetchActivities(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Sessions, err = p.FetchSessions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Selections, err = p.FetchSelections(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if snap.Selections == nil {
		snap.Selections = sportselect.Selections{}
	}
	return &snap, nil
}

// Student returns the student with the given id, or ErrNotFound.
func (s *Snapshot) Student(id string) (*sportselect.Student, error) {
	for i := range s.Students {
		if s.Students[i].ID == id {
			return &s.Students[i], nil
		}
	}
	return nil, ErrNotFound
}

// Sport returns the activity with the given id, or ErrNotFound.
func (s *Snapshot) Sport(id string) (*sportselect.Sport, error) {
	for i := range s.Sports {
		if s.Sports[i].ID == id {
			return &s.Sports[i], nil
		}
	}
	return nil, ErrNotFound
}
