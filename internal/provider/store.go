package provider

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/playperu/sportselect/internal/sportselect"
)

// SQLStore implements Provider on the SQLite schema in internal/migrations.
type SQLStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLStore expects db to be migrated already.
func NewSQLStore(db *sql.DB, logger *slog.Logger) *SQLStore {
	return &SQLStore{db: db, logger: logger}
}

func (s *SQLStore) FetchStudents(ctx context.Context) ([]sportselect.Student, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, fname, surname, age_group, block, dob, email, house, tutor_group, gender, year_group
		FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying students: %w", err)
	}
	defer rows.Close()

	var out []sportselect.Student
	for rows.Next() {
		var r studentRow
		if err := rows.Scan(&r.ID, &r.FName, &r.Surname, &r.AgeGroup, &r.Block, &r.DOB,
			&r.Email, &r.House, &r.TutorGroup, &r.Gender, &r.YearGroup); err != nil {
			return nil, fmt.Errorf("scanning student: %w", err)
		}
		out = append(out, r.toDomain())
	}
	return out, rows.Err()
}

func (s *SQLStore) FetchActivities(ctx context.Context) ([]sportselect.Sport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, category_id, location, max_capacity, description, data_ai_hint
		FROM activities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer rows.Close()

	var out []sportselect.Sport
	for rows.Next() {
		var r activityRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Category, &r.CategoryID, &r.Location,
			&r.MaxCapacity, &r.Description, &r.DataAIHint); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		out = append(out, r.toDomain(s.logger))
	}
	return out, rows.Err()
}

func (s *SQLStore) FetchSessions(ctx context.Context) ([]sportselect.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, activity_id, activity, day, start_time, end_time, category, type,
		       age_group, group_name, location, max_capacity, description
		FROM sessions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []sportselect.Session
	for rows.Next() {
		var r sessionRow
		if err := rows.Scan(&r.ID, &r.ActivityID, &r.Activity, &r.Day, &r.Start, &r.End,
			&r.Category, &r.Type, &r.AgeGroup, &r.Group, &r.Location, &r.MaxCapacity, &r.Description); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		out = append(out, r.toDomain(s.logger))
	}
	return out, rows.Err()
}

func (s *SQLStore) FetchSelections(ctx context.Context) (sportselect.Selections, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT student_id, sport_id FROM selections`)
	if err != nil {
		return nil, fmt.Errorf("querying selections: %w", err)
	}
	defer rows.Close()

	out := sportselect.Selections{}
	for rows.Next() {
		var studentID, sportID string
		if err := rows.Scan(&studentID, &sportID); err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		if out[studentID] == nil {
			out[studentID] = sportselect.StudentSelection{}
		}
		out[studentID][sportID] = struct{}{}
	}
	return out, rows.Err()
}

func (s *SQLStore) WriteSelections(ctx context.Context, studentID string, sel sportselect.StudentSelection) error {
	if studentID == "" {
		return ErrStudentIDRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	if err := replaceSelections(ctx, tx, studentID, sel); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing selections: %w", err)
	}

	s.logger.Info("selections saved", "student_id", studentID, "count", len(sel))
	return nil
}

// Ping reports whether the database is reachable.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Empty reports whether no activities have been loaded yet.
func (s *SQLStore) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities`).Scan(&n); err != nil {
		return false, fmt.Errorf("counting activities: %w", err)
	}
	return n == 0, nil
}

// Upserts used by Seed and Import. They take raw rows so that stored values
// keep whatever spelling the source used.

func (s *SQLStore) putStudent(ctx context.Context, tx *sql.Tx, r studentRow) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO students (id, fname, surname, age_group, block, dob, email, house, tutor_group, gender, year_group)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fname = excluded.fname, surname = excluded.surname, age_group = excluded.age_group,
			block = excluded.block, dob = excluded.dob, email = excluded.email, house = excluded.house,
			tutor_group = excluded.tutor_group, gender = excluded.gender, year_group = excluded.year_group`,
		r.ID, r.FName, r.Surname, r.AgeGroup, r.Block, r.DOB, r.Email, r.House, r.TutorGroup, r.Gender, r.YearGroup,
	)
	return err
}

func (s *SQLStore) putActivity(ctx context.Context, tx *sql.Tx, r activityRow) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO activities (id, name, category, category_id, location, max_capacity, description, data_ai_hint)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, category = excluded.category, category_id = excluded.category_id,
			location = excluded.location, max_capacity = excluded.max_capacity,
			description = excluded.description, data_ai_hint = excluded.data_ai_hint`,
		r.ID, r.Name, r.Category, r.CategoryID, r.Location, r.MaxCapacity, r.Description, r.DataAIHint,
	)
	return err
}

func (s *SQLStore) putSession(ctx context.Context, tx *sql.Tx, r sessionRow) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (id, activity_id, activity, day, start_time, end_time, category, type,
		                      age_group, group_name, location, max_capacity, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			activity_id = excluded.activity_id, activity = excluded.activity, day = excluded.day,
			start_time = excluded.start_time, end_time = excluded.end_time, category = excluded.category,
			type = excluded.type, age_group = excluded.age_group, group_name = excluded.group_name,
			location = excluded.location, max_capacity = excluded.max_capacity, description = excluded.description`,
		r.ID, r.ActivityID, r.Activity, r.Day, r.Start, r.End, r.Category, r.Type,
		r.AgeGroup, r.Group, r.Location, r.MaxCapacity, r.Description,
	)
	return err
}

func replaceSelections(ctx context.Context, tx *sql.Tx, studentID string, sel sportselect.StudentSelection) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM selections WHERE student_id = ?`, studentID); err != nil {
		return fmt.Errorf("clearing selections: %w", err)
	}
	for _, sportID := range sel.IDs() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO selections (student_id, sport_id) VALUES (?, ?)`, studentID, sportID,
		); err != nil {
			return fmt.Errorf("inserting selection %s: %w", sportID, err)
		}
	}
	return nil
}
