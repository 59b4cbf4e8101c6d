// Package exportdb is the sqlite-backed catalog of export runs. Each run of
// the compiler records what was written where, so previous exports can be
// listed, reported on, and compared after tuning changes.
package exportdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// NewDB opens (creating if necessary) the catalog at path and brings its
// schema up to date.
func NewDB(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db := &DB{sqlDB}
	if err := db.MigrateUp(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("exportdb: migrate %s: %w", path, err)
	}
	return db, nil
}

// Run is one catalogued export.
type Run struct {
	ID          string
	Project     string
	OutputPath  string
	Profile     string
	FormatCode  int
	FrameCount  int
	TotalPoints int
	OuterFrames int
	Complete    bool
	CreatedAt   time.Time
}

// RecordRun inserts a run and its per-frame point counts in one
// transaction, returning the generated run id.
func (db *DB) RecordRun(run Run, pointsPerFrame []int) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO export_runs
			(run_id, project, output_path, profile, format_code,
			 frame_count, total_points, outer_frames, complete)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Project, run.OutputPath, run.Profile, run.FormatCode,
		run.FrameCount, run.TotalPoints, run.OuterFrames, boolToInt(run.Complete))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for i, n := range pointsPerFrame {
		if _, err := tx.Exec(`
			INSERT INTO frame_points (run_id, frame_index, points)
			VALUES (?, ?, ?)`, run.ID, i, n); err != nil {
			return "", fmt.Errorf("insert frame %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return run.ID, nil
}

// GetRun loads one run by id.
func (db *DB) GetRun(id string) (*Run, error) {
	row := db.QueryRow(`
		SELECT run_id, project, output_path, profile, format_code,
		       frame_count, total_points, outer_frames, complete, created_at
		FROM export_runs WHERE run_id = ?`, id)

	var run Run
	var complete int
	if err := row.Scan(&run.ID, &run.Project, &run.OutputPath, &run.Profile,
		&run.FormatCode, &run.FrameCount, &run.TotalPoints, &run.OuterFrames,
		&complete, &run.CreatedAt); err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	run.Complete = complete != 0
	return &run, nil
}

// ListRuns returns all runs, newest first.
func (db *DB) ListRuns() ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, project, output_path, profile, format_code,
		       frame_count, total_points, outer_frames, complete, created_at
		FROM export_runs ORDER BY created_at DESC, run_id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var complete int
		if err := rows.Scan(&run.ID, &run.Project, &run.OutputPath, &run.Profile,
			&run.FormatCode, &run.FrameCount, &run.TotalPoints, &run.OuterFrames,
			&complete, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Complete = complete != 0
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FramePoints returns the per-frame point counts of a run in frame order.
func (db *DB) FramePoints(runID string) ([]int, error) {
	rows, err := db.Query(`
		SELECT points FROM frame_points
		WHERE run_id = ? ORDER BY frame_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("frame points for %s: %w", runID, err)
	}
	defer rows.Close()

	var counts []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan frame points: %w", err)
		}
		counts = append(counts, n)
	}
	return counts, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
