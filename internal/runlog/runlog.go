// Package runlog records grouping runs in a local sqlite database for
// auditing repeated preset rebuilds.
package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// Entry is one recorded grouping run.
type Entry struct {
	ID          string         `json:"id"`
	Input       string         `json:"input"`
	UniqueNames int            `json:"unique_names"`
	ZoneCounts  map[string]int `json:"zone_counts"`
	Status      string         `json:"status"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at"`
}

// Log provides access to the run log database.
type Log struct {
	db *sql.DB
}

const migration = `
CREATE TABLE IF NOT EXISTS group_runs (
	id           TEXT PRIMARY KEY,
	input        TEXT NOT NULL,
	unique_names INTEGER NOT NULL,
	zone_counts  TEXT NOT NULL,
	status       TEXT NOT NULL,
	started_at   DATETIME NOT NULL,
	completed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_group_runs_started_at ON group_runs(started_at);
`

// Open opens (creating if needed) the run log at the given path and applies
// the schema.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "runlog: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "runlog: exec %s", pragma)
		}
	}
	if _, err := db.Exec(migration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "runlog: migrate")
	}
	return &Log{db: db}, nil
}

func (l *Log) Close() error {
	return l.db.Close()
}

// Record inserts a run entry and returns its generated ID.
func (l *Log) Record(ctx context.Context, e Entry) (string, error) {
	id := uuid.New().String()

	counts, err := json.Marshal(e.ZoneCounts)
	if err != nil {
		return "", eris.Wrap(err, "runlog: marshal zone counts")
	}

	_, err = l.db.ExecContext(ctx,
		`INSERT INTO group_runs (id, input, unique_names, zone_counts, status, started_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, e.Input, e.UniqueNames, string(counts), e.Status,
		e.StartedAt.UTC(), e.CompletedAt.UTC(),
	)
	if err != nil {
		return "", eris.Wrap(err, "runlog: insert run")
	}
	return id, nil
}

// Last returns the most recently started run, or nil if the log is empty.
func (l *Log) Last(ctx context.Context) (*Entry, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT id, input, unique_names, zone_counts, status, started_at, completed_at
		 FROM group_runs ORDER BY started_at DESC LIMIT 1`)

	var e Entry
	var counts string
	err := row.Scan(&e.ID, &e.Input, &e.UniqueNames, &counts, &e.Status, &e.StartedAt, &e.CompletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "runlog: query last run")
	}

	if err := json.Unmarshal([]byte(counts), &e.ZoneCounts); err != nil {
		return nil, eris.Wrap(err, "runlog: unmarshal zone counts")
	}
	return &e, nil
}
