package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// execer abstracts *sql.DB and *sql.Tx for executing statements.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// RecordActivity logs an action applied to a session.
func RecordActivity(ex execer, sessionID, action, detail, changedBy string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := ex.Exec(
		`INSERT INTO activity_log (session_id, action, detail, changed_by, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sessionID, action, detail, changedBy, now,
	)
	if err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	return nil
}

// GetActivity returns activity entries across all sessions, most recent
// first. A limit of zero or less returns everything.
func GetActivity(db *sql.DB, limit int) ([]model.Activity, error) {
	query := `SELECT id, session_id, action, detail, changed_by, created_at
	          FROM activity_log
	          ORDER BY created_at DESC, id DESC`
	var args []any

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying activity: %w", err)
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		var detail, changedBy sql.NullString
		var createdAt string
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Action, &detail, &changedBy, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		a.Detail = detail.String
		a.ChangedBy = changedBy.String

		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing activity created_at: %w", err)
		}
		a.CreatedAt = t

		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity rows: %w", err)
	}

	return activities, nil
}
