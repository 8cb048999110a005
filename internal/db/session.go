package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// LoadSession returns the most recently updated session with its media list
// in position order. It returns ErrNotFound when none exists.
func LoadSession(db *sql.DB) (*model.Session, error) {
	var s model.Session
	var createdAt, updatedAt string
	err := db.QueryRow(
		`SELECT id, trail_id, name_en, description_en, name_he, description_he, created_at, updated_at
		 FROM sessions ORDER BY updated_at DESC LIMIT 1`,
	).Scan(
		&s.ID, &s.Trail.TrailID, &s.Trail.NameEn, &s.Trail.DescriptionEn,
		&s.Trail.NameHe, &s.Trail.DescriptionHe, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}

	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing session created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing session updated_at: %w", err)
	}

	rows, err := db.Query(
		`SELECT media_id, type, url, description_en, description_he
		 FROM media_items WHERE session_id = ? ORDER BY position`,
		s.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying media: %w", err)
	}
	defer rows.Close()

	s.Media = []model.MediaRecord{}
	for rows.Next() {
		var r model.MediaRecord
		var mediaType string
		if err := rows.Scan(&r.ID, &mediaType, &r.URL, &r.DescriptionEn, &r.DescriptionHe); err != nil {
			return nil, fmt.Errorf("scanning media row: %w", err)
		}
		r.Type = model.MediaType(mediaType)
		s.Media = append(s.Media, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating media rows: %w", err)
	}

	return &s, nil
}

// CreateSession stores a new, empty session and returns it.
func CreateSession(db *sql.DB, changedBy string) (*model.Session, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	s, err := insertSession(tx)
	if err != nil {
		return nil, err
	}
	if err := RecordActivity(tx, s.ID, "created", "", changedBy); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing session: %w", err)
	}
	return s, nil
}

func insertSession(tx *sql.Tx) (*model.Session, error) {
	now := time.Now().UTC().Truncate(time.Second)
	stamp := now.Format(time.RFC3339)
	s := &model.Session{
		ID:        uuid.NewString(),
		Media:     []model.MediaRecord{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := tx.Exec(
		`INSERT INTO sessions (id, created_at, updated_at) VALUES (?, ?, ?)`,
		s.ID, stamp, stamp,
	); err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}
	return s, nil
}

// EnsureSession loads the current session, creating one on first use.
func EnsureSession(db *sql.DB, changedBy string) (*model.Session, error) {
	s, err := LoadSession(db)
	if errors.Is(err, ErrNotFound) {
		return CreateSession(db, changedBy)
	}
	return s, err
}

// SaveSession replaces the stored trail scalars and media list of s with its
// in-memory state and logs action, all in one transaction. On success
// s.UpdatedAt is advanced.
func SaveSession(db *sql.DB, s *model.Session, action, detail, changedBy string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)
	res, err := tx.Exec(
		`UPDATE sessions
		 SET trail_id = ?, name_en = ?, description_en = ?, name_he = ?, description_he = ?, updated_at = ?
		 WHERE id = ?`,
		s.Trail.TrailID, s.Trail.NameEn, s.Trail.DescriptionEn,
		s.Trail.NameHe, s.Trail.DescriptionHe, now.Format(time.RFC3339), s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", s.ID, ErrNotFound)
	}

	if _, err := tx.Exec(`DELETE FROM media_items WHERE session_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing media: %w", err)
	}

	for i, r := range s.Media {
		if _, err := tx.Exec(
			`INSERT INTO media_items (session_id, position, media_id, type, url, description_en, description_he)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.ID, i, r.ID, string(r.Type), r.URL, r.DescriptionEn, r.DescriptionHe,
		); err != nil {
			return fmt.Errorf("inserting media at position %d: %w", i, err)
		}
	}

	if err := RecordActivity(tx, s.ID, action, detail, changedBy); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}
	s.UpdatedAt = now
	return nil
}

// ResetSession deletes every stored session and starts a fresh one.
// Activity history is kept.
func ResetSession(db *sql.DB, changedBy string) (*model.Session, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sessions`); err != nil {
		return nil, fmt.Errorf("deleting sessions: %w", err)
	}

	s, err := insertSession(tx)
	if err != nil {
		return nil, err
	}
	if err := RecordActivity(tx, s.ID, "reset", "", changedBy); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing reset: %w", err)
	}
	return s, nil
}
