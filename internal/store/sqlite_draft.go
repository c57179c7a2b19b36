package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

// SaveDraft inserts the draft or replaces the stored one with the same ID.
// created_at is kept from the first save.
func (s *Store) SaveDraft(d Draft) error {
	stmt, err := s.db.Prepare(`
        INSERT INTO drafts (id, user_id, source, format, items, payload, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            source = excluded.source,
            format = excluded.format,
            items = excluded.items,
            payload = excluded.payload,
            updated_at = excluded.updated_at
        WHERE drafts.user_id = excluded.user_id;
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare draft SQL: %w", err)
	}
	defer stmt.Close()

	createdAt := d.CreatedAt
	if createdAt == 0 {
		createdAt = d.UpdatedAt
	}

	res, err := stmt.Exec(d.ID, d.UserID, d.Source, d.Format, d.Items, string(d.Payload), createdAt, d.UpdatedAt)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
			return fmt.Errorf("%w: draft %s", ErrConstraintViolation, d.ID)
		}
		return fmt.Errorf("failed to save draft %s: %w", d.ID, err)
	}

	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("%w: draft %s belongs to another user", ErrConstraintViolation, d.ID)
	}
	return nil
}

func (s *Store) GetDraft(id string) (*Draft, error) {
	row := s.db.QueryRow(`
        SELECT id, user_id, source, format, items, payload, created_at, updated_at
        FROM drafts
        WHERE id = ?
    `, id)

	d, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: draft %s", ErrRecordNotFound, id)
		}
		return nil, fmt.Errorf("failed to query draft: %w", err)
	}
	return d, nil
}

// ListDrafts returns the drafts of userID, most recently updated first.
func (s *Store) ListDrafts(userID string) ([]*Draft, error) {
	rows, err := s.db.Query(`
        SELECT id, user_id, source, format, items, payload, created_at, updated_at
        FROM drafts
        WHERE user_id = ?
        ORDER BY updated_at DESC, id
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		drafts = append(drafts, d)
	}

	return drafts, rows.Err()
}

func (s *Store) DeleteDraft(id string) error {
	res, err := s.db.Exec("DELETE FROM drafts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: draft %s", ErrRecordNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDraft(row scanner) (*Draft, error) {
	d := &Draft{}
	var payload string
	err := row.Scan(&d.ID, &d.UserID, &d.Source, &d.Format, &d.Items, &payload, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.Payload = []byte(payload)
	return d, nil
}
