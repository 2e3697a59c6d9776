package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/devnexus/devnexus/internal/submit"
	"github.com/google/uuid"
)

// Draft is an unfinished wizard form saved for later.
type Draft struct {
	ID        string
	Owner     string
	Form      submit.Form
	UpdatedAt time.Time
}

// Title is the draft's project title, or "Untitled draft".
func (d Draft) Title() string {
	if d.Form.Title == "" {
		return "Untitled draft"
	}
	return d.Form.Title
}

// SaveDraft inserts or replaces a draft. An empty ID gets a new one, which
// is returned.
func (s *Store) SaveDraft(ctx context.Context, d Draft) (string, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	body, err := json.Marshal(d.Form)
	if err != nil {
		return "", fmt.Errorf("marshaling draft: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (id, owner, title, body, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner = excluded.owner, title = excluded.title,
			body = excluded.body, updated_at = excluded.updated_at
	`, d.ID, d.Owner, d.Title(), string(body), formatTime(s.now()))
	if err != nil {
		return "", fmt.Errorf("saving draft: %w", err)
	}
	return d.ID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraft(row rowScanner) (Draft, error) {
	var (
		d       Draft
		title   string
		body    string
		updated string
	)
	if err := row.Scan(&d.ID, &d.Owner, &title, &body, &updated); err != nil {
		return Draft{}, err
	}
	if err := json.Unmarshal([]byte(body), &d.Form); err != nil {
		return Draft{}, fmt.Errorf("decoding draft %s: %w", d.ID, err)
	}
	t, err := parseTime(updated)
	if err != nil {
		return Draft{}, err
	}
	d.UpdatedAt = t
	return d, nil
}

// GetDraft loads one draft.
func (s *Store) GetDraft(ctx context.Context, id string) (Draft, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, owner, title, body, updated_at FROM drafts WHERE id = ?
	`, id)
	d, err := scanDraft(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Draft{}, fmt.Errorf("%w: draft %s", ErrNotFound, id)
	}
	return d, err
}

// ListDrafts returns the owner's drafts, most recently updated first.
func (s *Store) ListDrafts(ctx context.Context, owner string) ([]Draft, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner, title, body, updated_at FROM drafts
		WHERE owner = ?
		ORDER BY updated_at DESC, id
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var drafts []Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

// DeleteDraft removes a draft, typically once it has been submitted.
func (s *Store) DeleteDraft(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: draft %s", ErrNotFound, id)
	}
	return nil
}
