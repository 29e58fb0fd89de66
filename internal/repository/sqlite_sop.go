package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteSOPRepo implements SOPRepo using a SQLite database.
type SQLiteSOPRepo struct {
	db db.DBTX
}

// NewSQLiteSOPRepo creates a new SQLiteSOPRepo.
func NewSQLiteSOPRepo(conn db.DBTX) *SQLiteSOPRepo {
	return &SQLiteSOPRepo{db: conn}
}

func (r *SQLiteSOPRepo) Get(ctx context.Context, userID, slug string) (*domain.SOPDoc, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, slug, title, steps, updated_at FROM sops
		WHERE user_id = ? AND slug = ?`, userID, slug)
	s, err := scanSOP(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("sop %s/%s: %w", userID, slug, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning sop: %w", err)
	}
	return s, nil
}

func (r *SQLiteSOPRepo) List(ctx context.Context, userID string) ([]*domain.SOPDoc, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, slug, title, steps, updated_at FROM sops
		WHERE user_id = ? ORDER BY slug`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying sops: %w", err)
	}
	defer rows.Close()

	var out []*domain.SOPDoc
	for rows.Next() {
		s, err := scanSOP(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning sop row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSOP(scan func(...any) error) (*domain.SOPDoc, error) {
	var s domain.SOPDoc
	var steps, updatedAt string
	if err := scan(&s.UserID, &s.Slug, &s.Title, &steps, &updatedAt); err != nil {
		return nil, err
	}
	s.Steps = unmarshalList(steps)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

func (r *SQLiteSOPRepo) Upsert(ctx context.Context, s *domain.SOPDoc) error {
	query := `INSERT OR REPLACE INTO sops (user_id, slug, title, steps, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.UserID, s.Slug, s.Title, marshalList(s.Steps), nowUTC())
	if err != nil {
		return fmt.Errorf("upserting sop: %w", err)
	}
	return nil
}

func (r *SQLiteSOPRepo) Delete(ctx context.Context, userID, slug string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sops WHERE user_id = ? AND slug = ?`, userID, slug)
	if err != nil {
		return fmt.Errorf("deleting sop: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking sop delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("sop %s/%s: %w", userID, slug, ErrNotFound)
	}
	return nil
}
