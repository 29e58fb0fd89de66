package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteEvidenceRepo implements EvidenceRepo using a SQLite database.
type SQLiteEvidenceRepo struct {
	db db.DBTX
}

// NewSQLiteEvidenceRepo creates a new SQLiteEvidenceRepo.
func NewSQLiteEvidenceRepo(conn db.DBTX) *SQLiteEvidenceRepo {
	return &SQLiteEvidenceRepo{db: conn}
}

func (r *SQLiteEvidenceRepo) List(ctx context.Context, userID string) ([]domain.EvidenceItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, key, label, required, done FROM evidence_items
		WHERE user_id = ? ORDER BY key`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying evidence items: %w", err)
	}
	defer rows.Close()

	var out []domain.EvidenceItem
	for rows.Next() {
		var item domain.EvidenceItem
		var required, done int
		if err := rows.Scan(&item.UserID, &item.Key, &item.Label, &required, &done); err != nil {
			return nil, fmt.Errorf("scanning evidence item: %w", err)
		}
		item.Required = intToBool(required)
		item.Done = intToBool(done)
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteEvidenceRepo) Upsert(ctx context.Context, item *domain.EvidenceItem) error {
	query := `INSERT OR REPLACE INTO evidence_items (user_id, key, label, required, done, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.UserID, item.Key, item.Label,
		boolToInt(item.Required), boolToInt(item.Done), nowUTC())
	if err != nil {
		return fmt.Errorf("upserting evidence item: %w", err)
	}
	return nil
}

func (r *SQLiteEvidenceRepo) SetDone(ctx context.Context, userID, key string, done bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE evidence_items SET done = ?, updated_at = ? WHERE user_id = ? AND key = ?`,
		boolToInt(done), nowUTC(), userID, key)
	if err != nil {
		return fmt.Errorf("updating evidence item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking evidence update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("evidence item %s/%s: %w", userID, key, ErrNotFound)
	}
	return nil
}
