package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteCadenceRepo implements CadenceRepo using a SQLite database.
type SQLiteCadenceRepo struct {
	db db.DBTX
}

// NewSQLiteCadenceRepo creates a new SQLiteCadenceRepo.
func NewSQLiteCadenceRepo(conn db.DBTX) *SQLiteCadenceRepo {
	return &SQLiteCadenceRepo{db: conn}
}

// weekOrder sorts cadence blocks Monday-first regardless of string order.
const weekOrder = `CASE day
	WHEN 'monday' THEN 0 WHEN 'tuesday' THEN 1 WHEN 'wednesday' THEN 2
	WHEN 'thursday' THEN 3 WHEN 'friday' THEN 4 WHEN 'saturday' THEN 5
	ELSE 6 END`

func (r *SQLiteCadenceRepo) List(ctx context.Context, userID string) ([]domain.CadenceBlock, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, day, theme, minutes, updated_at FROM cadence_blocks
		WHERE user_id = ? ORDER BY `+weekOrder, userID)
	if err != nil {
		return nil, fmt.Errorf("querying cadence blocks: %w", err)
	}
	defer rows.Close()

	var out []domain.CadenceBlock
	for rows.Next() {
		var b domain.CadenceBlock
		var day, updatedAt string
		if err := rows.Scan(&b.UserID, &day, &b.Theme, &b.Minutes, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning cadence block: %w", err)
		}
		b.Day = domain.CadenceDay(day)
		b.UpdatedAt = parseTime(updatedAt)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *SQLiteCadenceRepo) Upsert(ctx context.Context, b *domain.CadenceBlock) error {
	query := `INSERT OR REPLACE INTO cadence_blocks (user_id, day, theme, minutes, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.UserID, string(b.Day), b.Theme, b.Minutes, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting cadence block: %w", err)
	}
	return nil
}

func (r *SQLiteCadenceRepo) Delete(ctx context.Context, userID string, day domain.CadenceDay) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cadence_blocks WHERE user_id = ? AND day = ?`, userID, string(day))
	if err != nil {
		return fmt.Errorf("deleting cadence block: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking cadence delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("cadence block %s/%s: %w", userID, day, ErrNotFound)
	}
	return nil
}
