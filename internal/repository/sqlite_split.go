package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteMoneySplitRepo implements MoneySplitRepo using a SQLite database.
type SQLiteMoneySplitRepo struct {
	db db.DBTX
}

// NewSQLiteMoneySplitRepo creates a new SQLiteMoneySplitRepo.
func NewSQLiteMoneySplitRepo(conn db.DBTX) *SQLiteMoneySplitRepo {
	return &SQLiteMoneySplitRepo{db: conn}
}

func (r *SQLiteMoneySplitRepo) Get(ctx context.Context, userID string) (*domain.MoneySplit, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, owner_pay_pct, tax_pct, profit_pct, opex_pct, updated_at
		FROM money_splits WHERE user_id = ?`, userID)

	var m domain.MoneySplit
	var updatedAt string
	err := row.Scan(&m.UserID, &m.OwnerPayPct, &m.TaxPct, &m.ProfitPct, &m.OpexPct, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("money split for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning money split: %w", err)
	}
	m.UpdatedAt = parseTime(updatedAt)
	return &m, nil
}

func (r *SQLiteMoneySplitRepo) Upsert(ctx context.Context, m *domain.MoneySplit) error {
	query := `INSERT OR REPLACE INTO money_splits (user_id, owner_pay_pct, tax_pct, profit_pct, opex_pct, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.UserID, m.OwnerPayPct, m.TaxPct, m.ProfitPct, m.OpexPct, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting money split: %w", err)
	}
	return nil
}
