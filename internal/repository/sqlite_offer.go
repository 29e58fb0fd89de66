package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteOfferRepo implements OfferRepo using a SQLite database.
type SQLiteOfferRepo struct {
	db db.DBTX
}

// NewSQLiteOfferRepo creates a new SQLiteOfferRepo.
func NewSQLiteOfferRepo(conn db.DBTX) *SQLiteOfferRepo {
	return &SQLiteOfferRepo{db: conn}
}

func (r *SQLiteOfferRepo) Get(ctx context.Context, userID string) (*domain.OfferDraft, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, name, promise, price_usd, deliverables, updated_at
		FROM offers WHERE user_id = ?`, userID)

	var o domain.OfferDraft
	var deliverables, updatedAt string
	err := row.Scan(&o.UserID, &o.Name, &o.Promise, &o.PriceUSD, &deliverables, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("offer for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning offer: %w", err)
	}
	o.Deliverables = unmarshalList(deliverables)
	o.UpdatedAt = parseTime(updatedAt)
	return &o, nil
}

func (r *SQLiteOfferRepo) Upsert(ctx context.Context, o *domain.OfferDraft) error {
	query := `INSERT OR REPLACE INTO offers (user_id, name, promise, price_usd, deliverables, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.UserID, o.Name, o.Promise, o.PriceUSD,
		marshalList(o.Deliverables), nowUTC())
	if err != nil {
		return fmt.Errorf("upserting offer: %w", err)
	}
	return nil
}
