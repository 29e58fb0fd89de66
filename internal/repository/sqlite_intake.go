package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteIntakeRepo implements IntakeRepo using a SQLite database.
type SQLiteIntakeRepo struct {
	db db.DBTX
}

// NewSQLiteIntakeRepo creates a new SQLiteIntakeRepo.
func NewSQLiteIntakeRepo(conn db.DBTX) *SQLiteIntakeRepo {
	return &SQLiteIntakeRepo{db: conn}
}

func (r *SQLiteIntakeRepo) Get(ctx context.Context, userID string) (*domain.Intake, error) {
	query := `SELECT user_id, entity_legal_form, tax_classification, state_codes,
		industry, revenue_bracket, payroll_w2_bracket, has_inventory, multi_state, international
		FROM intakes WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var in domain.Intake
	var stateCodes string
	var inventory, multiState, international int
	err := row.Scan(
		&in.UserID,
		&in.EntityLegalForm,
		&in.TaxClassification,
		&stateCodes,
		&in.Industry,
		&in.RevenueBracket,
		&in.PayrollW2Bracket,
		&inventory,
		&multiState,
		&international,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("intake for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning intake: %w", err)
	}
	in.StateCodes = unmarshalList(stateCodes)
	in.HasInventory = intToBool(inventory)
	in.MultiState = intToBool(multiState)
	in.International = intToBool(international)
	return &in, nil
}

func (r *SQLiteIntakeRepo) Upsert(ctx context.Context, in *domain.Intake) error {
	query := `INSERT OR REPLACE INTO intakes (user_id, entity_legal_form, tax_classification,
		state_codes, industry, revenue_bracket, payroll_w2_bracket,
		has_inventory, multi_state, international, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		in.UserID,
		in.EntityLegalForm,
		in.TaxClassification,
		marshalList(in.StateCodes),
		in.Industry,
		in.RevenueBracket,
		in.PayrollW2Bracket,
		boolToInt(in.HasInventory),
		boolToInt(in.MultiState),
		boolToInt(in.International),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting intake: %w", err)
	}
	return nil
}
