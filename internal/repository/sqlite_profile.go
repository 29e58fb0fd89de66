package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// Profiles store the full composed snapshot as a JSON blob plus a few
// indexed scalar columns for listing and filtering.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Save(ctx context.Context, p *domain.Profile) error {
	snapshot, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile snapshot: %w", err)
	}
	query := `INSERT INTO profiles (id, user_id, version, confidence, created_at, snapshot)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Version, p.Confidence,
		p.CreatedAt.UTC().Format(time.RFC3339), string(snapshot))
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetLatest(ctx context.Context, userID string) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT snapshot FROM profiles WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`, userID)

	var snapshot string
	if err := row.Scan(&snapshot); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	return decodeProfile(snapshot)
}

func (r *SQLiteProfileRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Profile, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT snapshot FROM profiles WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	var out []*domain.Profile
	for rows.Next() {
		var snapshot string
		if err := rows.Scan(&snapshot); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		p, err := decodeProfile(snapshot)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func decodeProfile(snapshot string) (*domain.Profile, error) {
	var p domain.Profile
	if err := json.Unmarshal([]byte(snapshot), &p); err != nil {
		return nil, fmt.Errorf("decoding profile snapshot: %w", err)
	}
	return &p, nil
}
