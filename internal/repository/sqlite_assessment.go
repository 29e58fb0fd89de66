package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssessmentRepo creates a new SQLiteAssessmentRepo.
func NewSQLiteAssessmentRepo(conn db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: conn}
}

func (r *SQLiteAssessmentRepo) Get(ctx context.Context, userID string) (*domain.AssessmentResult, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, score, band, taken_at FROM assessment_results WHERE user_id = ?`, userID)

	var res domain.AssessmentResult
	var band, takenAt string
	err := row.Scan(&res.UserID, &res.Score, &band, &takenAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}
	res.Band = domain.AssessmentBand(band)
	res.TakenAt = parseTime(takenAt)
	return &res, nil
}

func (r *SQLiteAssessmentRepo) Upsert(ctx context.Context, res *domain.AssessmentResult) error {
	query := `INSERT OR REPLACE INTO assessment_results (user_id, score, band, taken_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		res.UserID, res.Score, string(res.Band),
		res.TakenAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting assessment: %w", err)
	}
	return nil
}
