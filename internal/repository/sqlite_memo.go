package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteMemoRepo implements MemoRepo using a SQLite database. Memos are
// append-only: recomposing a topic writes the next version, never
// overwrites.
type SQLiteMemoRepo struct {
	db db.DBTX
}

// NewSQLiteMemoRepo creates a new SQLiteMemoRepo.
func NewSQLiteMemoRepo(conn db.DBTX) *SQLiteMemoRepo {
	return &SQLiteMemoRepo{db: conn}
}

func (r *SQLiteMemoRepo) Create(ctx context.Context, m *domain.Memo) error {
	query := `INSERT INTO memos (id, user_id, topic, version, title, best_fit, confidence, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.UserID, m.Topic, m.Version, m.Title,
		m.BestFit, m.Confidence, m.Body,
		m.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting memo: %w", err)
	}
	return nil
}

func (r *SQLiteMemoRepo) GetLatest(ctx context.Context, userID, topic string) (*domain.Memo, error) {
	query := `SELECT id, user_id, topic, version, title, best_fit, confidence, body, created_at
		FROM memos WHERE user_id = ? AND topic = ?
		ORDER BY version DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID, topic)

	var m domain.Memo
	var createdAt string
	err := row.Scan(&m.ID, &m.UserID, &m.Topic, &m.Version, &m.Title,
		&m.BestFit, &m.Confidence, &m.Body, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("memo %s/%s: %w", userID, topic, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning memo: %w", err)
	}
	m.CreatedAt = parseTime(createdAt)
	return &m, nil
}

func (r *SQLiteMemoRepo) NextVersion(ctx context.Context, userID, topic string) (int, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM memos WHERE user_id = ? AND topic = ?`,
		userID, topic)
	var max int
	if err := row.Scan(&max); err != nil {
		return 0, fmt.Errorf("reading memo version: %w", err)
	}
	return max + 1, nil
}
