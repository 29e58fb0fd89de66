package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
// Rule-group columns are stored as JSON; a row whose trigger fails to
// parse is loaded with a nil trigger, which the evaluator treats as
// never-matching, so one bad content row cannot break a profile build.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

func (r *SQLiteCatalogRepo) Load(ctx context.Context) (*domain.Catalog, error) {
	var c domain.Catalog
	var err error

	if c.Priorities, err = r.loadPriorities(ctx); err != nil {
		return nil, err
	}
	if c.Watchlist, err = r.loadWatchlist(ctx); err != nil {
		return nil, err
	}
	if c.Actions, err = r.loadActions(ctx); err != nil {
		return nil, err
	}
	if c.Suggestions, err = r.loadSuggestions(ctx); err != nil {
		return nil, err
	}
	if c.Questions, err = r.loadQuestions(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteCatalogRepo) loadPriorities(ctx context.Context) ([]domain.Priority, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, why, tags FROM catalog_priorities ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog priorities: %w", err)
	}
	defer rows.Close()

	var out []domain.Priority
	for rows.Next() {
		var p domain.Priority
		var tags string
		if err := rows.Scan(&p.ID, &p.Title, &p.Why, &tags); err != nil {
			return nil, fmt.Errorf("scanning catalog priority: %w", err)
		}
		for _, t := range unmarshalList(tags) {
			p.Tags = append(p.Tags, domain.Tag(t))
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogRepo) loadWatchlist(ctx context.Context) ([]domain.WatchlistItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, consequence, trigger FROM catalog_watchlist ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog watchlist: %w", err)
	}
	defer rows.Close()

	var out []domain.WatchlistItem
	for rows.Next() {
		var w domain.WatchlistItem
		var trigger []byte
		if err := rows.Scan(&w.ID, &w.Title, &w.Consequence, &trigger); err != nil {
			return nil, fmt.Errorf("scanning watchlist item: %w", err)
		}
		w.When = parseRuleGroup(trigger)
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogRepo) loadActions(ctx context.Context) ([]domain.RecurringAction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, frequency, note FROM catalog_actions ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog actions: %w", err)
	}
	defer rows.Close()

	var out []domain.RecurringAction
	for rows.Next() {
		var a domain.RecurringAction
		var freq string
		if err := rows.Scan(&a.ID, &a.Title, &freq, &a.Note); err != nil {
			return nil, fmt.Errorf("scanning recurring action: %w", err)
		}
		a.Frequency = domain.Frequency(freq)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogRepo) loadSuggestions(ctx context.Context) ([]domain.SuggestionRule, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, value, trigger FROM catalog_suggestions ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog suggestions: %w", err)
	}
	defer rows.Close()

	var out []domain.SuggestionRule
	for rows.Next() {
		var s domain.SuggestionRule
		var trigger []byte
		if err := rows.Scan(&s.ID, &s.Value, &trigger); err != nil {
			return nil, fmt.Errorf("scanning suggestion rule: %w", err)
		}
		s.When = parseRuleGroup(trigger)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogRepo) loadQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, prompt, tags FROM catalog_questions ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog questions: %w", err)
	}
	defer rows.Close()

	var out []domain.Question
	for rows.Next() {
		var q domain.Question
		var tags string
		if err := rows.Scan(&q.ID, &q.Prompt, &tags); err != nil {
			return nil, fmt.Errorf("scanning catalog question: %w", err)
		}
		for _, t := range unmarshalList(tags) {
			q.Tags = append(q.Tags, domain.Tag(t))
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// ReplaceAll swaps the full catalog content. Callers run it inside a
// UnitOfWork so a half-written reload never becomes visible.
func (r *SQLiteCatalogRepo) ReplaceAll(ctx context.Context, c *domain.Catalog) error {
	for _, table := range []string{
		"catalog_priorities", "catalog_watchlist", "catalog_actions",
		"catalog_suggestions", "catalog_questions",
	} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, p := range c.Priorities {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO catalog_priorities (id, title, why, tags, sort_order) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Why, marshalList(tagsToStrings(p.Tags)), i)
		if err != nil {
			return fmt.Errorf("inserting catalog priority %s: %w", p.ID, err)
		}
	}
	for i, w := range c.Watchlist {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO catalog_watchlist (id, title, consequence, trigger, sort_order) VALUES (?, ?, ?, ?, ?)`,
			w.ID, w.Title, w.Consequence, marshalRuleGroup(w.When), i)
		if err != nil {
			return fmt.Errorf("inserting watchlist item %s: %w", w.ID, err)
		}
	}
	for i, a := range c.Actions {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO catalog_actions (id, title, frequency, note, sort_order) VALUES (?, ?, ?, ?, ?)`,
			a.ID, a.Title, string(a.Frequency), a.Note, i)
		if err != nil {
			return fmt.Errorf("inserting recurring action %s: %w", a.ID, err)
		}
	}
	for i, s := range c.Suggestions {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO catalog_suggestions (id, value, trigger, sort_order) VALUES (?, ?, ?, ?)`,
			s.ID, s.Value, marshalRuleGroup(s.When), i)
		if err != nil {
			return fmt.Errorf("inserting suggestion rule %s: %w", s.ID, err)
		}
	}
	for i, q := range c.Questions {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO catalog_questions (id, prompt, tags, sort_order) VALUES (?, ?, ?, ?)`,
			q.ID, q.Prompt, marshalList(tagsToStrings(q.Tags)), i)
		if err != nil {
			return fmt.Errorf("inserting catalog question %s: %w", q.ID, err)
		}
	}
	return nil
}

func tagsToStrings(tags []domain.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

// parseRuleGroup decodes a trigger column. NULL, empty, or malformed JSON
// yields nil, which the evaluator treats as never-matching.
func parseRuleGroup(raw []byte) *domain.RuleGroup {
	if len(raw) == 0 {
		return nil
	}
	var g domain.RuleGroup
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil
	}
	return &g
}

// marshalRuleGroup encodes a trigger for storage; nil stores as SQL NULL.
func marshalRuleGroup(g *domain.RuleGroup) any {
	if g == nil {
		return nil
	}
	b, err := json.Marshal(g)
	if err != nil {
		return nil
	}
	return string(b)
}
