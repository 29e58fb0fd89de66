package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the whole
// slice re-runs on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS intakes (
		user_id            TEXT PRIMARY KEY,
		entity_legal_form  TEXT NOT NULL DEFAULT '',
		tax_classification TEXT NOT NULL DEFAULT '',
		state_codes        TEXT NOT NULL DEFAULT '[]',
		industry           TEXT NOT NULL DEFAULT '',
		revenue_bracket    TEXT NOT NULL DEFAULT '',
		payroll_w2_bracket TEXT NOT NULL DEFAULT '',
		has_inventory      INTEGER NOT NULL DEFAULT 0,
		multi_state        INTEGER NOT NULL DEFAULT 0,
		international      INTEGER NOT NULL DEFAULT 0,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_priorities (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		why        TEXT NOT NULL DEFAULT '',
		tags       TEXT NOT NULL DEFAULT '[]',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_watchlist (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		consequence TEXT NOT NULL DEFAULT '',
		trigger     TEXT,
		sort_order  INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_actions (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		frequency  TEXT NOT NULL DEFAULT '',
		note       TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_suggestions (
		id         TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		trigger    TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_questions (
		id         TEXT PRIMARY KEY,
		prompt     TEXT NOT NULL,
		tags       TEXT NOT NULL DEFAULT '[]',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS evidence_items (
		user_id    TEXT NOT NULL,
		key        TEXT NOT NULL,
		label      TEXT NOT NULL DEFAULT '',
		required   INTEGER NOT NULL DEFAULT 1,
		done       INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, key)
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		version    TEXT NOT NULL,
		confidence INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		snapshot   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_profiles_user_created ON profiles(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS memos (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		topic      TEXT NOT NULL,
		version    INTEGER NOT NULL,
		title      TEXT NOT NULL,
		best_fit   TEXT NOT NULL DEFAULT '',
		confidence INTEGER NOT NULL DEFAULT 0,
		body       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (user_id, topic, version)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_memos_user_topic ON memos(user_id, topic)`,

	`CREATE TABLE IF NOT EXISTS offers (
		user_id      TEXT PRIMARY KEY,
		name         TEXT NOT NULL DEFAULT '',
		promise      TEXT NOT NULL DEFAULT '',
		price_usd    INTEGER NOT NULL DEFAULT 0,
		deliverables TEXT NOT NULL DEFAULT '[]',
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS cadence_blocks (
		user_id    TEXT NOT NULL,
		day        TEXT NOT NULL
		           CHECK(day IN ('monday','tuesday','wednesday','thursday','friday','saturday','sunday')),
		theme      TEXT NOT NULL DEFAULT '',
		minutes    INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS sops (
		user_id    TEXT NOT NULL,
		slug       TEXT NOT NULL,
		title      TEXT NOT NULL DEFAULT '',
		steps      TEXT NOT NULL DEFAULT '[]',
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, slug)
	)`,

	`CREATE TABLE IF NOT EXISTS money_splits (
		user_id       TEXT PRIMARY KEY,
		owner_pay_pct INTEGER NOT NULL DEFAULT 0,
		tax_pct       INTEGER NOT NULL DEFAULT 0,
		profit_pct    INTEGER NOT NULL DEFAULT 0,
		opex_pct      INTEGER NOT NULL DEFAULT 0,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assessment_results (
		user_id  TEXT PRIMARY KEY,
		score    INTEGER NOT NULL DEFAULT 0,
		band     TEXT NOT NULL DEFAULT 'foundation'
		         CHECK(band IN ('foundation','building','scaling')),
		taken_at TEXT NOT NULL
	)`,
}
