package source

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/pixel-spin/question"
)

// Schema is the table layout the SQLite source reads from
const Schema = `
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text_primary TEXT NOT NULL,
    text_secondary TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    category TEXT
);
`

const selectQuestions = `
SELECT text_primary, text_secondary, icon, COALESCE(category, '')
FROM questions
ORDER BY id
`

// SQLiteStore reads the deck from a SQLite database
type SQLiteStore struct {
	path string
}

// NewSQLite creates a source over the database at path
func NewSQLite(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Fetch opens the database, reads every question and closes it again
func (s *SQLiteStore) Fetch(ctx context.Context) ([]question.Item, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", s.path)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectQuestions)
	if err != nil {
		return nil, errors.Wrap(err, "query questions")
	}
	defer rows.Close()

	var items []question.Item
	for rows.Next() {
		var it question.Item
		if err := rows.Scan(&it.Primary, &it.Secondary, &it.Icon, &it.Category); err != nil {
			return nil, errors.Wrap(err, "scan question")
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate questions")
	}
	return items, nil
}

// Seed creates the schema in db and inserts items, used by tooling and tests
func Seed(ctx context.Context, db *sql.DB, items []question.Item) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return errors.Wrap(err, "create schema")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO questions (text_primary, text_secondary, icon, category) VALUES (?, ?, ?, NULLIF(?, ''))`)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.ExecContext(ctx, it.Primary, it.Secondary, it.Icon, it.Category); err != nil {
			return errors.Wrapf(err, "insert %q", it.Primary)
		}
	}
	return errors.Wrap(tx.Commit(), "commit")
}
