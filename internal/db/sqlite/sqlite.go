package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using SQLite.
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository, initializing the schema when the
// database file does not exist yet.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := dbPath == ":memory:"
	if !isNew {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			isNew = true
		}
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// Each driver connection to :memory: is a private database, so the pool
	// must never dial a second one or the schema and data disappear.
	if dbPath == ":memory:" {
		sqliteDB.SetMaxOpenConns(1)
	}

	// WAL improves concurrent read performance while workers share the cache.
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	repo := &Repository{db: sqliteDB}

	if isNew {
		if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
			sqliteDB.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
		slog.Info("created new SQLite translation cache", "path", dbPath)
	}

	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) CreateTranslation(ctx context.Context, arg db.CreateTranslationParams) (db.Translation, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO translations (source, translated, note, provider, model)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (source) DO UPDATE SET
			translated = excluded.translated,
			note = excluded.note,
			provider = excluded.provider,
			model = excluded.model,
			created_at = CURRENT_TIMESTAMP
	`, arg.Source, arg.Translated, arg.Note, arg.Provider, arg.Model)
	if err != nil {
		return db.Translation{}, err
	}

	return r.GetTranslation(ctx, arg.Source)
}

func (r *Repository) GetTranslation(ctx context.Context, source string) (db.Translation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, source, translated, note, provider, model, created_at
		FROM translations
		WHERE source = ?
	`, source)

	var t db.Translation
	err := row.Scan(&t.ID, &t.Source, &t.Translated, &t.Note, &t.Provider, &t.Model, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return db.Translation{}, db.ErrNoRows
	}
	if err != nil {
		return db.Translation{}, err
	}
	return t, nil
}

func (r *Repository) GetTranslations(ctx context.Context, sources []string) ([]db.Translation, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(sources))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, len(sources))
	for i, s := range sources {
		args[i] = s
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source, translated, note, provider, model, created_at
		FROM translations
		WHERE source IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.Translation
	for rows.Next() {
		var t db.Translation
		if err := rows.Scan(&t.ID, &t.Source, &t.Translated, &t.Note, &t.Provider, &t.Model, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repository) DeleteOldTranslations(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM translations WHERE created_at < ?
	`, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
