package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using PostgreSQL via pgx. It is the
// backend to pick when several machines share one translation cache.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new PostgreSQL repository and ensures the schema exists.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes pgxpool statistics for the metrics exporter.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) CreateTranslation(ctx context.Context, arg db.CreateTranslationParams) (db.Translation, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO translations (source, translated, note, provider, model)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (source) DO UPDATE SET
			translated = EXCLUDED.translated,
			note = EXCLUDED.note,
			provider = EXCLUDED.provider,
			model = EXCLUDED.model,
			created_at = now()
		RETURNING id, source, translated, note, provider, model, created_at
	`, arg.Source, arg.Translated, arg.Note, arg.Provider, arg.Model)

	return scanTranslation(row)
}

func (r *Repository) GetTranslation(ctx context.Context, source string) (db.Translation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, source, translated, note, provider, model, created_at
		FROM translations
		WHERE source = $1
	`, source)

	return scanTranslation(row)
}

func (r *Repository) GetTranslations(ctx context.Context, sources []string) ([]db.Translation, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, source, translated, note, provider, model, created_at
		FROM translations
		WHERE source = ANY($1)
	`, sources)
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
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM translations WHERE created_at < $1
	`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanTranslation(row pgx.Row) (db.Translation, error) {
	var t db.Translation
	err := row.Scan(&t.ID, &t.Source, &t.Translated, &t.Note, &t.Provider, &t.Model, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Translation{}, db.ErrNoRows
	}
	if err != nil {
		return db.Translation{}, err
	}
	return t, nil
}
