package db

import (
	"context"
	"database/sql"
	"time"
)

// Translation is a cached machine translation of one source value. Re-runs
// over the same name list hit the cache instead of the model.
type Translation struct {
	ID         int64
	Source     string
	Translated string
	Note       sql.NullString
	Provider   string
	Model      string
	CreatedAt  time.Time
}

type CreateTranslationParams struct {
	Source     string
	Translated string
	Note       sql.NullString
	Provider   string
	Model      string
}

// Repository defines the translation-cache operations. Both the SQLite and
// the PostgreSQL backend implement it.
type Repository interface {
	CreateTranslation(ctx context.Context, arg CreateTranslationParams) (Translation, error)
	GetTranslation(ctx context.Context, source string) (Translation, error)
	GetTranslations(ctx context.Context, sources []string) ([]Translation, error)
	DeleteOldTranslations(ctx context.Context, before time.Time) (int64, error)

	Close() error
}
