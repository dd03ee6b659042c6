package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestTranslationCacheCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTranslation(ctx, db.CreateTranslationParams{
		Source:     "山田太郎",
		Translated: "Yamada Taro",
		Provider:   "anthropic",
		Model:      "claude-haiku",
	})
	require.NoError(t, err)
	assert.Equal(t, "山田太郎", created.Source)
	assert.Equal(t, "Yamada Taro", created.Translated)
	assert.False(t, created.Note.Valid)

	got, err := repo.GetTranslation(ctx, "山田太郎")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetTranslation(ctx, "unknown")
	assert.True(t, db.IsNoRows(err))
}

func TestCreateTranslationUpsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateTranslation(ctx, db.CreateTranslationParams{
		Source:     "東京",
		Translated: "Tokio",
		Provider:   "google",
		Model:      "gemini-2.0-flash",
	})
	require.NoError(t, err)

	updated, err := repo.CreateTranslation(ctx, db.CreateTranslationParams{
		Source:     "東京",
		Translated: "Tokyo",
		Note:       sql.NullString{String: "capital city", Valid: true},
		Provider:   "google",
		Model:      "gemini-2.0-flash",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", updated.Translated)
	assert.Equal(t, "capital city", updated.Note.String)

	all, err := repo.GetTranslations(ctx, []string{"東京"})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetTranslationsBatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, s := range []string{"一", "二", "三"} {
		_, err := repo.CreateTranslation(ctx, db.CreateTranslationParams{
			Source:     s,
			Translated: "n",
			Provider:   "anthropic",
			Model:      "claude-haiku",
		})
		require.NoError(t, err)
	}

	got, err := repo.GetTranslations(ctx, []string{"一", "三", "四"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := repo.GetTranslations(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// An in-memory database lives on a single driver connection; concurrent
// readers must not cause the pool to dial a second, empty one.
func TestMemoryCacheConcurrentAccess(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateTranslation(ctx, db.CreateTranslationParams{
		Source:     "共有",
		Translated: "shared",
		Provider:   "anthropic",
		Model:      "claude-haiku",
	})
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 25; j++ {
				if _, err := repo.GetTranslation(ctx, "共有"); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDeleteOldTranslations(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateTranslation(ctx, db.CreateTranslationParams{
		Source:     "古い",
		Translated: "old",
		Provider:   "anthropic",
		Model:      "claude-haiku",
	})
	require.NoError(t, err)

	deleted, err := repo.DeleteOldTranslations(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetTranslation(ctx, "古い")
	assert.True(t, db.IsNoRows(err))
}
