// Package processor runs the batch pipeline: for every value in the chosen
// column it computes the script conversions, and fills the translated
// column either from the phonetic transliterator (proper nouns) or from the
// machine-translation dependency behind the cache.
package processor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/db"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/kana"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/metrics"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/sheet"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/translation"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/translit"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ErrNilValue is returned when a required input cell is absent. Every other
// input degrades gracefully inside the engine.
var ErrNilValue = errors.New("invalid argument: nil input value")

// segmentSeparator joins the ordered segments into one output cell.
const segmentSeparator = " "

type Config struct {
	Translator *translation.Translator // nil disables machine translation
	Repo       db.Repository           // nil disables the cache
	Limiter    *RateLimiter            // nil disables rate limiting
	Log        *slog.Logger
	Workers    int
	Provider   string
	Model      string
}

type Processor struct {
	translator *translation.Translator
	repo       db.Repository
	limiter    *RateLimiter
	log        *slog.Logger
	workers    int
	provider   string
	model      string
}

func New(cfg Config) *Processor {
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Processor{
		translator: cfg.Translator,
		repo:       cfg.Repo,
		limiter:    cfg.Limiter,
		log:        cfg.Log,
		workers:    cfg.Workers,
		provider:   cfg.Provider,
		model:      cfg.Model,
	}
}

// RowResult is everything the pipeline derives from one input cell.
type RowResult struct {
	kana.ProcessedText
	Translated string
}

// ProcessValue handles a single cell. properNoun routes the value to the
// Latin→Katakana transliterator instead of the translation dependency.
func (p *Processor) ProcessValue(ctx context.Context, value *string, properNoun bool) (RowResult, error) {
	if value == nil {
		return RowResult{}, ErrNilValue
	}

	start := time.Now()
	defer func() { metrics.RowDuration.Observe(time.Since(start).Seconds()) }()

	res := RowResult{ProcessedText: kana.ProcessText(*value)}

	switch {
	case properNoun:
		res.Translated = translit.Transliterate(*value)
		metrics.TransliterationsTotal.Inc()
	case p.translator != nil && strings.TrimSpace(*value) != "":
		translated, err := p.translate(ctx, *value)
		if err != nil {
			return RowResult{}, err
		}
		res.Translated = translated
	}

	return res, nil
}

// translate resolves one value through the cache, falling back to the model.
func (p *Processor) translate(ctx context.Context, value string) (string, error) {
	if p.repo != nil {
		cached, err := p.repo.GetTranslation(ctx, value)
		if err == nil {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return cached.Translated, nil
		}
		if !db.IsNoRows(err) {
			return "", fmt.Errorf("cache lookup for %q: %w", value, err)
		}
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	llmStart := time.Now()
	translations, err := p.translator.TranslateValues(ctx, []string{value})
	metrics.LLMTranslationDuration.Observe(time.Since(llmStart).Seconds())
	if err != nil {
		metrics.LLMCallsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("translating %q: %w", value, err)
	}
	if len(translations) == 0 {
		metrics.LLMCallsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("translating %q: model returned no translations", value)
	}
	metrics.LLMCallsTotal.WithLabelValues("success").Inc()

	t := translations[0]
	if p.repo != nil {
		params := db.CreateTranslationParams{
			Source:     value,
			Translated: t.Translated,
			Provider:   p.provider,
			Model:      p.model,
		}
		if t.Note != "" {
			params.Note = sql.NullString{String: t.Note, Valid: true}
		}
		if _, err := p.repo.CreateTranslation(ctx, params); err != nil {
			// The cache is an optimization; a write failure must not lose the row.
			p.log.WarnContext(ctx, "caching translation failed", "source", value, "error", err)
		}
	}

	return t.Translated, nil
}

// ProcessTable runs the pipeline over the named column and appends the
// result columns. onProgress, when non-nil, is called after every finished
// row with the completed and total counts.
func (p *Processor) ProcessTable(ctx context.Context, table *sheet.Table, column string, properNouns bool, onProgress func(done, total int)) error {
	col, err := table.ColumnIndex(column)
	if err != nil {
		return err
	}

	total := len(table.Rows)
	results := make([]RowResult, total)
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, row := range table.Rows {
		g.Go(func() error {
			res, err := p.ProcessValue(ctx, &row[col], properNouns)
			if err != nil {
				metrics.RowsProcessed.WithLabelValues("error").Inc()
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			results[i] = res
			metrics.RowsProcessed.WithLabelValues("success").Inc()
			if onProgress != nil {
				onProgress(int(done.Add(1)), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	columns := []struct {
		suffix string
		values []string
	}{
		{"_Hiragana", lo.Map(results, func(r RowResult, _ int) string { return r.Hiragana })},
		{"_Katakana", lo.Map(results, func(r RowResult, _ int) string { return r.Katakana })},
		{"_Romaji", lo.Map(results, func(r RowResult, _ int) string { return r.Romaji })},
		{"_Segments", lo.Map(results, func(r RowResult, _ int) string {
			return strings.Join(r.Segments, segmentSeparator)
		})},
		{"_ReadingGuide", lo.Map(results, func(r RowResult, _ int) string { return r.ReadingGuide })},
		{"_Translated", lo.Map(results, func(r RowResult, _ int) string { return r.Translated })},
	}
	for _, c := range columns {
		if err := table.AppendColumn(column+c.suffix, c.values); err != nil {
			return err
		}
	}

	p.log.InfoContext(ctx, "table processed", "column", column, "rows", total, "proper_nouns", properNouns)
	return nil
}
