package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/anthropic"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/db"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/db/postgres"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/db/sqlite"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/envsetup"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/google"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/llm"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/logger"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/metrics"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/processor"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/progress"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/sheet"
	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/translation"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	if envsetup.NeedsSetup() {
		ok, err := envsetup.Run()
		if err != nil {
			return fmt.Errorf("running setup wizard: %w", err)
		}
		if !ok {
			return errors.New("setup was not completed")
		}
	}
	_ = godotenv.Load()

	fs := ff.NewFlagSet("translator")
	var (
		input       = fs.StringLong("input", "", "Input CSV file")
		outputDir   = fs.StringLong("output-dir", ".", "Directory for output batch files")
		column      = fs.StringLong("column", "Name", "Header of the column to process")
		properNouns = fs.BoolLong("proper-nouns", "Transliterate Latin proper nouns to Katakana instead of translating")
		databaseURL = fs.StringLong("database-url", "", "Translation cache: SQLite path or postgres:// URL")
		llmProvider = fs.StringLong("llm-provider", "anthropic", "LLM provider: anthropic or google")
		llmModel    = fs.StringLong("llm-model", "", "Model override for the chosen provider")
		workers     = fs.IntLong("workers", 4, "Concurrent rows in flight")
		batchSize   = fs.IntLong("batch-size", 500, "Rows per output file")
		rateLimit   = fs.IntLong("rate-limit", 50, "Max LLM calls per minute (0 disables)")
		metricsAddr = fs.StringLong("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
		noProgress  = fs.BoolLong("no-progress", "Disable the progress bar")
		noTranslate = fs.BoolLong("no-translate", "Skip machine translation, emit readings only")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *input == "" {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return errors.New("input is required")
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	log := logger.New()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down", "signal", sig)
		cancel(errors.New("signal received"))
	}()

	if *metricsAddr != "" {
		go serveMetrics(ctx, log, *metricsAddr)
	}

	table, err := sheet.Read(*input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *input, err)
	}
	log.InfoContext(ctx, "loaded sheet", "file", *input, "rows", len(table.Rows))

	cfg := processor.Config{
		Log:     log,
		Workers: *workers,
	}

	if *databaseURL != "" {
		repo, err := openRepo(ctx, log, *databaseURL)
		if err != nil {
			return err
		}
		defer repo.Close()
		cfg.Repo = repo
	}

	needsLLM := !*properNouns && !*noTranslate
	if needsLLM {
		client, provider, model, err := buildLLMClient(ctx, *llmProvider, *llmModel)
		if err != nil {
			return err
		}
		cfg.Translator = translation.NewTranslator(client)
		cfg.Provider = provider
		cfg.Model = model
		if *rateLimit > 0 {
			cfg.Limiter = processor.NewRateLimiter(*rateLimit, time.Minute)
		}
		log.InfoContext(ctx, "translation enabled", "provider", provider, "model", model)
	}

	proc := processor.New(cfg)

	var onProgress func(done, total int)
	var tracker *progress.Tracker
	if !*noProgress {
		tracker = progress.Start(fmt.Sprintf("Processing %s", filepath.Base(*input)))
		onProgress = tracker.Update
	}

	procErr := proc.ProcessTable(ctx, table, *column, *properNouns, onProgress)
	if tracker != nil {
		if procErr != nil {
			tracker.Abort()
		} else if err := tracker.Finish(); err != nil {
			log.WarnContext(ctx, "progress bar error", "error", err)
		}
	}
	if procErr != nil {
		return fmt.Errorf("processing table: %w", procErr)
	}

	base := strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input)) + "_processed"
	files, err := sheet.WriteBatches(*outputDir, base, table, *batchSize)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	log.InfoContext(ctx, "done", "rows", len(table.Rows), "files", len(files))
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}

// openRepo picks the cache backend from the URL shape. Anything that is not
// a postgres URL is treated as a SQLite path.
func openRepo(ctx context.Context, log *slog.Logger, databaseURL string) (db.Repository, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		repo, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		log.InfoContext(ctx, "translation cache connected", "backend", "postgres")
		go exportPoolStats(ctx, repo)
		return repo, nil
	}

	repo, err := sqlite.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite cache: %w", err)
	}
	log.InfoContext(ctx, "translation cache opened", "backend", "sqlite", "path", databaseURL)
	return repo, nil
}

func buildLLMClient(ctx context.Context, provider, model string) (llm.Client, string, string, error) {
	switch provider {
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, "", "", errors.New("ANTHROPIC_API_KEY environment variable is required")
		}
		m := anthropic.Model(model)
		if m == "" {
			m = anthropic.DefaultModel
		}
		return anthropic.NewClient(apiKey, m), provider, string(m), nil

	case "google":
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, "", "", errors.New("GOOGLE_API_KEY environment variable is required")
		}
		m := google.Model(model)
		if m == "" {
			m = google.DefaultModel
		}
		client, err := google.NewClient(ctx, apiKey, m)
		if err != nil {
			return nil, "", "", fmt.Errorf("creating google client: %w", err)
		}
		return client, provider, string(m), nil

	default:
		return nil, "", "", fmt.Errorf("unknown llm provider %q (want anthropic or google)", provider)
	}
}

func serveMetrics(ctx context.Context, log *slog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux}
	log.InfoContext(ctx, "starting metrics server", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "metrics server error", "error", err)
	}
}

// exportPoolStats mirrors pgxpool counters into Prometheus gauges.
func exportPoolStats(ctx context.Context, repo *postgres.Repository) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := repo.PoolStats()
			metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
			metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
			metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
			metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
		case <-ctx.Done():
			return
		}
	}
}
