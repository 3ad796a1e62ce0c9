package app

import (
	"cmp"
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"io"
	"os"
	"time"
	"wordscan/internal/app/adapters/files"
	router "wordscan/internal/app/adapters/http"
	"wordscan/internal/app/adapters/metrics"
	"wordscan/internal/app/adapters/registry"
	"wordscan/internal/app/adapters/stats"
	"wordscan/internal/app/domain/dictionary"
	"wordscan/internal/app/domain/report"
	"wordscan/internal/app/domain/scanner"
	"wordscan/internal/app/infrastructure/config"
	"wordscan/internal/app/infrastructure/trie"
	"wordscan/pkg/logger"
)

const statsInterval = time.Minute

type App struct {
	log     *logger.SlogLogger
	manager *config.Manager
	files   *files.Files
}

// New loads the config and sets up logging. A non-empty logLevel overrides the
// configured one.
func New(configPath, logLevel string) (*App, error) {
	manager, err := config.New(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	log := logger.New(logger.Options{
		Level:      cmp.Or(logLevel, cfg.App.LogLevel),
		Stdout:     os.Stderr,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})

	return &App{
		log:     log,
		manager: manager,
		files:   files.New(logger.Named(log, "files")),
	}, nil
}

func (a *App) Log() logger.Logger {
	return a.log
}

func (a *App) Close() error {
	return a.log.Close()
}

type BuildOptions struct {
	Dictionary string
	Nodes      string
	Lengths    string
	Sort       bool
}

// Build compiles the dictionary and writes the node and length dumps.
func (a *App) Build(opts BuildOptions) error {
	cfg := a.manager.Get()
	log := logger.Named(a.log, "build")

	dictPath := cmp.Or(opts.Dictionary, cfg.Files.Dictionary)
	automaton, d, err := a.compile(log, dictPath, opts.Sort)
	if err != nil {
		return err
	}

	nodesPath := cmp.Or(opts.Nodes, cfg.Files.Nodes)
	lensPath := cmp.Or(opts.Lengths, cfg.Files.Lengths)
	if err := a.files.SaveAutomaton(automaton, nodesPath, lensPath); err != nil {
		log.Error("Failed to save automaton", err)
		return err
	}

	log.Info("Build finished", "dictionary", dictPath, "words", d.Len(), "nodes", automaton.NumNodes())
	return nil
}

type ScanOptions struct {
	Text       string
	Dictionary string
	Nodes      string
	Lengths    string
	Sort       bool
	CSV        string
}

// Scan runs one scan and writes the summary to w. The automaton comes from
// the dictionary when one is given, otherwise from the dumps.
func (a *App) Scan(ctx context.Context, opts ScanOptions, w io.Writer) error {
	cfg := a.manager.Get()
	log := logger.Named(a.log, "scan")

	var automaton *trie.Automaton
	if opts.Dictionary != "" {
		var err error
		automaton, _, err = a.compile(log, opts.Dictionary, opts.Sort)
		if err != nil {
			return err
		}
	} else {
		start := time.Now()
		var err error
		automaton, err = a.files.LoadAutomaton(cmp.Or(opts.Nodes, cfg.Files.Nodes), cmp.Or(opts.Lengths, cfg.Files.Lengths))
		if err != nil {
			log.Error("Failed to load automaton", err)
			return err
		}
		metrics.AutomataBuilt.With(prometheus.Labels{"source": "dump"}).Inc()
		metrics.BuildDuration.Observe(time.Since(start).Seconds())
	}

	text, err := a.files.LoadText(cmp.Or(opts.Text, cfg.Files.Text))
	if err != nil {
		log.Error("Failed to load text", err)
		return err
	}

	hits, sum, err := scanner.Run(ctx, automaton, text)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	log.Debug("Scan finished", "chars", sum.Chars, "hits", sum.Hits, "elapsed", sum.Elapsed)

	if opts.CSV != "" {
		if err := writeCSV(opts.CSV, text, hits); err != nil {
			log.Error("Failed to write report", err, "path", opts.CSV)
			return err
		}
		log.Info("Report written", "path", opts.CSV, "hits", sum.Hits)
	}

	return report.WriteSummary(w, sum)
}

// Serve runs the HTTP service until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	cfg := a.manager.Get()
	gin.SetMode(cfg.App.GinMode)

	reg := registry.New(logger.Named(a.log, "registry"), a.manager, a.files)
	st := stats.New()

	go func() {
		ticker := time.NewTicker(statsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.log.Debug("Stats", "snapshot", st.Snapshot().String())
			}
		}
	}()

	r := router.NewRouter(logger.Named(a.log, "http"), a.manager, reg, st)
	return r.Run(ctx)
}

func (a *App) compile(log logger.Logger, path string, sort bool) (*trie.Automaton, *dictionary.Dictionary, error) {
	cfg := a.manager.Get()

	start := time.Now()
	d, err := a.files.LoadDictionary(path, dictionary.Options{
		MaxWordLen: cfg.Limits.MaxWordLen,
		MaxWords:   cfg.Limits.MaxWords,
		Sort:       sort || cfg.Limits.Sort,
	})
	if err != nil {
		log.Error("Failed to load dictionary", err, "path", path)
		return nil, nil, err
	}

	automaton, err := d.Compile()
	if err != nil {
		log.Error("Failed to compile dictionary", err, "path", path)
		return nil, nil, err
	}

	metrics.AutomataBuilt.With(prometheus.Labels{"source": "dictionary"}).Inc()
	metrics.BuildDuration.Observe(time.Since(start).Seconds())
	log.Debug("Dictionary compiled", "words", d.Len(), "nodes", automaton.NumNodes(), "elapsed", time.Since(start))

	return automaton, d, nil
}

func writeCSV(path string, text []byte, hits scanner.Hits) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	if err := report.WriteCSV(file, text, hits); err != nil {
		_ = file.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return file.Close()
}
