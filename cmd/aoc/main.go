package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/aoc/internal/adapters/http"
	"svw.info/aoc/internal/config"
	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/hint"
	"svw.info/aoc/internal/infrastructure/storage"
	"svw.info/aoc/internal/input"
	"svw.info/aoc/internal/ports"
	"svw.info/aoc/internal/render"
	"svw.info/aoc/internal/solver"
	"svw.info/aoc/internal/usecase"
	"svw.info/aoc/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func newLogger(level, format string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	opts, exit, err := parseArgs(args, stderr)
	if err != nil || exit {
		return err
	}
	logger := newLogger(opts.LogLevel, opts.LogFormat, stderr)
	slog.SetDefault(logger)

	cfg, err := config.Load(opts.ConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("config file not found, using defaults", "path", opts.ConfigPath)
		cfg = config.Default()
	} else if err != nil {
		return err
	}

	// Wire providers → use cases → adapters
	reg := solver.NewDefaultRegistry()
	cache := storage.NewFS(cfg.CachePath)
	in, err := input.New(cache, cfg.URL, cfg.Session, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		return err
	}
	var hist ports.History
	if cfg.History != "" {
		db, err := storage.OpenSQLite(cfg.History)
		if err != nil {
			return fmt.Errorf("failed to open history %s: %w", cfg.History, err)
		}
		defer db.Close()
		hist = db
	}
	uc := usecase.NewService(reg, in, hist, validator.New(), hint.NewScenic(), generator.NewForestGenerator())
	uc.Cache = cache
	uc.Logger = logger

	if opts.Sample != [2]int{} {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		text, err := uc.Sample(ctx, seed, opts.Sample[0], opts.Sample[1])
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, text)
		return err
	}

	if opts.Addr != "" {
		return serve(ctx, logger, uc, opts.Addr)
	}

	days := opts.Days
	if len(days) == 0 {
		latest, _ := reg.Latest()
		days = []int{latest}
	}
	for _, day := range days {
		r, err := uc.Run(ctx, day)
		if err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
		fmt.Fprintf(stdout, "Day %d %v Solution - %s %s\n", day, time.Duration(r.DurationNs), r.Solution.First, r.Solution.Second)
		if day == 8 && (opts.Render != domain.RenderNone || opts.Verify) {
			if err := inspect(ctx, uc, opts, stdout, day); err != nil {
				return err
			}
		}
	}
	return nil
}

// inspect re-analyzes the forest of day for rendering and verification.
func inspect(ctx context.Context, uc *usecase.Service, opts *options, stdout io.Writer, day int) (err error) {
	text, err := uc.Inputs.Get(ctx, day)
	if err != nil {
		return err
	}
	g, h, err := uc.Analyze(ctx, text)
	if err != nil {
		return err
	}
	if h.Message != "" {
		slog.Info("hint", "day", day, "msg", h.Message, "score", h.Score)
	}
	if opts.Verify {
		if err := uc.Verify(ctx, g); err != nil {
			return err
		}
		slog.Info("visibility verified", "day", day, "cells", g.Len())
	}

	w := stdout
	if opts.Out != "" && opts.Render != domain.RenderNone {
		f, cerr := os.Create(opts.Out)
		if cerr != nil {
			return cerr
		}
		defer closeInto(&err, f)
		w = f
	}
	switch opts.Render {
	case domain.RenderText:
		return render.Text(w, g)
	case domain.RenderHTML:
		return render.Heatmap(w, g, fmt.Sprintf("Day %d scenic scores", day))
	}
	return nil
}

// closeInto closes c and reports its error through err unless err is already set.
func closeInto(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}

func serve(ctx context.Context, logger *slog.Logger, uc *usecase.Service, addr string) error {
	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	logger.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
