package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"svw.info/aoc/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLite keeps run history in a sqlite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and applies pending
// migrations.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &SQLite{db: db}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) migrateUp() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	// m is not closed: that would close the shared *sql.DB.
	m.Log = migrateLogger{}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// migrateLogger implements migrate.Logger on top of slog.
type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf("[migrate] "+format, v...))
}

func (migrateLogger) Verbose() bool { return false }

// Record stores r, assigning an ID and timestamp when missing.
func (s *SQLite) Record(ctx context.Context, r *domain.Run) error {
	if r == nil || r.Day <= 0 {
		return errors.New("invalid run: missing day")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().UnixNano()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, day, first, second, duration_ns, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Day, r.Solution.First, r.Solution.Second, r.DurationNs, r.CreatedAt,
	)
	return err
}

// List returns the newest runs first. Day 0 lists every day; limit <= 0
// means no limit.
func (s *SQLite) List(ctx context.Context, day, limit int) ([]domain.Run, error) {
	q := `SELECT run_id, day, first, second, duration_ns, created_at FROM runs`
	var args []any
	if day > 0 {
		q += ` WHERE day = ?`
		args = append(args, day)
	}
	q += ` ORDER BY created_at DESC, run_id`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Run
	for rows.Next() {
		var r domain.Run
		if err := rows.Scan(&r.ID, &r.Day, &r.Solution.First, &r.Solution.Second, &r.DurationNs, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
