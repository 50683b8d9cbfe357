package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// FS caches raw puzzle inputs as <dir>/<day>/input.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(day int) string {
	return filepath.Join(s.dir, strconv.Itoa(day), "input")
}

func (s *FS) Save(ctx context.Context, day int, text string) error {
	if day <= 0 {
		return errors.New("invalid day: must be positive")
	}
	target := s.pathFor(day)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to cache data at %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to cache data at %s: %w", target, err)
	}
	return nil
}

// Load returns the cached input; a miss yields an error matching os.ErrNotExist.
func (s *FS) Load(ctx context.Context, day int) (string, error) {
	b, err := os.ReadFile(s.pathFor(day))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// List returns the cached days in ascending order.
func (s *FS) List(ctx context.Context) ([]int, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []int
	for _, e := range ents {
		if !e.IsDir() {
			continue
		}
		day, err := strconv.Atoi(e.Name())
		if err != nil || day <= 0 {
			continue
		}
		if _, err := os.Stat(s.pathFor(day)); err != nil {
			continue
		}
		out = append(out, day)
	}
	sort.Ints(out)
	return out, nil
}
