// Package score persists the best score across sessions.
package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Store loads and saves the single best-score scalar.
type Store interface {
	Load() (int, error)
	Save(best int) error
}

// ErrCorrupt is returned when the stored value is not a non-negative integer.
var ErrCorrupt = errors.New("corrupt best score")

// FileStore keeps the best score as a decimal integer in a text file.
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the best score. A missing file reads as zero.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read best score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	best, err := strconv.Atoi(text)
	if err != nil || best < 0 {
		return 0, fmt.Errorf("%w in %s: %q", ErrCorrupt, s.Path, text)
	}
	return best, nil
}

// Save writes the best score, replacing the file atomically.
func (s *FileStore) Save(best int) error {
	if best < 0 {
		return fmt.Errorf("save best score: negative value %d", best)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".best-*")
	if err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(best) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("save best score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}

// Memory is an in-process store. The zero value is ready to use.
type Memory struct {
	mu    sync.Mutex
	best  int
	saves int
}

// Load returns the last saved value.
func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// Save records the value.
func (m *Memory) Save(best int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = best
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Compile-time checks that both stores implement Store.
var (
	_ Store = (*FileStore)(nil)
	_ Store = (*Memory)(nil)
)
