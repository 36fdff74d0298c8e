package score

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// ErrMalformed is returned when the stored high score cannot be parsed
var ErrMalformed = errors.New("malformed high score")

// Store is a single durable high score slot
type Store interface {
	// Load returns the stored value, 0 when nothing has been stored yet
	Load() (int, error)
	Save(value int) error
}

// FileStore keeps the high score as a base-10 integer in a text file
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path; the file is created on first save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the slot; missing file yields (0, nil)
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read high score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	value, err := strconv.Atoi(text)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, text)
	}
	return value, nil
}

// Save overwrites the slot atomically via temp file and rename
func (s *FileStore) Save(value int) error {
	if value < 0 {
		return fmt.Errorf("save high score: negative value %d", value)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(value) + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write high score: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close high score: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}

// MemoryStore is a non-durable store
type MemoryStore struct {
	mu    sync.Mutex
	value int

	// LoadErr and SaveErr, when set, are returned by the corresponding call
	LoadErr error
	SaveErr error
}

// NewMemoryStore creates a store holding initial
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{value: initial}
}

func (s *MemoryStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return 0, s.LoadErr
	}
	return s.value, nil
}

func (s *MemoryStore) Save(value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.value = value
	return nil
}
