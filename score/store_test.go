package score

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "highscore"))

	v, err := s.Load()
	if err != nil || v != 0 {
		t.Errorf("Expected (0, nil) for missing file, got (%d, %v)", v, err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "highscore")
	s := NewFileStore(path)

	if err := s.Save(160); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(240); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	v, err := s.Load()
	if err != nil || v != 240 {
		t.Errorf("Expected (240, nil), got (%d, %v)", v, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "240\n" {
		t.Errorf("Expected textual integer, got %q", data)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected only the slot file, found %d entries", len(entries))
	}
}

func TestFileStoreMalformed(t *testing.T) {
	tests := []string{"abc", "-5", "", "12.5"}

	for _, content := range tests {
		path := filepath.Join(t.TempDir(), "highscore")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		v, err := NewFileStore(path).Load()
		if !errors.Is(err, ErrMalformed) || v != 0 {
			t.Errorf("content %q: expected (0, ErrMalformed), got (%d, %v)", content, v, err)
		}
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore")
	os.WriteFile(path, []byte("  42 \n"), 0644)

	v, err := NewFileStore(path).Load()
	if err != nil || v != 42 {
		t.Errorf("Expected (42, nil), got (%d, %v)", v, err)
	}
}

func TestFileStoreRejectsNegative(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "highscore"))
	if err := s.Save(-1); err == nil {
		t.Error("Expected error saving a negative score")
	}
}
