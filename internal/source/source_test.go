package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestOpenMapsFile(t *testing.T) {
	path := writeFile(t, "firsts\nsecond\nthird")

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if src.Len() != 19 {
		t.Errorf("Len() = %d, want 19", src.Len())
	}
	if src.Size() != 19 {
		t.Errorf("Size() = %d, want 19", src.Size())
	}
	if src.Name() != path {
		t.Errorf("Name() = %q, want %q", src.Name(), path)
	}

	got, err := src.Slice(7, 13)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Slice(7, 13) = %q, want %q", got, "second")
	}
}

func TestOpenEmptyFile(t *testing.T) {
	src, err := Open(writeFile(t, ""))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if src.Len() != 1 {
		t.Errorf("Len() = %d, want 1", src.Len())
	}
	if src.Size() != 0 {
		t.Errorf("Size() = %d, want 0", src.Size())
	}

	got, err := src.Slice(0, 1)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Slice(0, 1) = %q, want empty", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected *OpenError, got %T", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestFromReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
	}{
		{"content", "piped\ninput\n", 12},
		{"empty", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src, err := FromReader("<stdin>", strings.NewReader(tt.input), dir)
			if err != nil {
				t.Fatalf("FromReader failed: %v", err)
			}
			defer src.Close()

			if src.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", src.Len(), tt.wantLen)
			}
			got, err := src.Slice(0, src.Len())
			if err != nil {
				t.Fatalf("Slice failed: %v", err)
			}
			if string(got) != tt.input {
				t.Errorf("content = %q, want %q", got, tt.input)
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("ReadDir failed: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("temporary file left behind: %v", entries)
			}
		})
	}
}

func TestSliceBounds(t *testing.T) {
	src := FromBytes("mem", []byte("abc"))

	tests := []struct {
		start, end int
		want       string
		wantErr    bool
	}{
		{0, 3, "abc", false},
		{1, 1, "", false},
		{2, 3, "c", false},
		{-1, 2, "", true},
		{2, 1, "", true},
		{0, 4, "", true},
	}

	for _, tt := range tests {
		got, err := src.Slice(tt.start, tt.end)
		if tt.wantErr {
			if !errors.Is(err, ErrRange) {
				t.Errorf("Slice(%d, %d) error = %v, want ErrRange", tt.start, tt.end, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Slice(%d, %d) error = %v", tt.start, tt.end, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestClose(t *testing.T) {
	src, err := Open(writeFile(t, "data"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := src.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if _, err := src.Slice(0, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Slice after Close error = %v, want ErrClosed", err)
	}
}

func TestEmpty(t *testing.T) {
	src := Empty("nothing")
	if src.Len() != 1 {
		t.Errorf("Len() = %d, want 1", src.Len())
	}
	got, err := src.Slice(0, 1)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Slice(0, 1) = %q, want empty", got)
	}
}
