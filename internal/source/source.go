// Package source provides the immutable byte view the pager reads from.
//
// A Source is backed by a memory-mapped file, an in-memory buffer, or nothing
// at all. Every Source reports a length of at least one byte: an empty input
// is presented as a one-byte source with no content, so that the pager always
// sees at least one (possibly empty) line.
package source

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Source errors.
var (
	// ErrClosed is returned when reading from a closed source.
	ErrClosed = errors.New("source closed")

	// ErrRange is returned when a requested range lies outside the source.
	ErrRange = errors.New("range out of bounds")

	// ErrTooLarge is returned when a file cannot be addressed in memory.
	ErrTooLarge = errors.New("file too large to map")
)

// Source is a read-only, randomly addressable view over an input's bytes.
// It is not safe for concurrent Close and Slice calls; the pager owns it
// exclusively for the lifetime of a session.
type Source struct {
	name   string
	data   []byte
	unmap  func([]byte) error
	closed bool
}

// Empty returns the source of an input with no bytes.
func Empty(name string) *Source {
	return &Source{name: name}
}

// FromBytes wraps b without copying. The caller must not modify b afterwards.
func FromBytes(name string, b []byte) *Source {
	return &Source{name: name, data: b}
}

// Open maps the file at path into memory.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	src, err := fromFile(path, f)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return src, nil
}

// FromReader drains r into a temporary file under dir (os.TempDir when dir
// is empty) and maps it. The temporary file is removed before returning;
// the mapping keeps the bytes alive until Close.
func FromReader(name string, r io.Reader, dir string) (*Source, error) {
	tmp, err := os.CreateTemp(dir, "lesser-*")
	if err != nil {
		return nil, &OpenError{Path: name, Err: err}
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return nil, &OpenError{Path: name, Err: fmt.Errorf("draining input: %w", err)}
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, &OpenError{Path: name, Err: err}
	}

	src, err := fromFile(name, tmp)
	if err != nil {
		return nil, &OpenError{Path: name, Err: err}
	}
	return src, nil
}

func fromFile(name string, f *os.File) (*Source, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return Empty(name), nil
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}

	data, unmap, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("mapping: %w", err)
	}
	return &Source{name: name, data: data, unmap: unmap}, nil
}

// Name returns the display name of the input.
func (s *Source) Name() string {
	return s.name
}

// Len returns the addressable length of the source, which is never zero.
func (s *Source) Len() int {
	if len(s.data) == 0 {
		return 1
	}
	return len(s.data)
}

// Size returns the number of content bytes.
func (s *Source) Size() int {
	return len(s.data)
}

// Slice returns the content bytes in [start, end). The range is validated
// against Len and then clipped to the content, so the placeholder byte of an
// empty source reads as nothing. The returned slice aliases the source and
// must not be modified.
func (s *Source) Slice(start, end int) ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if start < 0 || end < start || end > s.Len() {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrRange, start, end, s.Len())
	}
	if end > len(s.data) {
		end = len(s.data)
	}
	if start > end {
		start = end
	}
	return s.data[start:end:end], nil
}

// Close releases the mapping. Closing twice is a no-op.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	data := s.data
	s.data = nil
	if s.unmap != nil && data != nil {
		return s.unmap(data)
	}
	return nil
}

// OpenError records a failure to provision a source.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	if e.Path == "" {
		return "open source: " + e.Err.Error()
	}
	return "open " + e.Path + ": " + e.Err.Error()
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
