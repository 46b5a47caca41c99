package pager

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// RowSeparator joins the rows of a rendered page.
const RowSeparator = "\n\r"

// Page is the result of a windowed read.
type Page struct {
	// Text holds the visible rows joined by RowSeparator.
	Text string

	// Rows is the number of lines emitted. Zero means the requested row
	// offset lies past the end of the source.
	Rows int

	// Cols is the requested column count if any emitted line had visible
	// text, and zero otherwise.
	Cols int
}

// Reader answers windowed read requests over a Source.
// It is not safe for concurrent use.
type Reader struct {
	src     Source
	index   *Index
	decoder *encoding.Decoder
}

// NewReader creates a reader over src.
func NewReader(src Source) *Reader {
	return &Reader{
		src:     src,
		index:   NewIndex(src),
		decoder: unicode.UTF8.NewDecoder(),
	}
}

// ReadWindow returns the rows [rowOffset, rowOffset+rows) of the source,
// each clipped to the byte columns [colOffset, colOffset+cols).
func (r *Reader) ReadWindow(rowOffset, colOffset uint64, rows, cols uint16) (Page, error) {
	want := saturatingAdd(rowOffset, uint64(rows))
	if err := r.index.Ensure(toInt(want)); err != nil {
		return Page{}, fmt.Errorf("indexing lines: %w", err)
	}
	if rowOffset >= uint64(r.index.Len()) {
		return Page{}, nil
	}

	lines := r.index.Lines(int(rowOffset), int(rows))

	var b strings.Builder
	hasText := false
	for i, line := range lines {
		if i > 0 {
			b.WriteString(RowSeparator)
		}
		text, err := r.visible(line, colOffset, cols)
		if err != nil {
			return Page{}, fmt.Errorf("reading line %d: %w", rowOffset+uint64(i), err)
		}
		if text != "" {
			hasText = true
		}
		b.WriteString(text)
	}

	page := Page{Text: b.String(), Rows: len(lines)}
	if hasText {
		page.Cols = int(cols)
	}
	return page, nil
}

// CachedRowCount returns the number of lines indexed so far.
func (r *Reader) CachedRowCount() uint64 {
	return uint64(r.index.Len())
}

// visible returns the clipped, decoded text of one line.
func (r *Reader) visible(line Range, colOffset uint64, cols uint16) (string, error) {
	start := line.Start + int(min(colOffset, uint64(line.Len())))
	end := min(line.End, start+int(cols))

	raw, err := r.src.Slice(start, end)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}

	decoded, err := r.decoder.Bytes(raw)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(decoded), "\t", " "), nil
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func toInt(v uint64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}
