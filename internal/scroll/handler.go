// Package scroll implements the view-position state machine that turns
// navigation commands into windowed reads.
//
// Every movement follows the same pattern: compute a candidate position,
// read the window at that position, and commit the candidate only if the
// read made progress. A movement that hits the start or end of the source
// leaves the position untouched and returns no page, so repeating it is
// harmless.
package scroll

import (
	"math"

	"github.com/dshills/lesser/internal/pager"
)

// Reader is the windowed read interface the handler drives.
type Reader interface {
	ReadWindow(rowOffset, colOffset uint64, rows, cols uint16) (pager.Page, error)
	CachedRowCount() uint64
}

// Position is the top-left corner of the rendered window.
type Position struct {
	Row uint64
	Col uint64
}

// Handler owns the view position. It is not safe for concurrent use; the
// event loop is its only caller.
type Handler struct {
	reader Reader
	pos    Position

	// shown is the number of rows produced by the last committed read.
	shown uint64
}

// NewHandler creates a handler positioned at the start of the source.
func NewHandler(r Reader) *Handler {
	return &Handler{reader: r}
}

// Position returns the current view position.
func (h *Handler) Position() Position {
	return h.pos
}

// Shown returns the number of rows in the last rendered page.
func (h *Handler) Shown() uint64 {
	return h.shown
}

// accept decides whether a read at a candidate position made progress.
type accept func(candidate Position, page pager.Page) bool

// try reads the window at candidate and commits it if ok approves. A nil
// page means the position did not change and nothing should be redrawn.
func (h *Handler) try(candidate Position, rows, cols uint16, ok accept) (*pager.Page, error) {
	page, err := h.reader.ReadWindow(candidate.Row, candidate.Col, rows, cols)
	if err != nil {
		return nil, err
	}
	if !ok(candidate, page) {
		return nil, nil
	}
	h.pos = candidate
	h.shown = uint64(page.Rows)
	return &page, nil
}

func hasRows(_ Position, page pager.Page) bool {
	return page.Rows > 0
}

// rowChanged accepts a read that produced rows at a different top row.
func (h *Handler) rowChanged(c Position, page pager.Page) bool {
	return page.Rows > 0 && c.Row != h.pos.Row
}

// InitialScreen renders the first page.
func (h *Handler) InitialScreen(rows, cols uint16) (*pager.Page, error) {
	return h.try(Position{}, rows, cols, hasRows)
}

// MoveDown scrolls one line forward. It makes no progress once the last line
// is visible, so the final screen stays full instead of scrolling into
// trailing blank rows.
func (h *Handler) MoveDown(rows, cols uint16) (*pager.Page, error) {
	bottom := h.bottom()
	c := Position{Row: saturatingAdd(h.pos.Row, 1), Col: h.pos.Col}
	return h.try(c, rows, cols, func(c Position, page pager.Page) bool {
		return page.Rows > 0 && saturatingAdd(c.Row, uint64(page.Rows)) > bottom
	})
}

// MoveUp scrolls one line back.
func (h *Handler) MoveUp(rows, cols uint16) (*pager.Page, error) {
	c := Position{Row: saturatingSub(h.pos.Row, 1), Col: h.pos.Col}
	return h.try(c, rows, cols, h.rowChanged)
}

// MoveDownPage shows the rows following the current page.
func (h *Handler) MoveDownPage(rows, cols uint16) (*pager.Page, error) {
	c := Position{Row: h.bottom(), Col: h.pos.Col}
	return h.try(c, rows, cols, h.rowChanged)
}

// MoveUpPage steps one full viewport back.
func (h *Handler) MoveUpPage(rows, cols uint16) (*pager.Page, error) {
	c := Position{Row: saturatingSub(h.pos.Row, uint64(rows)), Col: h.pos.Col}
	return h.try(c, rows, cols, h.rowChanged)
}

// MoveRight pans one viewport width to the right. It fails when no visible
// line extends past the new column.
func (h *Handler) MoveRight(rows, cols uint16) (*pager.Page, error) {
	c := Position{Row: h.pos.Row, Col: saturatingAdd(h.pos.Col, uint64(cols))}
	return h.try(c, rows, cols, func(_ Position, page pager.Page) bool {
		return page.Cols > 0
	})
}

// MoveLeft pans one viewport width to the left.
func (h *Handler) MoveLeft(rows, cols uint16) (*pager.Page, error) {
	c := Position{Row: h.pos.Row, Col: saturatingSub(h.pos.Col, uint64(cols))}
	return h.try(c, rows, cols, func(c Position, page pager.Page) bool {
		return page.Rows > 0 && c.Col != h.pos.Col
	})
}

// MoveToBeginning jumps to the first line, keeping the column.
func (h *Handler) MoveToBeginning(rows, cols uint16) (*pager.Page, error) {
	c := Position{Row: 0, Col: h.pos.Col}
	return h.try(c, rows, cols, h.rowChanged)
}

// MoveToEnd jumps to the last full viewport of the source. A probe read at
// the far end forces the whole source to be indexed; the candidate row is
// then derived from the known line count rather than from the sentinel.
func (h *Handler) MoveToEnd(rows, cols uint16) (*pager.Page, error) {
	sentinel := saturatingSub(math.MaxUint64, uint64(rows))
	if _, err := h.reader.ReadWindow(sentinel, h.pos.Col, rows, cols); err != nil {
		return nil, err
	}
	total := h.reader.CachedRowCount()
	c := Position{Row: saturatingSub(total, uint64(rows)), Col: h.pos.Col}
	return h.try(c, rows, cols, h.rowChanged)
}

// Reload re-renders the current rows after a resize, resetting the column.
func (h *Handler) Reload(rows, cols uint16) (*pager.Page, error) {
	c := Position{Row: h.pos.Row, Col: 0}
	return h.try(c, rows, cols, hasRows)
}

func (h *Handler) bottom() uint64 {
	return saturatingAdd(h.pos.Row, h.shown)
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
