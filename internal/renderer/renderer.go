package renderer

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/lesser/internal/pager"
	"github.com/dshills/lesser/internal/renderer/backend"
)

// Options configures the renderer.
type Options struct {
	// Bell rings the terminal bell when a command changes nothing.
	Bell bool
}

// Renderer draws page text onto a backend.
type Renderer struct {
	mu      sync.Mutex
	backend backend.Backend
	opts    Options
	frames  uint64
	bells   uint64
}

// New creates a renderer drawing onto b.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		backend: b,
		opts:    opts,
	}
}

// Draw replaces the screen contents with text.
func (r *Renderer) Draw(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	r.backend.Clear()

	if text != "" {
		for y, row := range strings.Split(text, pager.RowSeparator) {
			if y >= height {
				break
			}
			r.drawRow(row, y, width)
		}
	}

	r.backend.Show()
	r.frames++
}

// Unchanged reports a command that produced no new page.
func (r *Renderer) Unchanged() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.opts.Bell {
		r.backend.Beep()
		r.bells++
	}
}

// Sync forces the next Draw to repaint the whole terminal, used after the
// terminal has been resized or its contents disturbed.
func (r *Renderer) Sync() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend.Sync()
}

// FrameCount returns how many pages have been drawn.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// BellCount returns how many times the bell was rung.
func (r *Renderer) BellCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bells
}

// drawRow lays out a single row starting at column zero.
func (r *Renderer) drawRow(row string, y, width int) {
	x := 0
	for _, ch := range row {
		if x >= width {
			return
		}

		if isControl(ch) {
			if x+2 > width {
				return
			}
			r.backend.SetCell(x, y, backend.Cell{Rune: '^', Width: 1})
			r.backend.SetCell(x+1, y, backend.Cell{Rune: caret(ch), Width: 1})
			x += 2
			continue
		}

		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > width {
			return
		}
		r.backend.SetCell(x, y, backend.Cell{Rune: ch, Width: w})
		x += w
	}
}

// isControl reports C0 controls, DEL and C1 controls.
func isControl(ch rune) bool {
	return ch < 0x20 || (ch >= 0x7f && ch < 0xa0)
}

// caret returns the character shown after '^' for a control rune.
func caret(ch rune) rune {
	switch {
	case ch < 0x20:
		return ch + '@'
	case ch == 0x7f:
		return '?'
	default:
		return utf8.RuneError
	}
}
