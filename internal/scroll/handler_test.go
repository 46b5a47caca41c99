package scroll

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/lesser/internal/pager"
	"github.com/dshills/lesser/internal/source"
)

func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%02d", i)
	}
	return strings.Join(lines, "\n")
}

func newHandler(content string) *Handler {
	return NewHandler(pager.NewReader(source.FromBytes("test", []byte(content))))
}

func rowsText(from, to int) string {
	lines := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		lines = append(lines, fmt.Sprintf("line-%02d", i))
	}
	return strings.Join(lines, pager.RowSeparator)
}

// mustPage returns a checker for a move that must produce a page, so a
// two-value move can be passed straight to it: mustPage(t)(h.MoveDown(4, 80)).
func mustPage(t *testing.T) func(*pager.Page, error) *pager.Page {
	return func(page *pager.Page, err error) *pager.Page {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page == nil {
			t.Fatal("expected a page, got nil")
		}
		return page
	}
}

// mustNoPage returns a checker for a move that must make no progress.
func mustNoPage(t *testing.T) func(*pager.Page, error) {
	return func(page *pager.Page, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page != nil {
			t.Fatalf("expected no page, got %q", page.Text)
		}
	}
}

func expectPosition(t *testing.T, h *Handler, row, col uint64) {
	t.Helper()
	if got := h.Position(); got.Row != row || got.Col != col {
		t.Fatalf("Position() = %+v, want {Row:%d Col:%d}", got, row, col)
	}
}

func TestInitialScreen(t *testing.T) {
	h := newHandler(numbered(10))

	page := mustPage(t)(h.InitialScreen(4, 80))
	if page.Text != rowsText(0, 4) {
		t.Errorf("Text = %q, want %q", page.Text, rowsText(0, 4))
	}
	expectPosition(t, h, 0, 0)
	if h.Shown() != 4 {
		t.Errorf("Shown() = %d, want 4", h.Shown())
	}
}

func TestInitialScreenEmptySource(t *testing.T) {
	h := NewHandler(pager.NewReader(source.Empty("empty")))

	page := mustPage(t)(h.InitialScreen(4, 80))
	if page.Text != "" || page.Rows != 1 {
		t.Errorf("page = %+v, want one empty row", page)
	}
}

func TestMoveDownAdvancesOneLine(t *testing.T) {
	h := newHandler(numbered(10))
	mustPage(t)(h.InitialScreen(4, 80))

	page := mustPage(t)(h.MoveDown(4, 80))
	if page.Text != rowsText(1, 5) {
		t.Errorf("Text = %q, want %q", page.Text, rowsText(1, 5))
	}
	expectPosition(t, h, 1, 0)
}

func TestMoveDownIdempotentAtEnd(t *testing.T) {
	h := newHandler(numbered(10))
	mustPage(t)(h.InitialScreen(4, 80))

	for _i := 0; _i < 6; _i++ {
		mustPage(t)(h.MoveDown(4, 80))
	}
	expectPosition(t, h, 6, 0)

	for _i := 0; _i < 5; _i++ {
		mustNoPage(t)(h.MoveDown(4, 80))
		expectPosition(t, h, 6, 0)
	}
}

func TestMoveDownShortSource(t *testing.T) {
	h := newHandler(numbered(3))
	mustPage(t)(h.InitialScreen(10, 80))

	mustNoPage(t)(h.MoveDown(10, 80))
	expectPosition(t, h, 0, 0)
}

func TestPageDownIdempotentAtEnd(t *testing.T) {
	h := newHandler(numbered(10))
	mustPage(t)(h.InitialScreen(4, 80))

	page := mustPage(t)(h.MoveDownPage(4, 80))
	if page.Text != rowsText(4, 8) {
		t.Errorf("Text = %q, want %q", page.Text, rowsText(4, 8))
	}
	page = mustPage(t)(h.MoveDownPage(4, 80))
	if page.Text != rowsText(8, 10) || page.Rows != 2 {
		t.Errorf("page = %+v, want last two rows", page)
	}
	expectPosition(t, h, 8, 0)

	for _i := 0; _i < 3; _i++ {
		mustNoPage(t)(h.MoveDownPage(4, 80))
		expectPosition(t, h, 8, 0)
	}
	mustNoPage(t)(h.MoveDown(4, 80))
	expectPosition(t, h, 8, 0)
}

func TestIdempotentAtStart(t *testing.T) {
	h := newHandler(numbered(10))
	mustPage(t)(h.InitialScreen(4, 80))

	moves := map[string]func(rows, cols uint16) (*pager.Page, error){
		"MoveUp":          h.MoveUp,
		"MoveUpPage":      h.MoveUpPage,
		"MoveToBeginning": h.MoveToBeginning,
	}
	for name, move := range moves {
		for _i := 0; _i < 3; _i++ {
			page, err := move(4, 80)
			if err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}
			if page != nil {
				t.Errorf("%s at start returned a page", name)
			}
			expectPosition(t, h, 0, 0)
		}
	}
}

func TestMoveUpAndPageUp(t *testing.T) {
	h := newHandler(numbered(20))
	mustPage(t)(h.InitialScreen(5, 80))
	mustPage(t)(h.MoveDownPage(5, 80))
	mustPage(t)(h.MoveDownPage(5, 80))
	expectPosition(t, h, 10, 0)

	page := mustPage(t)(h.MoveUp(5, 80))
	if page.Text != rowsText(9, 14) {
		t.Errorf("MoveUp Text = %q, want %q", page.Text, rowsText(9, 14))
	}
	expectPosition(t, h, 9, 0)

	page = mustPage(t)(h.MoveUpPage(5, 80))
	if page.Text != rowsText(4, 9) {
		t.Errorf("MoveUpPage Text = %q, want %q", page.Text, rowsText(4, 9))
	}
	expectPosition(t, h, 4, 0)

	mustPage(t)(h.MoveUpPage(5, 80))
	expectPosition(t, h, 0, 0)
}

func TestMoveToEnd(t *testing.T) {
	h := newHandler(numbered(10))
	mustPage(t)(h.InitialScreen(4, 80))

	page := mustPage(t)(h.MoveToEnd(4, 80))
	if page.Text != rowsText(6, 10) {
		t.Errorf("Text = %q, want %q", page.Text, rowsText(6, 10))
	}
	expectPosition(t, h, 6, 0)

	mustNoPage(t)(h.MoveToEnd(4, 80))
	expectPosition(t, h, 6, 0)
	mustNoPage(t)(h.MoveDown(4, 80))

	page = mustPage(t)(h.MoveToBeginning(4, 80))
	if page.Text != rowsText(0, 4) {
		t.Errorf("Text = %q, want %q", page.Text, rowsText(0, 4))
	}
	expectPosition(t, h, 0, 0)
}

func TestMoveToEndShortSource(t *testing.T) {
	h := newHandler(numbered(3))
	mustPage(t)(h.InitialScreen(4, 80))

	mustNoPage(t)(h.MoveToEnd(4, 80))
	expectPosition(t, h, 0, 0)
}

func TestMoveToEndFromPartialPage(t *testing.T) {
	h := newHandler(numbered(10))
	mustPage(t)(h.InitialScreen(4, 80))
	mustPage(t)(h.MoveDownPage(4, 80))
	mustPage(t)(h.MoveDownPage(4, 80))
	expectPosition(t, h, 8, 0)

	page := mustPage(t)(h.MoveToEnd(4, 80))
	if page.Rows != 4 {
		t.Errorf("Rows = %d, want a full viewport", page.Rows)
	}
	expectPosition(t, h, 6, 0)
}

func TestHorizontalMovement(t *testing.T) {
	h := newHandler("abcdefghij\nxyz")
	mustPage(t)(h.InitialScreen(2, 4))

	page := mustPage(t)(h.MoveRight(2, 4))
	if page.Text != "efgh\n\r" {
		t.Errorf("Text = %q, want %q", page.Text, "efgh\n\r")
	}
	expectPosition(t, h, 0, 4)

	page = mustPage(t)(h.MoveRight(2, 4))
	if page.Text != "ij\n\r" {
		t.Errorf("Text = %q, want %q", page.Text, "ij\n\r")
	}
	expectPosition(t, h, 0, 8)

	for _i := 0; _i < 3; _i++ {
		mustNoPage(t)(h.MoveRight(2, 4))
		expectPosition(t, h, 0, 8)
	}

	mustPage(t)(h.MoveLeft(2, 4))
	expectPosition(t, h, 0, 4)
	page = mustPage(t)(h.MoveLeft(2, 4))
	if page.Text != "abcd\n\rxyz" {
		t.Errorf("Text = %q, want %q", page.Text, "abcd\n\rxyz")
	}
	expectPosition(t, h, 0, 0)

	mustNoPage(t)(h.MoveLeft(2, 4))
	expectPosition(t, h, 0, 0)
}

func TestVerticalMovesKeepColumn(t *testing.T) {
	h := newHandler("0123456789\nabcdefghij\nABCDEFGHIJ")
	mustPage(t)(h.InitialScreen(2, 5))
	mustPage(t)(h.MoveRight(2, 5))

	page := mustPage(t)(h.MoveDown(2, 5))
	if page.Text != "fghij\n\rFGHIJ" {
		t.Errorf("Text = %q, want %q", page.Text, "fghij\n\rFGHIJ")
	}
	expectPosition(t, h, 1, 5)
}

func TestReloadResetsColumn(t *testing.T) {
	h := newHandler(numbered(20))
	mustPage(t)(h.InitialScreen(4, 4))
	mustPage(t)(h.MoveDownPage(4, 4))
	mustPage(t)(h.MoveRight(4, 4))
	expectPosition(t, h, 4, 4)

	// The terminal grew.
	page := mustPage(t)(h.Reload(6, 80))
	if page.Text != rowsText(4, 10) {
		t.Errorf("Text = %q, want %q", page.Text, rowsText(4, 10))
	}
	expectPosition(t, h, 4, 0)
	if h.Shown() != 6 {
		t.Errorf("Shown() = %d, want 6", h.Shown())
	}
}

func TestPageDownReconstructsSource(t *testing.T) {
	const rows = 4
	content := numbered(rows * 6)
	h := newHandler(content)

	var pages []string
	page, err := h.InitialScreen(rows, 80)
	for page != nil {
		pages = append(pages, page.Text)
		page, err = h.MoveDownPage(rows, 80)
	}
	if err != nil {
		t.Fatalf("paging failed: %v", err)
	}

	got := strings.ReplaceAll(strings.Join(pages, pager.RowSeparator), pager.RowSeparator, "\n")
	if got != content {
		t.Errorf("reconstructed content mismatch:\n got %q\nwant %q", got, content)
	}
}

type failingReader struct {
	err error
}

func (f failingReader) ReadWindow(uint64, uint64, uint16, uint16) (pager.Page, error) {
	return pager.Page{}, f.err
}

func (f failingReader) CachedRowCount() uint64 {
	return 0
}

func TestReadErrorsPropagate(t *testing.T) {
	want := errors.New("read failed")
	h := NewHandler(failingReader{err: want})

	moves := []func(rows, cols uint16) (*pager.Page, error){
		h.InitialScreen, h.MoveDown, h.MoveUp, h.MoveDownPage, h.MoveUpPage,
		h.MoveLeft, h.MoveRight, h.MoveToBeginning, h.MoveToEnd, h.Reload,
	}
	for i, move := range moves {
		page, err := move(4, 80)
		if !errors.Is(err, want) {
			t.Errorf("move %d error = %v, want %v", i, err, want)
		}
		if page != nil {
			t.Errorf("move %d returned a page on error", i)
		}
		expectPosition(t, h, 0, 0)
	}
}
