package key

import (
	"errors"
	"testing"
)

func TestParseCharacters(t *testing.T) {
	tests := []struct {
		spec     string
		wantRune rune
	}{
		{"q", 'q'},
		{"G", 'G'},
		{"1", '1'},
		{"-", '-'},
		{"+", '+'},
		{"Space", ' '},
		{"<Space>", ' '},
		{"<lt>", '<'},
	}

	for _, tt := range tests {
		e, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if e.Key != KeyRune || e.Rune != tt.wantRune {
			t.Errorf("Parse(%q) = %#v, want rune %q", tt.spec, e, tt.wantRune)
		}
		if e.Modifiers != ModNone {
			t.Errorf("Parse(%q) modifiers = %v, want none", tt.spec, e.Modifiers)
		}
	}
}

func TestParseNamedKeys(t *testing.T) {
	tests := []struct {
		spec string
		want Key
	}{
		{"Enter", KeyEnter},
		{"<CR>", KeyEnter},
		{"return", KeyEnter},
		{"Esc", KeyEscape},
		{"PageDown", KeyPageDown},
		{"<PageUp>", KeyPageUp},
		{"pgdn", KeyPageDown},
		{"Home", KeyHome},
		{"<End>", KeyEnd},
		{"Up", KeyUp},
		{"Down", KeyDown},
		{"Left", KeyLeft},
		{"Right", KeyRight},
		{"F1", KeyF1},
		{"<F12>", KeyF12},
	}

	for _, tt := range tests {
		e, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if e.Key != tt.want {
			t.Errorf("Parse(%q) key = %v, want %v", tt.spec, e.Key, tt.want)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMod  Modifier
	}{
		{"Ctrl+c", KeyRune, 'c', ModCtrl},
		{"Ctrl+C", KeyRune, 'c', ModCtrl},
		{"<C-c>", KeyRune, 'c', ModCtrl},
		{"<C-L>", KeyRune, 'l', ModCtrl},
		{"<A-f>", KeyRune, 'f', ModAlt},
		{"<M-f>", KeyRune, 'f', ModAlt},
		{"Alt+F4", KeyF4, 0, ModAlt},
		{"Ctrl+Shift+PageDown", KeyPageDown, 0, ModCtrl | ModShift},
		{"<S-Up>", KeyUp, 0, ModShift},
		{"<C-->", KeyRune, '-', ModCtrl},
		{"Ctrl++", KeyRune, '+', ModCtrl},
	}

	for _, tt := range tests {
		e, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if e.Key != tt.wantKey || e.Rune != tt.wantRune || e.Modifiers != tt.wantMod {
			t.Errorf("Parse(%q) = %#v, want {%v %q %v}", tt.spec, e, tt.wantKey, tt.wantRune, tt.wantMod)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"nonsense", ErrInvalidSpec},
		{"Hyper+x", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
		{"<>", ErrInvalidSpec},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an invalid spec")
		}
	}()
	MustParse("not-a-key")
}
