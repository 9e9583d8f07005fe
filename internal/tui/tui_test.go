package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDetectMode(t *testing.T) {
	var buf bytes.Buffer
	if got := DetectMode(&buf, false); got != ModePlain {
		t.Fatalf("buffer mode = %s, want plain", got)
	}
	if got := DetectMode(&buf, true); got != ModeJSON {
		t.Fatalf("json mode = %s, want json", got)
	}
}

func TestPlainPaletteLeavesTextAlone(t *testing.T) {
	p := PaletteFor(ModePlain)
	for _, s := range []string{p.Accent("x"), p.Highlight("x"), p.Error("x"), p.Success("x"), p.Faint("x")} {
		if s != "x" {
			t.Fatalf("plain palette rendered %q", s)
		}
	}
	if PaletteFor(ModeJSON) != (Palette{}) {
		t.Fatal("json mode should use the plain palette")
	}
}

func TestSpinnerModelWorkDone(t *testing.T) {
	m := newSpinnerModel("Checking for updates")
	if !strings.Contains(m.View(), "Checking for updates") {
		t.Fatalf("view %q does not show label", m.View())
	}

	updated, cmd := m.Update(WorkDoneMsg{})
	m = updated.(spinnerModel)
	if !m.done {
		t.Fatal("expected done")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Fatalf("view after done = %q", m.View())
	}
}

func TestSpinnerModelError(t *testing.T) {
	m := newSpinnerModel("working")
	boom := errors.New("boom")
	updated, _ := m.Update(ErrorMsg{Err: boom})
	m = updated.(spinnerModel)
	if !errors.Is(m.err, boom) || !m.done {
		t.Fatalf("model = %+v", m)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{42 * time.Second, "42s"},
		{75 * time.Second, "1m15s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
