package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabCompletesCommandWord(t *testing.T) {
	t.Parallel()
	p := NewPalette([]string{"record:find <text>", "record:lang <code>", "case:add <number> <type> <title>"})
	p.Open()
	p, _ = p.Update(key("case"))
	p, _ = p.Update(key("tab"))
	if got := p.input.Value(); got != "case:add " {
		t.Fatalf("value = %q", got)
	}
	if m := p.matches(); len(m) != 1 {
		t.Fatalf("matches = %v", m)
	}
}

func TestSubmitAndRecall(t *testing.T) {
	t.Parallel()
	p := NewPalette(nil)
	p.Open()
	p, _ = p.Update(key("record:lang ar"))
	p, cmd := p.Update(key("enter"))
	if p.Visible() {
		t.Fatalf("palette should close on enter")
	}
	if msg, ok := cmd().(PaletteSubmitMsg); !ok || msg.Input != "record:lang ar" {
		t.Fatalf("msg = %#v", msg)
	}

	p.Open()
	p, _ = p.Update(key("up"))
	if got := p.input.Value(); got != "record:lang ar" {
		t.Fatalf("recalled %q", got)
	}
	p, _ = p.Update(key("down"))
	if got := p.input.Value(); got != "" {
		t.Fatalf("down past history = %q", got)
	}
}
