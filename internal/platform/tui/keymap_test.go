package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyrun/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	cases := map[string]core.Action{
		" ":     core.ActionJump,
		"w":     core.ActionJump,
		"up":    core.ActionJump,
		"s":     core.ActionDuck,
		"down":  core.ActionDuck,
		"a":     core.ActionLeft,
		"left":  core.ActionLeft,
		"d":     core.ActionRight,
		"right": core.ActionRight,
		"p":     core.ActionPause,
		"esc":   core.ActionPause,
		"r":     core.ActionRestart,
		"enter": core.ActionConfirm,
		"x":     core.ActionNone,
	}

	for k, want := range cases {
		got, quit := km.MapKey(keyMsg(k))
		if quit {
			t.Errorf("key %q reported quit", k)
		}
		if got != want {
			t.Errorf("key %q = %s, want %s", k, got, want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, k := range []string{"q", "ctrl+c"} {
		if _, quit := km.MapKey(keyMsg(k)); !quit {
			t.Errorf("key %q should quit", k)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg(" "), &frame)
	km.MapKeyToFrame(keyMsg("left"), &frame)

	if !frame.Has(core.ActionJump) || !frame.Has(core.ActionLeft) {
		t.Fatal("frame should carry both actions")
	}
}
