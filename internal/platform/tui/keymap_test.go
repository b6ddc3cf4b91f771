package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-popper/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey("a"), core.ActionAimLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAimLeft, false},
		{"d", runeKey("d"), core.ActionAimRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionAimRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFire, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"m", runeKey("m"), core.ActionMute, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("a"), &frame) {
		t.Error("a should not quit")
	}
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame) {
		t.Error("space should not quit")
	}
	if !frame.Has(core.ActionAimLeft) || !frame.Has(core.ActionFire) {
		t.Errorf("Frame missing actions: %v", frame.Actions)
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionMotion}, &frame)
	if !frame.Pointer.Valid || !frame.Pointer.Moved {
		t.Fatalf("Pointer = %+v, want valid and moved", frame.Pointer)
	}
	if frame.Pointer.X != 12 || frame.Pointer.Y != 7 {
		t.Errorf("Pointer at (%d,%d), want (12,7)", frame.Pointer.X, frame.Pointer.Y)
	}
	if frame.Has(core.ActionFire) {
		t.Error("Motion should not fire")
	}

	km.MapMouseToFrame(tea.MouseMsg{
		X: 13, Y: 7,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}, &frame)
	if !frame.Has(core.ActionFire) {
		t.Error("Left click should fire")
	}

	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{
		X: 13, Y: 7,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonRight,
	}, &frame)
	if frame.Has(core.ActionFire) {
		t.Error("Right click should not fire")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
