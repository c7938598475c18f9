package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wall2048/internal/board"
	"github.com/vovakirdan/wall2048/internal/core"
	"github.com/vovakirdan/wall2048/internal/game"
	"github.com/vovakirdan/wall2048/internal/render"
	"github.com/vovakirdan/wall2048/internal/session"
	"github.com/vovakirdan/wall2048/internal/wallpaper"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"wasd a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{"vim j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, core.ActionDown},
		{"restart", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{"hack", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionHack},
		{"quit q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyLatch(t *testing.T) {
	var l KeyLatch

	if a := l.Poll(); a != core.ActionNone {
		t.Errorf("empty latch polled %v", a)
	}

	l.Press(core.ActionLeft)
	l.Press(core.ActionUp)
	if a := l.Poll(); a != core.ActionUp {
		t.Errorf("latest press should win, got %v", a)
	}
	if a := l.Poll(); a != core.ActionNone {
		t.Errorf("poll should clear the latch, got %v", a)
	}

	l.Press(core.ActionQuit)
	l.Press(core.ActionLeft)
	if a := l.Poll(); a != core.ActionQuit {
		t.Errorf("quit should not be overwritten, got %v", a)
	}
}

func newTestModel(t *testing.T) (Model, *wallpaper.File) {
	t.Helper()
	r, err := render.New(16, nil)
	if err != nil {
		t.Fatal(err)
	}
	w := &wallpaper.File{}
	g := game.New(1, game.DefaultOptions())
	sess := session.New(g, r, w, log.New(io.Discard), session.Options{
		Output: filepath.Join(t.TempDir(), "2048.png"),
	})
	if err := sess.Start(); err != nil {
		t.Fatal(err)
	}
	return NewModel(sess, 10*time.Millisecond), w
}

func TestModelTickAppliesLatchedKey(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(Model)

	if m.sess.Game().HackMode() {
		t.Fatal("key press alone must not step the game")
	}

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)

	if !m.sess.Game().HackMode() {
		t.Error("tick should apply the latched hack toggle")
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	next, cmd := next.(Model).Update(TickMsg(time.Now()))
	m = next.(Model)

	if !m.quitting {
		t.Error("model should be quitting")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelRestartRepublishes(t *testing.T) {
	m, w := newTestModel(t)
	first := w.Last()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	next.(Model).Update(TickMsg(time.Now()))

	if w.Last() == first {
		t.Error("restart should publish a new frame")
	}
}

func TestViewShowsBoard(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view should show the score, got:\n%s", view)
	}
	if !strings.Contains(view, "restart") {
		t.Error("view should include key help")
	}
}

func TestRenderBoardValues(t *testing.T) {
	b := board.Board{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 2048, 0},
		{0, 0, 0, 8192},
	}
	out := RenderBoard(b)

	for _, want := range []string{"2", "128", "2048", "8192"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderBoard output missing %q", want)
		}
	}
}

func TestInterruptedIsCleanExit(t *testing.T) {
	live := context.Background()
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		ctx      context.Context
		err      error
		expected bool
	}{
		{"sigint handled by bubbletea", live, tea.ErrInterrupted, true},
		{"wrapped interrupt", live, fmt.Errorf("run: %w", tea.ErrInterrupted), true},
		{"killed by cancelled context", cancelled, tea.ErrProgramKilled, true},
		{"killed without cancel", live, tea.ErrProgramKilled, false},
		{"other error", cancelled, errors.New("tty gone"), false},
		{"no error", live, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := interrupted(tc.ctx, tc.err); got != tc.expected {
				t.Errorf("interrupted(%v) = %v, expected %v", tc.err, got, tc.expected)
			}
		})
	}
}
