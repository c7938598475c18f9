package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wall2048/internal/core"
	"github.com/vovakirdan/wall2048/internal/game"
	"github.com/vovakirdan/wall2048/internal/session"
)

// Model is the Bubble Tea model driving one session.
type Model struct {
	sess     *session.Session
	keys     KeyMap
	latch    *KeyLatch
	help     help.Model
	interval time.Duration

	err      error // Adapter failure that ended the program
	quitting bool
}

// NewModel creates a model polling input every interval.
func NewModel(sess *session.Session, interval time.Duration) Model {
	return Model{
		sess:     sess,
		keys:     DefaultKeyMap(),
		latch:    &KeyLatch{},
		help:     help.New(),
		interval: interval,
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a := m.keys.Action(msg); a != core.ActionNone {
			m.latch.Press(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick polls the latched key and advances the session by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	ev, err := m.sess.Step(m.latch.Poll())
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if ev == game.EventQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// interrupted reports whether err only says the program was stopped by a
// signal, either through ctx or Bubble Tea's own SIGINT handler.
func interrupted(ctx context.Context, err error) bool {
	if errors.Is(err, tea.ErrInterrupted) {
		return true
	}
	return errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil
}

// Run starts the session, runs the terminal UI until the player quits or
// ctx is cancelled, and restores the desktop background on the way out.
func Run(ctx context.Context, sess *session.Session, interval time.Duration) error {
	if err := sess.Start(); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(sess, interval),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, runErr := p.Run()
	if interrupted(ctx, runErr) {
		runErr = nil
	}

	var stepErr error
	if fm, ok := final.(Model); ok {
		stepErr = fm.Err()
	}

	return errors.Join(stepErr, runErr, sess.Close())
}
