// Package session ties a game to its renderer and wallpaper backend. It
// saves the desktop background on start, republishes the board after every
// visible change and restores the original background on close.
package session

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wall2048/internal/board"
	"github.com/vovakirdan/wall2048/internal/core"
	"github.com/vovakirdan/wall2048/internal/game"
	"github.com/vovakirdan/wall2048/internal/render"
	"github.com/vovakirdan/wall2048/internal/wallpaper"
)

// Renderer draws a board with an optional caption.
type Renderer interface {
	Render(b board.Board, ov render.Overlay) *image.RGBA
}

// Options configures a Session.
type Options struct {
	// Output is the PNG path. Frames alternate between this path and a
	// sibling so desktops that cache by file name still refresh.
	Output string

	// Style is applied at start on backends that support it. Empty leaves
	// the current scaling mode alone.
	Style string
}

// Session owns one game for the lifetime of the process.
type Session struct {
	game     *game.Game
	renderer Renderer
	wall     wallpaper.Wallpaper
	logger   *log.Logger
	opts     Options

	started    bool
	closed     bool
	saved      string // Background in use before start
	savedStyle string // Scaling mode before start, if changed
	frame      int    // Alternates output files
}

// New creates a session. Nothing touches the desktop until Start.
func New(g *game.Game, r Renderer, w wallpaper.Wallpaper, logger *log.Logger, opts Options) *Session {
	return &Session{
		game:     g,
		renderer: r,
		wall:     w,
		logger:   logger,
		opts:     opts,
	}
}

// Game returns the game being played.
func (s *Session) Game() *game.Game {
	return s.game
}

// Start saves the current background and shows the initial board.
// If showing the board fails the saved background is restored.
func (s *Session) Start() error {
	saved, err := s.wall.Current()
	if err != nil {
		return fmt.Errorf("session: cannot read current wallpaper: %w", err)
	}
	s.saved = saved
	s.started = true
	s.logger.Info("saved current wallpaper", "backend", s.wall.Name(), "wallpaper", saved)

	if s.opts.Style != "" {
		if err := s.applyStyle(); err != nil {
			return errors.Join(err, s.Close())
		}
	}

	if err := s.publish(); err != nil {
		return errors.Join(err, s.Close())
	}
	return nil
}

func (s *Session) applyStyle() error {
	styler, ok := s.wall.(wallpaper.Styler)
	if !ok {
		s.logger.Warn("backend has no scaling modes, ignoring style", "backend", s.wall.Name(), "style", s.opts.Style)
		return nil
	}

	prev, err := styler.Style()
	if err != nil {
		return fmt.Errorf("session: cannot read wallpaper style: %w", err)
	}
	if err := styler.SetStyle(s.opts.Style); err != nil {
		return fmt.Errorf("session: cannot set wallpaper style: %w", err)
	}
	s.savedStyle = prev
	return nil
}

// Step applies one action and republishes the board if anything visible changed.
// An adapter failure is returned as is; the caller should Close and stop.
func (s *Session) Step(a core.Action) (game.Event, error) {
	ev := s.game.Step(a)

	switch ev {
	case game.EventMoved:
		s.logger.Debug("moved", "action", a, "score", s.game.Score(), "max", board.MaxTile(s.game.Board()))
	case game.EventHackToggled:
		s.logger.Info("hack mode toggled", "enabled", s.game.HackMode())
	case game.EventWon:
		s.logger.Info("target reached", "target", s.game.Target(), "score", s.game.Score())
	case game.EventOver:
		s.logger.Info("game over", "score", s.game.Score(), "max", board.MaxTile(s.game.Board()))
	case game.EventRestarted:
		s.logger.Info("game restarted")
	case game.EventQuit:
		s.logger.Info("exit requested")
	}

	if ev.Redraw() {
		if err := s.publish(); err != nil {
			return ev, err
		}
	}
	return ev, nil
}

// overlay picks the caption for the current status.
func (s *Session) overlay() render.Overlay {
	switch s.game.Status() {
	case game.StatusWon:
		return render.OverlayWin
	case game.StatusOver:
		return render.OverlayGameOver
	default:
		return render.OverlayNone
	}
}

// publish renders the board, writes it to disk and sets it as the background.
func (s *Session) publish() error {
	img := s.renderer.Render(s.game.Board(), s.overlay())

	path := s.framePath()
	if err := render.WriteFile(path, img); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := s.wall.Set(path); err != nil {
		return fmt.Errorf("session: cannot set wallpaper: %w", err)
	}
	s.frame++
	return nil
}

// framePath returns the output path for the next frame.
func (s *Session) framePath() string {
	if s.frame%2 == 0 {
		return s.opts.Output
	}
	ext := filepath.Ext(s.opts.Output)
	return strings.TrimSuffix(s.opts.Output, ext) + "-alt" + ext
}

// Close restores the background and scaling mode saved by Start. It is safe
// to call more than once; only the first call touches the desktop.
func (s *Session) Close() error {
	if !s.started || s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.savedStyle != "" {
		if styler, ok := s.wall.(wallpaper.Styler); ok {
			if err := styler.SetStyle(s.savedStyle); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if s.saved != "" {
		if err := s.wall.Set(s.saved); err != nil {
			errs = append(errs, err)
		} else {
			s.logger.Info("restored wallpaper", "wallpaper", s.saved)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("session: restore failed: %w", err)
	}
	return nil
}
