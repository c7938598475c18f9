package session

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/wall2048/internal/core"
	"github.com/vovakirdan/wall2048/internal/game"
)

// Poller reports the action currently requested by the player.
// Only the state at poll time matters; nothing is queued.
type Poller interface {
	Poll() core.Action
}

// Run starts the session and polls p every interval until the player quits,
// ctx is cancelled or the wallpaper backend fails. The saved background is
// restored on every exit path.
func (s *Session) Run(ctx context.Context, p Poller, interval time.Duration) (err error) {
	if err := s.Start(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("interrupted")
			return nil
		case <-ticker.C:
		}

		ev, err := s.Step(p.Poll())
		if err != nil {
			return err
		}
		if ev == game.EventQuit {
			return nil
		}
	}
}

// Script replays a fixed list of actions, one per poll, then asks to quit.
type Script struct {
	actions []core.Action
	pos     int
}

// NewScript creates a scripted poller.
func NewScript(actions []core.Action) *Script {
	return &Script{actions: actions}
}

// Poll returns the next scripted action, or ActionQuit when exhausted.
func (s *Script) Poll() core.Action {
	if s.pos >= len(s.actions) {
		return core.ActionQuit
	}
	a := s.actions[s.pos]
	s.pos++
	return a
}
