// Package game sequences board engine calls in response to input actions.
// It tracks the win, game-over, restart and hack-mode state of one session.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/wall2048/internal/board"
	"github.com/vovakirdan/wall2048/internal/core"
)

// Status is the derived state of the game.
type Status int

const (
	StatusActive Status = iota
	StatusWon           // Target just reached; celebration overlay showing
	StatusOver          // No empty cell and no merge left
	StatusRestarting    // Transient while a fresh board is dealt
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusOver:
		return "over"
	case StatusRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// Event describes what a Step did. Platforms use it to decide whether the
// wallpaper needs to be redrawn and what to log.
type Event int

const (
	EventNone             Event = iota
	EventMoved                  // Board changed and a tile spawned
	EventWon                    // Target tile appeared for the first time
	EventOver                   // Board got stuck
	EventRestarted              // Fresh board dealt
	EventHackToggled            // Spawn distribution switched
	EventCelebrationEnded       // Win overlay expired
	EventQuit                   // Exit requested
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventWon:
		return "won"
	case EventOver:
		return "over"
	case EventRestarted:
		return "restarted"
	case EventHackToggled:
		return "hack_toggled"
	case EventCelebrationEnded:
		return "celebration_ended"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Redraw reports whether the event changed anything visible.
func (e Event) Redraw() bool {
	return e != EventNone && e != EventHackToggled && e != EventQuit
}

// Options configures a Game.
type Options struct {
	Target           int                 // Winning tile value (default 2048)
	CelebrateTicks   int                 // Steps the win overlay stays up
	AutoRestartTicks int                 // Steps after game over before dealing a new board (0 = never)
	Spawns           []board.SpawnWeight // Normal spawn distribution
	HackSpawns       []board.SpawnWeight // Spawn distribution in hack mode
}

// DefaultOptions returns the classic rules.
func DefaultOptions() Options {
	return Options{
		Target:         board.DefaultTarget,
		CelebrateTicks: 60,
		Spawns:         board.NormalSpawns,
		HackSpawns:     board.HackSpawns,
	}
}

// OptionsFromRuntime converts durations in cfg to step counts at the poll interval.
func OptionsFromRuntime(cfg core.RuntimeConfig) Options {
	opts := DefaultOptions()
	if cfg.Target > 0 {
		opts.Target = cfg.Target
	}
	if cfg.PollInterval > 0 {
		opts.CelebrateTicks = ticks(cfg.CelebrateFor, cfg.PollInterval)
		opts.AutoRestartTicks = ticks(cfg.AutoRestartAfter, cfg.PollInterval)
	}
	return opts
}

// ticks converts d to whole polls, rounding up so a positive duration
// never becomes zero.
func ticks(d, interval time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + interval - 1) / interval)
}

// Game implements the 2048 state machine.
type Game struct {
	opts Options
	rng  *rand.Rand
	tick uint64

	board  board.Board
	score  int
	status Status

	hack      bool // Spawn from HackSpawns instead of Spawns
	wonOnce   bool // Target already celebrated this game
	holdTicks int  // Steps spent in the current Won/Over hold
	lastSpawn board.Cell
	spawned   bool
}

// New creates a game and deals the initial two tiles.
func New(seed int64, opts Options) *Game {
	if opts.Target <= 0 {
		opts.Target = board.DefaultTarget
	}
	if len(opts.Spawns) == 0 {
		opts.Spawns = board.NormalSpawns
	}
	if len(opts.HackSpawns) == 0 {
		opts.HackSpawns = board.HackSpawns
	}

	g := &Game{
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g
}

// Reset discards the board and deals a fresh one with two tiles.
// Hack mode survives a restart; the won flag and score do not.
func (g *Game) Reset() {
	g.status = StatusRestarting
	g.board = board.New()
	g.score = 0
	g.wonOnce = false
	g.holdTicks = 0
	g.spawned = false

	g.spawnTile()
	g.spawnTile()

	g.status = StatusActive
}

// spawnTile adds one tile using the current distribution.
func (g *Game) spawnTile() {
	weights := g.opts.Spawns
	if g.hack {
		weights = g.opts.HackSpawns
	}
	cell, _, ok := board.Spawn(&g.board, g.rng, weights)
	g.lastSpawn = cell
	g.spawned = ok
}

// Step applies one input action and advances the hold timers.
// At most one transition happens per step.
func (g *Game) Step(a core.Action) Event {
	g.tick++

	switch a {
	case core.ActionQuit:
		return EventQuit
	case core.ActionRestart:
		g.Reset()
		return EventRestarted
	case core.ActionHack:
		g.hack = !g.hack
		return EventHackToggled
	}

	switch g.status {
	case StatusWon:
		g.holdTicks++
		if g.holdTicks >= g.opts.CelebrateTicks {
			g.holdTicks = 0
			g.status = StatusActive
			if !board.HasMoves(g.board) {
				g.status = StatusOver
			}
			return EventCelebrationEnded
		}
		return EventNone

	case StatusOver:
		if g.opts.AutoRestartTicks > 0 {
			g.holdTicks++
			if g.holdTicks >= g.opts.AutoRestartTicks {
				g.Reset()
				return EventRestarted
			}
		}
		return EventNone
	}

	dir, ok := direction(a)
	if !ok {
		return EventNone
	}
	return g.move(dir)
}

// move commits a directional move if it changes the board.
func (g *Game) move(dir board.Direction) Event {
	next, gained := board.Move(g.board, dir)
	if next == g.board {
		// Nothing slid or merged: no spawn.
		return EventNone
	}

	g.board = next
	g.score += gained
	g.spawnTile()

	if !g.wonOnce && board.ReachedTarget(g.board, g.opts.Target) {
		g.wonOnce = true
		g.status = StatusWon
		g.holdTicks = 0
		return EventWon
	}

	if !board.HasMoves(g.board) {
		g.status = StatusOver
		g.holdTicks = 0
		return EventOver
	}

	return EventMoved
}

func direction(a core.Action) (board.Direction, bool) {
	switch a {
	case core.ActionLeft:
		return board.DirLeft, true
	case core.ActionRight:
		return board.DirRight, true
	case core.ActionUp:
		return board.DirUp, true
	case core.ActionDown:
		return board.DirDown, true
	}
	return 0, false
}

// Board returns a copy of the current board.
func (g *Game) Board() board.Board {
	return g.board
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the sum of all merges this game.
func (g *Game) Score() int {
	return g.score
}

// HackMode reports whether high-value spawns are enabled.
func (g *Game) HackMode() bool {
	return g.hack
}

// Target returns the winning tile value.
func (g *Game) Target() int {
	return g.opts.Target
}
