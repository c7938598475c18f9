package game

import "github.com/vovakirdan/wall2048/internal/board"

// Snapshot captures the complete game state for rendering and determinism testing.
type Snapshot struct {
	Tick      uint64
	Board     board.Board
	Score     int
	MaxTile   int
	Target    int
	Status    Status
	HackMode  bool
	WonOnce   bool
	LastSpawn *board.Cell // Cell filled by the most recent spawn, nil if none
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Board:    g.board,
		Score:    g.score,
		MaxTile:  board.MaxTile(g.board),
		Target:   g.opts.Target,
		Status:   g.status,
		HackMode: g.hack,
		WonOnce:  g.wonOnce,
	}
	if g.spawned {
		cell := g.lastSpawn
		snap.LastSpawn = &cell
	}
	return snap
}
