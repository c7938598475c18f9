// Package board implements the 2048 board engine: line collapse, directional
// moves, tile spawning and terminal-state detection. All functions are pure
// over value-typed boards except Spawn, which fills a cell in place.
package board

import (
	"fmt"
	"math/rand"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Size is the board dimension.
const Size = 4

// DefaultTarget is the tile value that wins a classic game.
const DefaultTarget = 2048

// Line is one row or column of the board, ordered in collapse direction.
type Line [Size]int

// Board represents a 4x4 game board, indexed [row][column].
// Zero is an empty cell; every other value is a power of two >= 2.
type Board [Size][Size]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// New returns an empty board.
func New() Board {
	return Board{}
}

// CollapseLine compacts the non-zero values of a line to the front and
// merges equal neighbours. A tile produced by a merge never merges again in
// the same collapse, so [4,4,4,4] becomes [8,8,0,0].
// Returns the collapsed line, the score gained and the number of merges.
func CollapseLine(line Line) (result Line, score, merges int) {
	writePos := 0
	mergedAt := -1

	for i := range Size {
		if line[i] == 0 {
			continue
		}

		if writePos > 0 && mergedAt != writePos-1 && result[writePos-1] == line[i] {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merges++
			mergedAt = writePos - 1
		} else {
			result[writePos] = line[i]
			writePos++
		}
	}

	return result, score, merges
}

func reverse(line Line) Line {
	var result Line
	for i := range Size {
		result[i] = line[Size-1-i]
	}
	return result
}

func transpose(b Board) Board {
	var result Board
	for y := range Size {
		for x := range Size {
			result[y][x] = b[x][y]
		}
	}
	return result
}

// Move slides every row or column in the given direction and returns the
// new board and the score gained. It does not spawn a tile; callers compare
// the result against the input to decide whether the move counted.
func Move(b Board, dir Direction) (Board, int) {
	var total int

	// Up/down are left/right on the transposed board.
	work := b
	if dir == DirUp || dir == DirDown {
		work = transpose(b)
	}
	reversed := dir == DirRight || dir == DirDown

	var out Board
	for y := range Size {
		line := Line(work[y])
		if reversed {
			line = reverse(line)
		}
		collapsed, score, _ := CollapseLine(line)
		if reversed {
			collapsed = reverse(collapsed)
		}
		out[y] = collapsed
		total += score
	}

	if dir == DirUp || dir == DirDown {
		out = transpose(out)
	}
	return out, total
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// SpawnWeight pairs a tile value with its relative likelihood.
type SpawnWeight struct {
	Value  int
	Weight float64
}

// NormalSpawns is the classic distribution: 2 most of the time, sometimes 4.
var NormalSpawns = []SpawnWeight{{Value: 2, Weight: 0.9}, {Value: 4, Weight: 0.1}}

// HackSpawns draws 8 or 16 with equal probability.
var HackSpawns = []SpawnWeight{{Value: 8, Weight: 0.5}, {Value: 16, Weight: 0.5}}

// pickValue draws a value from the weighted table.
func pickValue(rng *rand.Rand, weights []SpawnWeight) int {
	var total float64
	for _, w := range weights {
		total += w.Weight
	}
	if total <= 0 {
		return 2
	}

	r := rng.Float64() * total
	for _, w := range weights {
		if r < w.Weight {
			return w.Value
		}
		r -= w.Weight
	}
	return weights[len(weights)-1].Value
}

// Spawn places a new tile in a uniformly chosen empty cell, with its value
// drawn from weights. If the board is full it is left unchanged and ok is
// false; detecting a stuck board is the caller's job (see HasMoves).
func Spawn(b *Board, rng *rand.Rand, weights []SpawnWeight) (cell Cell, value int, ok bool) {
	empty := EmptyCells(*b)
	if len(empty) == 0 {
		return Cell{}, 0, false
	}

	cell = empty[rng.Intn(len(empty))]
	value = pickValue(rng, weights)
	b[cell.Y][cell.X] = value
	return cell, value, true
}

// HasMoves reports whether any move can change the board: an empty cell
// exists, or two horizontally or vertically adjacent cells hold equal values.
func HasMoves(b Board) bool {
	for y := range Size {
		for x := range Size {
			val := b[y][x]
			if val == 0 {
				return true
			}
			if x < Size-1 && b[y][x+1] == val {
				return true
			}
			if y < Size-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// ReachedTarget reports whether any cell equals target.
func ReachedTarget(b Board, target int) bool {
	for y := range Size {
		for x := range Size {
			if b[y][x] == target {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for y := range Size {
		for x := range Size {
			maxVal = max(maxVal, b[y][x])
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func Sum(b Board) int {
	total := 0
	for y := range Size {
		for x := range Size {
			total += b[y][x]
		}
	}
	return total
}

// String renders the board as space-separated rows, mostly for logs and tests.
func (b Board) String() string {
	var sb strings.Builder
	for y := range Size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%5d", b[y][x])
		}
	}
	return sb.String()
}
