package board

import (
	"math/rand"
	"testing"
)

func TestCollapseLine(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
		score    int
		merges   int
	}{
		{
			name:     "simple merge",
			input:    Line{2, 2, 0, 0},
			expected: Line{4, 0, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "merge with trailing tile",
			input:    Line{2, 2, 2, 0},
			expected: Line{4, 2, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "gap then pair",
			input:    Line{2, 0, 2, 2},
			expected: Line{4, 2, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "double merge",
			input:    Line{2, 2, 2, 2},
			expected: Line{4, 4, 0, 0},
			score:    8,
			merges:   2,
		},
		{
			name:     "merged tile does not merge again",
			input:    Line{2, 2, 4, 0},
			expected: Line{4, 4, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "merged tile does not chain",
			input:    Line{4, 4, 8, 0},
			expected: Line{8, 8, 0, 0},
			score:    8,
			merges:   1,
		},
		{
			name:     "no merge possible",
			input:    Line{2, 4, 8, 16},
			expected: Line{2, 4, 8, 16},
		},
		{
			name:     "slide with multiple gaps",
			input:    Line{2, 0, 0, 2},
			expected: Line{4, 0, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "empty line",
			input:    Line{0, 0, 0, 0},
			expected: Line{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    Line{0, 4, 0, 0},
			expected: Line{4, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, merges := CollapseLine(tt.input)
			if result != tt.expected {
				t.Errorf("CollapseLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("CollapseLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if merges != tt.merges {
				t.Errorf("CollapseLine(%v) merges = %d, want %d", tt.input, merges, tt.merges)
			}
		})
	}
}

// allLines enumerates every line over {0,2,4,8}.
func allLines() []Line {
	values := []int{0, 2, 4, 8}
	var lines []Line
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				for _, d := range values {
					lines = append(lines, Line{a, b, c, d})
				}
			}
		}
	}
	return lines
}

func lineSum(l Line) int {
	return l[0] + l[1] + l[2] + l[3]
}

func TestCollapseLineProperties(t *testing.T) {
	for _, line := range allLines() {
		result, _, merges := CollapseLine(line)

		if lineSum(result) != lineSum(line) {
			t.Errorf("CollapseLine(%v) sum = %d, want %d", line, lineSum(result), lineSum(line))
		}

		if merges > Size/2 {
			t.Errorf("CollapseLine(%v) merged %d times, max is %d", line, merges, Size/2)
		}

		// Any change on a second pass must come from a fresh merge,
		// never from further compaction.
		again, _, againMerges := CollapseLine(result)
		if againMerges == 0 && again != result {
			t.Errorf("CollapseLine not stable on %v: %v then %v", line, result, again)
		}

		// Non-zero values are packed to the front.
		seenZero := false
		for _, v := range result {
			if v == 0 {
				seenZero = true
			} else if seenZero {
				t.Errorf("CollapseLine(%v) = %v leaves a gap", line, result)
				break
			}
		}
	}
}

func TestCollapseLineStableWithoutMerges(t *testing.T) {
	for _, line := range allLines() {
		result, _, merges := CollapseLine(line)
		if merges != 0 {
			continue
		}
		again, _, _ := CollapseLine(result)
		if again != result {
			t.Errorf("CollapseLine not idempotent on merge-free %v: %v then %v", line, result, again)
		}
	}
}

func TestMoveLeftScenario(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	expected := Board{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score := Move(b, DirLeft)
	if result != expected {
		t.Errorf("Move left: got\n%v\nwant\n%v", result, expected)
	}
	if score != 4 {
		t.Errorf("Move left score = %d, want 4", score)
	}
}

func TestMoveDirections(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected Board
	}{
		{
			dir: DirLeft,
			expected: Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			dir: DirRight,
			expected: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
		},
		{
			dir: DirUp,
			expected: Board{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			dir: DirDown,
			expected: Board{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result, _ := Move(b, tt.dir)
			if result != tt.expected {
				t.Errorf("Move %v: got\n%v\nwant\n%v", tt.dir, result, tt.expected)
			}
			if Sum(result) != Sum(b) {
				t.Errorf("Move %v changed the board sum: %d -> %d", tt.dir, Sum(b), Sum(result))
			}
		})
	}
}

func TestMoveIsPure(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}
	before := b

	Move(b, DirLeft)

	if b != before {
		t.Error("Move must not modify its input board")
	}
}

func TestMoveNoChange(t *testing.T) {
	b := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score := Move(b, DirLeft)
	if result != b {
		t.Error("Move left should not change already left-aligned tiles")
	}
	if score != 0 {
		t.Errorf("No-op move score = %d, want 0", score)
	}
}

func TestMoveOppositeNotInverse(t *testing.T) {
	b := Board{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	left, _ := Move(b, DirLeft)
	back, _ := Move(left, DirLeft.Opposite())

	if back == b {
		t.Error("merges are lossy; moving back should not restore the board")
	}
}

func TestHasMoves(t *testing.T) {
	full := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	if HasMoves(full) {
		t.Error("full board without adjacent pairs should have no moves")
	}

	rowPair := full
	rowPair[0][1] = 2
	if !HasMoves(rowPair) {
		t.Error("board with a horizontal pair should have moves")
	}

	withEmpty := full
	withEmpty[2][2] = 0
	if !HasMoves(withEmpty) {
		t.Error("board with an empty cell should have moves")
	}
}

// A pair that only exists in a column must still count as a move.
func TestHasMovesColumnOnlyPair(t *testing.T) {
	b := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 8},
		{4, 2, 4, 8},
	}
	if !HasMoves(b) {
		t.Error("vertical pair in the last column should count as a move")
	}

	checker := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if HasMoves(checker) {
		t.Error("checkerboard has no merges and no empty cells")
	}
}

func TestReachedTarget(t *testing.T) {
	b := New()
	if ReachedTarget(b, DefaultTarget) {
		t.Error("empty board should not reach target")
	}

	b[3][1] = 2048
	if !ReachedTarget(b, DefaultTarget) {
		t.Error("board with 2048 should reach target")
	}

	b[3][1] = 4096
	if ReachedTarget(b, DefaultTarget) {
		t.Error("target means an exact tile value")
	}
}

func TestSpawnSingleEmptyCell(t *testing.T) {
	b := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 2},
	}

	rng := rand.New(rand.NewSource(7))
	cell, value, ok := Spawn(&b, rng, NormalSpawns)

	if !ok {
		t.Fatal("Spawn should succeed with an empty cell")
	}
	if cell != (Cell{X: 2, Y: 2}) {
		t.Errorf("Spawn cell = %+v, want {2 2}", cell)
	}
	if b[2][2] != value || (value != 2 && value != 4) {
		t.Errorf("Spawned value %d (board %d) not in {2,4}", value, b[2][2])
	}
	if len(EmptyCells(b)) != 0 {
		t.Error("board should be full after spawn")
	}
}

func TestSpawnFullBoard(t *testing.T) {
	b := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	before := b

	_, _, ok := Spawn(&b, rand.New(rand.NewSource(1)), NormalSpawns)
	if ok {
		t.Error("Spawn should report failure on a full board")
	}
	if b != before {
		t.Error("Spawn must leave a full board unchanged")
	}
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	counts := map[int]int{}

	for range 2000 {
		b := New()
		_, v, _ := Spawn(&b, rng, NormalSpawns)
		counts[v]++
	}

	if len(counts) != 2 || counts[2] == 0 || counts[4] == 0 {
		t.Fatalf("normal spawns should produce only 2 and 4, got %v", counts)
	}
	if counts[2] < counts[4]*4 {
		t.Errorf("2s should dominate 4s, got %v", counts)
	}

	hack := map[int]int{}
	for range 500 {
		b := New()
		_, v, _ := Spawn(&b, rng, HackSpawns)
		hack[v]++
	}
	if len(hack) != 2 || hack[8] == 0 || hack[16] == 0 {
		t.Errorf("hack spawns should produce only 8 and 16, got %v", hack)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	b1, b2 := New(), New()
	r1 := rand.New(rand.NewSource(12345))
	r2 := rand.New(rand.NewSource(12345))

	for range 5 {
		Spawn(&b1, r1, NormalSpawns)
		Spawn(&b2, r2, NormalSpawns)
	}

	if b1 != b2 {
		t.Errorf("same seed should produce the same board:\n%v\nvs\n%v", b1, b2)
	}
}

func TestMaxTileAndEmptyCells(t *testing.T) {
	b := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	if MaxTile(b) != 2048 {
		t.Errorf("MaxTile = %d, want 2048", MaxTile(b))
	}
	if n := len(EmptyCells(b)); n != 8 {
		t.Errorf("EmptyCells count = %d, want 8", n)
	}
}
