package board

import (
	"math"
	"math/rand"
	"testing"
)

var (
	testGrid   = GridSpec{OriginX: 0, OriginY: 0, CellWidth: 45, CellHeight: 45}
	testAnchor = Offset{X: 22.5, Y: 22.5}
)

func TestNewGridSpec(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		expectErr     bool
	}{
		{name: "valid", width: 45, height: 45},
		{name: "non square", width: 30, height: 60},
		{name: "zero width", width: 0, height: 45, expectErr: true},
		{name: "negative height", width: 45, height: -1, expectErr: true},
		{name: "nan width", width: math.NaN(), height: 45, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewGridSpec(0, 0, test.width, test.height)
			if test.expectErr && err == nil {
				t.Fatal("expected an error for invalid cell size")
			}
			if !test.expectErr && err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		grid     GridSpec
		expected SnapResult
	}{
		{
			name:     "already aligned at tile 0,0",
			pos:      Position{X: 22.5, Y: 22.5},
			grid:     testGrid,
			expected: SnapResult{X: 22.5, Y: 22.5, Col: 0, Row: 0},
		},
		{
			name:     "past half a cell rounds up",
			pos:      Position{X: 50, Y: 22.5},
			grid:     testGrid,
			expected: SnapResult{X: 67.5, Y: 22.5, Col: 1, Row: 0},
		},
		{
			name:     "exactly half a cell rounds up",
			pos:      Position{X: 45, Y: 45},
			grid:     testGrid,
			expected: SnapResult{X: 67.5, Y: 67.5, Col: 1, Row: 1},
		},
		{
			name:     "just below half a cell rounds down",
			pos:      Position{X: 44.5, Y: 44.9},
			grid:     testGrid,
			expected: SnapResult{X: 22.5, Y: 22.5, Col: 0, Row: 0},
		},
		{
			name:     "grid with origin",
			pos:      Position{X: 337.5, Y: 432.5},
			grid:     GridSpec{OriginX: 150, OriginY: 400, CellWidth: 45, CellHeight: 45},
			expected: SnapResult{X: 352.5, Y: 422.5, Col: 4, Row: 0},
		},
		{
			name:     "non square cells",
			pos:      Position{X: 10 + 40, Y: 20 + 70},
			grid:     GridSpec{OriginX: 0, OriginY: 0, CellWidth: 20, CellHeight: 40},
			expected: SnapResult{X: 10 + 40, Y: 20 + 80, Col: 2, Row: 2},
		},
		{
			name:     "left of origin floors to negative tile",
			pos:      Position{X: 12.5, Y: 22.5},
			grid:     testGrid,
			expected: SnapResult{X: -22.5, Y: 22.5, Col: -1, Row: 0},
		},
		{
			name:     "negative fraction never rounds up",
			pos:      Position{X: -9, Y: -45},
			grid:     testGrid,
			expected: SnapResult{X: -22.5, Y: -67.5, Col: -1, Row: -2},
		},
		{
			name:     "far past the grid is not clamped",
			pos:      Position{X: 45*20 + 22.5 + 1, Y: 22.5},
			grid:     testGrid,
			expected: SnapResult{X: 45*20 + 22.5, Y: 22.5, Col: 20, Row: 0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Snap(test.pos, test.grid, HalfCell(test.grid))
			if got != test.expected {
				t.Fatalf("expected: %+v\tgot: %+v", test.expected, got)
			}
		})
	}
}

func TestSnapRoundHalfUp(t *testing.T) {
	grid := GridSpec{OriginX: 150, OriginY: 400, CellWidth: 45, CellHeight: 45}
	anchor := HalfCell(grid)

	fractions := []struct {
		frac    float64
		roundUp bool
	}{
		{frac: 0}, {frac: 0.1}, {frac: 0.25}, {frac: 0.49},
		{frac: 0.5, roundUp: true}, {frac: 0.75, roundUp: true}, {frac: 0.99, roundUp: true},
	}

	for tile := 0; tile < 10; tile++ {
		for _, f := range fractions {
			rel := (float64(tile) + f.frac) * grid.CellWidth
			pos := Position{X: rel + anchor.X + grid.OriginX, Y: rel + anchor.Y + grid.OriginY}

			expectedTile := tile
			if f.roundUp {
				expectedTile++
			}

			got := Snap(pos, grid, anchor)
			if got.Col != expectedTile || got.Row != expectedTile {
				t.Fatalf("tile %d frac %v: expected tile: %d\tgot: (%d, %d)", tile, f.frac, expectedTile, got.Col, got.Row)
			}
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	grid := GridSpec{OriginX: 150, OriginY: 400, CellWidth: 45, CellHeight: 45}
	anchor := HalfCell(grid)

	for x := -200.0; x < 900; x += 7.3 {
		for y := 0.0; y < 1000; y += 11.9 {
			once := Snap(Position{X: x, Y: y}, grid, anchor)
			twice := Snap(once.Position(), grid, anchor)
			if once != twice {
				t.Fatalf("snap is not a fixed point for (%v, %v)\tonce: %+v\ttwice: %+v", x, y, once, twice)
			}
		}
	}
}

func TestSnapIdempotentFractionalGrid(t *testing.T) {
	tests := []struct {
		name string
		grid GridSpec
		pos  Position
	}{
		{
			name: "negative position on a fractional grid",
			grid: GridSpec{OriginX: 4.33, OriginY: 2.42, CellWidth: 2.413, CellHeight: 2.201},
			pos:  Position{X: -63.42, Y: -14.33},
		},
		{
			name: "negative origin",
			grid: GridSpec{OriginX: -3.7, OriginY: -0.1, CellWidth: 0.3, CellHeight: 0.7},
			pos:  Position{X: -99.9, Y: -0.05},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			anchor := HalfCell(test.grid)
			once := Snap(test.pos, test.grid, anchor)
			twice := Snap(once.Position(), test.grid, anchor)
			if once != twice {
				t.Fatalf("once: %+v\ttwice: %+v", once, twice)
			}
		})
	}

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200000; i++ {
		grid := GridSpec{
			OriginX:    rnd.Float64()*10 - 5,
			OriginY:    rnd.Float64()*10 - 5,
			CellWidth:  0.01 + rnd.Float64()*3,
			CellHeight: 0.01 + rnd.Float64()*3,
		}
		anchor := HalfCell(grid)
		pos := Position{X: rnd.Float64()*200 - 100, Y: rnd.Float64()*200 - 100}

		once := Snap(pos, grid, anchor)
		twice := Snap(once.Position(), grid, anchor)
		if once != twice {
			t.Fatalf("grid %+v pos %+v\tonce: %+v\ttwice: %+v", grid, pos, once, twice)
		}
	}
}

func TestSnapHugeInput(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected int
	}{
		{name: "far right", pos: Position{X: 1e300, Y: 22.5}, expected: math.MaxInt},
		{name: "far left", pos: Position{X: -1e300, Y: 22.5}, expected: math.MinInt},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Snap(test.pos, testGrid, testAnchor)

			if math.Abs(got.X-test.pos.X) > math.Abs(test.pos.X)*1e-9 {
				t.Fatalf("expected x close to %v\tgot: %v", test.pos.X, got.X)
			}
			if got.Col != test.expected {
				t.Fatalf("expected col: %d\tgot: %d", test.expected, got.Col)
			}
			if got.Y != 22.5 || got.Row != 0 {
				t.Fatalf("expected y: 22.5 row: 0\tgot: %v row: %d", got.Y, got.Row)
			}
		})
	}

	if got := TileIndex(1e300, 45); got != math.MaxInt {
		t.Fatalf("expected tile index to saturate\tgot: %d", got)
	}
}

func TestSnapAlignedInputUnchanged(t *testing.T) {
	grid := GridSpec{OriginX: 150, OriginY: 400, CellWidth: 45, CellHeight: 45}
	anchor := HalfCell(grid)

	for col := -3; col <= 12; col++ {
		for row := -3; row <= 12; row++ {
			topLeft := grid.CellTopLeft(col, row)
			pos := Position{X: topLeft.X + anchor.X, Y: topLeft.Y + anchor.Y}

			got := Snap(pos, grid, anchor)
			if got.Position() != pos || got.Col != col || got.Row != row {
				t.Fatalf("aligned input moved\tinput: %+v\tgot: %+v", pos, got)
			}
		}
	}
}

func TestTileIndex(t *testing.T) {
	tests := []struct {
		rel      float64
		expected int
	}{
		{rel: 0, expected: 0},
		{rel: 22.4, expected: 0},
		{rel: 22.5, expected: 1},
		{rel: 44.9, expected: 1},
		{rel: 45, expected: 1},
		{rel: -0.1, expected: -1},
		{rel: -22.5, expected: -1},
		{rel: -44.9, expected: -1},
		{rel: -45, expected: -1},
		{rel: -45.1, expected: -2},
	}

	for _, test := range tests {
		if got := TileIndex(test.rel, 45); got != test.expected {
			t.Fatalf("rel %v: expected tile: %d\tgot: %d", test.rel, test.expected, got)
		}
	}
}
