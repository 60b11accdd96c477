package board

import (
	"math"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

// Rounding toward the next tile starts at this fraction of a cell.
const snapRoundUpFraction float64 = 0.5

// GridSpec describes where a grid starts on the canvas and how big
// each of its cells is, in pixels.
type GridSpec struct {
	OriginX    float64 `json:"origin_x" yaml:"origin_x"`
	OriginY    float64 `json:"origin_y" yaml:"origin_y"`
	CellWidth  float64 `json:"cell_width" yaml:"cell_width"`
	CellHeight float64 `json:"cell_height" yaml:"cell_height"`
}

func NewGridSpec(originX, originY, cellWidth, cellHeight float64) (GridSpec, error) {
	grid := GridSpec{
		OriginX:    originX,
		OriginY:    originY,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
	if err := grid.Validate(); err != nil {
		return GridSpec{}, err
	}
	return grid, nil
}

func (g GridSpec) Validate() error {
	if !(g.CellWidth > 0) || !(g.CellHeight > 0) {
		return cerr.ErrInvalidCellSize(g.CellWidth, g.CellHeight)
	}
	return nil
}

// Position is the pixel location of an object's anchor point.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

func (p Position) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Offset is the distance from an object's anchor to its top-left corner.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HalfCell is the anchor offset of anything anchored at the center
// of a single cell.
func HalfCell(g GridSpec) Offset {
	return Offset{X: g.CellWidth / 2.0, Y: g.CellHeight / 2.0}
}

// SnapResult holds the snapped anchor position together with the
// tile it was aligned to.
type SnapResult struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Col int     `json:"col"`
	Row int     `json:"row"`
}

func (s SnapResult) Position() Position {
	return Position{X: s.X, Y: s.Y}
}

// Ratios this close to a whole tile, relative to the magnitudes that
// produced them, are taken as that tile.
const snapTolerance float64 = 1e-9

// TileIndex converts a distance from the grid origin into a tile index.
// The index is floored and then bumped by one when the fractional part
// is at least half a cell. math.Mod keeps the sign of rel, so a negative
// distance never gets the bump.
func TileIndex(rel, cellSize float64) int {
	return clampTile(tileOf(rel/cellSize, 1))
}

// tileOf rounds ratio the snap way. scale is the magnitude, in cells,
// of the values ratio was computed from.
func tileOf(ratio, scale float64) float64 {
	if r := math.Round(ratio); math.Abs(ratio-r) <= snapTolerance*math.Max(1, scale) {
		ratio = r
	}

	tile := math.Floor(ratio)
	if math.Mod(ratio, 1.0) >= snapRoundUpFraction {
		tile++
	}
	return tile
}

// clampTile converts a tile to an int, saturating at the int range.
func clampTile(tile float64) int {
	switch {
	case tile >= math.MaxInt:
		return math.MaxInt
	case tile <= math.MinInt:
		return math.MinInt
	}
	return int(tile)
}

// snapAxis snaps one coordinate and returns the snapped anchor together
// with the tile it landed on.
func snapAxis(p, anchor, origin, cellSize float64) (float64, float64) {
	rel := p - anchor - origin
	scale := (math.Abs(p) + math.Abs(anchor) + math.Abs(origin)) / cellSize

	tile := tileOf(rel/cellSize, scale)
	return tile*cellSize + origin + anchor, tile
}

// Snap aligns the top-left corner of an object anchored at pos to the
// nearest grid cell and returns the resulting anchor position.
//
// Nothing is clamped: a position outside the grid yields a tile index
// outside of it, negative indices included. Only Col and Row saturate
// when the tile does not fit in an int.
func Snap(pos Position, grid GridSpec, anchor Offset) SnapResult {
	x, col := snapAxis(pos.X, anchor.X, grid.OriginX, grid.CellWidth)
	y, row := snapAxis(pos.Y, anchor.Y, grid.OriginY, grid.CellHeight)

	return SnapResult{
		X:   x,
		Y:   y,
		Col: clampTile(col),
		Row: clampTile(row),
	}
}

// CellTopLeft returns the pixel position of a cell's top-left corner.
func (g GridSpec) CellTopLeft(col, row int) Position {
	return Position{
		X: float64(col)*g.CellWidth + g.OriginX,
		Y: float64(row)*g.CellHeight + g.OriginY,
	}
}
