package board

import (
	"fmt"
	"math"

	"github.com/saeidalz13/battleship-board/internal"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"github.com/saeidalz13/battleship-board/render"
)

const (
	RotationVertical   float64 = 0
	RotationHorizontal float64 = -90

	MinShipLength int = 2

	shipOutlineWidth float64 = 4
	shipHullMargin   float64 = 5
)

const (
	ShipKindDestroyer  = "destroyer"
	ShipKindSubmarine  = "submarine"
	ShipKindCruiser    = "cruiser"
	ShipKindBattleship = "battleship"
	ShipKindCarrier    = "carrier"
)

const (
	colorHull    = "grey"
	colorOutline = "black"
)

type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Ship is anchored at the center of its first tile. In the vertical
// orientation it extends downward from there, in the horizontal one
// it extends to the right.
type Ship struct {
	id       string
	kind     string
	length   int
	position Position
	rotation float64
}

func NewShip(kind string, x, y float64, length int) (*Ship, error) {
	if length < MinShipLength {
		return nil, cerr.ErrShipTooShort(length)
	}

	return &Ship{
		id:       internal.NewShortId(8),
		kind:     kind,
		length:   length,
		position: NewPosition(x, y),
		rotation: RotationVertical,
	}, nil
}

func (s *Ship) Id() string {
	return s.id
}

func (s *Ship) Kind() string {
	return s.kind
}

func (s *Ship) Length() int {
	return s.length
}

func (s *Ship) Position() Position {
	return s.position
}

func (s *Ship) SetPosition(pos Position) {
	s.position = pos
}

func (s *Ship) Rotation() float64 {
	return s.rotation
}

func (s *Ship) IsHorizontal() bool {
	return s.rotation == RotationHorizontal
}

// Rotate toggles between the two orientations and returns the new rotation.
func (s *Ship) Rotate() float64 {
	if s.rotation == RotationHorizontal {
		s.rotation = RotationVertical
	} else {
		s.rotation = RotationHorizontal
	}
	return s.rotation
}

// Footprint lists the tiles covered by the ship given its current
// anchor, without any bound checks.
func (s *Ship) Footprint(grid GridSpec) []Cell {
	anchor := HalfCell(grid)
	col := int(math.Floor((s.position.X - anchor.X - grid.OriginX) / grid.CellWidth))
	row := int(math.Floor((s.position.Y - anchor.Y - grid.OriginY) / grid.CellHeight))

	cells := make([]Cell, s.length)
	for i := 0; i < s.length; i++ {
		if s.IsHorizontal() {
			cells[i] = Cell{Col: col + i, Row: row}
		} else {
			cells[i] = Cell{Col: col, Row: row + i}
		}
	}
	return cells
}

// Shape draws the ship as a draggable group made of a rounded top, a
// straight middle segment per extra tile and a rounded bottom.
func (s *Ship) Shape(tileWidth, tileHeight float64) render.Shape {
	group := render.NewGroup(s.ShapeName(), s.position.X, s.position.Y)
	group.Draggable = true
	group.OffsetX = tileWidth / 2.0
	group.OffsetY = tileHeight / 2.0
	group.Rotation = s.rotation

	hs := newHullSegments(tileWidth, tileHeight)

	var cy float64
	group.Add(hs.top(0, cy))
	cy += tileHeight

	for i := 0; i < s.length-2; i++ {
		group.Add(hs.middle(0, cy))
		cy += tileHeight
	}

	group.Add(hs.bottom(0, cy))
	return group
}

func (s *Ship) ShapeName() string {
	return fmt.Sprintf("ship-%s", s.id)
}

type hullSegments struct {
	tileHeight float64
	centerX    float64
	centerY    float64
	halfWidth  float64
}

func newHullSegments(tileWidth, tileHeight float64) hullSegments {
	return hullSegments{
		tileHeight: tileHeight,
		centerX:    tileWidth / 2.0,
		centerY:    tileHeight / 2.0,
		halfWidth:  tileWidth/2.0 - shipHullMargin,
	}
}

func segment(x, y float64, fill, outline []render.PathOp) render.Shape {
	group := render.NewGroup("", 0, 0)
	group.Add(
		render.Shape{Kind: render.KindPath, X: x, Y: y, Fill: colorHull, Ops: fill},
		render.Shape{Kind: render.KindPath, X: x, Y: y, Stroke: colorOutline, StrokeWidth: shipOutlineWidth, Ops: outline},
	)
	return group
}

func (h hullSegments) top(x, y float64) render.Shape {
	lineLength := h.tileHeight - h.centerY
	left, right := h.centerX-h.halfWidth, h.centerX+h.halfWidth

	fill := []render.PathOp{
		render.Arc(h.centerX, h.centerY, h.halfWidth, math.Pi, 0),
		render.LineTo(right, h.centerY+lineLength),
		render.LineTo(left, h.centerY+lineLength),
		render.ClosePath(),
	}
	outline := []render.PathOp{
		render.Arc(h.centerX, h.centerY, h.halfWidth, math.Pi, 0),
		render.MoveTo(left, h.centerY),
		render.LineTo(left, h.centerY+lineLength),
		render.MoveTo(right, h.centerY),
		render.LineTo(right, h.centerY+lineLength),
	}
	return segment(x, y, fill, outline)
}

func (h hullSegments) middle(x, y float64) render.Shape {
	left, right := h.centerX-h.halfWidth, h.centerX+h.halfWidth

	fill := []render.PathOp{
		render.RectOp(left, 0, h.halfWidth*2, h.tileHeight),
	}
	outline := []render.PathOp{
		render.MoveTo(left, 0),
		render.LineTo(left, h.tileHeight),
		render.MoveTo(right, 0),
		render.LineTo(right, h.tileHeight),
	}
	return segment(x, y, fill, outline)
}

func (h hullSegments) bottom(x, y float64) render.Shape {
	lineLength := h.tileHeight - h.centerY
	left, right := h.centerX-h.halfWidth, h.centerX+h.halfWidth

	fill := []render.PathOp{
		render.Arc(h.centerX, h.centerY, h.halfWidth, 0, math.Pi),
		render.LineTo(left, 0),
		render.LineTo(right, 0),
		render.ClosePath(),
	}
	outline := []render.PathOp{
		render.Arc(h.centerX, h.centerY, h.halfWidth, 0, math.Pi),
		render.MoveTo(left, 0),
		render.LineTo(left, lineLength),
		render.MoveTo(right, 0),
		render.LineTo(right, lineLength),
	}
	return segment(x, y, fill, outline)
}

// Contains reports whether pos falls on the ship's hull tiles given
// its current anchor and orientation.
func (s *Ship) Contains(pos Position, tileWidth, tileHeight float64) bool {
	dx := pos.X - s.position.X
	dy := pos.Y - s.position.Y

	along, across := dy, dx
	alongTile, acrossTile := tileHeight, tileWidth
	if s.IsHorizontal() {
		along, across = dx, -dy
	}

	return across >= -acrossTile/2.0 && across < acrossTile/2.0 &&
		along >= -alongTile/2.0 && along < float64(s.length)*alongTile-alongTile/2.0
}
