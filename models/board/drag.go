package board

import (
	"log"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

// DragController carries a single ship through a drag gesture. It has two
// states, idle and dragging; the drag end snaps the ship onto grid.
type DragController struct {
	ship     *Ship
	grid     GridSpec
	anchor   Offset
	dragging bool
}

func NewDragController(ship *Ship, grid GridSpec) *DragController {
	return &DragController{
		ship:   ship,
		grid:   grid,
		anchor: HalfCell(grid),
	}
}

func (d *DragController) Ship() *Ship {
	return d.ship
}

func (d *DragController) IsDragging() bool {
	return d.dragging
}

func (d *DragController) DragStart() error {
	if d.dragging {
		return cerr.ErrAlreadyDragging(d.ship.Id())
	}
	d.dragging = true
	return nil
}

// DragMove follows the pointer while a drag is in progress.
func (d *DragController) DragMove(pos Position) error {
	if !d.dragging {
		return cerr.ErrNotDragging(d.ship.Id())
	}
	if !pos.IsFinite() {
		return cerr.ErrNonFiniteCoordinates(pos.X, pos.Y)
	}
	d.ship.SetPosition(pos)
	return nil
}

// DragEnd snaps the ship's anchor at pos onto the grid, writes the
// snapped position back onto the ship and leaves the dragging state.
func (d *DragController) DragEnd(pos Position) (SnapResult, error) {
	if !d.dragging {
		return SnapResult{}, cerr.ErrNotDragging(d.ship.Id())
	}
	if !pos.IsFinite() {
		return SnapResult{}, cerr.ErrNonFiniteCoordinates(pos.X, pos.Y)
	}

	result := Snap(pos, d.grid, d.anchor)
	d.ship.SetPosition(result.Position())
	d.dragging = false

	log.Printf("ship %s snapped to (%v, %v)\ttile: (%d, %d)", d.ship.Id(), result.X, result.Y, result.Col, result.Row)
	return result, nil
}

func (d *DragController) Rotate() float64 {
	return d.ship.Rotate()
}

// HandleKey applies a key press to the ship. Upper case R always
// rotates, lower case r only while the ship is being dragged.
func (d *DragController) HandleKey(key rune) bool {
	if key == 'R' || (d.dragging && key == 'r') {
		d.Rotate()
		return true
	}
	return false
}
