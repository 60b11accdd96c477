package board

import (
	"reflect"
	"testing"

	"github.com/saeidalz13/battleship-board/render"
)

func TestNewShip(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		expectErr bool
	}{
		{name: "destroyer", length: 2},
		{name: "carrier", length: 5},
		{name: "single tile", length: 1, expectErr: true},
		{name: "zero length", length: 0, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship, err := NewShip(test.name, 150, 100, test.length)
			if test.expectErr {
				if err == nil {
					t.Fatalf("expected error for length %d", test.length)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if ship.Length() != test.length {
				t.Fatalf("expected length: %d\tgot: %d", test.length, ship.Length())
			}
			if ship.Rotation() != RotationVertical {
				t.Fatalf("expected new ship to be vertical, got rotation: %v", ship.Rotation())
			}
		})
	}
}

func TestShipRotate(t *testing.T) {
	ship, err := NewShip(ShipKindCruiser, 0, 0, 3)
	if err != nil {
		t.Fatal(err)
	}

	if got := ship.Rotate(); got != RotationHorizontal {
		t.Fatalf("expected rotation: %v\tgot: %v", RotationHorizontal, got)
	}
	if got := ship.Rotate(); got != RotationVertical {
		t.Fatalf("expected rotation: %v\tgot: %v", RotationVertical, got)
	}
}

func TestShipFootprint(t *testing.T) {
	grid := GridSpec{OriginX: 150, OriginY: 400, CellWidth: 45, CellHeight: 45}

	ship, err := NewShip(ShipKindBattleship, 150+45*2+22.5, 400+45*3+22.5, 4)
	if err != nil {
		t.Fatal(err)
	}

	vertical := []Cell{{Col: 2, Row: 3}, {Col: 2, Row: 4}, {Col: 2, Row: 5}, {Col: 2, Row: 6}}
	if got := ship.Footprint(grid); !reflect.DeepEqual(got, vertical) {
		t.Fatalf("expected footprint: %v\tgot: %v", vertical, got)
	}

	ship.Rotate()
	horizontal := []Cell{{Col: 2, Row: 3}, {Col: 3, Row: 3}, {Col: 4, Row: 3}, {Col: 5, Row: 3}}
	if got := ship.Footprint(grid); !reflect.DeepEqual(got, horizontal) {
		t.Fatalf("expected footprint: %v\tgot: %v", horizontal, got)
	}
}

func TestShipShape(t *testing.T) {
	ship, err := NewShip(ShipKindCarrier, 550, 100, 5)
	if err != nil {
		t.Fatal(err)
	}

	shape := ship.Shape(TileWidth, TileHeight)
	if shape.Kind != render.KindGroup || !shape.Draggable {
		t.Fatalf("expected a draggable group, got kind: %s draggable: %v", shape.Kind, shape.Draggable)
	}
	if shape.OffsetX != TileWidth/2.0 || shape.OffsetY != TileHeight/2.0 {
		t.Fatalf("expected offset of half a tile, got: (%v, %v)", shape.OffsetX, shape.OffsetY)
	}
	if len(shape.Children) != ship.Length() {
		t.Fatalf("expected one segment per tile: %d\tgot: %d", ship.Length(), len(shape.Children))
	}

	// the top segment's arc uses the hull half width
	top := shape.Children[0].Children[0]
	if top.Ops[0].Op != render.OpArc || top.Ops[0].Args[2] != HalfShipWidth {
		t.Fatalf("expected top arc of radius %v, got: %+v", HalfShipWidth, top.Ops[0])
	}

	bottom := shape.Children[len(shape.Children)-1]
	if bottom.Children[0].Y != TileHeight*float64(ship.Length()-1) {
		t.Fatalf("expected bottom segment at y: %v\tgot: %v", TileHeight*float64(ship.Length()-1), bottom.Children[0].Y)
	}
}

func TestShipContains(t *testing.T) {
	ship, err := NewShip(ShipKindCruiser, 100, 100, 3)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		horizontal bool
		pos        Position
		expected   bool
	}{
		{name: "anchor", pos: NewPosition(100, 100), expected: true},
		{name: "top left corner", pos: NewPosition(77.5, 77.5), expected: true},
		{name: "last tile", pos: NewPosition(100, 190), expected: true},
		{name: "below the hull", pos: NewPosition(100, 212.5), expected: false},
		{name: "right of the hull", pos: NewPosition(122.5, 100), expected: false},
		{name: "horizontal last tile", horizontal: true, pos: NewPosition(190, 100), expected: true},
		{name: "horizontal below anchor", horizontal: true, pos: NewPosition(100, 130), expected: false},
		{name: "horizontal past the end", horizontal: true, pos: NewPosition(212.5, 100), expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if ship.IsHorizontal() != test.horizontal {
				ship.Rotate()
			}
			if got := ship.Contains(test.pos, 45, 45); got != test.expected {
				t.Fatalf("expected: %v\tgot: %v", test.expected, got)
			}
		})
	}
}
