package board

import (
	"github.com/saeidalz13/battleship-board/internal"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"github.com/saeidalz13/battleship-board/render"
)

// Scene is everything one client sees: its own board, the enemy board
// and the fleet waiting to be placed.
type Scene struct {
	uuid        string
	layout      Layout
	board       *Board
	enemyBoard  *Board
	ships       []*Ship
	controllers map[string]*DragController
}

func NewScene(layout Layout) (*Scene, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(layout.BoardX, layout.BoardY, layout.BoardSize, layout.TileWidth, layout.TileHeight)
	if err != nil {
		return nil, err
	}
	enemyBoard, err := NewBoard(layout.EnemyBoardX(), layout.BoardY, layout.BoardSize, layout.TileWidth, layout.TileHeight)
	if err != nil {
		return nil, err
	}

	scene := &Scene{
		uuid:        internal.NewShortId(6),
		layout:      layout,
		board:       board,
		enemyBoard:  enemyBoard,
		ships:       make([]*Ship, 0, len(layout.Fleet)),
		controllers: make(map[string]*DragController, len(layout.Fleet)),
	}

	grid := board.GridSpec()
	for _, p := range layout.Fleet {
		ship, err := NewShip(p.Kind, p.X, p.Y, p.Length)
		if err != nil {
			return nil, err
		}
		if p.Horizontal {
			ship.Rotate()
		}

		scene.ships = append(scene.ships, ship)
		scene.controllers[ship.Id()] = NewDragController(ship, grid)
	}

	return scene, nil
}

func (s *Scene) Uuid() string {
	return s.uuid
}

func (s *Scene) Board() *Board {
	return s.board
}

func (s *Scene) EnemyBoard() *Board {
	return s.enemyBoard
}

// returns the ships in the order they were placed in the layout.
func (s *Scene) Ships() []*Ship {
	return s.ships
}

func (s *Scene) Ship(shipId string) (*Ship, error) {
	c, err := s.Controller(shipId)
	if err != nil {
		return nil, err
	}
	return c.Ship(), nil
}

func (s *Scene) Controller(shipId string) (*DragController, error) {
	c, prs := s.controllers[shipId]
	if !prs {
		return nil, cerr.ErrShipNotExist(shipId)
	}
	return c, nil
}

// Placement reports the footprint of a ship on the player's board and
// whether all of it is on playable tiles.
func (s *Scene) Placement(shipId string) ([]Cell, bool, error) {
	ship, err := s.Ship(shipId)
	if err != nil {
		return nil, false, err
	}

	cells := ship.Footprint(s.board.GridSpec())
	return cells, s.board.Fits(cells), nil
}

// Draw hands the boards and ships to r and returns the handle of every
// ship keyed by ship id.
func (s *Scene) Draw(r render.Renderer) map[string]render.Handle {
	r.Draw(s.board.Shape())
	r.Draw(s.enemyBoard.Shape())

	handles := make(map[string]render.Handle, len(s.ships))
	for _, ship := range s.ships {
		handles[ship.Id()] = r.Draw(ship.Shape(s.layout.TileWidth, s.layout.TileHeight))
	}
	return handles
}

// ShipAt returns the topmost ship under pos. Ships drawn later are on
// top of earlier ones.
func (s *Scene) ShipAt(pos Position) (*Ship, bool) {
	for i := len(s.ships) - 1; i >= 0; i-- {
		if s.ships[i].Contains(pos, s.layout.TileWidth, s.layout.TileHeight) {
			return s.ships[i], true
		}
	}
	return nil, false
}
