package board

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type ShipPlacement struct {
	Kind       string  `yaml:"kind"`
	Length     int     `yaml:"length"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Horizontal bool    `yaml:"horizontal"`
}

// Layout describes where the boards and the fleet are placed on the
// canvas when a scene is created.
type Layout struct {
	BoardSize  int             `yaml:"board_size"`
	TileWidth  float64         `yaml:"tile_width"`
	TileHeight float64         `yaml:"tile_height"`
	BoardX     float64         `yaml:"board_x"`
	BoardY     float64         `yaml:"board_y"`
	BoardGap   float64         `yaml:"board_gap"`
	Fleet      []ShipPlacement `yaml:"fleet"`
}

func DefaultLayout() Layout {
	return Layout{
		BoardSize:  BoardSize,
		TileWidth:  TileWidth,
		TileHeight: TileHeight,
		BoardX:     150,
		BoardY:     400,
		BoardGap:   50,
		Fleet:      DefaultFleet(),
	}
}

// DefaultFleet parks the five standard ships above the player's board.
func DefaultFleet() []ShipPlacement {
	return []ShipPlacement{
		{Kind: ShipKindDestroyer, Length: 2, X: 150, Y: 100},
		{Kind: ShipKindSubmarine, Length: 3, X: 250, Y: 100},
		{Kind: ShipKindCruiser, Length: 3, X: 350, Y: 100},
		{Kind: ShipKindBattleship, Length: 4, X: 450, Y: 100},
		{Kind: ShipKindCarrier, Length: 5, X: 550, Y: 100},
	}
}

func (l Layout) Validate() error {
	if err := validateBoardSize(l.BoardSize); err != nil {
		return err
	}
	if _, err := NewGridSpec(l.BoardX, l.BoardY, l.TileWidth, l.TileHeight); err != nil {
		return err
	}
	for _, p := range l.Fleet {
		if p.Length < MinShipLength {
			return cerr.ErrShipTooShort(p.Length)
		}
	}
	return nil
}

// EnemyBoardX places the enemy board to the right of the player's board,
// header column included.
func (l Layout) EnemyBoardX() float64 {
	return l.BoardX + l.BoardGap + l.TileWidth*float64(l.BoardSize+1)
}
