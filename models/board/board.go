package board

import (
	"fmt"
	"strconv"

	"github.com/saeidalz13/battleship-board/internal"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"github.com/saeidalz13/battleship-board/render"
)

const (
	BoardSize    int     = 10
	MaxBoardSize int     = 26
	TileWidth    float64 = 45
	TileHeight   float64 = TileWidth

	// Ship hull is 5px narrower than the tile on each side
	HalfShipWidth float64 = TileWidth/2.0 - 5

	boardStrokeWidth float64 = 2
)

const (
	colorTile   = "white"
	colorHeader = "lightGray"
	colorLine   = "black"
)

// Board is a Size x Size grid of tiles with one extra header row on top
// and one extra header column on the left. The header row and column
// have index 0, playable tiles are 1..Size on both axes.
type Board struct {
	Uuid       string
	X          float64
	Y          float64
	Size       int
	TileWidth  float64
	TileHeight float64
}

func NewBoard(x, y float64, size int, tileWidth, tileHeight float64) (*Board, error) {
	if err := validateBoardSize(size); err != nil {
		return nil, err
	}
	if _, err := NewGridSpec(x, y, tileWidth, tileHeight); err != nil {
		return nil, err
	}

	return &Board{
		Uuid:       internal.NewShortId(6),
		X:          x,
		Y:          y,
		Size:       size,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}, nil
}

// GridSpec anchors the grid at the board's own origin, header tiles
// included, so tile (1, 1) is the first playable tile.
func (b *Board) GridSpec() GridSpec {
	return GridSpec{
		OriginX:    b.X,
		OriginY:    b.Y,
		CellWidth:  b.TileWidth,
		CellHeight: b.TileHeight,
	}
}

func (b *Board) InBounds(col, row int) bool {
	return col >= 1 && col <= b.Size && row >= 1 && row <= b.Size
}

// Fits reports whether every cell lies on a playable tile.
func (b *Board) Fits(cells []Cell) bool {
	for _, c := range cells {
		if !b.InBounds(c.Col, c.Row) {
			return false
		}
	}
	return true
}

// columns are labeled A to Z
func validateBoardSize(size int) error {
	if size <= 0 {
		return cerr.ErrInvalidBoardSize(size)
	}
	if size > MaxBoardSize {
		return cerr.ErrBoardSizeTooLarge(size, MaxBoardSize)
	}
	return nil
}

// ColumnLabel returns "A" for column 1, "B" for column 2 and so on.
func ColumnLabel(col int) string {
	return string(rune('A' + col - 1))
}

func RowLabel(row int) string {
	return strconv.Itoa(row)
}

// CellName returns the human name of a playable tile, e.g. "B3".
func (b *Board) CellName(col, row int) (string, error) {
	if !b.InBounds(col, row) {
		return "", cerr.ErrCellOutOfBound(col, row)
	}
	return ColumnLabel(col) + RowLabel(row), nil
}

func (b *Board) Shape() render.Shape {
	group := render.NewGroup(fmt.Sprintf("board-%s", b.Uuid), b.X, b.Y)

	group.Add(b.headerTile(0, 0, ""))
	for i := 1; i <= b.Size; i++ {
		group.Add(b.headerTile(float64(i)*b.TileWidth, 0, ColumnLabel(i)))
	}
	for i := 1; i <= b.Size; i++ {
		group.Add(b.headerTile(0, float64(i)*b.TileHeight, RowLabel(i)))
	}

	for i := 1; i <= b.Size; i++ {
		for j := 1; j <= b.Size; j++ {
			group.Add(b.tile(float64(i)*b.TileWidth, float64(j)*b.TileHeight))
		}
	}
	return group
}

func (b *Board) tile(x, y float64) render.Shape {
	return render.Shape{
		Kind:        render.KindRect,
		X:           x,
		Y:           y,
		Width:       b.TileWidth,
		Height:      b.TileHeight,
		Fill:        colorTile,
		Stroke:      colorLine,
		StrokeWidth: boardStrokeWidth,
	}
}

func (b *Board) headerTile(x, y float64, label string) render.Shape {
	fontSize := b.TileWidth / 2.0

	group := render.NewGroup("", 0, 0)
	square := b.tile(x, y)
	square.Fill = colorHeader

	text := render.Shape{
		Kind:     render.KindText,
		X:        x,
		Y:        y + fontSize/2.0,
		Width:    b.TileWidth,
		FontSize: fontSize,
		Text:     label,
		Align:    "center",
	}

	group.Add(square, text)
	return group
}
