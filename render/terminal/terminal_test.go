package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/saeidalz13/battleship-board/render"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)
	screen.Clear()

	return New(screen, Viewport{PxPerCol: 10, PxPerRow: 10}), screen
}

func cellAt(screen tcell.Screen, col, row int) (rune, tcell.Color) {
	ch, _, style, _ := screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return ch, bg
}

func TestViewport(t *testing.T) {
	v := DefaultViewport()

	col, row := v.ToCell(195, 445)
	if col != 8 || row != 17 {
		t.Fatalf("expected cell: (8, 17)\tgot: (%d, %d)", col, row)
	}

	x, y := v.ToPixel(col, row)
	if gotCol, gotRow := v.ToCell(x, y); gotCol != col || gotRow != row {
		t.Fatalf("expected round trip to (%d, %d)\tgot: (%d, %d)", col, row, gotCol, gotRow)
	}
}

func TestDrawRect(t *testing.T) {
	r, screen := newTestRenderer(t)

	h := r.Draw(render.Shape{Kind: render.KindRect, X: 10, Y: 10, Width: 20, Height: 20, Fill: "white", Stroke: "black"})
	if h != 0 {
		t.Fatalf("expected handle: 0\tgot: %d", h)
	}

	tests := []struct {
		col, row int
		ch       rune
		bg       tcell.Color
	}{
		{col: 1, row: 1, ch: '+', bg: tcell.ColorWhite},
		{col: 2, row: 2, ch: '+', bg: tcell.ColorWhite},
		{col: 3, row: 1, ch: ' ', bg: tcell.ColorDefault},
		{col: 0, row: 0, ch: ' ', bg: tcell.ColorDefault},
	}

	for _, test := range tests {
		ch, bg := cellAt(screen, test.col, test.row)
		if ch != test.ch || bg != test.bg {
			t.Fatalf("cell (%d, %d): expected %q %v\tgot: %q %v", test.col, test.row, test.ch, test.bg, ch, bg)
		}
	}
}

func TestDrawRotatedGroup(t *testing.T) {
	r, screen := newTestRenderer(t)

	group := render.NewGroup("ship", 50, 50)
	group.OffsetX, group.OffsetY = 5, 5
	group.Rotation = -90
	group.Add(render.Shape{Kind: render.KindRect, Width: 10, Height: 30, Fill: "grey"})
	h := r.Draw(group)

	// the hull now extends to the right of the anchor
	if _, bg := cellAt(screen, 7, 4); bg != tcell.ColorGray {
		t.Fatalf("expected gray at (7, 4)\tgot: %v", bg)
	}
	if _, bg := cellAt(screen, 4, 7); bg != tcell.ColorDefault {
		t.Fatalf("expected nothing at (4, 7)\tgot: %v", bg)
	}

	if !r.Rotate(h, 0) {
		t.Fatal("expected rotate to succeed")
	}
	if _, bg := cellAt(screen, 4, 7); bg != tcell.ColorGray {
		t.Fatalf("expected gray at (4, 7) after rotation\tgot: %v", bg)
	}
	if _, bg := cellAt(screen, 7, 4); bg != tcell.ColorDefault {
		t.Fatalf("expected nothing at (7, 4) after rotation\tgot: %v", bg)
	}

	if !r.Move(h, 150, 50) {
		t.Fatal("expected move to succeed")
	}
	if _, bg := cellAt(screen, 14, 7); bg != tcell.ColorGray {
		t.Fatalf("expected gray at (14, 7) after move\tgot: %v", bg)
	}

	if r.Move(render.InvalidHandle, 0, 0) || r.Rotate(5, 0) {
		t.Fatal("expected unknown handles to be rejected")
	}
}

func TestDrawStrokeOnlyPathSkipped(t *testing.T) {
	r, screen := newTestRenderer(t)

	r.Draw(render.Shape{
		Kind:   render.KindPath,
		X:      10,
		Y:      10,
		Stroke: "black",
		Ops:    []render.PathOp{render.MoveTo(0, 0), render.LineTo(0, 30)},
	})

	if _, bg := cellAt(screen, 1, 2); bg != tcell.ColorDefault {
		t.Fatalf("expected an empty cell\tgot: %v", bg)
	}
}

func TestDrawText(t *testing.T) {
	r, screen := newTestRenderer(t)

	group := render.NewGroup("", 0, 0)
	group.Add(
		render.Shape{Kind: render.KindRect, X: 0, Y: 0, Width: 40, Height: 20, Fill: "lightGray"},
		render.Shape{Kind: render.KindText, X: 0, Y: 5, Width: 40, Text: "10", Align: "center"},
	)
	r.Draw(group)

	ch, bg := cellAt(screen, 1, 0)
	if ch != '1' {
		t.Fatalf("expected '1' at (1, 0)\tgot: %q", ch)
	}
	if bg != tcell.ColorLightGray {
		t.Fatalf("expected text to keep the light gray background\tgot: %v", bg)
	}
	if ch, _ := cellAt(screen, 2, 0); ch != '0' {
		t.Fatalf("expected '0' at (2, 0)\tgot: %q", ch)
	}
}

func TestReset(t *testing.T) {
	r, screen := newTestRenderer(t)

	r.Draw(render.Shape{Kind: render.KindRect, X: 0, Y: 0, Width: 10, Height: 10, Fill: "white"})
	r.Reset()

	if _, bg := cellAt(screen, 0, 0); bg != tcell.ColorDefault {
		t.Fatalf("expected a cleared cell\tgot: %v", bg)
	}
	if h := r.Draw(render.Shape{Kind: render.KindRect}); h != 0 {
		t.Fatalf("expected handles to restart at 0\tgot: %d", h)
	}
}

func TestColor(t *testing.T) {
	tests := map[string]tcell.Color{
		"grey":      tcell.ColorGray,
		"lightGray": tcell.ColorLightGray,
		"white":     tcell.ColorWhite,
		"":          tcell.ColorDefault,
	}

	for name, expected := range tests {
		if got := Color(name); got != expected {
			t.Fatalf("%q: expected %v\tgot: %v", name, expected, got)
		}
	}
}
