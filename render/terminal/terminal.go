package terminal

import (
	"math"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/saeidalz13/battleship-board/render"
)

const (
	// a 45px tile is 4 columns wide and 2 rows tall
	DefaultPxPerCol float64 = 11.25
	DefaultPxPerRow float64 = 22.5
)

// Viewport maps canvas pixels to terminal cells. The pixel at
// (OriginX, OriginY) lands on cell (0, 0).
type Viewport struct {
	OriginX  float64
	OriginY  float64
	PxPerCol float64
	PxPerRow float64
}

func DefaultViewport() Viewport {
	return Viewport{OriginX: 100, OriginY: 50, PxPerCol: DefaultPxPerCol, PxPerRow: DefaultPxPerRow}
}

// ToCell returns the cell containing the pixel.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor((x - v.OriginX) / v.PxPerCol)), int(math.Floor((y - v.OriginY) / v.PxPerRow))
}

// ToPixel returns the pixel at the center of the cell.
func (v Viewport) ToPixel(col, row int) (float64, float64) {
	return v.OriginX + (float64(col)+0.5)*v.PxPerCol, v.OriginY + (float64(row)+0.5)*v.PxPerRow
}

// affine is the 2x3 matrix [a c e; b d f].
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

func (m affine) mul(n affine) affine {
	return affine{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

func translate(x, y float64) affine {
	return affine{a: 1, d: 1, e: x, f: y}
}

// rotation in degrees, clockwise on a y-down canvas
func rotate(deg float64) affine {
	rad := deg * math.Pi / 180.0
	sin, cos := clean(math.Sin(rad)), clean(math.Cos(rad))
	return affine{a: cos, b: sin, c: -sin, d: cos}
}

// quarter turns must land exactly on cell edges
func clean(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return v
}

// Renderer paints shapes onto a tcell screen. Rects and filled paths
// become blocks of background color, stroke-only paths are skipped.
// It keeps every drawn shape so the screen can be repainted after a
// Move or Rotate.
type Renderer struct {
	screen tcell.Screen
	view   Viewport
	shapes []render.Shape
	mu     sync.Mutex
}

var _ render.Renderer = (*Renderer)(nil)

func New(screen tcell.Screen, view Viewport) *Renderer {
	return &Renderer{screen: screen, view: view}
}

func (r *Renderer) Viewport() Viewport {
	return r.view
}

func (r *Renderer) Draw(shape render.Shape) render.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shapes = append(r.shapes, shape)
	r.paint(shape, identity)
	return render.Handle(len(r.shapes) - 1)
}

func (r *Renderer) Move(h render.Handle, x, y float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h < 0 || int(h) >= len(r.shapes) {
		return false
	}
	r.shapes[h].X = x
	r.shapes[h].Y = y
	r.repaint()
	return true
}

func (r *Renderer) Rotate(h render.Handle, rotation float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h < 0 || int(h) >= len(r.shapes) {
		return false
	}
	r.shapes[h].Rotation = rotation
	r.repaint()
	return true
}

// Reset forgets every drawn shape and clears the screen.
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shapes = r.shapes[:0]
	r.screen.Clear()
}

func (r *Renderer) repaint() {
	r.screen.Clear()
	for _, shape := range r.shapes {
		r.paint(shape, identity)
	}
}

func (r *Renderer) paint(shape render.Shape, m affine) {
	switch shape.Kind {
	case render.KindGroup:
		local := m.mul(translate(shape.X, shape.Y)).
			mul(rotate(shape.Rotation)).
			mul(translate(-shape.OffsetX, -shape.OffsetY))
		for _, child := range shape.Children {
			r.paint(child, local)
		}

	case render.KindRect:
		x0, y0, x1, y1 := shape.Bounds()
		r.fillBox(m, x0, y0, x1, y1, shape.Fill, shape.Stroke)

	case render.KindPath:
		if shape.Fill == "" {
			return
		}
		x0, y0, x1, y1 := shape.Bounds()
		r.fillBox(m, x0, y0, x1, y1, shape.Fill, "")

	case render.KindText:
		r.text(m, shape)
	}
}

// Lines on the canvas are thinner than a cell, so a stroke is drawn on
// the outermost cells of the box.
func (r *Renderer) fillBox(m affine, x0, y0, x1, y1 float64, fill, stroke string) {
	minX, minY, maxX, maxY := transformBox(m, x0, y0, x1, y1)

	c0 := int(math.Floor((minX - r.view.OriginX) / r.view.PxPerCol))
	r0 := int(math.Floor((minY - r.view.OriginY) / r.view.PxPerRow))
	c1 := int(math.Ceil((maxX-r.view.OriginX)/r.view.PxPerCol)) - 1
	r1 := int(math.Ceil((maxY-r.view.OriginY)/r.view.PxPerRow)) - 1

	style := tcell.StyleDefault.Background(Color(fill))
	if stroke != "" {
		style = style.Foreground(Color(stroke))
	}

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			ch := ' '
			if stroke != "" {
				ch = edgeRune(col == c0 || col == c1, row == r0 || row == r1)
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func edgeRune(vertical, horizontal bool) rune {
	switch {
	case vertical && horizontal:
		return '+'
	case vertical:
		return '|'
	case horizontal:
		return '-'
	}
	return ' '
}

// Text is centered on its box and keeps the background already painted
// under it.
func (r *Renderer) text(m affine, shape render.Shape) {
	if shape.Text == "" {
		return
	}

	x := shape.X
	if shape.Align == "center" {
		x += shape.Width / 2.0
	}
	px, py := m.apply(x, shape.Y+shape.Height/2.0)
	col, row := r.view.ToCell(px, py)
	if shape.Align == "center" {
		col -= len(shape.Text) / 2
	}

	fg := Color(shape.Fill)
	if shape.Fill == "" {
		fg = tcell.ColorBlack
	}

	for i, ch := range shape.Text {
		_, _, style, _ := r.screen.GetContent(col+i, row)
		r.screen.SetContent(col+i, row, ch, nil, style.Foreground(fg))
	}
}

func transformBox(m affine, x0, y0, x1, y1 float64) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		x, y := m.apply(p[0], p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return minX, minY, maxX, maxY
}

// Color maps a canvas color name onto a terminal color. Unknown names
// give the terminal default.
func Color(name string) tcell.Color {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "grey", "gray")
	return tcell.GetColor(name)
}
