package render

import "math"

type Kind string

const (
	KindGroup Kind = "group"
	KindRect  Kind = "rect"
	KindText  Kind = "text"
	KindPath  Kind = "path"
)

const (
	OpArc    = "arc"
	OpMoveTo = "move_to"
	OpLineTo = "line_to"
	OpRect   = "rect"
	OpClose  = "close"
)

// PathOp is a single canvas drawing instruction. Args follow the
// canvas API argument order of the matching call.
type PathOp struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args,omitempty"`
}

func Arc(cx, cy, radius, startAngle, endAngle float64) PathOp {
	return PathOp{Op: OpArc, Args: []float64{cx, cy, radius, startAngle, endAngle}}
}

func MoveTo(x, y float64) PathOp {
	return PathOp{Op: OpMoveTo, Args: []float64{x, y}}
}

func LineTo(x, y float64) PathOp {
	return PathOp{Op: OpLineTo, Args: []float64{x, y}}
}

func RectOp(x, y, width, height float64) PathOp {
	return PathOp{Op: OpRect, Args: []float64{x, y, width, height}}
}

func ClosePath() PathOp {
	return PathOp{Op: OpClose}
}

// Shape is a declarative description of something to draw. Groups
// position their children relative to (X-OffsetX, Y-OffsetY) and rotate
// them by Rotation degrees around (X, Y).
type Shape struct {
	Kind        Kind     `json:"kind"`
	Name        string   `json:"name,omitempty"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Width       float64  `json:"width,omitempty"`
	Height      float64  `json:"height,omitempty"`
	Fill        string   `json:"fill,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth float64  `json:"stroke_width,omitempty"`
	Text        string   `json:"text,omitempty"`
	FontSize    float64  `json:"font_size,omitempty"`
	Align       string   `json:"align,omitempty"`
	Ops         []PathOp `json:"ops,omitempty"`
	OffsetX     float64  `json:"offset_x,omitempty"`
	OffsetY     float64  `json:"offset_y,omitempty"`
	Rotation    float64  `json:"rotation,omitempty"`
	Draggable   bool     `json:"draggable,omitempty"`
	Children    []Shape  `json:"children,omitempty"`
}

func NewGroup(name string, x, y float64) Shape {
	return Shape{Kind: KindGroup, Name: name, X: x, Y: y}
}

func (s *Shape) Add(children ...Shape) {
	s.Children = append(s.Children, children...)
}

// Bounds returns the axis aligned box covering the points a rect or path
// touches, in the shape's own coordinates. Arcs contribute their full
// circle box.
func (s Shape) Bounds() (minX, minY, maxX, maxY float64) {
	switch s.Kind {
	case KindRect, KindText:
		return s.X, s.Y, s.X + s.Width, s.Y + s.Height

	case KindPath:
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
		grow := func(x, y float64) {
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
		for _, op := range s.Ops {
			switch op.Op {
			case OpArc:
				cx, cy, r := op.Args[0], op.Args[1], op.Args[2]
				grow(cx-r, cy-r)
				grow(cx+r, cy+r)
			case OpMoveTo, OpLineTo:
				grow(op.Args[0], op.Args[1])
			case OpRect:
				grow(op.Args[0], op.Args[1])
				grow(op.Args[0]+op.Args[2], op.Args[1]+op.Args[3])
			}
		}
		if math.IsInf(minX, 1) {
			return s.X, s.Y, s.X, s.Y
		}
		return minX + s.X, minY + s.Y, maxX + s.X, maxY + s.Y
	}

	return s.X, s.Y, s.X, s.Y
}
