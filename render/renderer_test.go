package render

import (
	"math"
	"testing"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	first := r.Draw(NewGroup("board", 150, 400))
	second := r.Draw(NewGroup("ship", 150, 100))
	if first != 0 || second != 1 {
		t.Fatalf("expected handles 0 and 1\tgot: %d and %d", first, second)
	}

	if !r.Move(second, 262.5, 557.5) {
		t.Fatal("expected move to succeed")
	}
	if !r.Rotate(second, -90) {
		t.Fatal("expected rotate to succeed")
	}

	shape, ok := r.Shape(second)
	if !ok {
		t.Fatal("expected the ship shape")
	}
	if shape.X != 262.5 || shape.Y != 557.5 || shape.Rotation != -90 {
		t.Fatalf("unexpected shape state: (%v, %v) rotation %v", shape.X, shape.Y, shape.Rotation)
	}

	if r.Move(InvalidHandle, 0, 0) || r.Rotate(2, 0) {
		t.Fatal("expected unknown handles to be rejected")
	}
	if _, ok := r.Shape(2); ok {
		t.Fatal("expected no shape for an unknown handle")
	}

	shapes := r.Shapes()
	shapes[0].Name = "changed"
	if got, _ := r.Shape(first); got.Name != "board" {
		t.Fatal("expected Shapes to return a copy")
	}
}

func TestShapeBounds(t *testing.T) {
	tests := []struct {
		name                   string
		shape                  Shape
		minX, minY, maxX, maxY float64
	}{
		{
			name:  "rect",
			shape: Shape{Kind: KindRect, X: 10, Y: 20, Width: 45, Height: 45},
			minX:  10, minY: 20, maxX: 55, maxY: 65,
		},
		{
			name: "path with arc",
			shape: Shape{Kind: KindPath, X: 0, Y: 45, Ops: []PathOp{
				Arc(22.5, 22.5, 17.5, 0, math.Pi),
				LineTo(5, 0),
				LineTo(40, 0),
				ClosePath(),
			}},
			minX: 5, minY: 45, maxX: 40, maxY: 85,
		},
		{
			name:  "path with rect op",
			shape: Shape{Kind: KindPath, X: 100, Y: 100, Ops: []PathOp{RectOp(5, 0, 35, 45)}},
			minX:  105, minY: 100, maxX: 140, maxY: 145,
		},
		{
			name:  "empty path",
			shape: Shape{Kind: KindPath, X: 7, Y: 9},
			minX:  7, minY: 9, maxX: 7, maxY: 9,
		},
		{
			name:  "group",
			shape: NewGroup("g", 3, 4),
			minX:  3, minY: 4, maxX: 3, maxY: 4,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			minX, minY, maxX, maxY := test.shape.Bounds()
			if minX != test.minX || minY != test.minY || maxX != test.maxX || maxY != test.maxY {
				t.Fatalf("expected (%v, %v, %v, %v)\tgot: (%v, %v, %v, %v)",
					test.minX, test.minY, test.maxX, test.maxY, minX, minY, maxX, maxY)
			}
		})
	}
}
