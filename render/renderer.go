package render

import "sync"

// Handle identifies something a Renderer has drawn.
type Handle int

const InvalidHandle Handle = -1

type Renderer interface {
	Draw(shape Shape) Handle
}

// Recorder is a Renderer that keeps every drawn shape in memory so the
// scene can be shipped to a client as JSON.
type Recorder struct {
	shapes []Shape
	mu     sync.RWMutex
}

var _ Renderer = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{shapes: make([]Shape, 0, 10)}
}

func (r *Recorder) Draw(shape Shape) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shapes = append(r.shapes, shape)
	return Handle(len(r.shapes) - 1)
}

// Shape returns the shape drawn under h.
func (r *Recorder) Shape(h Handle) (Shape, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h < 0 || int(h) >= len(r.shapes) {
		return Shape{}, false
	}
	return r.shapes[h], true
}

// Move writes a new position back onto a drawn shape.
func (r *Recorder) Move(h Handle, x, y float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h < 0 || int(h) >= len(r.shapes) {
		return false
	}
	r.shapes[h].X = x
	r.shapes[h].Y = y
	return true
}

func (r *Recorder) Rotate(h Handle, rotation float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h < 0 || int(h) >= len(r.shapes) {
		return false
	}
	r.shapes[h].Rotation = rotation
	return true
}

// Shapes returns a copy of the top level shapes in draw order.
func (r *Recorder) Shapes() []Shape {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shapes := make([]Shape, len(r.shapes))
	copy(shapes, r.shapes)
	return shapes
}
