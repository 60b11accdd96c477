package boardview

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	mb "github.com/saeidalz13/battleship-board/models/board"
	"github.com/saeidalz13/battleship-board/render/terminal"
)

// View lets one player drag the fleet around with the mouse. Button 1
// picks up the ship under the pointer, moving with it held drags and
// releasing drops the ship onto the nearest tile.
type View struct {
	screen   tcell.Screen
	renderer *terminal.Renderer
	scene    *mb.Scene

	active  *mb.DragController
	grab    mb.Offset
	pressed bool
	status  string
}

func New(screen tcell.Screen, scene *mb.Scene, viewport terminal.Viewport) *View {
	v := &View{
		screen:   screen,
		renderer: terminal.New(screen, viewport),
		scene:    scene,
		status:   "drag a ship with the mouse, R rotates, q quits",
	}

	if ships := scene.Ships(); len(ships) > 0 {
		v.active, _ = scene.Controller(ships[0].Id())
	}
	return v
}

func (v *View) Status() string {
	return v.status
}

// Active is the ship the keyboard acts on: the last one picked up.
func (v *View) Active() *mb.DragController {
	return v.active
}

func (v *View) Draw() {
	v.renderer.Reset()
	v.scene.Draw(v.renderer)

	_, height := v.screen.Size()
	for i, ch := range v.status {
		v.screen.SetContent(i, height-1, ch, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

// HandleEvent applies one terminal event and reports whether the
// view should close.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		if ev.Rune() == 'q' {
			return true
		}
		if v.active != nil && v.active.HandleKey(ev.Rune()) {
			v.status = fmt.Sprintf("%s rotated", v.active.Ship().Kind())
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := v.renderer.Viewport().ToPixel(col, row)
		v.handleMouse(mb.NewPosition(x, y), ev.Buttons()&tcell.Button1 != 0)
	}

	return false
}

func (v *View) handleMouse(pos mb.Position, down bool) {
	switch {
	case down && !v.pressed:
		v.pressed = true
		ship, ok := v.scene.ShipAt(pos)
		if !ok {
			return
		}

		c, err := v.scene.Controller(ship.Id())
		if err != nil {
			log.Println(err)
			return
		}
		if err := c.DragStart(); err != nil {
			log.Println(err)
			return
		}

		anchor := ship.Position()
		v.active = c
		v.grab = mb.Offset{X: pos.X - anchor.X, Y: pos.Y - anchor.Y}
		v.status = fmt.Sprintf("dragging %s", ship.Kind())

	case down && v.active != nil && v.active.IsDragging():
		if err := v.active.DragMove(v.anchor(pos)); err != nil {
			log.Println(err)
		}

	case !down && v.pressed:
		v.pressed = false
		if v.active == nil || !v.active.IsDragging() {
			return
		}

		result, err := v.active.DragEnd(v.anchor(pos))
		if err != nil {
			log.Println(err)
			return
		}
		v.status = v.placementStatus(result)
	}
}

func (v *View) anchor(pointer mb.Position) mb.Position {
	return mb.NewPosition(pointer.X-v.grab.X, pointer.Y-v.grab.Y)
}

func (v *View) placementStatus(result mb.SnapResult) string {
	ship := v.active.Ship()
	_, fits, err := v.scene.Placement(ship.Id())
	if err != nil {
		return err.Error()
	}

	cell, err := v.scene.Board().CellName(result.Col, result.Row)
	if err != nil || !fits {
		return fmt.Sprintf("%s is off the board", ship.Kind())
	}
	return fmt.Sprintf("%s placed at %s", ship.Kind(), cell)
}

// Run polls the screen until the user quits or ctx is done.
func (v *View) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			// nil once the screen is finalized
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		}
	}
}
