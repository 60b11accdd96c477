package connection

import (
	mb "github.com/saeidalz13/battleship-board/models/board"
	"github.com/saeidalz13/battleship-board/render"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespShip struct {
	ShipId   string  `json:"ship_id"`
	Kind     string  `json:"kind"`
	Length   int     `json:"length"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

func NewRespShip(ship *mb.Ship) RespShip {
	return RespShip{
		ShipId:   ship.Id(),
		Kind:     ship.Kind(),
		Length:   ship.Length(),
		X:        ship.Position().X,
		Y:        ship.Position().Y,
		Rotation: ship.Rotation(),
	}
}

type RespScene struct {
	SceneUuid string         `json:"scene_uuid"`
	Grid      mb.GridSpec    `json:"grid"`
	Ships     []RespShip     `json:"ships"`
	Shapes    []render.Shape `json:"shapes"`
}

type RespDrag struct {
	ShipId   string  `json:"ship_id"`
	Dragging bool    `json:"dragging"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type RespSnap struct {
	ShipId    string    `json:"ship_id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Col       int       `json:"col"`
	Row       int       `json:"row"`
	InBounds  bool      `json:"in_bounds"`
	Cell      string    `json:"cell,omitempty"`
	Footprint []mb.Cell `json:"footprint"`
}

type RespRotate struct {
	ShipId   string  `json:"ship_id"`
	Rotation float64 `json:"rotation"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
