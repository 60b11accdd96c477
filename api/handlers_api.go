package api

import (
	"encoding/json"
	"unicode/utf8"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/board"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

type RequestHandler interface {
	HandleDragStart(scene *mb.Scene) mc.Message[mc.RespDrag]
	HandleDragMove(scene *mb.Scene) mc.Message[mc.RespDrag]
	HandleDragEnd(scene *mb.Scene) mc.Message[mc.RespSnap]
	HandleRotate(scene *mb.Scene) mc.Message[mc.RespRotate]
	HandleKeyDown(scene *mb.Scene) (mc.Message[mc.RespRotate], bool)
}

// Every incoming valid request will have this structure.
// The request then is handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) *Request {
	if len(payload) == 0 {
		return &Request{}
	}
	return &Request{payload: payload[0]}
}

func (r *Request) findController(scene *mb.Scene, shipId string) (*mb.DragController, error) {
	if scene == nil {
		return nil, cerr.ErrSceneNotInitialized()
	}
	return scene.Controller(shipId)
}

func (r *Request) HandleDragStart(scene *mb.Scene) mc.Message[mc.RespDrag] {
	resp := mc.NewMessage[mc.RespDrag](mc.CodeDragStart)

	var req mc.Message[mc.ReqShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal drag start request")
		return resp
	}

	c, err := r.findController(scene, req.Payload.ShipId)
	if err != nil {
		resp.AddError(err.Error(), "failed to start drag")
		return resp
	}
	if err := c.DragStart(); err != nil {
		resp.AddError(err.Error(), "failed to start drag")
		return resp
	}

	pos := c.Ship().Position()
	resp.AddPayload(mc.RespDrag{ShipId: req.Payload.ShipId, Dragging: true, X: pos.X, Y: pos.Y})
	return resp
}

func (r *Request) HandleDragMove(scene *mb.Scene) mc.Message[mc.RespDrag] {
	resp := mc.NewMessage[mc.RespDrag](mc.CodeDragMove)

	var req mc.Message[mc.ReqDrag]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal drag move request")
		return resp
	}

	c, err := r.findController(scene, req.Payload.ShipId)
	if err != nil {
		resp.AddError(err.Error(), "failed to move ship")
		return resp
	}
	if err := c.DragMove(mb.NewPosition(req.Payload.X, req.Payload.Y)); err != nil {
		resp.AddError(err.Error(), "failed to move ship")
		return resp
	}

	resp.AddPayload(mc.RespDrag{ShipId: req.Payload.ShipId, Dragging: true, X: req.Payload.X, Y: req.Payload.Y})
	return resp
}

// The ship is snapped onto the player's board and the response tells
// the client whether the whole ship landed on playable tiles.
func (r *Request) HandleDragEnd(scene *mb.Scene) mc.Message[mc.RespSnap] {
	resp := mc.NewMessage[mc.RespSnap](mc.CodeDragEnd)

	var req mc.Message[mc.ReqDrag]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal drag end request")
		return resp
	}

	c, err := r.findController(scene, req.Payload.ShipId)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrSnapFailed)
		return resp
	}

	result, err := c.DragEnd(mb.NewPosition(req.Payload.X, req.Payload.Y))
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrSnapFailed)
		return resp
	}

	footprint, inBounds, err := scene.Placement(req.Payload.ShipId)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrSnapFailed)
		return resp
	}

	respSnap := mc.RespSnap{
		ShipId:    req.Payload.ShipId,
		X:         result.X,
		Y:         result.Y,
		Col:       result.Col,
		Row:       result.Row,
		InBounds:  inBounds,
		Footprint: footprint,
	}
	if cell, err := scene.Board().CellName(result.Col, result.Row); err == nil {
		respSnap.Cell = cell
	}

	resp.AddPayload(respSnap)
	return resp
}

func (r *Request) HandleRotate(scene *mb.Scene) mc.Message[mc.RespRotate] {
	resp := mc.NewMessage[mc.RespRotate](mc.CodeRotate)

	var req mc.Message[mc.ReqShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal rotate request")
		return resp
	}

	c, err := r.findController(scene, req.Payload.ShipId)
	if err != nil {
		resp.AddError(err.Error(), "failed to rotate ship")
		return resp
	}

	resp.AddPayload(mc.RespRotate{ShipId: req.Payload.ShipId, Rotation: c.Rotate()})
	return resp
}

// HandleKeyDown reports false when the key did not rotate the ship and
// there is nothing to send back.
func (r *Request) HandleKeyDown(scene *mb.Scene) (mc.Message[mc.RespRotate], bool) {
	resp := mc.NewMessage[mc.RespRotate](mc.CodeRotate)

	var req mc.Message[mc.ReqKeyDown]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal key down request")
		return resp, true
	}

	c, err := r.findController(scene, req.Payload.ShipId)
	if err != nil {
		resp.AddError(err.Error(), "failed to handle key")
		return resp, true
	}

	key, _ := utf8.DecodeRuneInString(req.Payload.Key)
	if !c.HandleKey(key) {
		return resp, false
	}

	resp.AddPayload(mc.RespRotate{ShipId: req.Payload.ShipId, Rotation: c.Ship().Rotation()})
	return resp, true
}
