package connection

type ReqShip struct {
	ShipId string `json:"ship_id"`
}

type ReqDrag struct {
	ShipId string  `json:"ship_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type ReqKeyDown struct {
	ShipId string `json:"ship_id"`
	Key    string `json:"key"`
}
