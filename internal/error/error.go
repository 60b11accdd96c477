package error

import "fmt"

const (
	ConstErrSnapFailed = "snap operation failed"
)

func ErrInvalidCellSize(width, height float64) error {
	return fmt.Errorf("cell width and height must be positive\twidth: %v\theight: %v", width, height)
}

func ErrInvalidBoardSize(size int) error {
	return fmt.Errorf("board size must be positive\tsize: %d", size)
}

func ErrBoardSizeTooLarge(size, max int) error {
	return fmt.Errorf("board size must not exceed the %d column letters\tsize: %d", max, size)
}

func ErrShipTooShort(length int) error {
	return fmt.Errorf("ship must be at least 2 in length\tlength: %d", length)
}

func ErrShipNotExist(shipId string) error {
	return fmt.Errorf("ship with this id does not exist, id: %s", shipId)
}

func ErrNotDragging(shipId string) error {
	return fmt.Errorf("no drag in progress for ship, id: %s", shipId)
}

func ErrAlreadyDragging(shipId string) error {
	return fmt.Errorf("ship is already being dragged, id: %s", shipId)
}

func ErrCellOutOfBound(col, row int) error {
	return fmt.Errorf("cell is out of board bound\tcol: %d\trow: %d", col, row)
}

func ErrNonFiniteCoordinates(x, y float64) error {
	return fmt.Errorf("coordinates must be finite\tx: %v\ty: %v", x, y)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s", sessionId)
}

func ErrSceneNotInitialized() error {
	return fmt.Errorf("the session scene is not initialized")
}

func ErrSchemaNotExist(code uint8) error {
	return fmt.Errorf("no payload schema registered for code: %d", code)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrEnvMissing(key string) error {
	return fmt.Errorf("required environment variable is missing: %s", key)
}

func ErrSceneNotExists(sceneUuid string) error {
	return fmt.Errorf("scene with this uuid does not exist, uuid: %s", sceneUuid)
}
