package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	// Whole scene description, sent right after the session id
	// and again after a reconnection
	CodeScene

	CodeDragStart
	CodeDragMove
	CodeDragEnd
	CodeRotate
	CodeKeyDown

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent

	// the payload does not match the schema of its code
	CodeInvalidPayload
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
