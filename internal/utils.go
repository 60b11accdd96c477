package internal

import (
	"strings"

	"github.com/google/uuid"
)

// NewShortId returns the first length hex digits of a random uuid.
// Ship and scene ids only have to be unique within one server.
func NewShortId(length int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length <= 0 || length > len(id) {
		return id
	}
	return id[:length]
}
