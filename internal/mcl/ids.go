package mcl

import (
	"strings"

	"github.com/google/uuid"
)

// newShortID returns the first 8 hex characters of a random UUID.
func newShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
