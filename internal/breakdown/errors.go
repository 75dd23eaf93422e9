package breakdown

import (
	"errors"
	"fmt"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
)

// MaxExpressionDepth bounds recursive expression descent. Source nesting
// never comes close; hitting the ceiling means a pathological tree and fails
// that file deterministically instead of overflowing the stack.
const MaxExpressionDepth = 200

// ErrDepthExceeded is returned when expression nesting passes
// MaxExpressionDepth. Fatal for the file being analyzed, harmless to others.
var ErrDepthExceeded = errors.New("expression nesting exceeds depth ceiling")

// ParseInputError reports a supplied tree that is structurally invalid for
// the expected declaration kind. Fatal for that file only.
type ParseInputError struct {
	Expected node.Kind
	Got      node.Kind
	Detail   string
}

func (e *ParseInputError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid input tree: expected %s, got %s (%s)", e.Expected, e.Got, e.Detail)
	}
	return fmt.Sprintf("invalid input tree: expected %s, got %s", e.Expected, e.Got)
}
