package sketch

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoSelection is returned by operations that need a selected curve or
	// knot when there is none. The engine treats it as a no-op.
	ErrNoSelection = errors.New("sketch: no curve selected")

	// ErrEmptyHistory is returned when undoing or redoing with nothing on the
	// respective stack. The engine treats it as a no-op.
	ErrEmptyHistory = errors.New("sketch: history is empty")

	// ErrNoState is returned when encoding or decoding a nil curve set.
	ErrNoState = errors.New("sketch: no curve set")
)

// InvalidCanvasError reports canvas dimensions that are not positive or that
// exceed the configured maximum.
type InvalidCanvasError struct {
	Width, Height float64
	Max           float64
}

func (e *InvalidCanvasError) Error() string {
	return fmt.Sprintf("sketch: invalid canvas size %g×%g (must be in (0, %g])", e.Width, e.Height, e.Max)
}

// IsInvalidCanvas reports whether err is, or wraps, an [*InvalidCanvasError].
func IsInvalidCanvas(err error) bool {
	var ice *InvalidCanvasError
	return errors.As(err, &ice)
}
