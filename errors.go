package textimg

import (
	"errors"
	"fmt"
)

// ErrCanvasTooLarge is returned when the requested canvas exceeds
// MaxCanvasPixels. The check runs before any buffer is allocated.
var ErrCanvasTooLarge = errors.New("textimg: canvas exceeds maximum pixel count")

// ValidationError reports a Style field outside its documented range.
// Validation happens once at the pipeline boundary; a Style that fails
// validation is rejected before any rendering work begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("textimg: invalid style: %s: %s", e.Field, e.Reason)
}

// SpecError reports a malformed fill specification, such as a gradient
// mode without a second color.
type SpecError struct {
	Reason string
}

func (e *SpecError) Error() string {
	return "textimg: invalid fill spec: " + e.Reason
}
