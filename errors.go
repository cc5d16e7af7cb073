package kclosest

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kclosest/distance"
)

var (
	// ErrCannotInferDistance is returned by New when no distance function is
	// given and none can be inferred from the first element.
	ErrCannotInferDistance = errors.New("cannot infer distance function")

	// ErrUnknownStrategy is returned when a Strategy value or name is not recognized.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// ErrInferenceFailed describes why a distance function could not be inferred.
//
// It matches ErrCannotInferDistance via errors.Is. The original underlying
// error (if any) can be accessed via errors.Unwrap.
type ErrInferenceFailed struct {
	Shape distance.Shape
	Type  string
	cause error
}

func (e *ErrInferenceFailed) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: empty collection", ErrCannotInferDistance)
	}
	return fmt.Sprintf("%s: element type %s (shape %s)", ErrCannotInferDistance, e.Type, e.Shape)
}

func (e *ErrInferenceFailed) Unwrap() error { return e.cause }

// Is reports whether target is ErrCannotInferDistance.
func (e *ErrInferenceFailed) Is(target error) bool {
	return target == ErrCannotInferDistance
}
