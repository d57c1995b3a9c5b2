package advanced

import "github.com/pkg/errors"

// Threading "this can't happen" errors through every face method would add a
// lot of noise for failures that only come from floating point breaking down.
// Instead, we use panics, and the public API recovers to convert to an error.

type TriangulationError error

// Panic with a TriangulationError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulationError(errors.Errorf(format, args...)))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if triangulationError, ok := r.(TriangulationError); ok {
			return triangulationError
		}
		panic(r)
	}
	return nil
}
