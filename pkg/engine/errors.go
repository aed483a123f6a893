package engine

import "errors"

// ErrInvalidProcess indicates the engine received a process that fails its
// structural invariants: no steps, a step without resources, or a
// non-positive processing time. Unreachable when the process was built
// through the models package, which rejects such input at construction.
var ErrInvalidProcess = errors.New("invalid process")

// IsInvalidProcess checks if an error is a structural process error.
func IsInvalidProcess(err error) bool {
	return errors.Is(err, ErrInvalidProcess)
}
