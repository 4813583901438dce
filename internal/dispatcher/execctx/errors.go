package execctx

import "errors"

// Errors for missing context subsystems.
var (
	ErrMissingBuffer  = errors.New("execution context has no buffer")
	ErrMissingCursors = errors.New("execution context has no cursor holder")
	ErrMissingMarker  = errors.New("execution context has no marker")
	ErrMissingLookup  = errors.New("execution context has no lookup chain")
)
