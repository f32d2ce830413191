package bushfire

import "errors"

// Kernel error kinds. Failures are wrapped with context at the point they
// arise; match them with errors.Is.
var (
	// ErrInvalidParameter reports a constructor or argument value outside
	// the physical domain of the methodology.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrFlameEnvelope reports a separation distance that places the
	// receiver inside the flame envelope, where the assessment geometry
	// is undefined.
	ErrFlameEnvelope = errors.New("receiver within flame envelope")
	// ErrNoConvergence reports an iterative search that exhausted its
	// budget before reaching tolerance.
	ErrNoConvergence = errors.New("search did not converge")
)
