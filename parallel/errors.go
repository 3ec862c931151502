package parallel

import "errors"

// Error taxonomy shared by every engine. Package-level sentinels in the
// engines wrap one of these two, so callers can branch on the class with
// errors.Is regardless of which package raised it.
var (
	// ErrInvalidParameter marks caller errors (bad k, missing vertex,
	// wrong graph kind, bad options). Always raised before any work is
	// dispatched.
	ErrInvalidParameter = errors.New("parallel: invalid parameter")

	// ErrComputationFailure marks a failed chunk task. The whole batch is
	// discarded when it occurs.
	ErrComputationFailure = errors.New("parallel: computation failure")
)

// errShortCircuit stops an All batch as soon as one chunk reports false.
var errShortCircuit = errors.New("parallel: short circuit")
