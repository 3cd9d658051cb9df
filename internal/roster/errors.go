package roster

import "errors"

// Error kinds for per-duty resolution failures. Batch callers classify on
// these with errors.Is; servicetime.ErrParse covers the third class, malformed
// timestamps.
var (
	// ErrLookup marks a cross-reference (vehicle event, trip, stop) that did
	// not resolve.
	ErrLookup = errors.New("cross-reference not found")

	// ErrSchema marks a record whose shape violates the dataset's documented
	// structure, e.g. an unknown event type.
	ErrSchema = errors.New("unexpected record shape")
)
