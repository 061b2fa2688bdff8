package consensus

import "errors"

// Sentinel errors for the FFG processor. Callers may use errors.Is to
// check for specific failure types.
var (
	// ErrAlreadyAdvanced is returned when advance_epoch is called with a
	// current_checkpoint epoch that is not strictly ahead of the
	// processor's current_justified_checkpoint — spec §5's "concurrent
	// attempts to advance the same epoch twice are a caller bug and must
	// be rejected by the caller via epoch-equality check".
	ErrAlreadyAdvanced = errors.New("consensus: epoch already advanced")
)
