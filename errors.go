package geodesy

import (
	"errors"
	"fmt"
)

// ErrInvalidHandle indicates operate/fwd/inv was called with a Handle
// that does not index a compiled operation in this Context — either
// never returned by Operation, or returned by a different Context.
var ErrInvalidHandle = errors.New("geodesy: invalid operation handle")

// contextErrorf prefixes a formatted error with the owning Context
// method, mirroring builder.builderErrorf's "<Method>: <message>"
// convention. Unlike builderErrorf, format may itself contain "%w" — the
// whole format/args pair is handed to fmt.Errorf directly so any wrapped
// sentinel survives for errors.Is.
func contextErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
