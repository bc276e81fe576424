package zstring

import "errors"

var (
	// byte-path validation
	ErrNullTerminatorMissing = errors.New("zstring: no null terminator at end of input")
	ErrInteriorNull          = errors.New("zstring: interior null byte before terminator")

	// text-path validation
	ErrNoTrailingNulls = errors.New("zstring: text input has no trailing null")
	ErrInteriorNulls   = errors.New("zstring: text input has interior nulls")
)

// checkTerminated validates the byte-path construction contract: the last
// byte must be the terminator and no byte before it may be zero.
func checkTerminated(b []byte) error {
	if len(b) == 0 || b[len(b)-1] != 0 {
		return ErrNullTerminatorMissing
	}
	for _, c := range b[:len(b)-1] {
		if c == 0 {
			return ErrInteriorNull
		}
	}
	return nil
}
