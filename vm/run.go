package vm

import (
	"errors"

	"github.com/retroenv/sim8086/x86"
)

// Run steps s until it either runs off the end of memory or hits a decode
// error, invoking onStep after every successful Step so a caller (cmd/sim)
// can print a trace line without this package knowing about stdout.
//
// A truncated trailing instruction stops the run silently, matching the
// decoder's own "never abort, just stop making progress" contract; any
// other decode error is returned to the caller.
func Run(s *State, onStep func(StepResult)) error {
	for !s.Done() {
		result, err := s.Step()
		if err != nil {
			if errors.Is(err, x86.ErrTruncatedStream) {
				return nil
			}
			return err
		}
		if onStep != nil {
			onStep(result)
		}
	}
	return nil
}
