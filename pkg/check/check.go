// Package check holds the precondition checks used by the ring container.
//
// A failed check is a programmer error, not an input error: the operation is
// aborted by handing the error to the abort handler, which by default panics.
// The expensive checks, those walking the whole ring, can be turned off for hot
// paths with Enable(false); misuse they would have caught is then undefined.
// Constant time checks always run.
package check

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

type abortFunc struct {
	fn func(error)
}

var (
	enabled = atomic.NewBool(true)
	handler atomic.Value
)

func init() {
	handler.Store(abortFunc{fn: Panic})
}

// Panic is the default abort handler.
func Panic(err error) {
	panic(err)
}

// Enable turns the expensive precondition checks on or off for the whole
// process. Callers consult Enabled before running them.
func Enable(on bool) {
	enabled.Store(on)
}

func Enabled() bool {
	return enabled.Load()
}

// SetAbortHandler installs fn as the abort handler and returns a function
// restoring the previous one. A nil fn restores the default. The handler is
// expected not to return; if it does, the check panics anyway.
func SetAbortHandler(fn func(error)) (restore func()) {
	if fn == nil {
		fn = Panic
	}

	prev := handler.Load().(abortFunc)
	handler.Store(abortFunc{fn: fn})
	return func() { handler.Store(prev) }
}

// OrAbort aborts the current operation with err wrapped in msg when cond is
// false. It runs regardless of Enabled.
func OrAbort(cond bool, err error, msg string) {
	if cond {
		return
	}

	Abort(errors.Wrap(err, msg))
}

// Abort hands err to the abort handler unconditionally.
func Abort(err error) {
	handler.Load().(abortFunc).fn(err)
	panic(err)
}
