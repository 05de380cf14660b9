package bound

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnbounded is raised when a payload is extracted from an Unbounded value.
var ErrUnbounded = ierrors.New("bound is unbounded")

func IsUnboundedError(err error) bool {
	return ierrors.Is(err, ErrUnbounded)
}

// Catch runs fn and turns an Unwrap/Expect failure into an error. Any other
// panic is propagated unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && IsUnboundedError(e) {
			err = e
			return
		}
		panic(r)
	}()

	fn()
	return nil
}
