package assert

import "github.com/oomph-ac/locomotion/oerror"

// IsTrue panics with an oerror.Error built from message and args if ok is false. It guards
// programmer errors that cannot be recovered from at runtime.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
