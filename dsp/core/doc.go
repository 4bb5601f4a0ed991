// Package core holds the pieces shared by the numeric packages: the error
// type and its kinds, element-type constraints and small slice helpers.
//
// Errors carry their argument name and reason unless the module is built with
// the nodiag tag, in which case only the kind is kept:
//
//	var e *core.Error
//	if errors.As(err, &e) && e.Kind == core.KindInvalidArg {
//		log.Printf("bad %s: %s", e.Arg, e.Reason)
//	}
package core
