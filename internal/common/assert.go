package common

import "fmt"

// Assert expr is true, otherwise panic. Used for broken compiler
// invariants, never for errors in the analyzed program.
func Assert(expr bool, format string, args ...interface{}) {
	if !expr {
		panic(fmt.Sprintf(format, args...))
	}
}
