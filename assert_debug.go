//go:build vectordebug

package vector

import "fmt"

const debugChecks = true

// assertf panics when a caller precondition does not hold.
func assertf(ok bool, format string, args ...any) {
	if !ok {
		panic("vector: " + fmt.Sprintf(format, args...))
	}
}
