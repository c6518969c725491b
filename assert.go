//go:build !vectordebug

package vector

// debugChecks reports whether precondition assertions are compiled in.
// Build with -tags vectordebug to enable them.
const debugChecks = false

func assertf(bool, string, ...any) {}
