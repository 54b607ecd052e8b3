//go:build !skewheapdebug

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// That is a no-op without the skewheapdebug build tag.
func That(bool, string, ...any) {}

// NoError is a no-op without the skewheapdebug build tag.
func NoError(error) {}
