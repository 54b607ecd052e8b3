// Package assert provides internal consistency checks that compile to
// nothing in normal builds.
//
// Build with -tags skewheapdebug to turn every check into a panic on
// failure. The checks guard against bugs in this module (stale handles,
// broken parent links), never against caller mistakes.
package assert
