// Package core provides fundamental types shared by the loader hosts.
// It contains no Bubble Tea dependencies, keeping hosts thin and testable.
package core

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
