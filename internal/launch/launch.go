//go:build !windows

// Package launch detects how the binary was started.
package launch

// FromDesktop reports whether the process was started by double-clicking it
// rather than from a shell. Only Windows can tell.
func FromDesktop() bool {
	return false
}
