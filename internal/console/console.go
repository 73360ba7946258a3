//go:build !windows

// Package console detaches vtouch from the console window it was started
// with when it was launched by double-click rather than from a shell.
package console

// LaunchedFromGUI is always false outside Windows.
func LaunchedFromGUI() bool { return false }

// Hide is a no-op outside Windows.
func Hide() {}
