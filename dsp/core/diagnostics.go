//go:build !nodiag

package core

// DiagnosticsEnabled reports whether errors carry their argument name and
// reason. Build with the nodiag tag to strip them.
const DiagnosticsEnabled = true
