//go:build nodiag

package core

// DiagnosticsEnabled reports whether errors carry their argument name and
// reason. Build without the nodiag tag to keep them.
const DiagnosticsEnabled = false
