// Package progress is the progress-reporting surface: every call builds a
// ProgressEvent and forwards it to an optional in-process callback and/or a
// line-oriented JSON text stream. A Reporter keeps only its start time and
// the last percent emitted (for monotonic clamping); the package holds no
// package-level mutable state — callers construct a Reporter per solve and
// pass it down explicitly.
package progress
