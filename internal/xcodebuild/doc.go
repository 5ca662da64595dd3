// Package xcodebuild invokes the xcodebuild tool and reports its results.
// The build's combined stdout/stderr is captured so callers can print just
// the tail of what is usually a very long log, and the subprocess exit code
// is surfaced for propagation as the process exit code.
package xcodebuild
