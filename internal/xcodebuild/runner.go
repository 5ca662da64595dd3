package xcodebuild

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultTailLines is how many trailing build log lines are shown by default.
const DefaultTailLines = 30

// Request describes one xcodebuild invocation.
type Request struct {
	Xcodeproj   string // path to the .xcodeproj bundle
	Scheme      string
	Destination string
}

// Output captures the result of an xcodebuild invocation.
type Output struct {
	ExitCode int
	Combined string // interleaved stdout and stderr
}

// Succeeded reports whether the build exited cleanly.
func (o *Output) Succeeded() bool { return o.ExitCode == 0 }

// Runner executes xcodebuild.
type Runner struct {
	// Bin overrides the executable looked up on PATH; used by tests.
	Bin string
}

func (r *Runner) bin() (string, error) {
	if r.Bin != "" {
		return r.Bin, nil
	}
	path, err := exec.LookPath("xcodebuild")
	if err != nil {
		return "", fmt.Errorf("xcodebuild not found on PATH: %w", err)
	}
	return path, nil
}

// Build runs `xcodebuild -project … -scheme … -destination … clean build`,
// capturing combined output. A nonzero build exit code is not an error:
// it is reported in the Output for the caller to propagate.
func (r *Runner) Build(ctx context.Context, req Request) (*Output, error) {
	bin, err := r.bin()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, bin,
		"-project", req.Xcodeproj,
		"-scheme", req.Scheme,
		"-destination", req.Destination,
		"clean", "build",
	)

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	err = cmd.Run()
	output := &Output{Combined: combined.String()}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing xcodebuild: %w", err)
	}
	return output, nil
}

// Version returns the Xcode version string reported by `xcodebuild -version`.
func (r *Runner) Version(ctx context.Context) (string, error) {
	bin, err := r.bin()
	if err != nil {
		return "", err
	}

	out, err := exec.CommandContext(ctx, bin, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("running xcodebuild -version: %w", err)
	}
	return parseVersion(string(out))
}

// parseVersion extracts the version number from `xcodebuild -version` output,
// whose first line looks like "Xcode 16.2".
func parseVersion(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 2 && fields[0] == "Xcode" {
			return fields[1], nil
		}
	}
	return "", fmt.Errorf("no Xcode version in output %q", strings.TrimSpace(out))
}

// Tail returns the last n lines of output, trimmed of trailing whitespace.
func Tail(output string, n int) []string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
