package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultCommandTimeout bounds a single package-manager query.
const DefaultCommandTimeout = 30 * time.Second

// PackageQueryAdapter abstracts the package-manager commands that list the
// files owned by a package.
type PackageQueryAdapter interface {
	// ListPackageFiles runs command with pkg appended as the final argument and
	// returns its standard output split into lines. Exactly one process is
	// spawned and its output is fully drained before returning.
	ListPackageFiles(ctx context.Context, command []string, pkg string) ([]string, error)
}

// LocalPackageQueryAdapter runs package-manager commands with os/exec.
type LocalPackageQueryAdapter struct {
	timeout time.Duration
}

// NewLocalPackageQueryAdapter constructs a LocalPackageQueryAdapter. A
// non-positive timeout falls back to DefaultCommandTimeout.
func NewLocalPackageQueryAdapter(timeout time.Duration) *LocalPackageQueryAdapter {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	return &LocalPackageQueryAdapter{
		timeout: timeout,
	}
}

// Timeout returns the per-command deadline.
func (a *LocalPackageQueryAdapter) Timeout() time.Duration {
	return a.timeout
}

// ListPackageFiles runs the listing command for pkg.
func (a *LocalPackageQueryAdapter) ListPackageFiles(ctx context.Context, command []string, pkg string) ([]string, error) {
	if len(command) == 0 {
		return nil, errors.New("empty package query command")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	args := append(append([]string{}, command[1:]...), pkg)

	// #nosec G204 - command comes from the package manager table, pkg from the blueprint
	cmd := exec.CommandContext(ctx, command[0], args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s %s: %w", command[0], pkg, ctx.Err())
		}

		return nil, fmt.Errorf("%s %s: %w: %s", command[0], pkg, err, strings.TrimSpace(stderr.String()))
	}

	return splitLines(&stdout)
}

func splitLines(buf *bytes.Buffer) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(buf)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines, scanner.Err()
}
