package adapter

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"
)

// These tests run real, always-available commands in place of dpkg-query and
// rpm so the adapter contract can be checked on any host.

func requireCommand(t *testing.T, name string) {
	t.Helper()

	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestLocalPackageQueryAdapter_ListPackageFiles_Success(t *testing.T) {
	requireCommand(t, "printf")

	adapter := NewLocalPackageQueryAdapter(5 * time.Second)

	// printf receives the package name as its last argument, mirroring "dpkg-query -L <pkg>".
	lines, err := adapter.ListPackageFiles(context.Background(), []string{"printf", "%s\n/usr/share/doc/mypkg  \n\n"}, "/usr/bin/foo")
	if err != nil {
		t.Fatalf("ListPackageFiles() error = %v", err)
	}

	want := []string{"/usr/bin/foo", "/usr/share/doc/mypkg"}
	if len(lines) != len(want) {
		t.Fatalf("ListPackageFiles() = %q, want %q", lines, want)
	}

	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("ListPackageFiles()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLocalPackageQueryAdapter_ListPackageFiles_NonZeroExit(t *testing.T) {
	requireCommand(t, "false")

	adapter := NewLocalPackageQueryAdapter(5 * time.Second)

	lines, err := adapter.ListPackageFiles(context.Background(), []string{"false"}, "mypkg")
	if err == nil {
		t.Fatalf("ListPackageFiles() expected error for non-zero exit, got lines %q", lines)
	}

	if len(lines) != 0 {
		t.Fatalf("ListPackageFiles() expected no lines on failure, got %q", lines)
	}
}

func TestLocalPackageQueryAdapter_ListPackageFiles_SpawnFailure(t *testing.T) {
	adapter := NewLocalPackageQueryAdapter(5 * time.Second)

	_, err := adapter.ListPackageFiles(context.Background(), []string{"svcdeps-no-such-package-tool"}, "mypkg")
	if err == nil {
		t.Fatalf("ListPackageFiles() expected error for missing binary")
	}

	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("ListPackageFiles() error = %v, want exec.ErrNotFound", err)
	}
}

func TestLocalPackageQueryAdapter_ListPackageFiles_Timeout(t *testing.T) {
	requireCommand(t, "sleep")

	adapter := NewLocalPackageQueryAdapter(50 * time.Millisecond)

	start := time.Now()
	_, err := adapter.ListPackageFiles(context.Background(), []string{"sleep"}, "5")

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ListPackageFiles() error = %v, want deadline exceeded", err)
	}

	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("ListPackageFiles() took %v, expected the timeout to stop the process", elapsed)
	}
}

func TestLocalPackageQueryAdapter_ListPackageFiles_EmptyCommand(t *testing.T) {
	adapter := NewLocalPackageQueryAdapter(0)

	if adapter.Timeout() != DefaultCommandTimeout {
		t.Fatalf("Timeout() = %v, want %v", adapter.Timeout(), DefaultCommandTimeout)
	}

	if _, err := adapter.ListPackageFiles(context.Background(), nil, "mypkg"); err == nil {
		t.Fatalf("ListPackageFiles() expected error for empty command")
	}
}
