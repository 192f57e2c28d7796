// Package controller provides output adapters for displaying scan progress and blueprint dependencies.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeScan
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode     StartMode
	services int
}

// WithListMode sets the UI to read-only listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithScanMode sets the UI to scan mode with the number of services to resolve.
func WithScanMode(services int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
		c.services = services
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for displaying scan progress and blueprint contents.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayScanInfo(ctx context.Context, services int, threads uint)
	// DisplayServiceCompleted may be called from several goroutines.
	DisplayServiceCompleted(ctx context.Context, result m.ServiceResult)
	DisplayScanReport(ctx context.Context, report m.ScanReport) error
	DisplayServiceList(ctx context.Context, services []m.ServiceSummary) error
	DisplayServiceEdges(ctx context.Context, services []m.ServiceSummary) error
}

// NewUI returns the interactive UI on a terminal and the plain one otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
