package model

import (
	"time"
)

// PackageOutcome represents how a single package query ended.
type PackageOutcome int

const (
	// OutcomeListed indicates the package manager listed at least one pathname.
	OutcomeListed PackageOutcome = iota
	// OutcomeEmpty indicates the query succeeded but listed nothing.
	OutcomeEmpty
	// OutcomeQueryFailed indicates the command could not be spawned, timed out, or exited non-zero.
	OutcomeQueryFailed
	// OutcomeUnsupported indicates the package manager has no file-listing command.
	OutcomeUnsupported
)

func (o PackageOutcome) String() string {
	switch o {
	case OutcomeListed:
		return "listed"
	case OutcomeEmpty:
		return "empty"
	case OutcomeQueryFailed:
		return "failed"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// SkippedItem records a dependency file that could not be resolved for a service.
type SkippedItem struct {
	Service ServiceKey
	Path    Path
	Err     error
}

// ServiceResult holds the outcome of resolving one service.
type ServiceResult struct {
	Service     ServiceKey
	Packages    map[PackageOutcome]int
	FilesRead   int
	FileEdges   int
	SourceEdges int
	Skipped     []SkippedItem
	Duration    time.Duration
}

// ScanReport summarizes a complete scan.
type ScanReport struct {
	Services    []ServiceResult
	Packages    map[PackageOutcome]int
	FilesRead   int
	FileEdges   int
	SourceEdges int
	Skipped     []SkippedItem
	// Warnings aggregates the errors of every skipped item; nil when nothing was skipped.
	Warnings error
	Duration time.Duration
}

// Add folds a service result into the report totals.
func (r *ScanReport) Add(result ServiceResult) {
	if r.Packages == nil {
		r.Packages = map[PackageOutcome]int{}
	}

	for outcome, count := range result.Packages {
		r.Packages[outcome] += count
	}

	r.Services = append(r.Services, result)
	r.FilesRead += result.FilesRead
	r.FileEdges += result.FileEdges
	r.SourceEdges += result.SourceEdges
	r.Skipped = append(r.Skipped, result.Skipped...)
}

// NewEdges returns the number of edges recorded by the scan.
func (r ScanReport) NewEdges() int {
	return r.FileEdges + r.SourceEdges
}
