package domain

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"svcdeps.dev/pkg/svcdeps/internal/adapter"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// ScannerOptions holds the collaborators of a Scanner.
type ScannerOptions struct {
	Commands       PackageCommands
	ControlScripts ControlScripts
	Query          adapter.PackageQueryAdapter
	FS             adapter.ContentFSAdapter
	// Metrics is optional.
	Metrics adapter.MetricsRecorder
}

// ScanOptions controls a single scan.
type ScanOptions struct {
	// Threads bounds the number of services resolved concurrently; 0 means 1.
	Threads uint
	// FailFast aborts the scan on the first unreadable dependency file instead
	// of skipping it.
	FailFast bool
	// OnServiceCompleted is called once per resolved service. It may be
	// called from several goroutines at once.
	OnServiceCompleted func(m.ServiceResult)
}

// Scanner infers service dependencies and records them in a blueprint.
type Scanner struct {
	blueprint      Blueprint
	commands       PackageCommands
	controlScripts ControlScripts
	query          adapter.PackageQueryAdapter
	fs             adapter.ContentFSAdapter
	metrics        adapter.MetricsRecorder
}

// NewScanner creates a Scanner over blueprint. Nil command or control-script
// tables fall back to the defaults.
func NewScanner(blueprint Blueprint, opts ScannerOptions) *Scanner {
	commands := opts.Commands
	if commands == nil {
		commands = DefaultPackageCommands()
	}

	controlScripts := opts.ControlScripts
	if controlScripts == nil {
		controlScripts = DefaultControlScripts()
	}

	return &Scanner{
		blueprint:      blueprint,
		commands:       commands,
		controlScripts: controlScripts,
		query:          opts.Query,
		fs:             opts.FS,
		metrics:        opts.Metrics,
	}
}

// Services returns every service of the blueprint in walk order.
func (s *Scanner) Services() []m.ServiceKey {
	var keys []m.ServiceKey

	s.blueprint.WalkServices(func(manager, service string) {
		keys = append(keys, m.ServiceKey{Manager: manager, Name: service})
	})

	return keys
}

// Scan resolves the dependencies of every service. Edges recorded before an
// error are kept in the blueprint.
//
// For each service the package listings are matched first. The implicit
// control script and the declared files are then read, and so is every file
// that becomes a dependency along the way, including files found through a
// package listing such as installed binaries. Reading stops once a pass adds
// nothing new. Without FailFast an unreadable discovered file is reported in
// Skipped and Warnings rather than aborting the service.
func (s *Scanner) Scan(ctx context.Context, opts ScanOptions) (m.ScanReport, error) {
	start := time.Now()
	services := s.Services()

	slog.Info("Scanning services", "services", len(services), "threads", opts.Threads, "fail_fast", opts.FailFast)

	index := BuildDirectoryIndex(s.blueprint.Files())
	packages := NewPackageResolver(s.blueprint, index, s.commands, s.query, s.metrics)
	files := NewFileResolver(s.blueprint, s.fs, s.metrics)

	report := m.ScanReport{Packages: map[m.PackageOutcome]int{}}

	var reportMutex sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)

	threads := int(opts.Threads)
	if threads < 1 {
		threads = 1
	}

	group.SetLimit(threads)

	for _, key := range services {
		group.Go(func() error {
			result, err := s.resolveService(groupCtx, key, packages, files, opts.FailFast)

			reportMutex.Lock()
			report.Add(result)
			reportMutex.Unlock()

			if opts.OnServiceCompleted != nil {
				opts.OnServiceCompleted(result)
			}

			if err != nil {
				return fmt.Errorf("service %s: %w", key, err)
			}

			return nil
		})
	}

	err := group.Wait()

	slices.SortFunc(report.Services, func(a, b m.ServiceResult) int {
		return compareKeys(a.Service, b.Service)
	})
	slices.SortFunc(report.Skipped, func(a, b m.SkippedItem) int {
		return cmp.Or(compareKeys(a.Service, b.Service), cmp.Compare(a.Path, b.Path))
	})

	var warnings *multierror.Error
	for _, item := range report.Skipped {
		warnings = multierror.Append(warnings, fmt.Errorf("service %s: %w", item.Service, item.Err))
	}

	report.Warnings = warnings.ErrorOrNil()
	report.Duration = time.Since(start)

	slog.Info("Scan finished",
		"services", len(report.Services), "file_edges", report.FileEdges, "source_edges", report.SourceEdges,
		"skipped", len(report.Skipped), "duration", report.Duration)

	return report, err
}

// ResolveService resolves a single service outside of a full scan.
func (s *Scanner) ResolveService(ctx context.Context, key m.ServiceKey, failFast bool) (m.ServiceResult, error) {
	index := BuildDirectoryIndex(s.blueprint.Files())
	packages := NewPackageResolver(s.blueprint, index, s.commands, s.query, s.metrics)
	files := NewFileResolver(s.blueprint, s.fs, s.metrics)

	return s.resolveService(ctx, key, packages, files, failFast)
}

// resolveService runs the package phase and then reads the implicit control
// script and every file the service depends on. Files that become
// dependencies while reading are read too, until nothing new is found.
func (s *Scanner) resolveService(
	ctx context.Context,
	key m.ServiceKey,
	packages *PackageResolver,
	files *FileResolver,
	failFast bool,
) (m.ServiceResult, error) {
	start := time.Now()
	result := m.ServiceResult{Service: key, Packages: map[m.PackageOutcome]int{}}

	err := s.resolveInto(ctx, &result, packages, files, failFast)

	result.Duration = time.Since(start)
	s.recordService(result)

	return result, err
}

func (s *Scanner) resolveInto(
	ctx context.Context,
	result *m.ServiceResult,
	packages *PackageResolver,
	files *FileResolver,
	failFast bool,
) error {
	key := result.Service

	type declared struct{ packageManager, pkg string }

	var declaredPackages []declared

	s.blueprint.WalkServicePackages(key.Manager, key.Name, func(_, _, packageManager, pkg string) {
		declaredPackages = append(declaredPackages, declared{packageManager, pkg})
	})

	for _, d := range declaredPackages {
		resolution, err := packages.Resolve(ctx, key, d.packageManager, d.pkg)
		if err != nil {
			return err
		}

		result.Packages[resolution.Outcome]++
		result.FileEdges += resolution.FileEdges
	}

	seen := map[m.Path]struct{}{}

	var pending []m.Path

	enqueue := func(path m.Path) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		pending = append(pending, path)
	}

	if script, ok := s.controlScripts.Path(key.Manager, key.Name); ok {
		enqueue(script)
	}

	s.blueprint.WalkServiceFiles(key.Manager, key.Name, func(_, _ string, path m.Path) {
		enqueue(path)
	})

	for i := 0; i < len(pending); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		resolution, err := files.Resolve(ctx, key, pending[i])
		if err != nil {
			if failFast || !errors.Is(err, ErrFileRead) {
				return err
			}

			slog.Warn("Skipping unreadable dependency file", "service", key.String(), "path", pending[i], "error", err)

			result.Skipped = append(result.Skipped, m.SkippedItem{Service: key, Path: pending[i], Err: err})

			continue
		}

		result.FilesRead++
		result.FileEdges += len(resolution.Added)
		result.SourceEdges += resolution.SourceEdges

		for _, path := range resolution.Added {
			enqueue(path)
		}
	}

	return nil
}

func (s *Scanner) recordService(result m.ServiceResult) {
	if s.metrics == nil {
		return
	}

	s.metrics.ServiceScanned(result.Service.Manager, result.Duration)
	s.metrics.EdgesRecorded(m.EdgeFile, result.FileEdges)
	s.metrics.EdgesRecorded(m.EdgeSource, result.SourceEdges)
}

func compareKeys(a, b m.ServiceKey) int {
	return cmp.Or(cmp.Compare(a.Manager, b.Manager), cmp.Compare(a.Name, b.Name))
}
