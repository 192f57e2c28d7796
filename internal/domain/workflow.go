package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"svcdeps.dev/pkg/svcdeps/internal/adapter"
	"svcdeps.dev/pkg/svcdeps/internal/controller"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// ScanArgs contains the arguments for a dependency scan.
type ScanArgs struct {
	Blueprint      m.Path
	Threads        uint
	CommandTimeout time.Duration
	FailFast       bool
	DryRun         bool
	// Root is the directory dependency files are read beneath; empty means "/".
	Root           string
	MetricsFile    m.Path
	Commands       PackageCommands
	ControlScripts ControlScripts
}

// ListArgs contains the arguments for listing services.
type ListArgs struct {
	Blueprint      m.Path
	ControlScripts ControlScripts
}

// ViewArgs contains the arguments for viewing service dependency edges.
type ViewArgs struct {
	Blueprint      m.Path
	ControlScripts ControlScripts
	// Services filters by "name" or "manager/name"; empty shows every service.
	Services []string
}

// Workflow defines the commands the CLI exposes.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

// WorkflowOption customizes a Workflow.
type WorkflowOption func(*workflow)

// WithPackageQueryFactory replaces how the package query adapter is built for a scan.
func WithPackageQueryFactory(factory func(timeout time.Duration) adapter.PackageQueryAdapter) WorkflowOption {
	return func(w *workflow) {
		w.newQuery = factory
	}
}

// WithContentFSFactory replaces how the dependency file reader is built for a scan.
func WithContentFSFactory(factory func(root string) adapter.ContentFSAdapter) WorkflowOption {
	return func(w *workflow) {
		w.newFS = factory
	}
}

type workflow struct {
	adapter.BlueprintStore
	controller.UI

	newQuery func(timeout time.Duration) adapter.PackageQueryAdapter
	newFS    func(root string) adapter.ContentFSAdapter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(store adapter.BlueprintStore, ui controller.UI, opts ...WorkflowOption) Workflow {
	w := &workflow{
		BlueprintStore: store,
		UI:             ui,
		newQuery: func(timeout time.Duration) adapter.PackageQueryAdapter {
			return adapter.NewLocalPackageQueryAdapter(timeout)
		},
		newFS: func(root string) adapter.ContentFSAdapter {
			return adapter.NewLocalContentFSAdapter(root)
		},
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	unlock, err := w.Lock(ctx, args.Blueprint)
	if err != nil {
		return fmt.Errorf("lock blueprint: %w", err)
	}

	defer func() {
		if err := unlock(); err != nil {
			slog.Warn("Failed to release blueprint lock", "path", args.Blueprint, "error", err)
		}
	}()

	doc, err := w.Load(ctx, args.Blueprint)
	if err != nil {
		return fmt.Errorf("load blueprint: %w", err)
	}

	recorder := adapter.NewPrometheusRecorder()
	scanner := NewScanner(NewBlueprint(doc), ScannerOptions{
		Commands:       args.Commands,
		ControlScripts: args.ControlScripts,
		Query:          w.newQuery(args.CommandTimeout),
		FS:             w.newFS(args.Root),
		Metrics:        recorder,
	})

	threads := max(args.Threads, 1)
	services := scanner.Services()

	if err := w.Start(ctx, controller.WithScanMode(len(services))); err != nil {
		slog.Error("Failed to start scan UI", "error", err)
		return err
	}

	w.DisplayScanInfo(ctx, len(services), threads)

	report, scanErr := scanner.Scan(ctx, ScanOptions{
		Threads:  threads,
		FailFast: args.FailFast,
		OnServiceCompleted: func(result m.ServiceResult) {
			w.DisplayServiceCompleted(ctx, result)
		},
	})

	w.Close(ctx)

	if scanErr != nil {
		slog.Error("Scan aborted", "error", scanErr, "new_edges", report.NewEdges())
	}

	// Edges found before an abort are still written.
	switch {
	case args.DryRun:
		slog.Info("Dry run, blueprint left unchanged", "new_edges", report.NewEdges())
	case report.NewEdges() == 0:
		slog.Info("No new dependencies, blueprint left unchanged")
	default:
		if err := w.Save(context.WithoutCancel(ctx), args.Blueprint, doc); err != nil {
			return fmt.Errorf("save blueprint: %w", err)
		}
	}

	if scanErr != nil {
		return fmt.Errorf("scan: %w", scanErr)
	}

	if err := w.DisplayScanReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.MetricsFile != "" {
		if err := recorder.WriteTextfile(args.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	doc, err := w.Load(ctx, args.Blueprint)
	if err != nil {
		return fmt.Errorf("load blueprint: %w", err)
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	return w.DisplayServiceList(ctx, Summarize(NewBlueprint(doc), args.ControlScripts))
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	doc, err := w.Load(ctx, args.Blueprint)
	if err != nil {
		return fmt.Errorf("load blueprint: %w", err)
	}

	summaries := Summarize(NewBlueprint(doc), args.ControlScripts)
	if len(args.Services) > 0 {
		summaries = slices.DeleteFunc(summaries, func(s m.ServiceSummary) bool {
			return !matchesAny(s.Key, args.Services)
		})

		if len(summaries) == 0 {
			return fmt.Errorf("no service matches %s", strings.Join(args.Services, ", "))
		}
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	return w.DisplayServiceEdges(ctx, summaries)
}

// Summarize describes every service of the blueprint with its recorded edges.
func Summarize(blueprint Blueprint, scripts ControlScripts) []m.ServiceSummary {
	if scripts == nil {
		scripts = DefaultControlScripts()
	}

	var summaries []m.ServiceSummary

	blueprint.WalkServices(func(manager, service string) {
		summary := m.ServiceSummary{Key: m.ServiceKey{Manager: manager, Name: service}}
		summary.ControlScript, _ = scripts.Path(manager, service)

		blueprint.WalkServicePackages(manager, service, func(_, _, _, _ string) {
			summary.Packages++
		})
		blueprint.WalkServiceFiles(manager, service, func(_, _ string, path m.Path) {
			summary.Files = append(summary.Files, path)
		})
		blueprint.WalkServiceSources(manager, service, func(_, _ string, dir m.Path) {
			summary.Sources = append(summary.Sources, dir)
		})

		summaries = append(summaries, summary)
	})

	return summaries
}

func matchesAny(key m.ServiceKey, filters []string) bool {
	for _, filter := range filters {
		if filter == key.Name || filter == key.String() {
			return true
		}
	}

	return false
}
