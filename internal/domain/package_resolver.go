package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"svcdeps.dev/pkg/svcdeps/internal/adapter"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// PackageResolution is the result of resolving one declared package.
type PackageResolution struct {
	Outcome   m.PackageOutcome
	FileEdges int
}

type packageListing struct {
	pathnames []string
	err       error
	duration  time.Duration
}

// PackageResolver matches the files a package owns against the blueprint.
type PackageResolver struct {
	blueprint Blueprint
	index     DirectoryIndex
	commands  PackageCommands
	query     adapter.PackageQueryAdapter
	metrics   adapter.MetricsRecorder

	// listings holds one query result per package manager and package for
	// the lifetime of the resolver, so a package shared by several services
	// spawns a single process.
	listings *xsync.MapOf[string, packageListing]
}

// NewPackageResolver creates a resolver. metrics may be nil.
func NewPackageResolver(
	blueprint Blueprint,
	index DirectoryIndex,
	commands PackageCommands,
	query adapter.PackageQueryAdapter,
	metrics adapter.MetricsRecorder,
) *PackageResolver {
	return &PackageResolver{
		blueprint: blueprint,
		index:     index,
		commands:  commands,
		query:     query,
		metrics:   metrics,
		listings:  xsync.NewMapOf[string, packageListing](),
	}
}

// Resolve records an edge from the service to every tracked file the package
// owns, and to every tracked file inside a directory the package owns.
//
// Query failures are not errors: they resolve to OutcomeQueryFailed with no
// edges. Only cancellation of ctx is returned.
func (r *PackageResolver) Resolve(ctx context.Context, key m.ServiceKey, packageManager, pkg string) (PackageResolution, error) {
	command, ok := r.commands.Lookup(packageManager)
	if !ok {
		slog.Debug("Skipping package of unsupported package manager",
			"service", key.String(), "package_manager", packageManager, "package", pkg)
		r.recordQuery(packageManager, m.OutcomeUnsupported, 0)

		return PackageResolution{Outcome: m.OutcomeUnsupported}, nil
	}

	listing, cached := r.listings.LoadOrCompute(packageManager+"\x00"+pkg, func() packageListing {
		start := time.Now()
		pathnames, err := r.query.ListPackageFiles(ctx, command, pkg)

		return packageListing{pathnames: pathnames, err: err, duration: time.Since(start)}
	})

	if listing.err != nil {
		if err := ctx.Err(); err != nil {
			return PackageResolution{}, err
		}

		slog.Warn("Package query failed, treating as empty",
			"service", key.String(), "package_manager", packageManager, "package", pkg,
			"error", fmt.Errorf("%w: %w", ErrQueryFailed, listing.err))

		if !cached {
			r.recordQuery(packageManager, m.OutcomeQueryFailed, listing.duration)
		}

		return PackageResolution{Outcome: m.OutcomeQueryFailed}, nil
	}

	outcome := m.OutcomeListed
	if len(listing.pathnames) == 0 {
		outcome = m.OutcomeEmpty
	}

	if !cached {
		r.recordQuery(packageManager, outcome, listing.duration)
	}

	var targets []m.Path

	for _, pathname := range listing.pathnames {
		candidate := m.Path(pathname)

		if r.blueprint.HasFile(candidate) {
			targets = append(targets, candidate)
			continue
		}

		if files, ok := r.index.Lookup(candidate); ok {
			targets = append(targets, files...)
		}
	}

	added := r.blueprint.AddServiceFile(key.Manager, key.Name, targets...)

	slog.Debug("Resolved package",
		"service", key.String(), "package_manager", packageManager, "package", pkg,
		"listed", len(listing.pathnames), "new_edges", len(added))

	return PackageResolution{Outcome: outcome, FileEdges: len(added)}, nil
}

func (r *PackageResolver) recordQuery(packageManager string, outcome m.PackageOutcome, duration time.Duration) {
	if r.metrics != nil {
		r.metrics.PackageQueried(packageManager, outcome, duration)
	}
}
