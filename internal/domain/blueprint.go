package domain

import (
	"maps"
	"slices"
	"sync"

	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// Blueprint is the view of a configuration snapshot the scanner works
// against. Reads never change; edge writes are idempotent and safe for
// concurrent use.
type Blueprint interface {
	// HasFile reports whether path is a tracked file.
	HasFile(path m.Path) bool
	// Files returns every tracked pathname in lexical order.
	Files() []m.Path
	// Sources returns every tracked source directory in lexical order.
	Sources() []m.Path

	// AddServiceFile records file edges and returns the paths that were not
	// already recorded for the service.
	AddServiceFile(manager, service string, paths ...m.Path) []m.Path
	// AddServiceSource records a source edge and reports whether it was new.
	AddServiceSource(manager, service string, dir m.Path) bool

	WalkServices(fn func(manager, service string))
	WalkServicePackages(manager, service string, fn func(manager, service, packageManager, pkg string))
	WalkServiceFiles(manager, service string, fn func(manager, service string, path m.Path))
	WalkServiceSources(manager, service string, fn func(manager, service string, dir m.Path))
}

type documentBlueprint struct {
	doc *m.Document

	mu      sync.Mutex
	files   map[m.ServiceKey]map[m.Path]struct{}
	sources map[m.ServiceKey]map[m.Path]struct{}
}

// NewBlueprint wraps a loaded document. Service file and source lists are
// normalized to sorted sets so repeated scans write identical documents.
func NewBlueprint(doc *m.Document) Blueprint {
	if doc == nil {
		doc = &m.Document{}
	}

	b := &documentBlueprint{
		doc:     doc,
		files:   map[m.ServiceKey]map[m.Path]struct{}{},
		sources: map[m.ServiceKey]map[m.Path]struct{}{},
	}

	for manager, services := range doc.Services {
		for service, deps := range services {
			if deps == nil {
				continue
			}

			key := m.ServiceKey{Manager: manager, Name: service}
			deps.Files = normalize(deps.Files)
			deps.Sources = normalize(deps.Sources)
			b.files[key] = toSet(deps.Files)
			b.sources[key] = toSet(deps.Sources)
		}
	}

	return b
}

func (b *documentBlueprint) HasFile(path m.Path) bool {
	_, ok := b.doc.Files[path]
	return ok
}

func (b *documentBlueprint) Files() []m.Path {
	return slices.Sorted(maps.Keys(b.doc.Files))
}

func (b *documentBlueprint) Sources() []m.Path {
	return slices.Sorted(maps.Keys(b.doc.Sources))
}

func (b *documentBlueprint) AddServiceFile(manager, service string, paths ...m.Path) []m.Path {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := m.ServiceKey{Manager: manager, Name: service}
	deps := b.depsLocked(key)

	set := b.files[key]
	if set == nil {
		set = map[m.Path]struct{}{}
		b.files[key] = set
	}

	var added []m.Path

	for _, path := range paths {
		if _, ok := set[path]; ok {
			continue
		}

		set[path] = struct{}{}
		deps.Files = insertSorted(deps.Files, path)
		added = append(added, path)
	}

	return added
}

func (b *documentBlueprint) AddServiceSource(manager, service string, dir m.Path) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := m.ServiceKey{Manager: manager, Name: service}
	deps := b.depsLocked(key)

	set := b.sources[key]
	if set == nil {
		set = map[m.Path]struct{}{}
		b.sources[key] = set
	}

	if _, ok := set[dir]; ok {
		return false
	}

	set[dir] = struct{}{}
	deps.Sources = insertSorted(deps.Sources, dir)

	return true
}

// WalkServices calls fn for every service, ordered by manager then name.
// The callback runs without the lock held so it may record edges.
func (b *documentBlueprint) WalkServices(fn func(manager, service string)) {
	b.mu.Lock()

	var keys []m.ServiceKey

	for _, manager := range slices.Sorted(maps.Keys(b.doc.Services)) {
		for _, service := range slices.Sorted(maps.Keys(b.doc.Services[manager])) {
			keys = append(keys, m.ServiceKey{Manager: manager, Name: service})
		}
	}

	b.mu.Unlock()

	for _, key := range keys {
		fn(key.Manager, key.Name)
	}
}

func (b *documentBlueprint) WalkServicePackages(manager, service string, fn func(manager, service, packageManager, pkg string)) {
	type declared struct{ packageManager, pkg string }

	b.mu.Lock()

	var packages []declared

	if deps := b.lookupLocked(manager, service); deps != nil {
		for _, packageManager := range slices.Sorted(maps.Keys(deps.Packages)) {
			for _, pkg := range deps.Packages[packageManager] {
				packages = append(packages, declared{packageManager, pkg})
			}
		}
	}

	b.mu.Unlock()

	for _, p := range packages {
		fn(manager, service, p.packageManager, p.pkg)
	}
}

func (b *documentBlueprint) WalkServiceFiles(manager, service string, fn func(manager, service string, path m.Path)) {
	b.mu.Lock()

	var files []m.Path
	if deps := b.lookupLocked(manager, service); deps != nil {
		files = slices.Clone(deps.Files)
	}

	b.mu.Unlock()

	for _, path := range files {
		fn(manager, service, path)
	}
}

func (b *documentBlueprint) WalkServiceSources(manager, service string, fn func(manager, service string, dir m.Path)) {
	b.mu.Lock()

	var sources []m.Path
	if deps := b.lookupLocked(manager, service); deps != nil {
		sources = slices.Clone(deps.Sources)
	}

	b.mu.Unlock()

	for _, dir := range sources {
		fn(manager, service, dir)
	}
}

func (b *documentBlueprint) lookupLocked(manager, service string) *m.ServiceDeps {
	services, ok := b.doc.Services[manager]
	if !ok {
		return nil
	}

	return services[service]
}

func (b *documentBlueprint) depsLocked(key m.ServiceKey) *m.ServiceDeps {
	if b.doc.Services == nil {
		b.doc.Services = map[string]map[string]*m.ServiceDeps{}
	}

	services := b.doc.Services[key.Manager]
	if services == nil {
		services = map[string]*m.ServiceDeps{}
		b.doc.Services[key.Manager] = services
	}

	deps := services[key.Name]
	if deps == nil {
		deps = &m.ServiceDeps{}
		services[key.Name] = deps
	}

	return deps
}

func normalize(paths []m.Path) []m.Path {
	if len(paths) == 0 {
		return paths
	}

	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	return slices.Compact(sorted)
}

func toSet(paths []m.Path) map[m.Path]struct{} {
	set := make(map[m.Path]struct{}, len(paths))
	for _, path := range paths {
		set[path] = struct{}{}
	}

	return set
}

func insertSorted(paths []m.Path, path m.Path) []m.Path {
	i, found := slices.BinarySearch(paths, path)
	if found {
		return paths
	}

	return slices.Insert(paths, i, path)
}
