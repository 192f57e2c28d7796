package domain_test

import (
	"sync"
	"time"

	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

type countingRecorder struct {
	mu       sync.Mutex
	queries  map[m.PackageOutcome]int
	reads    map[bool]int
	edges    map[m.EdgeKind]int
	services int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		queries: map[m.PackageOutcome]int{},
		reads:   map[bool]int{},
		edges:   map[m.EdgeKind]int{},
	}
}

func (r *countingRecorder) PackageQueried(_ string, outcome m.PackageOutcome, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries[outcome]++
}

func (r *countingRecorder) FileRead(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads[ok]++
}

func (r *countingRecorder) EdgesRecorded(kind m.EdgeKind, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edges[kind] += count
}

func (r *countingRecorder) ServiceScanned(string, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services++
}

func serviceFiles(doc *m.Document, manager, service string) []m.Path {
	deps := doc.Services[manager][service]
	if deps == nil {
		return nil
	}

	return deps.Files
}

func serviceSources(doc *m.Document, manager, service string) []m.Path {
	deps := doc.Services[manager][service]
	if deps == nil {
		return nil
	}

	return deps.Sources
}
