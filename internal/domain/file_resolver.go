package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"svcdeps.dev/pkg/svcdeps/internal/adapter"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// FileResolution is the result of scanning one dependency file.
type FileResolution struct {
	// Added lists the file edges that were new for the service.
	Added       []m.Path
	SourceEdges int
}

// FileResolver extracts dependencies from the content of a file.
type FileResolver struct {
	blueprint Blueprint
	sources   []m.Path
	fs        adapter.ContentFSAdapter
	metrics   adapter.MetricsRecorder
}

// NewFileResolver creates a resolver. The source directories are captured
// once; they do not change during a scan. metrics may be nil.
func NewFileResolver(blueprint Blueprint, fs adapter.ContentFSAdapter, metrics adapter.MetricsRecorder) *FileResolver {
	return &FileResolver{
		blueprint: blueprint,
		sources:   blueprint.Sources(),
		fs:        fs,
		metrics:   metrics,
	}
}

// Resolve reads pathname and records an edge from the service to every
// tracked file named in it and every source directory mentioned anywhere in
// it. A read failure is returned wrapped in ErrFileRead.
func (r *FileResolver) Resolve(ctx context.Context, key m.ServiceKey, pathname m.Path) (FileResolution, error) {
	data, err := r.fs.ReadFile(ctx, pathname)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return FileResolution{}, ctxErr
		}

		r.recordRead(false)

		return FileResolution{}, fmt.Errorf("%w: %s: %w", ErrFileRead, pathname, err)
	}

	r.recordRead(true)

	content := string(data)

	var tracked []m.Path

	for token := range Pathnames(content) {
		if r.blueprint.HasFile(m.Path(token)) {
			tracked = append(tracked, m.Path(token))
		}
	}

	result := FileResolution{
		Added: r.blueprint.AddServiceFile(key.Manager, key.Name, tracked...),
	}

	for _, dir := range r.sources {
		if strings.Contains(content, string(dir)) && r.blueprint.AddServiceSource(key.Manager, key.Name, dir) {
			result.SourceEdges++
		}
	}

	slog.Debug("Resolved file",
		"service", key.String(), "path", pathname,
		"new_file_edges", len(result.Added), "new_source_edges", result.SourceEdges)

	return result, nil
}

func (r *FileResolver) recordRead(ok bool) {
	if r.metrics != nil {
		r.metrics.FileRead(ok)
	}
}
